package storage

import (
	"fmt"
	"sort"
	"sync"
)

// Factory constructs a driver variant from the storage configuration.
type Factory func(cfg Config) (Driver, error)

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Factory)
)

// Register makes a driver variant available under the given name. Providers
// call it from their init function; hosts pull a provider in with a blank
// import and select it by configuration.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if factory == nil {
		panic("storage: Register called with nil factory")
	}
	if _, dup := registry[name]; dup {
		panic(fmt.Sprintf("storage: driver %q registered twice", name))
	}
	registry[name] = factory
}

// Open constructs the driver variant named by cfg.Driver.
func Open(cfg Config) (Driver, error) {
	registryMu.RLock()
	factory, ok := registry[cfg.Driver]
	registryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("storage: unknown driver %q (registered: %v)", cfg.Driver, Drivers())
	}
	return factory(cfg)
}

// Drivers returns the names of all registered driver variants, sorted.
func Drivers() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
