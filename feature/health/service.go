package health

import (
	"context"

	"blobgate/core/storage"

	"go.uber.org/zap"
)

// Service probes the configured bucket through the storage driver.
type Service struct {
	driver storage.Driver
	logger *zap.Logger
}

// NewService creates a new health service.
func NewService(driver storage.Driver, logger *zap.Logger) *Service {
	return &Service{
		driver: driver,
		logger: logger,
	}
}

// Check verifies the bucket is reachable by requesting the first page of an
// unfiltered listing and stopping at the first entry. A missing or
// inaccessible bucket surfaces as the driver's translated error.
func (s *Service) Check(ctx context.Context) error {
	for _, err := range s.driver.FlatList(ctx, "") {
		if err != nil {
			return err
		}
		break
	}
	return nil
}
