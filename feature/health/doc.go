// Package health exposes a storage reachability probe.
//
// GET /health asks the driver for the first entry of an unfiltered listing;
// a missing or inaccessible bucket turns into a 503 with the translated
// storage error. The probe is cheap: at most one page fetch, stopped after
// the first entry.
package health
