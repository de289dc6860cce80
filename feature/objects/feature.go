package objects

import (
	"blobgate/core/loader"
	"blobgate/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature wires the objects HTTP surface into the application.
type Feature struct {
	service *Service
}

var _ loader.Feature = (*Feature)(nil)

// NewFeature creates the objects feature on top of a storage driver.
func NewFeature(driver storage.Driver, logger *zap.Logger) *Feature {
	return &Feature{
		service: NewService(driver, logger.With(zap.String("feature", "objects"))),
	}
}

// Name implements loader.Feature.
func (f *Feature) Name() string { return "objects" }

// IsEnabled implements loader.Feature.
func (f *Feature) IsEnabled() bool { return true }

// Load implements loader.Feature.
func (f *Feature) Load(app fiber.Router) error {
	NewHandler(f.service).RegisterRoutes(app)
	return nil
}
