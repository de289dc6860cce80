package objects

import (
	"context"
	"io"

	"blobgate/core/storage"

	"go.uber.org/zap"
)

// Service exposes the storage driver's operation set to the HTTP layer.
type Service struct {
	driver storage.Driver
	logger *zap.Logger
}

// NewService creates a new objects service.
func NewService(driver storage.Driver, logger *zap.Logger) *Service {
	return &Service{
		driver: driver,
		logger: logger,
	}
}

// List drains the driver's lazy listing into a slice of paths. A limit of
// zero or less means unbounded.
func (s *Service) List(ctx context.Context, prefix string, limit int) ([]string, error) {
	paths := []string{}
	for entry, err := range s.driver.FlatList(ctx, prefix) {
		if err != nil {
			return nil, err
		}
		paths = append(paths, entry.Path)
		if limit > 0 && len(paths) >= limit {
			break
		}
	}
	return paths, nil
}

// Download returns the object's live body stream.
func (s *Service) Download(ctx context.Context, location string) (io.ReadCloser, error) {
	return s.driver.GetStream(ctx, location)
}

// Stat returns the object's size and last-modified time.
func (s *Service) Stat(ctx context.Context, location string) (*storage.StatResponse, error) {
	return s.driver.GetStat(ctx, location)
}

// Upload writes the object at location.
func (s *Service) Upload(ctx context.Context, location string, content io.Reader) (*storage.PutResponse, error) {
	return s.driver.Put(ctx, location, content)
}

// Remove deletes the object at location.
func (s *Service) Remove(ctx context.Context, location string) (*storage.DeleteResponse, error) {
	return s.driver.Delete(ctx, location)
}

// Copy issues a server-side copy.
func (s *Service) Copy(ctx context.Context, src, dest string) (*storage.CopyResponse, error) {
	return s.driver.Copy(ctx, src, dest)
}

// Move copies src to dest then deletes src. Not atomic; see storage.Driver.
func (s *Service) Move(ctx context.Context, src, dest string) (*storage.MoveResponse, error) {
	return s.driver.Move(ctx, src, dest)
}

// SignURL issues a time-limited pre-signed retrieval URL.
func (s *Service) SignURL(ctx context.Context, location string, opts storage.SignedURLOptions) (*storage.SignedURLResponse, error) {
	return s.driver.GetSignedURL(ctx, location, opts)
}
