package health

import (
	"encoding/json"
	"errors"
	"iter"
	"net/http/httptest"
	"testing"

	"blobgate/core/storage"
	"blobgate/core/storage/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func listing(paths []string, trailing error) iter.Seq2[storage.FileListEntry, error] {
	return func(yield func(storage.FileListEntry, error) bool) {
		for _, p := range paths {
			if !yield(storage.FileListEntry{Path: p}, nil) {
				return
			}
		}
		if trailing != nil {
			yield(storage.FileListEntry{}, trailing)
		}
	}
}

func setupTestApp(t *testing.T) (*fiber.App, *mocks.Driver) {
	t.Helper()
	app := fiber.New()
	drv := new(mocks.Driver)
	handler := NewHandler(NewService(drv, zap.NewNop()))
	handler.RegisterRoutes(app)
	return app, drv
}

func TestHandleCheck(t *testing.T) {
	t.Run("Healthy", func(t *testing.T) {
		app, drv := setupTestApp(t)
		drv.On("FlatList", mock.Anything, "").
			Return(listing([]string{"any.txt"}, nil))

		resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("EmptyBucketIsHealthy", func(t *testing.T) {
		app, drv := setupTestApp(t)
		drv.On("FlatList", mock.Anything, "").
			Return(listing(nil, nil))

		resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("BucketMissing", func(t *testing.T) {
		app, drv := setupTestApp(t)
		drv.On("FlatList", mock.Anything, "").
			Return(listing(nil, &storage.BucketNotFoundError{Bucket: "objects", Err: errors.New("gone")}))

		resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
		require.NoError(t, err)
		assert.Equal(t, 503, resp.StatusCode)

		var body map[string]any
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "unreachable", body["status"])
	})
}

func TestFeature(t *testing.T) {
	drv := new(mocks.Driver)
	feature := NewFeature(drv, zap.NewNop())

	assert.Equal(t, "health", feature.Name())
	assert.True(t, feature.IsEnabled())
	assert.NoError(t, feature.Load(fiber.New()))
}
