package objects

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"blobgate/core/storage"
	"blobgate/core/storage/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(t *testing.T) (*fiber.App, *mocks.Driver) {
	t.Helper()
	app := fiber.New()
	drv := new(mocks.Driver)
	handler := NewHandler(NewService(drv, zap.NewNop()))
	handler.RegisterRoutes(app)
	return app, drv
}

func TestHandleList(t *testing.T) {
	app, drv := setupTestApp(t)

	drv.On("FlatList", mock.Anything, "img/").
		Return(listing([]string{"img/a.png", "img/b.png"}, nil))

	resp, err := app.Test(httptest.NewRequest("GET", "/objects/list?prefix=img/", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]any
	json.NewDecoder(resp.Body).Decode(&body)
	assert.EqualValues(t, 2, body["count"])
}

func TestHandleDownload(t *testing.T) {
	t.Run("Streams", func(t *testing.T) {
		app, drv := setupTestApp(t)
		drv.On("GetStream", mock.Anything, "docs/readme.txt").
			Return(io.NopCloser(strings.NewReader("hello")), nil)

		resp, err := app.Test(httptest.NewRequest("GET", "/objects/content/docs/readme.txt", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		data, _ := io.ReadAll(resp.Body)
		assert.Equal(t, "hello", string(data))
	})

	t.Run("NotFound", func(t *testing.T) {
		app, drv := setupTestApp(t)
		drv.On("GetStream", mock.Anything, "gone.txt").
			Return(nil, &storage.ObjectNotFoundError{Location: "gone.txt", Err: errors.New("404")})

		resp, err := app.Test(httptest.NewRequest("GET", "/objects/content/gone.txt", nil))
		require.NoError(t, err)
		assert.Equal(t, 404, resp.StatusCode)
	})

	t.Run("PermissionDenied", func(t *testing.T) {
		app, drv := setupTestApp(t)
		drv.On("GetStream", mock.Anything, "secret.txt").
			Return(nil, &storage.PermissionDeniedError{Location: "secret.txt", Err: errors.New("403")})

		resp, err := app.Test(httptest.NewRequest("GET", "/objects/content/secret.txt", nil))
		require.NoError(t, err)
		assert.Equal(t, 403, resp.StatusCode)
	})

	t.Run("BackendFailure", func(t *testing.T) {
		app, drv := setupTestApp(t)
		drv.On("GetStream", mock.Anything, "flaky.txt").
			Return(nil, &storage.UnknownError{Code: "SlowDown", Location: "flaky.txt", Err: errors.New("503")})

		resp, err := app.Test(httptest.NewRequest("GET", "/objects/content/flaky.txt", nil))
		require.NoError(t, err)
		assert.Equal(t, 502, resp.StatusCode)
	})
}

func TestHandleStat(t *testing.T) {
	app, drv := setupTestApp(t)
	drv.On("GetStat", mock.Anything, "a.txt").
		Return(&storage.StatResponse{
			Size:     11,
			Modified: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		}, nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/objects/stat/a.txt", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]any
	json.NewDecoder(resp.Body).Decode(&body)
	assert.EqualValues(t, 11, body["size"])
	assert.Equal(t, "2025-06-01T12:00:00Z", body["modified"])
}

func TestHandleUpload(t *testing.T) {
	app, drv := setupTestApp(t)
	drv.On("Put", mock.Anything, "up.txt", mock.Anything).
		Return(&storage.PutResponse{}, nil)

	req := httptest.NewRequest("PUT", "/objects/content/up.txt", bytes.NewReader([]byte("payload")))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 201, resp.StatusCode)
	drv.AssertExpectations(t)
}

func TestHandleDelete(t *testing.T) {
	app, drv := setupTestApp(t)
	drv.On("Delete", mock.Anything, "a.txt").
		Return(&storage.DeleteResponse{}, nil)

	resp, err := app.Test(httptest.NewRequest("DELETE", "/objects/content/a.txt", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]any
	json.NewDecoder(resp.Body).Decode(&body)
	// Indeterminate: never a concrete boolean
	assert.Nil(t, body["was_deleted"])
}

func TestHandleCopy(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		app, drv := setupTestApp(t)
		drv.On("Copy", mock.Anything, "a.txt", "b.txt").
			Return(&storage.CopyResponse{}, nil)

		req := httptest.NewRequest("POST", "/objects/copy",
			strings.NewReader(`{"source":"a.txt","destination":"b.txt"}`))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("MissingFields", func(t *testing.T) {
		app, drv := setupTestApp(t)

		req := httptest.NewRequest("POST", "/objects/copy", strings.NewReader(`{"source":"a.txt"}`))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 400, resp.StatusCode)
		drv.AssertNotCalled(t, "Copy", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestHandleMove(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		app, drv := setupTestApp(t)
		drv.On("Move", mock.Anything, "a.txt", "b.txt").
			Return(&storage.MoveResponse{}, nil)

		req := httptest.NewRequest("POST", "/objects/move",
			strings.NewReader(`{"source":"a.txt","destination":"b.txt"}`))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("DeleteStepFailure", func(t *testing.T) {
		app, drv := setupTestApp(t)
		drv.On("Move", mock.Anything, "a.txt", "b.txt").
			Return(nil, &storage.PermissionDeniedError{Location: "a.txt", Err: errors.New("403")})

		req := httptest.NewRequest("POST", "/objects/move",
			strings.NewReader(`{"source":"a.txt","destination":"b.txt"}`))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 403, resp.StatusCode)
	})
}

func TestHandleSignURL(t *testing.T) {
	app, drv := setupTestApp(t)
	drv.On("GetSignedURL", mock.Anything, "a.txt", storage.SignedURLOptions{ExpiresIn: time.Minute}).
		Return(&storage.SignedURLResponse{SignedURL: "https://example.com/a.txt?sig=x"}, nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/objects/sign/a.txt?expires_in=60", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]any
	json.NewDecoder(resp.Body).Decode(&body)
	assert.Equal(t, "https://example.com/a.txt?sig=x", body["signed_url"])
}

func TestLoader(t *testing.T) {
	drv := new(mocks.Driver)
	feature := NewFeature(drv, zap.NewNop())

	assert.Equal(t, "objects", feature.Name())
	assert.True(t, feature.IsEnabled())

	app := fiber.New()
	err := feature.Load(app)
	assert.NoError(t, err)
}
