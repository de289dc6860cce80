package objects

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"blobgate/core/logger"
	"blobgate/core/storage"
	"blobgate/core/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for object storage operations.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the objects routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/objects")
	group.Get("/list", h.HandleList)
	group.Get("/sign/*", h.HandleSignURL)
	group.Get("/stat/*", h.HandleStat)
	group.Get("/content/*", h.HandleDownload)
	group.Put("/content/*", h.HandleUpload)
	group.Delete("/content/*", h.HandleDelete)
	group.Post("/copy", h.HandleCopy)
	group.Post("/move", h.HandleMove)
}

// HandleList lists object paths under a prefix.
// @Summary List Objects
// @Description Lists object paths under the given prefix, in backend order.
// @Tags objects
// @Produce json
// @Param prefix query string false "Key prefix"
// @Param limit query integer false "Maximum number of entries (0 = all)"
// @Success 200 {object} map[string]interface{} "Listing"
// @Router /objects/list [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	prefix := c.Query("prefix")
	limit := utils.ToInt(c.Query("limit"))

	paths, err := h.service.List(c.Context(), prefix, limit)
	if err != nil {
		l.Error("Listing failed", zap.String("prefix", prefix), zap.Error(err))
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"prefix":  prefix,
		"count":   len(paths),
		"objects": paths,
	})
}

// HandleDownload streams the object body.
// @Summary Download Object
// @Description Streams the object body without buffering it in memory.
// @Tags objects
// @Produce octet-stream
// @Param attachment query boolean false "Serve as attachment"
// @Success 200 {file} binary "Object content"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /objects/content/{location} [get]
func (h *Handler) HandleDownload(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	location := c.Params("*")

	stream, err := h.service.Download(c.Context(), location)
	if err != nil {
		l.Error("Download failed", zap.String("location", location), zap.Error(err))
		return respondError(c, err)
	}

	if utils.ToBool(c.Query("attachment")) {
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", location))
	}
	return c.SendStream(stream)
}

// HandleStat returns object metadata.
// @Summary Stat Object
// @Description Returns the object's size and last-modified timestamp.
// @Tags objects
// @Produce json
// @Success 200 {object} map[string]interface{} "Metadata"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /objects/stat/{location} [get]
func (h *Handler) HandleStat(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	location := c.Params("*")

	stat, err := h.service.Stat(c.Context(), location)
	if err != nil {
		l.Error("Stat failed", zap.String("location", location), zap.Error(err))
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"location": location,
		"size":     stat.Size,
		"modified": stat.Modified.UTC().Format(time.RFC3339),
	})
}

// HandleUpload writes the request body to the object location.
// @Summary Upload Object
// @Description Writes or overwrites the object with the request body.
// @Tags objects
// @Accept octet-stream
// @Produce json
// @Success 201 {object} map[string]string "Created"
// @Router /objects/content/{location} [put]
func (h *Handler) HandleUpload(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	location := c.Params("*")

	if _, err := h.service.Upload(c.Context(), location, bytes.NewReader(c.Body())); err != nil {
		l.Error("Upload failed", zap.String("location", location), zap.Error(err))
		return respondError(c, err)
	}

	l.Info("Object uploaded", zap.String("location", location), zap.Int("bytes", len(c.Body())))
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"location": location})
}

// HandleDelete removes the object.
// @Summary Delete Object
// @Description Deletes the object. Whether it existed beforehand is not reported.
// @Tags objects
// @Produce json
// @Success 200 {object} map[string]interface{} "Deleted"
// @Router /objects/content/{location} [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	location := c.Params("*")

	resp, err := h.service.Remove(c.Context(), location)
	if err != nil {
		l.Error("Delete failed", zap.String("location", location), zap.Error(err))
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"location":    location,
		"was_deleted": resp.WasDeleted, // always null: the backend does not report prior existence
	})
}

type transferRequest struct {
	Source      string `json:"source"`
	Destination string `json:"destination"`
}

// HandleCopy issues a server-side copy.
// @Summary Copy Object
// @Description Copies source to destination within the bucket.
// @Tags objects
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Copied"
// @Router /objects/copy [post]
func (h *Handler) HandleCopy(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	req, ok := parseTransfer(c)
	if !ok {
		return nil
	}

	if _, err := h.service.Copy(c.Context(), req.Source, req.Destination); err != nil {
		l.Error("Copy failed",
			zap.String("source", req.Source),
			zap.String("destination", req.Destination),
			zap.Error(err))
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"source": req.Source, "destination": req.Destination})
}

// HandleMove copies then deletes the source. The two steps are not atomic:
// a failed delete after a successful copy leaves both objects present.
// @Summary Move Object
// @Description Moves source to destination (copy + delete, not atomic).
// @Tags objects
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Moved"
// @Router /objects/move [post]
func (h *Handler) HandleMove(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	req, ok := parseTransfer(c)
	if !ok {
		return nil
	}

	if _, err := h.service.Move(c.Context(), req.Source, req.Destination); err != nil {
		l.Error("Move failed",
			zap.String("source", req.Source),
			zap.String("destination", req.Destination),
			zap.Error(err))
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"source": req.Source, "destination": req.Destination})
}

func parseTransfer(c *fiber.Ctx) (transferRequest, bool) {
	var req transferRequest
	if err := c.BodyParser(&req); err != nil || req.Source == "" || req.Destination == "" {
		_ = c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "source and destination are required"})
		return req, false
	}
	return req, true
}

// HandleSignURL issues a pre-signed retrieval URL.
// @Summary Sign Object URL
// @Description Produces a time-limited pre-signed URL without touching the object.
// @Tags objects
// @Produce json
// @Param expires_in query integer false "Lifetime in seconds (default 900)"
// @Success 200 {object} map[string]string "Signed URL"
// @Router /objects/sign/{location} [get]
func (h *Handler) HandleSignURL(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	location := c.Params("*")
	expiresIn := time.Duration(utils.ToInt(c.Query("expires_in"))) * time.Second

	resp, err := h.service.SignURL(c.Context(), location, storage.SignedURLOptions{ExpiresIn: expiresIn})
	if err != nil {
		l.Error("URL signing failed", zap.String("location", location), zap.Error(err))
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"location":   location,
		"signed_url": resp.SignedURL,
	})
}

// respondError maps the storage error taxonomy onto HTTP statuses.
func respondError(c *fiber.Ctx, err error) error {
	var objNotFound *storage.ObjectNotFoundError
	var bucketNotFound *storage.BucketNotFoundError
	var denied *storage.PermissionDeniedError

	status := fiber.StatusBadGateway
	switch {
	case errors.As(err, &objNotFound), errors.As(err, &bucketNotFound):
		status = fiber.StatusNotFound
	case errors.As(err, &denied):
		status = fiber.StatusForbidden
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}
