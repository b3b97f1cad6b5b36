package media

import (
	"errors"
	"strconv"

	"cdn-manager/core/imageutil"
	"cdn-manager/core/logger"
	"cdn-manager/feature/media/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Handler handles HTTP requests for media assets.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the media routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/media")
	group.Post("/", h.HandleUpload)
	group.Post("/purge", h.HandlePurge)
	group.Post("/bulk-delete", h.HandleBulkDelete)
	group.Get("/verify", h.HandleVerify)
	group.Get("/:id", h.HandleGetAsset)
	group.Put("/:id", h.HandleReplace)
	group.Delete("/:id", h.HandleDelete)
	group.Delete("/:id/object", h.HandleClear)
}

func parseCompressParams(c *fiber.Ctx) (CompressParams, error) {
	var params CompressParams

	if v := c.FormValue("max_width"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return params, errors.New("max_width must be an integer")
		}
		params.MaxWidth = n
	}
	if v := c.FormValue("quality"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return params, errors.New("quality must be an integer")
		}
		params.Quality = n
	}
	params.Format = imageutil.Format(c.FormValue("format"))
	return params, nil
}

// HandleUpload compresses and uploads a new image.
// @Summary Upload Image
// @Description Compresses an uploaded image and pushes it to the CDN storage zone.
// @Tags media
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file"
// @Param folder formData string false "Target folder (default 'uploads')"
// @Param public_id formData string false "Base name; generated when omitted"
// @Param max_width formData int false "Maximum output width (default 800)"
// @Param quality formData int false "Encoder quality 1-100 (default 75)"
// @Param format formData string false "Output format: WEBP or JPEG"
// @Success 201 {object} models.Asset "Stored Asset"
// @Failure 400 {object} map[string]string "Invalid Input"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /media [post]
func (h *Handler) HandleUpload(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing file"})
	}

	params, err := parseCompressParams(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	folder := c.FormValue("folder")
	if folder == "" {
		folder = "uploads"
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "cannot open file"})
	}
	defer file.Close()

	asset, err := h.service.UploadImage(c.Context(), file, folder, c.FormValue("public_id"), params)
	if err != nil {
		if errors.Is(err, imageutil.ErrDecode) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "failed to process image: " + err.Error()})
		}
		l.Error("Upload failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	l.Info("Upload completed", zap.String("public_id", asset.PublicID))
	return c.Status(fiber.StatusCreated).JSON(asset)
}

// HandleGetAsset returns a stored asset record.
// @Summary Get Asset
// @Description Fetch a single asset record by id.
// @Tags media
// @Produce json
// @Param id path string true "Asset ID"
// @Success 200 {object} models.Asset "Asset"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /media/{id} [get]
func (h *Handler) HandleGetAsset(c *fiber.Ctx) error {
	asset, err := h.service.GetAsset(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "asset not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(asset)
}

// HandleReplace swaps an asset's stored object for a new upload.
// @Summary Replace Image
// @Description Deletes the asset's current object (purging its cached URL when enabled) and uploads a replacement.
// @Tags media
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Asset ID"
// @Param file formData file true "Replacement image file"
// @Param max_width formData int false "Maximum output width (default 800)"
// @Param quality formData int false "Encoder quality 1-100 (default 75)"
// @Param format formData string false "Output format: WEBP or JPEG"
// @Success 200 {object} models.Asset "Updated Asset"
// @Failure 400 {object} map[string]string "Invalid Input"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /media/{id} [put]
func (h *Handler) HandleReplace(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing file"})
	}

	params, err := parseCompressParams(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "cannot open file"})
	}
	defer file.Close()

	asset, err := h.service.ReplaceImage(c.Context(), c.Params("id"), file, params)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "asset not found"})
		case errors.Is(err, imageutil.ErrDecode):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "failed to process image: " + err.Error()})
		}
		l.Error("Replace failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(asset)
}

// HandleDelete removes an asset and its stored object.
// @Summary Delete Asset
// @Description Deletes the stored object, purges its cached URL (unless purge=false), and removes the record.
// @Tags media
// @Produce json
// @Param id path string true "Asset ID"
// @Param purge query boolean false "Purge the cached URL (default true)"
// @Success 200 {object} map[string]string "Deletion Status"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /media/{id} [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	purge := c.Query("purge") != "false"

	if err := h.service.DeleteAsset(c.Context(), c.Params("id"), purge); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "asset not found"})
		}
		l.Error("Delete failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"status": "deleted"})
}

// HandleClear removes an asset's stored object but keeps its record.
// @Summary Clear Image
// @Description Deletes the asset's stored object (purging its cached URL when enabled) and blanks the record's public id and URL.
// @Tags media
// @Produce json
// @Param id path string true "Asset ID"
// @Success 200 {object} models.Asset "Cleared Asset"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /media/{id}/object [delete]
func (h *Handler) HandleClear(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	asset, err := h.service.ClearImage(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "asset not found"})
		}
		l.Error("Clear failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(asset)
}

// HandlePurge invalidates cached copies of explicit URLs.
// @Summary Purge Cached URLs
// @Description Purges the given URLs from the pull zone's edge caches.
// @Tags media
// @Accept json
// @Produce json
// @Param request body map[string][]string true "URLs to purge"
// @Success 200 {object} bunny.PurgeResult "Purge Result"
// @Failure 400 {object} map[string]string "Invalid Input"
// @Router /media/purge [post]
func (h *Handler) HandlePurge(c *fiber.Ctx) error {
	var body struct {
		URLs []string `json:"urls"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	if len(body.URLs) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "urls is required"})
	}

	return c.JSON(h.service.Purge(c.Context(), body.URLs))
}

// HandleBulkDelete deletes a list of stored objects by path.
// @Summary Bulk Delete Objects
// @Description Deletes the given storage objects, purging each known URL.
// @Tags media
// @Accept json
// @Produce json
// @Param request body map[string][]models.MediaPair true "Objects to delete"
// @Success 200 {object} models.BulkDeleteReport "Bulk Delete Report"
// @Failure 400 {object} map[string]string "Invalid Input"
// @Router /media/bulk-delete [post]
func (h *Handler) HandleBulkDelete(c *fiber.Ctx) error {
	var body struct {
		Items []models.MediaPair `json:"items"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	if len(body.Items) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "items is required"})
	}

	return c.JSON(h.service.BulkDelete(c.Context(), body.Items))
}

// HandleVerify checks archived originals against asset records.
// @Summary Verify Origin Archive
// @Description Checks that every recorded asset's original is still present in the origin archive.
// @Tags media
// @Produce json
// @Success 200 {object} models.VerifyReport "Verification Report"
// @Failure 503 {object} map[string]string "Archive or Database Unavailable"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /media/verify [get]
func (h *Handler) HandleVerify(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.VerifyArchive(c.Context())
	if err != nil {
		if errors.Is(err, ErrNoDatabase) || errors.Is(err, ErrNoArchive) {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})
		}
		l.Error("Archive verification failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	l.Info("Archive verification completed",
		zap.Int("records", report.TotalRecords),
		zap.Int("missing", len(report.Missing)))
	return c.JSON(report)
}
