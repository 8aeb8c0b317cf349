package handler

import (
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/tripvista/travel-api/internal/dto"
	"github.com/tripvista/travel-api/pkg/storage"
)

// MaxUploadBytes caps image uploads at 5 MiB, checked before anything
// reaches storage.
const MaxUploadBytes = 5 << 20

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

type UploadHandler struct {
	store storage.Store
}

func NewUploadHandler(store storage.Store) *UploadHandler {
	return &UploadHandler{store: store}
}

func (h *UploadHandler) RegisterRoutes(admin *echo.Group) {
	admin.POST("/uploads", h.Upload)
}

func (h *UploadHandler) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "image file is required")
	}
	if fileHeader.Size > MaxUploadBytes {
		return echo.NewHTTPError(http.StatusBadRequest, "image exceeds the 5MB limit")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, MaxUploadBytes+1))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if len(data) > MaxUploadBytes {
		return echo.NewHTTPError(http.StatusBadRequest, "image exceeds the 5MB limit")
	}

	// Sniff the real content type; the client-declared header is not trusted.
	contentType := http.DetectContentType(data)
	ext, ok := imageExtensions[contentType]
	if !ok {
		return echo.NewHTTPError(http.StatusBadRequest, "only jpeg, png, webp or gif images are accepted")
	}

	url, err := h.store.Save(uuid.NewString()+ext, data)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, dto.UploadResponse{URL: url})
}
