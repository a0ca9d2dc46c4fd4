package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/SniffleSneeze/thumbnail-server/internal/application/usecase/abstraction"
	"github.com/SniffleSneeze/thumbnail-server/internal/domain/dto"
	"github.com/SniffleSneeze/thumbnail-server/internal/presentation"
	"github.com/SniffleSneeze/thumbnail-server/pkg/logger"
)

type UploadHandler struct {
	ingestor       abstraction.Ingestor
	defaultAddress string
}

func NewUploadHandler(ingestor abstraction.Ingestor, address string) *UploadHandler {
	return &UploadHandler{
		ingestor:       ingestor,
		defaultAddress: address,
	}
}

// Handle handles POST /images requests: a multipart body with the image under
// "file" and an optional comma-separated "tags" field.
func (h *UploadHandler) Handle(c echo.Context) error {
	fileHeader, err := c.FormFile(presentation.FileField)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "missing file field",
		})
	}

	src, err := fileHeader.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "unreadable file field",
		})
	}
	defer src.Close()

	var tags []string
	if raw := c.FormValue(presentation.TagsField); raw != "" {
		tags = strings.Split(raw, ",")
	}

	rec, err := h.ingestor.Ingest(c.Request().Context(), fileHeader.Filename, src, tags)
	if err != nil {
		logger.Error("upload failed", "filename", fileHeader.Filename, "err", err)

		return c.JSON(statusFromError(err), map[string]string{
			"error": err.Error(),
		})
	}

	return c.JSON(http.StatusCreated, dto.NewImageDescriptor(rec, h.defaultAddress))
}
