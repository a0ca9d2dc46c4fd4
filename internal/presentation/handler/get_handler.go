package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/SniffleSneeze/thumbnail-server/internal/application/usecase/abstraction"
	"github.com/SniffleSneeze/thumbnail-server/internal/domain/dto"
	"github.com/SniffleSneeze/thumbnail-server/internal/presentation"
)

type GetHandler struct {
	getter         abstraction.Getter
	defaultAddress string
}

func NewGetHandler(getter abstraction.Getter, address string) *GetHandler {
	return &GetHandler{
		getter:         getter,
		defaultAddress: address,
	}
}

// HandleGetRecord handles GET /images/:id requests.
func (h *GetHandler) HandleGetRecord(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return c.NoContent(http.StatusBadRequest)
	}

	rec, err := h.getter.GetRecord(c.Request().Context(), id)
	if err != nil {
		c.Response().Header().Set(presentation.ReasonTag, err.Error())

		return c.NoContent(statusFromError(err))
	}

	return c.JSON(http.StatusOK, dto.NewImageDescriptor(rec, h.defaultAddress))
}

// HandleGetOriginal handles GET /images/:id/original requests.
func (h *GetHandler) HandleGetOriginal(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return c.NoContent(http.StatusBadRequest)
	}

	data, contentType, err := h.getter.GetOriginal(c.Request().Context(), id)
	if err != nil {
		c.Response().Header().Set(presentation.ReasonTag, err.Error())

		return c.NoContent(statusFromError(err))
	}

	return c.Blob(http.StatusOK, contentType, data)
}

// HandleGetThumbnail handles GET /images/:id/thumbnail requests.
func (h *GetHandler) HandleGetThumbnail(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return c.NoContent(http.StatusBadRequest)
	}

	data, contentType, err := h.getter.GetThumbnail(c.Request().Context(), id)
	if err != nil {
		c.Response().Header().Set(presentation.ReasonTag, err.Error())

		return c.NoContent(statusFromError(err))
	}

	return c.Blob(http.StatusOK, contentType, data)
}

func parseID(c echo.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(presentation.IDParam), 10, 64)
	if err != nil || id <= 0 {
		c.Response().Header().Set(presentation.ReasonTag, "invalid image id")

		return 0, false
	}

	return id, true
}
