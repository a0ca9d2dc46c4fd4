package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/SniffleSneeze/thumbnail-server/internal/application/usecase/abstraction"
	"github.com/SniffleSneeze/thumbnail-server/internal/presentation"
)

type ListHandler struct {
	lister abstraction.Lister
}

func NewListHandler(lister abstraction.Lister) *ListHandler {
	return &ListHandler{
		lister: lister,
	}
}

// HandleList handles GET /images requests.
func (h *ListHandler) HandleList(c echo.Context) error {
	images, err := h.lister.ListImages(c.Request().Context())
	if err != nil {
		c.Response().Header().Set(presentation.ReasonTag, err.Error())

		return c.NoContent(statusFromError(err))
	}

	return c.JSON(http.StatusOK, images)
}
