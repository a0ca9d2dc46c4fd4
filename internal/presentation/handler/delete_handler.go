package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/SniffleSneeze/thumbnail-server/internal/application/usecase/abstraction"
	"github.com/SniffleSneeze/thumbnail-server/internal/presentation"
)

type DeleteHandler struct {
	deleter abstraction.Deleter
}

func NewDeleteHandler(deleter abstraction.Deleter) *DeleteHandler {
	return &DeleteHandler{
		deleter: deleter,
	}
}

// HandleDelete handles DELETE /images/:id requests.
func (h *DeleteHandler) HandleDelete(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return c.NoContent(http.StatusBadRequest)
	}

	if err := h.deleter.DeleteImage(c.Request().Context(), id); err != nil {
		c.Response().Header().Set(presentation.ReasonTag, err.Error())

		return c.NoContent(statusFromError(err))
	}

	return c.NoContent(http.StatusNoContent)
}
