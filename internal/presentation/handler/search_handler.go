package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/SniffleSneeze/thumbnail-server/internal/application/usecase/abstraction"
	"github.com/SniffleSneeze/thumbnail-server/internal/presentation"
)

type SearchHandler struct {
	searcher abstraction.Searcher
}

func NewSearchHandler(searcher abstraction.Searcher) *SearchHandler {
	return &SearchHandler{
		searcher: searcher,
	}
}

// HandleSearch handles GET /images/search?tag= requests. An unknown tag is a
// 200 with an empty list, not an error.
func (h *SearchHandler) HandleSearch(c echo.Context) error {
	tag := c.QueryParam(presentation.TagQuery)
	if tag == "" {
		c.Response().Header().Set(presentation.ReasonTag, "missing tag query parameter")

		return c.NoContent(http.StatusBadRequest)
	}

	images, err := h.searcher.SearchByTag(c.Request().Context(), tag)
	if err != nil {
		c.Response().Header().Set(presentation.ReasonTag, err.Error())

		return c.NoContent(statusFromError(err))
	}

	return c.JSON(http.StatusOK, images)
}
