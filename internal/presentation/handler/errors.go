package handler

import (
	"net/http"

	"github.com/SniffleSneeze/thumbnail-server/internal/domain/model"
)

// statusFromError maps engine error kinds to HTTP status codes. Anything the
// engine didn't classify is treated as a server-side failure.
func statusFromError(err error) int {
	switch model.KindOf(err) {
	case model.KindInvalidInput:
		return http.StatusBadRequest
	case model.KindDecode:
		return http.StatusUnsupportedMediaType
	case model.KindResourceLimit:
		return http.StatusRequestEntityTooLarge
	case model.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
