package handler

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleDelete(t *testing.T) {
	t.Parallel()
	e := setupServer(t)

	uploaded := uploadImage(t, e, "gone.png", makePNG(t, 100, 100), "")
	id := int64(uploaded["id"].(float64))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/images/%d", id), http.NoBody))
	require.Equal(t, http.StatusNoContent, rec.Code)

	for _, target := range []string{
		fmt.Sprintf("/images/%d", id),
		fmt.Sprintf("/images/%d/original", id),
		fmt.Sprintf("/images/%d/thumbnail", id),
	} {
		rec = httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, http.NoBody))
		assert.Equal(t, http.StatusNotFound, rec.Code, target)
	}
}

func TestHandleDeleteUnknown(t *testing.T) {
	t.Parallel()
	e := setupServer(t)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/images/9999", http.NoBody))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
