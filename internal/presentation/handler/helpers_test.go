package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/stretchr/testify/require"

	"github.com/SniffleSneeze/thumbnail-server/internal/application/usecase"
	"github.com/SniffleSneeze/thumbnail-server/internal/infrastructure/database"
	"github.com/SniffleSneeze/thumbnail-server/internal/infrastructure/fsblob"
	"github.com/SniffleSneeze/thumbnail-server/internal/presentation"
	"github.com/SniffleSneeze/thumbnail-server/pkg/thumbnail"
)

const testAddress = "http://localhost:3000"

// setupServer wires the full engine against temp-dir backends and returns an
// echo instance with the production routes.
func setupServer(t *testing.T) *echo.Echo {
	t.Helper()

	db, err := database.Connect(database.Config{
		URI:          filepath.Join(t.TempDir(), "meta.db"),
		QueryTimeout: 30000,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Stop()
	})

	blobs, err := fsblob.New(fsblob.Config{Root: t.TempDir()})
	require.NoError(t, err)

	generator := thumbnail.New(thumbnail.Config{MaxEdge: 64})

	dbRetriever := database.NewImageRetriever(db)

	ingestor := usecase.NewIngestor(blobs, database.NewImageWriter(db), nil, generator, 1<<20)
	getter := usecase.NewGetter(dbRetriever, blobs)
	lister := usecase.NewLister(database.NewImageLister(db), testAddress)
	searcher := usecase.NewSearcher(database.NewImageSearcher(db), testAddress)
	deleter := usecase.NewDeleter(dbRetriever, database.NewImageRemover(db), blobs)

	uploadHandler := NewUploadHandler(ingestor, testAddress)
	getHandler := NewGetHandler(getter, testAddress)
	listHandler := NewListHandler(lister)
	searchHandler := NewSearchHandler(searcher)
	deleteHandler := NewDeleteHandler(deleter)

	e := echo.New()
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.Secure())
	e.Use(echoMiddleware.BodyLimit("8M"))

	e.POST("/images", uploadHandler.Handle)
	e.GET("/images", listHandler.HandleList)
	e.GET("/images/search", searchHandler.HandleSearch)
	e.GET(fmt.Sprintf("/images/:%s", presentation.IDParam), getHandler.HandleGetRecord)
	e.GET(fmt.Sprintf("/images/:%s/original", presentation.IDParam), getHandler.HandleGetOriginal)
	e.GET(fmt.Sprintf("/images/:%s/thumbnail", presentation.IDParam), getHandler.HandleGetThumbnail)
	e.DELETE(fmt.Sprintf("/images/:%s", presentation.IDParam), deleteHandler.HandleDelete)

	return e
}

func makePNG(t *testing.T, width, height int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: 100, B: uint8(y % 256), A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	return buf.Bytes()
}

// uploadRequest builds a multipart POST /images request.
func uploadRequest(t *testing.T, filename string, content []byte, tags string) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	if filename != "" {
		part, err := writer.CreateFormFile(presentation.FileField, filename)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	if tags != "" {
		require.NoError(t, writer.WriteField(presentation.TagsField, tags))
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/images", &body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())

	return req
}

// uploadImage uploads content and returns the decoded descriptor.
func uploadImage(t *testing.T, e *echo.Echo, filename string, content []byte, tags string) map[string]any {
	t.Helper()

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, uploadRequest(t, filename, content, tags))
	require.Equal(t, http.StatusCreated, rec.Code, "upload failed: %s", rec.Body.String())

	return decodeJSON(t, rec)
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var payload map[string]any
	decodeJSONInto(t, rec, &payload)

	return payload
}

func decodeJSONInto(t *testing.T, rec *httptest.ResponseRecorder, dst any) {
	t.Helper()

	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), dst))
}
