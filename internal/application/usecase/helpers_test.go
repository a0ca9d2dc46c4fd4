package usecase

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/SniffleSneeze/thumbnail-server/internal/infrastructure/database"
	"github.com/SniffleSneeze/thumbnail-server/internal/infrastructure/fsblob"
	"github.com/SniffleSneeze/thumbnail-server/pkg/thumbnail"
)

type env struct {
	db    *database.Database
	blobs *fsblob.Store
}

func setupEnv(t *testing.T) *env {
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

	return &env{db: db, blobs: blobs}
}

func (e *env) newIngestor(maxUploadBytes int64, cfg thumbnail.Config) *Ingestor {
	return NewIngestor(e.blobs, database.NewImageWriter(e.db), nil,
		thumbnail.New(cfg), maxUploadBytes)
}

// recordingPublisher captures published ids for assertions.
type recordingPublisher struct {
	mu  sync.Mutex
	ids []int64
}

func (p *recordingPublisher) Publish(_ context.Context, imageID int64) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.ids = append(p.ids, imageID)

	return nil
}

func makePNG(t *testing.T, width, height int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 200, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	return buf.Bytes()
}
