package fsblob

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/SniffleSneeze/thumbnail-server/internal/domain/entity"
	"github.com/SniffleSneeze/thumbnail-server/internal/domain/model"
	"github.com/SniffleSneeze/thumbnail-server/pkg/utils"
)

const tmpPrefix = ".tmp-"

// Config represents the configs used by the filesystem blob store.
type Config struct {
	Root string `yaml:"root"`
}

// Store keeps blobs as flat files under a root directory. A put writes to a
// hidden temp file and renames it into place, so a blob is either fully
// visible under its ref or absent.
type Store struct {
	root string
}

func New(cfg Config) (*Store, error) {
	if cfg.Root == "" {
		return nil, fmt.Errorf("fsblob: root directory is required")
	}

	if err := os.MkdirAll(cfg.Root, 0o755); err != nil {
		return nil, fmt.Errorf("fsblob: create root: %w", err)
	}

	return &Store{root: cfg.Root}, nil
}

func (s *Store) Put(ctx context.Context, data []byte, contentType string) (entity.StoredBlob, error) {
	if err := ctx.Err(); err != nil {
		return entity.StoredBlob{}, model.NewStorageError("blob write cancelled", err, false)
	}

	ref := uuid.New().String() + utils.GetExtensionFromMimeType(contentType)
	tmp := filepath.Join(s.root, tmpPrefix+ref)

	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return entity.StoredBlob{}, model.NewStorageError("blob write failed", err, false)
	}

	if err := os.Rename(tmp, filepath.Join(s.root, ref)); err != nil {
		_ = os.Remove(tmp)

		return entity.StoredBlob{}, model.NewStorageError("blob rename failed", err, false)
	}

	return entity.StoredBlob{
		Ref:         ref,
		Size:        int64(len(data)),
		ContentType: contentType,
	}, nil
}

func (s *Store) Get(ctx context.Context, ref string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, model.NewStorageError("blob read cancelled", err, false)
	}

	data, err := os.ReadFile(filepath.Join(s.root, filepath.Base(ref)))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, model.NewNotFound(fmt.Sprintf("no blob %q", ref))
		}

		return nil, model.NewStorageError("blob read failed", err, false)
	}

	return data, nil
}

func (s *Store) Remove(_ context.Context, ref string) error {
	err := os.Remove(filepath.Join(s.root, filepath.Base(ref)))
	if err != nil && !os.IsNotExist(err) {
		return model.NewStorageError("blob remove failed", err, false)
	}

	return nil
}

// List enumerates committed blobs. In-flight temp files are skipped.
func (s *Store) List(_ context.Context) ([]entity.BlobInfo, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		return nil, model.NewStorageError("blob list failed", err, false)
	}

	infos := make([]entity.BlobInfo, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), tmpPrefix) {
			continue
		}

		fi, err := e.Info()
		if err != nil {
			continue
		}

		infos = append(infos, entity.BlobInfo{
			Ref:          e.Name(),
			Size:         fi.Size(),
			LastModified: fi.ModTime(),
		})
	}

	return infos, nil
}
