package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"

	"github.com/SniffleSneeze/thumbnail-server/internal/domain/model"
	"github.com/SniffleSneeze/thumbnail-server/internal/domain/repository/blob"
	"github.com/SniffleSneeze/thumbnail-server/internal/domain/repository/broker"
	"github.com/SniffleSneeze/thumbnail-server/internal/domain/repository/database"
	"github.com/SniffleSneeze/thumbnail-server/pkg/logger"
	"github.com/SniffleSneeze/thumbnail-server/pkg/thumbnail"
)

const maxFilenameLength = 255

// Ingestor turns an uploaded stream into a committed image record. It is the
// only writer in the system: blobs go in first, then the metadata row commits
// in one transaction, so a reader can never observe a half-written record.
type Ingestor struct {
	blobs          blob.Store
	writer         database.Writer
	publisher      broker.Publisher
	generator      *thumbnail.Generator
	maxUploadBytes int64
}

// NewIngestor creates a new Ingestor usecase. publisher may be nil when event
// publishing is disabled.
func NewIngestor(blobs blob.Store, writer database.Writer, publisher broker.Publisher,
	generator *thumbnail.Generator, maxUploadBytes int64,
) *Ingestor {
	return &Ingestor{
		blobs:          blobs,
		writer:         writer,
		publisher:      publisher,
		generator:      generator,
		maxUploadBytes: maxUploadBytes,
	}
}

func (i *Ingestor) Ingest(ctx context.Context, filename string, body io.Reader,
	tags []string,
) (*model.ImageRecord, error) {
	filename = strings.TrimSpace(filename)
	if filename == "" {
		return nil, model.NewInvalidInput("missing filename")
	}
	if len(filename) > maxFilenameLength {
		return nil, model.NewInvalidInput(fmt.Sprintf("filename longer than %d bytes", maxFilenameLength))
	}

	data, err := i.readBounded(ctx, body)
	if err != nil {
		return nil, err
	}

	if mime := mimetype.Detect(data); !strings.HasPrefix(mime.String(), "image/") {
		return nil, model.NewDecodeError(fmt.Sprintf("unsupported content type %s", mime.String()), nil)
	}

	result, err := i.generator.Generate(data)
	if err != nil {
		var decodeErr *thumbnail.DecodeError
		if errors.As(err, &decodeErr) && decodeErr.TooLarge {
			return nil, model.NewResourceLimit(decodeErr.Reason)
		}

		return nil, model.NewDecodeError("couldn't decode image", err)
	}

	original, err := i.blobs.Put(ctx, data, result.ContentType)
	if err != nil {
		return nil, err
	}

	thumb, err := i.blobs.Put(ctx, result.Thumbnail, "image/jpeg")
	if err != nil {
		if rmErr := i.blobs.Remove(ctx, original.Ref); rmErr != nil {
			logger.Error("failed to remove original blob after thumbnail write failed", "err", rmErr)
		}

		return nil, err
	}

	rec := &model.ImageRecord{
		OriginalFilename: filename,
		ContentType:      result.ContentType,
		Width:            result.Width,
		Height:           result.Height,
		Tags:             model.NormalizeTags(tags),
		CreatedAt:        time.Now().UTC(),
		OriginalBlobRef:  original.Ref,
		ThumbBlobRef:     thumb.Ref,
	}

	id, err := i.writer.Insert(ctx, rec)
	if err != nil {
		// The record never became visible. The blobs are inert garbage; try
		// to reclaim them now, otherwise the sweep picks them up later.
		orphaned := false
		for _, ref := range []string{original.Ref, thumb.Ref} {
			if rmErr := i.blobs.Remove(ctx, ref); rmErr != nil {
				logger.Error("failed to remove blob after metadata write failed", "ref", ref, "err", rmErr)
				orphaned = true
			}
		}

		return nil, model.NewStorageError("couldn't add image to database", err, orphaned)
	}
	rec.ID = id

	if i.publisher != nil {
		if err := i.publisher.Publish(ctx, id); err != nil {
			logger.Warn("failed to publish ingest event", "id", id, "err", err)
		}
	}

	return rec, nil
}

// readBounded buffers the upload with an explicit byte-count cutoff so a
// client can never force unbounded memory use.
func (i *Ingestor) readBounded(ctx context.Context, body io.Reader) ([]byte, error) {
	buf := make([]byte, 0, 64*1024)
	chunk := make([]byte, 32*1024)
	var total int64

	for {
		if err := ctx.Err(); err != nil {
			return nil, model.NewInvalidInput("upload cancelled")
		}

		n, err := body.Read(chunk)
		if n > 0 {
			total += int64(n)
			if total > i.maxUploadBytes {
				return nil, model.NewResourceLimit(fmt.Sprintf("upload exceeds limit of %d bytes", i.maxUploadBytes))
			}
			buf = append(buf, chunk[:n]...)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, model.NewInvalidInput("couldn't read upload stream")
		}
	}

	if total == 0 {
		return nil, model.NewInvalidInput("empty upload")
	}

	return buf, nil
}
