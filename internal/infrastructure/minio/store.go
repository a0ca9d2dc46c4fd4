package minio

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/SniffleSneeze/thumbnail-server/internal/domain/entity"
	"github.com/SniffleSneeze/thumbnail-server/internal/domain/model"
	"github.com/SniffleSneeze/thumbnail-server/pkg/logger"
	"github.com/SniffleSneeze/thumbnail-server/pkg/utils"
)

// Store persists blobs as MinIO objects under generated keys. PutObject is
// single-shot, so an object never becomes visible half-written.
type Store struct {
	client  *minio.Client
	bucket  string
	timeout time.Duration
}

func New(cfg Config) (*Store, error) {
	logger.Info("connecting to minio", "endpoint", cfg.Endpoint)

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:           credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure:          cfg.UseSSL,
		TrailingHeaders: true,
	})
	if err != nil {
		return nil, err
	}

	timeout := time.Duration(cfg.Timeout) * time.Millisecond
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, err
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, err
		}
	}

	return &Store{
		client:  client,
		bucket:  cfg.Bucket,
		timeout: timeout,
	}, nil
}

func (s *Store) Put(ctx context.Context, data []byte, contentType string) (entity.StoredBlob, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	ref := uuid.New().String() + utils.GetExtensionFromMimeType(contentType)

	info, err := s.client.PutObject(ctx, s.bucket, ref, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return entity.StoredBlob{}, model.NewStorageError("object upload failed", err, false)
	}

	return entity.StoredBlob{
		Ref:         ref,
		Size:        info.Size,
		ContentType: contentType,
	}, nil
}

func (s *Store) Get(ctx context.Context, ref string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	obj, err := s.client.GetObject(ctx, s.bucket, ref, minio.GetObjectOptions{})
	if err != nil {
		return nil, model.NewStorageError("object read failed", err, false)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		if isNoSuchKey(err) {
			return nil, model.NewNotFound(fmt.Sprintf("no blob %q", ref))
		}

		return nil, model.NewStorageError("object read failed", err, false)
	}

	return data, nil
}

func (s *Store) Remove(ctx context.Context, ref string) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.client.RemoveObject(ctx, s.bucket, ref, minio.RemoveObjectOptions{}); err != nil {
		return model.NewStorageError("object remove failed", err, false)
	}

	return nil
}

func (s *Store) List(ctx context.Context) ([]entity.BlobInfo, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	infos := make([]entity.BlobInfo, 0)
	for obj := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{}) {
		if obj.Err != nil {
			return nil, model.NewStorageError("object listing failed", obj.Err, false)
		}

		infos = append(infos, entity.BlobInfo{
			Ref:          obj.Key,
			Size:         obj.Size,
			LastModified: obj.LastModified,
		})
	}

	return infos, nil
}

func isNoSuchKey(err error) bool {
	return minio.ToErrorResponse(err).Code == "NoSuchKey"
}
