// Package storage implements photo storage on top of gocloud.dev/blob, so the
// same code serves a local directory, GCS, S3 or an in-memory bucket.
package storage

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"clientes/config"
	"clientes/internal/domain/service"
	"clientes/internal/errors"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"
	"gocloud.dev/gcerrors"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

type blobStorage struct {
	bucket *blob.Bucket
	logger *slog.Logger
}

// New opens the configured bucket and closes it when the application stops.
func New(params Params) (service.FileStorage, error) {
	bucket, err := openBucket(context.Background(), params.Config.Uploads)
	if err != nil {
		return nil, err
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return errors.WithStack(bucket.Close())
		},
	})

	return NewBlobStorage(bucket, params.Logger), nil
}

// NewBlobStorage wraps an already opened bucket.
func NewBlobStorage(bucket *blob.Bucket, logger *slog.Logger) service.FileStorage {
	if logger == nil {
		logger = slog.Default()
	}

	return &blobStorage{
		bucket: bucket,
		logger: logger,
	}
}

func openBucket(ctx context.Context, cfg *config.UploadsConfig) (*blob.Bucket, error) {
	if cfg == nil {
		return nil, errors.New("uploads configuration is missing")
	}

	if cfg.BucketURL != "" {
		bucket, err := blob.OpenBucket(ctx, cfg.BucketURL)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to open bucket %s", cfg.BucketURL)
		}

		return bucket, nil
	}

	dir, err := filepath.Abs(cfg.Dir)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve uploads directory")
	}

	bucket, err := fileblob.OpenBucket(dir, &fileblob.Options{CreateDir: true})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open uploads directory %s", dir)
	}

	return bucket, nil
}

// Copy writes content under "<uuid>_<original name without spaces>".
func (s *blobStorage) Copy(ctx context.Context, originalName string, content io.Reader) (string, error) {
	name := uuid.New().String() + "_" + strings.ReplaceAll(filepath.Base(originalName), " ", "")

	writeCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	w, err := s.bucket.NewWriter(writeCtx, name, nil)
	if err != nil {
		return "", errors.Wrapf(err, "failed to open writer for %s", name)
	}

	if _, err := io.Copy(w, content); err != nil {
		// Cancelling before Close discards the partial object.
		cancel()
		_ = w.Close()

		return "", errors.Wrapf(err, "failed to write %s", name)
	}

	if err := w.Close(); err != nil {
		return "", errors.Wrapf(err, "failed to commit %s", name)
	}

	s.logger.DebugContext(ctx, "Photo stored", slog.String("name", name))

	return name, nil
}

// Load opens a stored photo for reading.
func (s *blobStorage) Load(ctx context.Context, name string) (*service.Resource, error) {
	if !validName(name) {
		return nil, service.ErrFileNotFound
	}

	r, err := s.bucket.NewReader(ctx, name, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, service.ErrFileNotFound
		}

		return nil, errors.Wrapf(err, "failed to open %s", name)
	}

	return &service.Resource{
		Filename:    name,
		ContentType: r.ContentType(),
		Size:        r.Size(),
		Body:        r,
	}, nil
}

// Delete removes a stored photo. Missing files and failures both report false.
func (s *blobStorage) Delete(ctx context.Context, name string) bool {
	if !validName(name) {
		return false
	}

	if err := s.bucket.Delete(ctx, name); err != nil {
		if gcerrors.Code(err) != gcerrors.NotFound {
			s.logger.WarnContext(ctx, "Failed to delete photo", slog.String("name", name), slog.Any("error", err))
		}

		return false
	}

	return true
}

// validName rejects empty names and anything that could escape the bucket root.
func validName(name string) bool {
	if name == "" || strings.HasPrefix(name, ".") {
		return false
	}

	return !strings.ContainsAny(name, `/\`)
}
