// Package storage implements listing image persistence on a blob bucket.
package storage

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"foodbridge/config"
	"foodbridge/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Drivers registered by URL scheme: file:// for development, gs:// for production.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
)

type blobImageStore struct {
	bucket        *blob.Bucket
	publicBaseURL string
}

// Params holds dependencies for ImageStore, injected by Fx
type Params struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured blob bucket and returns an ImageStore backed by it.
func New(params Params) (service.ImageStore, error) {
	cfg := params.Config.Storage
	if cfg == nil || cfg.BucketURL == "" {
		return nil, errors.New("storage bucket URL is required")
	}

	bucket, err := blob.OpenBucket(params.Ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open blob bucket")
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	params.Logger.Info("Blob image store initialized",
		slog.String("bucket_url", cfg.BucketURL),
	)

	return &blobImageStore{
		bucket:        bucket,
		publicBaseURL: strings.TrimSuffix(cfg.PublicBaseURL, "/"),
	}, nil
}

// Save writes the image under the given key and returns its public URL.
func (s *blobImageStore) Save(ctx context.Context, key, contentType string, r io.Reader) (string, error) {
	w, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to open blob writer")
	}

	if _, err := io.Copy(w, r); err != nil {
		// Closing after a failed copy aborts the write.
		_ = w.Close()

		return "", errors.Wrap(err, "failed to write image")
	}

	if err := w.Close(); err != nil {
		return "", errors.Wrap(err, "failed to finalize image write")
	}

	return s.publicBaseURL + "/" + key, nil
}
