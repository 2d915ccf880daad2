// Package storage implements profile image storage on top of the
// gocloud.dev blob abstraction, so the bucket can be a local directory in
// development and a cloud bucket in production with only a URL change.
package storage

import (
	"context"
	"log/slog"
	"strings"

	"privy/config"
	"privy/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Drivers registered for blob.OpenBucket URL schemes.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

type blobStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
}

// NewBlobStorage opens the configured bucket and returns the MediaStorage
// implementation. The bucket handle is closed on shutdown via fx.
func NewBlobStorage(params Params) (service.MediaStorage, error) {
	cfg := params.Config.Media
	if cfg == nil || cfg.BucketURL == "" {
		return nil, errors.New("media bucket is not configured")
	}

	bucket, err := blob.OpenBucket(params.Ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open media bucket %s", cfg.BucketURL)
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	params.Logger.Info("Media bucket opened", slog.String("bucketUrl", cfg.BucketURL))

	return &blobStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimSuffix(cfg.PublicBaseURL, "/"),
	}, nil
}

// SaveProfileImage writes the image to the bucket and returns its public URL.
func (s *blobStorage) SaveProfileImage(ctx context.Context, fileName, contentType string, data []byte) (string, error) {
	opts := &blob.WriterOptions{ContentType: contentType}

	if err := s.bucket.WriteAll(ctx, fileName, data, opts); err != nil {
		return "", errors.Wrapf(err, "failed to write profile image %s", fileName)
	}

	return s.publicBaseURL + "/" + fileName, nil
}
