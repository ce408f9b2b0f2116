package media

import (
	"context"
	"log/slog"

	"blog/config"
	"blog/internal/domain/constants"
	"blog/internal/domain/lifecycle"
	"blog/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// StoreParams holds dependencies for MediaStore, injected by Fx
type StoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewMediaStore creates a MediaStore based on configuration
func NewMediaStore(params StoreParams) (service.MediaStore, error) {
	cfg := params.Config.Media
	if cfg == nil {
		return nil, errors.New("media configuration is required")
	}
	logger := params.Logger

	switch cfg.Provider {
	case constants.MediaProviderBlob, "":
		ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
		defer cancel()

		store, err := OpenBlobStore(ctx, cfg.BucketURL, cfg.PublicBaseURL)
		if err != nil {
			return nil, err
		}
		logger.Info("Using blob media store", slog.String("bucket_url", cfg.BucketURL))

		params.Lc.Append(fx.Hook{
			OnStop: func(context.Context) error {
				return store.Close()
			},
		})

		return store, nil

	case constants.MediaProviderMinio:
		store, err := NewMinioStore(cfg.Minio, cfg.PublicBaseURL)
		if err != nil {
			return nil, err
		}
		logger.Info("Using minio media store",
			slog.String("endpoint", cfg.Minio.Endpoint),
			slog.String("bucket", cfg.Minio.Bucket),
		)

		params.Lc.Append(fx.Hook{
			OnStart: func(startCtx context.Context) error {
				ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
				defer cancel()

				return store.EnsureBucket(ctx)
			},
		})

		return store, nil

	default:
		return nil, errors.Errorf("unknown media provider: %s", cfg.Provider)
	}
}
