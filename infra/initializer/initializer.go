// Package initializer wires configuration into concrete infrastructure:
// logger, cache backend, rate source, and the conversion service.
package initializer

import (
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	infracache "github.com/amirasaad/fxconvert/infra/cache"
	"github.com/amirasaad/fxconvert/infra/provider/currencyapi"
	"github.com/amirasaad/fxconvert/pkg/cache"
	"github.com/amirasaad/fxconvert/pkg/config"
	convertsvc "github.com/amirasaad/fxconvert/pkg/service/convert"
)

// Deps holds the initialized application dependencies.
type Deps struct {
	Logger         *slog.Logger
	ConvertService *convertsvc.Service
}

// InitializeDependencies builds all dependencies from config.
func InitializeDependencies(cfg *config.App) (*Deps, error) {
	logger := setupLogger(cfg.Log)

	tableCache, err := newCache(cfg.Cache, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cache backend: %w", err)
	}

	source := currencyapi.New(cfg.RateSource, logger)

	svc := convertsvc.New(
		source,
		tableCache,
		logger,
		convertsvc.WithTTL(cfg.Cache.TTL),
	)

	return &Deps{
		Logger:         logger,
		ConvertService: svc,
	}, nil
}

func newCache(cfg *config.Cache, logger *slog.Logger) (cache.RateTableCache, error) {
	switch cfg.Backend {
	case "redis":
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("invalid redis url: %w", err)
		}
		return infracache.NewRedisCache(opt, cfg.KeyPrefix, cfg.RedisExpiry, logger), nil
	default:
		return infracache.NewMemoryCache(), nil
	}
}
