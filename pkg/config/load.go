package config

import (
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Load reads configuration from the environment, optionally loading a .env
// file first. A missing .env file is not an error.
func Load(envFilePath ...string) (*App, error) {
	logger := slog.Default()

	if len(envFilePath) == 0 {
		if err := godotenv.Load(); err != nil {
			logger.Warn("No .env file found in current directory")
		}
		return loadFromEnv()
	}

	for _, path := range envFilePath {
		if err := godotenv.Load(path); err != nil {
			logger.Warn("Failed to load environment file", "path", path, "error", err)
			continue
		}
		logger.Info("Environment loaded from file", "path", path)
		return loadFromEnv()
	}

	return loadFromEnv()
}

func loadFromEnv() (*App, error) {
	var cfg App
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	slog.Default().Info("App config loaded",
		"env", cfg.Env,
		"server_port", cfg.Server.Port,
		"cache_backend", cfg.Cache.Backend,
		"cache_ttl", cfg.Cache.TTL,
		"primary_url", cfg.RateSource.PrimaryURL,
		"fallback_url", cfg.RateSource.FallbackURL,
		"http_timeout", cfg.RateSource.HTTPTimeout,
	)
	return &cfg, nil
}
