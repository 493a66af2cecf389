package main

import (
	"context"
	"fmt"

	log "github.com/charmbracelet/log"

	"github.com/amirasaad/fxconvert/infra/initializer"
	"github.com/amirasaad/fxconvert/pkg/config"
	"github.com/amirasaad/fxconvert/webapi"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	deps, err := initializer.InitializeDependencies(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	// Warm the rate cache so the first form load is fast. A cold start
	// without connectivity still serves; conversions report the failure.
	if err := deps.ConvertService.Refresh(context.Background()); err != nil {
		deps.Logger.Warn("initial rate refresh failed", "error", err)
	}

	app := webapi.SetupApp(deps.ConvertService, cfg)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	deps.Logger.Info("starting server",
		"env", cfg.Env,
		"address", addr,
	)

	return app.Listen(addr)
}
