package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ersonp/mythdex/internal/application/handlers"
	"github.com/ersonp/mythdex/internal/domain/ports"
	"github.com/ersonp/mythdex/internal/domain/services"
	"github.com/ersonp/mythdex/internal/infrastructure/assets"
	"github.com/ersonp/mythdex/internal/infrastructure/config"
	"github.com/ersonp/mythdex/internal/infrastructure/logger"
	"github.com/ersonp/mythdex/internal/infrastructure/upstream"
)

// Deps holds high-level dependencies for commands.
// Only the handler and read-only snapshots are exposed.
type Deps struct {
	Config         *config.Config
	Logger         ports.Logger
	Assets         *assets.Registry
	CatalogHandler *handlers.CatalogHandler
}

// withDeps loads config, builds dependencies, then calls the provided function.
func withDeps(fn func(*Deps) error) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	cfg, err := config.LoadOrDefault(cwd)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	applyFlagOverrides(cfg)

	deps, err := buildDeps(cwd, cfg)
	if err != nil {
		return err
	}
	return fn(deps)
}

func applyFlagOverrides(cfg *config.Config) {
	if globalBaseURL != "" {
		cfg.Upstream.BaseURL = globalBaseURL
	}
	if globalSnapshotDir != "" {
		cfg.Upstream.SnapshotDir = globalSnapshotDir
	}
	if globalLogLevel != "" {
		cfg.Log.Level = globalLogLevel
	}
	if globalLogJSON {
		cfg.Log.JSON = true
	}
}

// buildDeps wires the catalog stack. The asset registry is scanned once here
// and shared read-only by every image lookup of the command.
func buildDeps(cwd string, cfg *config.Config) (*Deps, error) {
	log := logger.New(logger.Config{Level: cfg.Log.Level, JSON: cfg.Log.JSON})

	registry, err := assets.Scan(resolvePath(cwd, cfg.Assets.Dir), cfg.Assets.URLPrefix)
	if err != nil {
		return nil, fmt.Errorf("building asset registry: %w", err)
	}
	log.Debug("asset registry ready", "dir", cfg.Assets.Dir, "files", registry.Len())

	upstreamCfg := cfg.Upstream
	if upstreamCfg.SnapshotDir != "" {
		upstreamCfg.SnapshotDir = resolvePath(cwd, upstreamCfg.SnapshotDir)
	}
	source, err := upstream.NewSource(upstreamCfg, log)
	if err != nil {
		return nil, fmt.Errorf("creating catalog source: %w", err)
	}

	images := services.NewImageResolver(registry, log)
	catalogService := services.NewCatalogService(source, images, log)
	resolver := services.NewEntityResolver(log)

	return &Deps{
		Config:         cfg,
		Logger:         log,
		Assets:         registry,
		CatalogHandler: handlers.NewCatalogHandler(catalogService, resolver),
	}, nil
}

func resolvePath(base, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, p)
}
