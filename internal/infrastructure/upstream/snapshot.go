package upstream

import (
	"context"
	"os"
	"path/filepath"

	"github.com/ersonp/mythdex/internal/domain/entities"
	"github.com/ersonp/mythdex/internal/domain/ports"
	"github.com/ersonp/mythdex/internal/infrastructure/config"
)

// SnapshotSource serves catalogs from <dir>/<category path>.json, e.g. a
// saved copy of the upstream responses for offline browsing.
type SnapshotSource struct {
	dir string
}

// NewSnapshotSource creates a source reading from dir.
func NewSnapshotSource(dir string) *SnapshotSource {
	return &SnapshotSource{dir: dir}
}

// Fetch reads the snapshot file of a category. A missing or unreadable file
// is reported as *entities.RemoteFetchError, like an unreachable API.
func (s *SnapshotSource) Fetch(ctx context.Context, category entities.Category) ([]byte, error) {
	path := filepath.Join(s.dir, category.Path()+".json")

	if err := ctx.Err(); err != nil {
		return nil, &entities.RemoteFetchError{Category: category, URL: "file://" + path, Err: err}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &entities.RemoteFetchError{Category: category, URL: "file://" + path, Err: err}
	}
	return data, nil
}

// NewSource returns the snapshot source when cfg.SnapshotDir is set and the
// HTTP client otherwise.
func NewSource(cfg config.UpstreamConfig, logger ports.Logger) (ports.CatalogSource, error) {
	if cfg.SnapshotDir != "" {
		return NewSnapshotSource(cfg.SnapshotDir), nil
	}
	client, err := NewClient(cfg, logger)
	if err != nil {
		return nil, err
	}
	return client, nil
}
