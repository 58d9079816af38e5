// Package ports defines interfaces for external service communication.
package ports

import (
	"context"

	"github.com/ersonp/mythdex/internal/domain/entities"
)

// CatalogSource fetches the raw catalog body for a category.
// Implementations return *entities.RemoteFetchError when the upstream
// cannot be reached or answers with a non-success status.
type CatalogSource interface {
	// Fetch returns the undecoded response body.
	Fetch(ctx context.Context, category entities.Category) ([]byte, error)
}
