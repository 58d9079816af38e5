// Package handlers contains application use case handlers.
package handlers

import (
	"context"

	"github.com/ersonp/mythdex/internal/domain/entities"
	"github.com/ersonp/mythdex/internal/domain/services"
)

// CatalogHandler is the caller-facing surface of the catalog: listing,
// resolving and searching entities.
type CatalogHandler struct {
	catalogService *services.CatalogService
	resolver       *services.EntityResolver
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(catalogService *services.CatalogService, resolver *services.EntityResolver) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
		resolver:       resolver,
	}
}

// CatalogListResult contains the result of listing entities.
type CatalogListResult struct {
	Category entities.Category `json:"category"`
	Entities []entities.Entity `json:"entities"`
	Total    int               `json:"total"`
}

func newListResult(category entities.Category, list []entities.Entity) *CatalogListResult {
	return &CatalogListResult{
		Category: category,
		Entities: list,
		Total:    len(list),
	}
}

// HandleList returns the full catalog of a category. Fetch errors
// (*entities.RemoteFetchError) are returned as is.
func (h *CatalogHandler) HandleList(ctx context.Context, category entities.Category) (*CatalogListResult, error) {
	list, err := h.catalogService.List(ctx, category)
	if err != nil {
		return nil, err
	}
	return newListResult(category, list), nil
}

// HandleOlympians returns the gods dwelling on Olympus.
func (h *CatalogHandler) HandleOlympians(ctx context.Context) (*CatalogListResult, error) {
	list, err := h.catalogService.ListOlympianGods(ctx)
	if err != nil {
		return nil, err
	}
	return newListResult(entities.CategoryGod, list), nil
}

// HandleResolve fetches the catalog of a category and resolves rawParam
// (an id or a name, possibly percent-encoded) to one entity.
// Callers tell "not found" from fetch failures with errors.Is(err,
// entities.ErrNotFound) and errors.As(err, **entities.RemoteFetchError).
func (h *CatalogHandler) HandleResolve(ctx context.Context, category entities.Category, rawParam string) (*entities.Entity, error) {
	list, err := h.catalogService.List(ctx, category)
	if err != nil {
		return nil, err
	}

	entity, err := h.resolver.Resolve(list, rawParam)
	if err != nil {
		return nil, err
	}
	return &entity, nil
}

// HandleSearch returns every entity of a category whose name contains query.
func (h *CatalogHandler) HandleSearch(ctx context.Context, category entities.Category, query string) (*CatalogListResult, error) {
	list, err := h.catalogService.List(ctx, category)
	if err != nil {
		return nil, err
	}
	return newListResult(category, h.resolver.Search(list, query)), nil
}
