package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/ersonp/mythdex/internal/domain/entities"
	"github.com/ersonp/mythdex/internal/domain/ports"
)

// olympianAbode is matched case-insensitively against attributes.abode.
const olympianAbode = "olympus"

// CatalogService fetches, normalizes and decorates entity catalogs.
// Nothing is cached: every call performs its own fetch.
type CatalogService struct {
	source ports.CatalogSource
	images *ImageResolver
	logger ports.Logger
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(source ports.CatalogSource, images *ImageResolver, logger ports.Logger) *CatalogService {
	if images == nil {
		images = NewImageResolver(nil, logger)
	}
	return &CatalogService{
		source: source,
		images: images,
		logger: orNop(logger),
	}
}

// List fetches the catalog of a category in upstream order.
// Fetch errors are returned unmodified.
func (s *CatalogService) List(ctx context.Context, category entities.Category) ([]entities.Entity, error) {
	if !category.IsValid() {
		return nil, fmt.Errorf("%w: %q", entities.ErrInvalidCategory, category)
	}

	body, err := s.source.Fetch(ctx, category)
	if err != nil {
		return nil, err
	}

	if len(bytes.TrimSpace(body)) > 0 && !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("%w: %s response is not valid JSON", entities.ErrMalformedPayload, category.Path())
	}

	records := NormalizePayload(body)
	result := make([]entities.Entity, 0, len(records))
	for i, raw := range records {
		entity, reason, ok := BuildEntity(raw, category)
		if !ok {
			s.logger.Debug("dropping record", "category", category, "index", i, "reason", reason)
			continue
		}
		entity.Image = s.images.Resolve(entity.Name, category)
		result = append(result, entity)
	}

	s.logger.Debug("catalog loaded", "category", category, "records", len(records), "entities", len(result))
	return result, nil
}

// ListGods returns the god catalog.
func (s *CatalogService) ListGods(ctx context.Context) ([]entities.Entity, error) {
	return s.List(ctx, entities.CategoryGod)
}

// ListHeroes returns the hero catalog.
func (s *CatalogService) ListHeroes(ctx context.Context) ([]entities.Entity, error) {
	return s.List(ctx, entities.CategoryHero)
}

// ListMonsters returns the monster catalog.
func (s *CatalogService) ListMonsters(ctx context.Context) ([]entities.Entity, error) {
	return s.List(ctx, entities.CategoryMonster)
}

// ListTitans returns the titan catalog.
func (s *CatalogService) ListTitans(ctx context.Context) ([]entities.Entity, error) {
	return s.List(ctx, entities.CategoryTitan)
}

// ListOlympianGods returns the gods whose abode mentions Olympus.
func (s *CatalogService) ListOlympianGods(ctx context.Context) ([]entities.Entity, error) {
	gods, err := s.ListGods(ctx)
	if err != nil {
		return nil, err
	}
	return FilterOlympians(gods), nil
}

// FilterOlympians keeps entities whose abode contains "olympus" in any case.
// Entities without an abode are excluded.
func FilterOlympians(catalog []entities.Entity) []entities.Entity {
	result := make([]entities.Entity, 0, len(catalog))
	for _, e := range catalog {
		if strings.Contains(strings.ToLower(e.Abode()), olympianAbode) {
			result = append(result, e)
		}
	}
	return result
}
