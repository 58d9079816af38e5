// Package mocks provides mock implementations for testing.
package mocks

import (
	"context"

	"github.com/ersonp/mythdex/internal/domain/entities"
)

// CatalogSource is a mock implementation of ports.CatalogSource.
type CatalogSource struct {
	Payloads map[entities.Category]string
	Err      error

	// Call tracking
	FetchCallCount int
	LastCategory   entities.Category
}

// Fetch returns the configured payload for the category or error.
// A category without a configured payload yields "null".
func (m *CatalogSource) Fetch(_ context.Context, category entities.Category) ([]byte, error) {
	m.FetchCallCount++
	m.LastCategory = category
	if m.Err != nil {
		return nil, m.Err
	}
	payload, ok := m.Payloads[category]
	if !ok {
		return []byte("null"), nil
	}
	return []byte(payload), nil
}
