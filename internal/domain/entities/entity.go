// Package entities contains core domain data structures.
package entities

import "strings"

// Entity is a god, hero, monster or titan surfaced by the catalog.
// Entities are built fresh on every catalog fetch and never mutated afterwards.
type Entity struct {
	ID          int         `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	Category    string      `json:"category,omitempty"`
	Attributes  *Attributes `json:"attributes,omitempty"`
	Image       string      `json:"image,omitempty"` // Set by CatalogService, never by upstream
}

// Attributes holds the optional structured lore of an entity.
type Attributes struct {
	Origin  string   `json:"origin,omitempty"`
	Abode   string   `json:"abode,omitempty"`
	Symbols []string `json:"symbols,omitempty"`
	Powers  []string `json:"powers,omitempty"`
	Family  *Family  `json:"family,omitempty"`
	Stories []string `json:"stories,omitempty"`
}

// Family lists the relatives of an entity.
type Family struct {
	Parents  []string `json:"parents,omitempty"`
	Siblings []string `json:"siblings,omitempty"`
	Spouse   []string `json:"spouse,omitempty"`
}

// Abode returns the entity's abode, or "" when it has no attributes.
func (e Entity) Abode() string {
	if e.Attributes == nil {
		return ""
	}
	return e.Attributes.Abode
}

// NormalizeName converts a name to lowercase for case-insensitive matching.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
