package services

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/ersonp/mythdex/internal/domain/entities"
	"github.com/ersonp/mythdex/internal/domain/ports"
)

// MatchTier identifies which lookup rule matched an entity.
type MatchTier string

const (
	MatchID        MatchTier = "id"
	MatchExact     MatchTier = "exact"
	MatchPrefix    MatchTier = "prefix"
	MatchSubstring MatchTier = "substring"
)

// EntityResolver maps a user-supplied identifier to a single catalog entity.
type EntityResolver struct {
	logger ports.Logger
}

// NewEntityResolver creates a new entity resolver.
func NewEntityResolver(logger ports.Logger) *EntityResolver {
	return &EntityResolver{logger: orNop(logger)}
}

// DecodeParam percent-decodes raw at most twice. A failed first decode keeps
// raw; a failed second decode keeps the first result. Escapes that decode to
// invalid UTF-8 count as a failed decode.
func DecodeParam(raw string) string {
	once, ok := unescape(raw)
	if !ok {
		return raw
	}
	twice, ok := unescape(once)
	if !ok {
		return once
	}
	return twice
}

func unescape(s string) (string, bool) {
	decoded, err := url.PathUnescape(s)
	if err != nil || !utf8.ValidString(decoded) {
		return "", false
	}
	return decoded, true
}

// foldName lower-cases without trimming; name tiers compare the text as given.
func foldName(s string) string {
	return strings.ToLower(s)
}

// Resolve returns the first entity matching rawParam. Tiers are tried in
// order: numeric id, exact name, name prefix, name substring; name tiers are
// case-insensitive, untrimmed and follow catalog order. A number that matches no id is
// still tried as name text. No match yields entities.ErrNotFound.
func (r *EntityResolver) Resolve(catalog []entities.Entity, rawParam string) (entities.Entity, error) {
	param := DecodeParam(rawParam)
	query := foldName(param)
	if query == "" {
		return entities.Entity{}, fmt.Errorf("%w: empty identifier", entities.ErrNotFound)
	}

	entity, tier, ok := match(catalog, query)
	if !ok {
		r.logger.Debug("no entity matched", "param", rawParam, "query", query)
		return entities.Entity{}, fmt.Errorf("%w: %q", entities.ErrNotFound, param)
	}

	r.logger.Debug("entity resolved", "param", rawParam, "tier", tier, "id", entity.ID, "name", entity.Name)
	return entity, nil
}

// Search returns every entity whose name contains query, in catalog order.
func (r *EntityResolver) Search(catalog []entities.Entity, query string) []entities.Entity {
	q := entities.NormalizeName(DecodeParam(query))
	result := make([]entities.Entity, 0)
	if q == "" {
		return result
	}
	for _, e := range catalog {
		if strings.Contains(entities.NormalizeName(e.Name), q) {
			result = append(result, e)
		}
	}
	return result
}

func match(catalog []entities.Entity, query string) (entities.Entity, MatchTier, bool) {
	if id, ok := parseID(query); ok {
		for _, e := range catalog {
			if e.ID == id {
				return e, MatchID, true
			}
		}
	}

	tiers := []struct {
		tier MatchTier
		fn   func(name, query string) bool
	}{
		{MatchExact, func(name, q string) bool { return name == q }},
		{MatchPrefix, strings.HasPrefix},
		{MatchSubstring, strings.Contains},
	}
	for _, t := range tiers {
		for _, e := range catalog {
			if t.fn(foldName(e.Name), query) {
				return e, t.tier, true
			}
		}
	}
	return entities.Entity{}, "", false
}

// parseID accepts any numeric literal with an integral value, so "7" and
// "7.0" both address id 7.
func parseID(s string) (int, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	// -math.MinInt is the first value above the int range, exact as a float64.
	if f < math.MinInt || f >= -math.MinInt {
		return 0, false
	}
	return int(f), true
}
