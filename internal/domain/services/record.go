package services

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/ersonp/mythdex/internal/domain/entities"
)

// DropReason explains why a raw record did not become an entity.
type DropReason string

const (
	DropNotObject DropReason = "not an object"
	DropMissingID DropReason = "missing id"
	DropNoName    DropReason = "missing name"
)

// BuildEntity converts a raw record into an Entity with permissive field
// access: absent or mistyped optional fields are left empty. Records that are
// not objects or lack an id or a name are rejected with a reason.
// The returned entity has no image; CatalogService decorates it.
func BuildEntity(raw json.RawMessage, category entities.Category) (entities.Entity, DropReason, bool) {
	record := gjson.ParseBytes(raw)
	if !record.IsObject() {
		return entities.Entity{}, DropNotObject, false
	}

	id, ok := recordID(record.Get("id"))
	if !ok {
		return entities.Entity{}, DropMissingID, false
	}

	name := record.Get("name")
	if name.Type != gjson.String || strings.TrimSpace(name.Str) == "" {
		return entities.Entity{}, DropNoName, false
	}

	entity := entities.Entity{
		ID:          id,
		Name:        name.Str,
		Description: text(record.Get("description")),
		Category:    text(record.Get("category")),
		Attributes:  attributes(record.Get("attributes")),
	}
	if entity.Category == "" {
		entity.Category = string(category)
	}
	return entity, "", true
}

// recordID accepts integral JSON numbers and numeric strings.
func recordID(v gjson.Result) (int, bool) {
	switch v.Type {
	case gjson.Number:
		if v.Num != math.Trunc(v.Num) || math.IsInf(v.Num, 0) {
			return 0, false
		}
		// -math.MinInt is the first value above the int range, exact as a float64.
		if v.Num < math.MinInt || v.Num >= -math.MinInt {
			return 0, false
		}
		return int(v.Num), true
	case gjson.String:
		id, err := strconv.Atoi(strings.TrimSpace(v.Str))
		if err != nil {
			return 0, false
		}
		return id, true
	default:
		return 0, false
	}
}

func text(v gjson.Result) string {
	if v.Type != gjson.String {
		return ""
	}
	return v.Str
}

// textList reads a list of strings. A lone string counts as a one-item list;
// non-string items are skipped.
func textList(v gjson.Result) []string {
	if v.Type == gjson.String {
		return []string{v.Str}
	}
	if !v.IsArray() {
		return nil
	}
	var out []string
	for _, item := range v.Array() {
		if item.Type == gjson.String {
			out = append(out, item.Str)
		}
	}
	return out
}

func attributes(v gjson.Result) *entities.Attributes {
	if !v.IsObject() {
		return nil
	}
	return &entities.Attributes{
		Origin:  text(v.Get("origin")),
		Abode:   text(v.Get("abode")),
		Symbols: textList(v.Get("symbols")),
		Powers:  textList(v.Get("powers")),
		Family:  family(v.Get("family")),
		Stories: textList(v.Get("stories")),
	}
}

func family(v gjson.Result) *entities.Family {
	if !v.IsObject() {
		return nil
	}
	return &entities.Family{
		Parents:  textList(v.Get("parents")),
		Siblings: textList(v.Get("siblings")),
		Spouse:   textList(v.Get("spouse")),
	}
}
