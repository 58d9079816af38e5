package entities

import "fmt"

// Category classifies catalog entities. Each category maps to one upstream
// endpoint and one asset bucket.
type Category string

// Supported categories.
const (
	CategoryGod     Category = "god"
	CategoryHero    Category = "hero"
	CategoryMonster Category = "monster"
	CategoryTitan   Category = "titan"
)

var categoryPaths = map[Category]string{
	CategoryGod:     "gods",
	CategoryHero:    "heroes",
	CategoryMonster: "monsters",
	CategoryTitan:   "titans",
}

// Categories returns every supported category in display order.
func Categories() []Category {
	return []Category{CategoryGod, CategoryHero, CategoryMonster, CategoryTitan}
}

// Path returns the upstream endpoint path segment, e.g. "gods".
// The same name is used for the category's asset bucket.
func (c Category) Path() string {
	return categoryPaths[c]
}

// IsValid reports whether c is a supported category.
func (c Category) IsValid() bool {
	_, ok := categoryPaths[c]
	return ok
}

// ParseCategory accepts a singular or plural category name in any case.
func ParseCategory(s string) (Category, error) {
	s = NormalizeName(s)
	for c, path := range categoryPaths {
		if s == string(c) || s == path {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q (valid: god, hero, monster, titan)", ErrInvalidCategory, s)
}
