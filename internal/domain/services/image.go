package services

import (
	"encoding/base64"
	"fmt"
	"html"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/ersonp/mythdex/internal/domain/entities"
	"github.com/ersonp/mythdex/internal/domain/ports"
)

// ImageExtensions is the asset extension preference order.
var ImageExtensions = []string{"webp", "png", "jpg", "jpeg"}

// PlaceholderSize is the edge length, in pixels, of generated placeholders.
const PlaceholderSize = 400

var reNonAlphanumericRun = regexp.MustCompile(`[^a-z0-9]+`)

// Palette is the background/text color pair of a placeholder.
type Palette struct {
	Background string
	Text       string
}

var (
	godPalette  = Palette{Background: "#4A5568", Text: "#F7FAFC"}
	heroPalette = Palette{Background: "#2C5282", Text: "#F7FAFC"}
)

// PaletteFor returns the placeholder palette of a category. Categories
// without their own palette share the hero one.
func PaletteFor(category entities.Category) Palette {
	if category == entities.CategoryGod {
		return godPalette
	}
	return heroPalette
}

// NormalizeAssetKey turns an entity name into its asset file key:
// lower-cased, diacritics stripped, non-alphanumeric runs collapsed to a
// single hyphen, no leading or trailing hyphen. "Héraclès the Great" becomes
// "heracles-the-great".
func NormalizeAssetKey(name string) string {
	key := strings.ToLower(name)

	stripDiacritics := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if stripped, _, err := transform.String(stripDiacritics, key); err == nil {
		key = stripped
	}

	key = reNonAlphanumericRun.ReplaceAllString(key, "-")
	return strings.Trim(key, "-")
}

// Initials returns up to two upper-cased first letters of the
// whitespace-separated words of name, or "?" when there are none.
func Initials(name string) string {
	var b strings.Builder
	count := 0
	for _, word := range strings.Fields(name) {
		if count == 2 {
			break
		}
		first := []rune(word)[0]
		b.WriteString(strings.ToUpper(string(first)))
		count++
	}
	if count == 0 {
		return "?"
	}
	return b.String()
}

// PlaceholderImage renders a square SVG with the initials of name in the
// category palette and returns it as a base64 data URI.
func PlaceholderImage(name string, category entities.Category) string {
	p := PaletteFor(category)
	svg := fmt.Sprintf(
		`<svg xmlns="http://www.w3.org/2000/svg" width="%[1]d" height="%[1]d" viewBox="0 0 %[1]d %[1]d">`+
			`<rect width="%[1]d" height="%[1]d" fill="%[2]s"/>`+
			`<text x="50%%" y="50%%" dominant-baseline="central" text-anchor="middle" `+
			`font-family="Arial, sans-serif" font-weight="bold" font-size="%[3]d" fill="%[4]s">%[5]s</text></svg>`,
		PlaceholderSize, p.Background, PlaceholderSize*7/20, p.Text, html.EscapeString(Initials(name)),
	)
	return "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString([]byte(svg))
}

// ImageResolver maps entity names to local asset URLs, falling back to a
// generated placeholder. It never returns an empty string.
type ImageResolver struct {
	registry ports.AssetRegistry
	logger   ports.Logger
}

// NewImageResolver creates a resolver over a fixed registry snapshot.
// A nil registry resolves every name to a placeholder.
func NewImageResolver(registry ports.AssetRegistry, logger ports.Logger) *ImageResolver {
	return &ImageResolver{
		registry: registry,
		logger:   orNop(logger),
	}
}

// Resolve returns the image URL for name in the category's asset bucket.
func (r *ImageResolver) Resolve(name string, category entities.Category) string {
	key := NormalizeAssetKey(name)
	if key != "" && r.registry != nil {
		for _, ext := range ImageExtensions {
			if url, ok := r.registry.Lookup(category.Path(), key+"."+ext); ok {
				return url
			}
		}
	}

	r.logger.Debug("no asset found, using placeholder", "name", name, "category", category, "key", key)
	return PlaceholderImage(name, category)
}
