package dex

import (
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/KirkDiggler/dex-api/internal/errors"
)

// Placeholder is rendered for optional values the catalog left empty
const Placeholder = "-"

// NormalizeName converts user input into a catalog slug
// e.g. "Mr. Mime" -> "mr-mime"
func NormalizeName(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = strings.ReplaceAll(slug, ". ", "-")
	slug = strings.ReplaceAll(slug, " ", "-")
	slug = strings.ReplaceAll(slug, ".", "")
	slug = strings.ReplaceAll(slug, "'", "")
	return slug
}

// DisplayName converts a catalog slug into a human readable name
// e.g. "thunder-stone" -> "Thunder Stone"
func DisplayName(slug string) string {
	if slug == "" {
		return Placeholder
	}
	return cases.Title(language.English).String(strings.ReplaceAll(slug, "-", " "))
}

// VariantSuffix returns the part of a variety identifier that follows its
// species slug, e.g. ("raichu", "raichu-alola") -> "alola". The default form
// has no suffix.
func VariantSuffix(species, variety string) string {
	if variety == species {
		return ""
	}
	if suffix, ok := strings.CutPrefix(variety, species+"-"); ok {
		return suffix
	}
	return variety
}

// VariantLabel returns the display label of a variety within its species
func VariantLabel(species, variety string) string {
	suffix := VariantSuffix(species, variety)
	if suffix == "" {
		return "Default"
	}
	return DisplayName(suffix)
}

// FormName renders a variety the way a form selector lists it,
// e.g. "Raichu (Alola)"
func FormName(species, variety string) string {
	suffix := VariantSuffix(species, variety)
	if suffix == "" {
		return DisplayName(species)
	}
	return DisplayName(species) + " (" + DisplayName(suffix) + ")"
}

// ChainIDFromURL extracts the numeric id from an evolution chain URL,
// e.g. ".../evolution-chain/10/" -> 10
func ChainIDFromURL(raw string) (int, error) {
	parsed, err := url.Parse(raw)
	if err != nil {
		return 0, errors.InvalidArgumentf("invalid evolution chain url %q", raw)
	}

	segments := strings.Split(strings.Trim(parsed.Path, "/"), "/")
	id, err := strconv.Atoi(segments[len(segments)-1])
	if err != nil || id <= 0 {
		return 0, errors.InvalidArgumentf("evolution chain url %q has no numeric id", raw)
	}
	return id, nil
}
