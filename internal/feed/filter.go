package feed

import (
	"fmt"
	"strings"

	"roomshare/internal/models"
)

// CityMode selects how a listing's city is compared against the
// viewer's selection. The two modes are mutually exclusive and chosen
// once per deployment; they are never mixed within one browse context.
type CityMode int

const (
	// CityModeStrict requires exact equality.
	CityModeStrict CityMode = iota
	// CityModeFuzzy lowercases both sides, strips a trailing
	// state-abbreviation suffix (", TX") from the selection, and
	// matches substring in either direction.
	CityModeFuzzy
)

func ParseCityMode(s string) (CityMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "strict":
		return CityModeStrict, nil
	case "fuzzy":
		return CityModeFuzzy, nil
	}
	return CityModeStrict, fmt.Errorf("unknown city match mode %q", s)
}

// Criteria holds the viewer's active browse filters. Zero values and
// the sentinels disable the corresponding predicate.
type Criteria struct {
	City     string
	Area     string
	Search   string
	Category string
	CityMode CityMode
}

// Matches reports whether the listing satisfies every active predicate.
func (c Criteria) Matches(l models.Listing) bool {
	return c.matchesCity(l) && c.matchesArea(l) && c.matchesSearch(l) && c.matchesCategory(l)
}

func (c Criteria) matchesCity(l models.Listing) bool {
	if c.City == "" || c.City == models.AllCities {
		return true
	}
	if c.CityMode == CityModeStrict {
		return l.City == c.City
	}
	lc := strings.ToLower(l.City)
	sc := stripStateSuffix(strings.ToLower(strings.TrimSpace(c.City)))
	if lc == "" || sc == "" {
		return false
	}
	return strings.Contains(lc, sc) || strings.Contains(sc, lc)
}

// stripStateSuffix removes a trailing ", xx" two-letter state
// abbreviation from an already-lowercased selection.
func stripStateSuffix(s string) string {
	i := strings.LastIndex(s, ",")
	if i < 0 {
		return s
	}
	if suffix := strings.TrimSpace(s[i+1:]); len(suffix) == 2 {
		return strings.TrimSpace(s[:i])
	}
	return s
}

func (c Criteria) matchesArea(l models.Listing) bool {
	if c.Area == "" || c.Area == models.AllAreas {
		return true
	}
	// Listings with no county never match a concrete area selection.
	return l.County == c.Area
}

func (c Criteria) matchesSearch(l models.Listing) bool {
	term := strings.ToLower(strings.TrimSpace(c.Search))
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(l.Title), term) ||
		strings.Contains(strings.ToLower(l.Description), term) ||
		strings.Contains(strings.ToLower(l.County), term)
}

func (c Criteria) matchesCategory(l models.Listing) bool {
	if c.Category == "" || c.Category == models.AllCategories {
		return true
	}
	return l.Category == c.Category
}

// Visible computes the subset of listings the viewer should see,
// preserving input order. Input is assumed newest-first; no re-sort is
// performed. An empty result is valid.
func Visible(listings []models.Listing, c Criteria) []models.Listing {
	out := make([]models.Listing, 0, len(listings))
	for _, l := range listings {
		if c.Matches(l) {
			out = append(out, l)
		}
	}
	return out
}
