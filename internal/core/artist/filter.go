// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package artist

import (
	"slices"
	"strings"

	"github.com/taibuivan/artistly/internal/platform/validate"
	"github.com/taibuivan/artistly/pkg/slice"
)

// # Filter State

// Filter is the visitor's current narrowing of the directory.
//
// All four criteria combine with AND. An empty category set, a blank
// location and a blank search query each impose no restriction. The price
// window always applies.
type Filter struct {
	Categories  []string `json:"categories"`
	Location    string   `json:"location"`
	PriceRange  [2]int   `json:"price_range"`
	SearchQuery string   `json:"search_query"`
}

// DefaultFilter returns the unfiltered state shown on first visit.
func DefaultFilter() Filter {
	return Filter{
		Categories: []string{},
		PriceRange: [2]int{DefaultPriceMin, DefaultPriceMax},
	}
}

// Reset restores the default state ("clear all filters").
func (f *Filter) Reset() {
	*f = DefaultFilter()
}

// Validate rejects price windows the engine cannot evaluate meaningfully.
func (f Filter) Validate() error {
	min, max := f.PriceRange[0], f.PriceRange[1]

	validator := &validate.Validator{}
	validator.
		NonNegative(FieldPriceMin, min).
		NonNegative(FieldPriceMax, max).
		Custom(FieldPriceMax, max < min, "Maximum price must not be below the minimum")

	return validator.Err()
}

// IsActive reports whether any criterion differs from [DefaultFilter].
func (f Filter) IsActive() bool {
	return len(f.Categories) > 0 ||
		strings.TrimSpace(f.Location) != "" ||
		strings.TrimSpace(f.SearchQuery) != "" ||
		f.priceNarrowed()
}

// ActiveCount is the number shown on the "active filters" badge: one per
// selected category, plus one each for a location, a search query and a
// narrowed price window.
func (f Filter) ActiveCount() int {
	count := len(f.Categories)
	if strings.TrimSpace(f.Location) != "" {
		count++
	}
	if strings.TrimSpace(f.SearchQuery) != "" {
		count++
	}
	if f.priceNarrowed() {
		count++
	}
	return count
}

func (f Filter) priceNarrowed() bool {
	return f.PriceRange[0] > DefaultPriceMin || f.PriceRange[1] < DefaultPriceMax
}

// # Filter Engine

/*
Apply returns the artists that satisfy every criterion of filter.

Description: Pure and deterministic. The result keeps the input order and
never aliases the input slice. Criteria:

  - Category: exact, case-sensitive membership when the set is non-empty.
  - Location: trimmed, lower-cased substring of city, state or location.
  - Price: interval overlap, priceMin <= window max and priceMax >= window min.
  - Search: trimmed, lower-cased substring of name or bio.
*/
func Apply(artists []Artist, filter Filter) []Artist {
	return slice.Filter(artists, compile(filter))
}

// Matches reports whether a single artist passes filter.
func Matches(a Artist, filter Filter) bool {
	return compile(filter)(a)
}

func compile(filter Filter) func(Artist) bool {
	categories := make(map[string]struct{}, len(filter.Categories))
	for _, c := range filter.Categories {
		categories[c] = struct{}{}
	}

	location := normalize(filter.Location)
	search := normalize(filter.SearchQuery)
	windowMin, windowMax := filter.PriceRange[0], filter.PriceRange[1]

	return func(a Artist) bool {
		if len(categories) > 0 {
			if _, ok := categories[a.Category]; !ok {
				return false
			}
		}

		if location != "" && !containsAny(location, a.City, a.State, a.Location) {
			return false
		}

		if a.PriceMin > windowMax || a.PriceMax < windowMin {
			return false
		}

		if search != "" && !containsAny(search, a.Name, a.Bio) {
			return false
		}

		return true
	}
}

// # Derived Views

// Categories returns the distinct categories of artists, sorted.
func Categories(artists []Artist) []string {
	seen := make(map[string]struct{})
	out := []string{}

	for _, a := range artists {
		if _, dup := seen[a.Category]; dup {
			continue
		}
		seen[a.Category] = struct{}{}
		out = append(out, a.Category)
	}

	slices.Sort(out)
	return out
}

// Search matches a free-text term against name, bio, category or location.
// It is wider than the filter search, which only looks at name and bio.
func Search(artists []Artist, term string) []Artist {
	needle := normalize(term)
	return slice.Filter(artists, func(a Artist) bool {
		return containsAny(needle, a.Name, a.Bio, a.Category, a.Location)
	})
}

// ByCategory returns artists whose category equals name, ignoring case.
func ByCategory(artists []Artist, name string) []Artist {
	return slice.Filter(artists, func(a Artist) bool {
		return strings.EqualFold(a.Category, strings.TrimSpace(name))
	})
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func containsAny(needle string, haystacks ...string) bool {
	for _, h := range haystacks {
		if strings.Contains(strings.ToLower(h), needle) {
			return true
		}
	}
	return false
}
