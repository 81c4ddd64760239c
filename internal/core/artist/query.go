// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package artist

import (
	"errors"
	"net/url"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gorilla/schema"

	"github.com/taibuivan/artistly/internal/platform/apperr"
	"github.com/taibuivan/artistly/internal/platform/validate"
	"github.com/taibuivan/artistly/pkg/query"
	"github.com/taibuivan/artistly/pkg/slug"
)

// listQuery mirrors the query string accepted by the listing endpoint.
type listQuery struct {
	Category   string   `schema:"category"`
	Categories []string `schema:"categories"`
	Location   string   `schema:"location"`
	Search     string   `schema:"search"`
	PriceMin   *int     `schema:"price_min"`
	PriceMax   *int     `schema:"price_max"`
}

var decoder = newDecoder()

func newDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	return d
}

/*
FromQuery seeds a [Filter] from a deep link such as /artists?category=singers.

Description: "category" selects a single category, resolved against known
with [ResolveCategory]. "categories" accepts a comma list for API clients and
is resolved the same way. "location" and "search" are taken verbatim.
"price_min" and "price_max" narrow the default window.

Returns:
  - Filter: The seeded state, starting from [DefaultFilter]
  - error: VALIDATION_ERROR for malformed numbers or an invalid window
*/
func FromQuery(values url.Values, known []string) (Filter, error) {
	var raw listQuery
	if err := decoder.Decode(&raw, values); err != nil {
		return Filter{}, decodeError(err)
	}

	filter := DefaultFilter()
	filter.Location = raw.Location
	filter.SearchQuery = raw.Search

	seen := make(map[string]struct{})
	for _, name := range query.StringSlice(append([]string{raw.Category}, raw.Categories...)...) {
		resolved := ResolveCategory(name, known)
		if _, dup := seen[resolved]; dup {
			continue
		}
		seen[resolved] = struct{}{}
		filter.Categories = append(filter.Categories, resolved)
	}

	if raw.PriceMin != nil {
		filter.PriceRange[0] = *raw.PriceMin
	}
	if raw.PriceMax != nil {
		filter.PriceRange[1] = *raw.PriceMax
	}

	if err := filter.Validate(); err != nil {
		return Filter{}, err
	}

	return filter, nil
}

// ResolveCategory maps a link parameter onto a stored category name.
//
// Matching ignores case and accents and accepts a trailing plural "s", so
// "djs" resolves to "DJ" and "singers" to "Singer". Unknown names fall back
// to capitalising the first letter.
func ResolveCategory(name string, known []string) string {
	name = strings.TrimSpace(name)
	folded := slug.From(name)

	for _, candidate := range known {
		key := slug.From(candidate)
		if key == "" {
			continue
		}
		if key == folded || key+"s" == folded {
			return candidate
		}
	}

	return capitalize(name)
}

func capitalize(s string) string {
	first, size := utf8.DecodeRuneInString(s)
	if first == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(first)) + s[size:]
}

// decodeError converts gorilla/schema failures into field errors.
func decodeError(err error) error {
	var multi schema.MultiError
	if !errors.As(err, &multi) {
		return apperr.BadRequest("Invalid query string")
	}

	fields := make([]string, 0, len(multi))
	for field := range multi {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	validator := &validate.Validator{}
	for _, field := range fields {
		validator.Custom(field, true, "Must be a whole number")
	}
	return validator.Err()
}
