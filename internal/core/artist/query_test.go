// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package artist_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/artistly/internal/core/artist"
	"github.com/taibuivan/artistly/internal/platform/apperr"
)

var known = []string{"DJ", "Dancer", "Singer", "Speaker"}

func TestResolveCategory(t *testing.T) {
	tests := map[string]string{
		"singers":   "Singer",
		"Singer":    "Singer",
		"djs":       "DJ",
		"dj":        "DJ",
		"DANCERS":   "Dancer",
		"magicians": "Magicians",
		"poet":      "Poet",
	}

	for in, want := range tests {
		assert.Equal(t, want, artist.ResolveCategory(in, known), in)
	}
}

func TestFromQuery(t *testing.T) {
	values := url.Values{
		"category": {"singers"},
		"location": {"Pune"},
		"search":   {"ghazal"},
		"page":     {"2"},
	}

	filter, err := artist.FromQuery(values, known)
	require.NoError(t, err)

	assert.Equal(t, []string{"Singer"}, filter.Categories)
	assert.Equal(t, "Pune", filter.Location)
	assert.Equal(t, "ghazal", filter.SearchQuery)
	assert.Equal(t, [2]int{0, 75000}, filter.PriceRange)
}

func TestFromQuery_Empty(t *testing.T) {
	filter, err := artist.FromQuery(url.Values{}, known)
	require.NoError(t, err)
	assert.Equal(t, artist.DefaultFilter(), filter)
}

func TestFromQuery_CategoriesAndPrice(t *testing.T) {
	values := url.Values{
		"category":   {"djs"},
		"categories": {"dj, speakers"},
		"price_min":  {"10000"},
		"price_max":  {"40000"},
	}

	filter, err := artist.FromQuery(values, known)
	require.NoError(t, err)
	assert.Equal(t, []string{"DJ", "Speaker"}, filter.Categories)
	assert.Equal(t, [2]int{10000, 40000}, filter.PriceRange)
}

func TestFromQuery_Invalid(t *testing.T) {
	_, err := artist.FromQuery(url.Values{"price_min": {"cheap"}}, known)
	require.Error(t, err)
	assert.True(t, apperr.HasCode(err, "VALIDATION_ERROR"))
	assert.Equal(t, "price_min", apperr.As(err).Details[0].Field)

	_, err = artist.FromQuery(url.Values{"price_min": {"60000"}, "price_max": {"100"}}, known)
	assert.True(t, apperr.HasCode(err, "VALIDATION_ERROR"))
}
