// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package artist_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/artistly/internal/core/artist"
	"github.com/taibuivan/artistly/internal/platform/apperr"
)

func sampleArtists() []artist.Artist {
	return []artist.Artist{
		{ID: 1, Name: "Priya Sharma", Category: "Singer", City: "Pune", State: "Maharashtra", Location: "Pune, Maharashtra", PriceMin: 5000, PriceMax: 15000, Bio: "Bollywood and ghazal vocalist"},
		{ID: 2, Name: "DJ Arjun", Category: "DJ", City: "Mumbai", State: "Maharashtra", Location: "Mumbai, Maharashtra", PriceMin: 20000, PriceMax: 40000, Bio: "House and Punjabi sets"},
		{ID: 3, Name: "Meera Nair", Category: "Dancer", City: "Kochi", State: "Kerala", Location: "Kochi, Kerala", PriceMin: 10000, PriceMax: 40000, Bio: "Contemporary fusion dancer"},
		{ID: 4, Name: "Rahul Verma", Category: "Speaker", City: "Bengaluru", State: "Karnataka", Location: "Bengaluru, Karnataka", PriceMin: 35000, PriceMax: 75000, Bio: "Keynotes on leadership"},
	}
}

func ids(artists []artist.Artist) []int {
	out := make([]int, len(artists))
	for i, a := range artists {
		out[i] = a.ID
	}
	return out
}

func TestApply_CategoryScenario(t *testing.T) {
	artists := []artist.Artist{
		{ID: 1, Category: "Singer", PriceMin: 5000, PriceMax: 15000, City: "Pune"},
		{ID: 2, Category: "DJ", PriceMin: 20000, PriceMax: 40000, City: "Mumbai"},
	}
	filter := artist.Filter{Categories: []string{"Singer"}, PriceRange: [2]int{0, 75000}}

	assert.Equal(t, []int{1}, ids(artist.Apply(artists, filter)))
}

func TestApply_PriceIsIntervalOverlap(t *testing.T) {
	artists := []artist.Artist{{ID: 3, Category: "Dancer", PriceMin: 10000, PriceMax: 40000}}

	overlap := artist.Filter{PriceRange: [2]int{0, 15000}}
	assert.Len(t, artist.Apply(artists, overlap), 1)

	disjoint := artist.Filter{PriceRange: [2]int{0, 9000}}
	assert.Empty(t, artist.Apply(artists, disjoint))

	above := artist.Filter{PriceRange: [2]int{40001, 75000}}
	assert.Empty(t, artist.Apply(artists, above))

	touching := artist.Filter{PriceRange: [2]int{40000, 75000}}
	assert.Len(t, artist.Apply(artists, touching), 1)
}

func TestApply_EmptyCategoriesIsNoOp(t *testing.T) {
	artists := sampleArtists()

	for _, filter := range []artist.Filter{
		{PriceRange: [2]int{0, 75000}},
		{Location: "maharashtra", PriceRange: [2]int{0, 75000}},
		{SearchQuery: "dancer", PriceRange: [2]int{0, 20000}},
	} {
		withNil := artist.Apply(artists, filter)
		filter.Categories = []string{}
		withEmpty := artist.Apply(artists, filter)
		assert.Equal(t, ids(withNil), ids(withEmpty))
	}

	assert.Equal(t, []int{1, 2, 3, 4}, ids(artist.Apply(artists, artist.DefaultFilter())))
}

func TestApply_Criteria(t *testing.T) {
	tests := []struct {
		name   string
		filter artist.Filter
		want   []int
	}{
		{"location matches state", artist.Filter{Location: "  MAHARASHTRA ", PriceRange: [2]int{0, 75000}}, []int{1, 2}},
		{"location matches city", artist.Filter{Location: "koch", PriceRange: [2]int{0, 75000}}, []int{3}},
		{"blank location ignored", artist.Filter{Location: "   ", PriceRange: [2]int{0, 75000}}, []int{1, 2, 3, 4}},
		{"search matches bio", artist.Filter{SearchQuery: "Punjabi", PriceRange: [2]int{0, 75000}}, []int{2}},
		{"search ignores category", artist.Filter{SearchQuery: "speaker", PriceRange: [2]int{0, 75000}}, []int{}},
		{"category is case sensitive", artist.Filter{Categories: []string{"singer"}, PriceRange: [2]int{0, 75000}}, []int{}},
		{"multiple categories", artist.Filter{Categories: []string{"DJ", "Speaker"}, PriceRange: [2]int{0, 75000}}, []int{2, 4}},
		{"all criteria", artist.Filter{Categories: []string{"DJ", "Dancer"}, Location: "a", PriceRange: [2]int{0, 12000}, SearchQuery: "fusion"}, []int{3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(artist.Apply(sampleArtists(), tt.filter)))
		})
	}
}

func TestApply_IsPure(t *testing.T) {
	artists := sampleArtists()
	filter := artist.Filter{Location: "maharashtra", PriceRange: [2]int{0, 75000}}

	first := artist.Apply(artists, filter)
	second := artist.Apply(artists, filter)

	assert.Equal(t, first, second)
	assert.Equal(t, sampleArtists(), artists)

	first[0].Name = "mutated"
	assert.Equal(t, "Priya Sharma", artists[0].Name)
}

func TestApply_EmptyResultIsNotNil(t *testing.T) {
	got := artist.Apply(sampleArtists(), artist.Filter{Location: "nowhere", PriceRange: [2]int{0, 75000}})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestCategories(t *testing.T) {
	assert.Equal(t, []string{"DJ", "Dancer", "Singer", "Speaker"}, artist.Categories(sampleArtists()))
	assert.Equal(t, []string{}, artist.Categories(nil))
}

func TestFilter_ValidateAndReset(t *testing.T) {
	inverted := artist.Filter{PriceRange: [2]int{50000, 1000}}
	err := inverted.Validate()
	require.Error(t, err)
	assert.True(t, apperr.HasCode(err, "VALIDATION_ERROR"))
	assert.Equal(t, "price_max", apperr.As(err).Details[0].Field)

	negative := artist.Filter{PriceRange: [2]int{-1, 1000}}
	assert.Error(t, negative.Validate())

	inverted.Location = "Pune"
	inverted.Reset()
	assert.Equal(t, artist.DefaultFilter(), inverted)
	assert.NoError(t, inverted.Validate())
}

func TestFilter_ActiveCount(t *testing.T) {
	assert.False(t, artist.DefaultFilter().IsActive())
	assert.Zero(t, artist.DefaultFilter().ActiveCount())

	filter := artist.DefaultFilter()
	filter.Categories = []string{"Singer", "DJ"}
	filter.Location = "Pune"
	filter.SearchQuery = "   "
	assert.True(t, filter.IsActive())
	assert.Equal(t, 3, filter.ActiveCount())

	priced := artist.DefaultFilter()
	priced.PriceRange[1] = 50000
	assert.True(t, priced.IsActive())
	assert.Equal(t, 1, priced.ActiveCount())
}

func TestSearchAndByCategory(t *testing.T) {
	assert.Equal(t, []int{4}, ids(artist.Search(sampleArtists(), "speaker")))
	assert.Equal(t, []int{3}, ids(artist.Search(sampleArtists(), "Kerala")))
	assert.Equal(t, []int{2}, ids(artist.ByCategory(sampleArtists(), "dj")))
}
