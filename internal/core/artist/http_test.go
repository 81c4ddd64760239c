// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package artist_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/artistly/internal/core/artist"
)

func newTestHandler() http.Handler {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	service := artist.NewService(artist.NewMemoryRepository(sampleArtists()), logger)
	return artist.NewHandler(service).Routes()
}

func get(t *testing.T, handler http.Handler, target string) (*httptest.ResponseRecorder, map[string]json.RawMessage) {
	t.Helper()

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec, body
}

func TestHandler_List(t *testing.T) {
	rec, body := get(t, newTestHandler(), "/?category=singers")
	require.Equal(t, http.StatusOK, rec.Code)

	var result artist.ListResult
	require.NoError(t, json.Unmarshal(body["data"], &result))

	assert.Equal(t, []int{1}, ids(result.Artists))
	assert.Equal(t, []string{"Singer"}, result.Filter.Categories)
	assert.Equal(t, 1, result.ActiveFilters)
	assert.False(t, result.Empty)
	assert.Nil(t, result.ResetFilter)
	assert.Equal(t, 1, result.Meta.Total)
}

func TestHandler_ListEmptyOffersReset(t *testing.T) {
	rec, body := get(t, newTestHandler(), "/?location=Atlantis")
	require.Equal(t, http.StatusOK, rec.Code)

	var result artist.ListResult
	require.NoError(t, json.Unmarshal(body["data"], &result))

	assert.True(t, result.Empty)
	assert.Empty(t, result.Artists)
	require.NotNil(t, result.ResetFilter)
	assert.Equal(t, artist.DefaultFilter(), *result.ResetFilter)
}

func TestHandler_ListRejectsInvertedWindow(t *testing.T) {
	rec, body := get(t, newTestHandler(), "/?price_min=50000&price_max=100")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `"VALIDATION_ERROR"`, string(body["code"]))
}

func TestHandler_Get(t *testing.T) {
	handler := newTestHandler()

	rec, body := get(t, handler, "/3")
	require.Equal(t, http.StatusOK, rec.Code)

	var found artist.Artist
	require.NoError(t, json.Unmarshal(body["data"], &found))
	assert.Equal(t, "Meera Nair", found.Name)

	rec, _ = get(t, handler, "/99")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = get(t, handler, "/abc")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_CategoriesAndSearch(t *testing.T) {
	handler := newTestHandler()

	_, body := get(t, handler, "/categories")
	assert.JSONEq(t, `["DJ","Dancer","Singer","Speaker"]`, string(body["data"]))

	_, body = get(t, handler, "/categories/djs")
	var djs []artist.Artist
	require.NoError(t, json.Unmarshal(body["data"], &djs))
	assert.Equal(t, []int{2}, ids(djs))

	_, body = get(t, handler, "/search?q=leadership")
	var found []artist.Artist
	require.NoError(t, json.Unmarshal(body["data"], &found))
	assert.Equal(t, []int{4}, ids(found))

	_, body = get(t, handler, "/categories/featured")
	var featured []artist.FeaturedCategory
	require.NoError(t, json.Unmarshal(body["data"], &featured))
	require.Len(t, featured, 4)
	assert.Equal(t, "From ₹15,000", featured[0].DisplayPrice)
}
