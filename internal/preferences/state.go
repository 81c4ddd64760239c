// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package preferences keeps each visitor's favourites, recent searches and
sign-in display details.

A [Store] holds one visitor's [State]. It is read once when opened, changed
only through [Store.Dispatch], and written back whole after every change.
Where the bytes live is the [Adapter]'s business.
*/
package preferences

import (
	"slices"

	"github.com/taibuivan/artistly/internal/core/artist"
)

// searchHistoryLimit caps the number of remembered searches.
const searchHistoryLimit = 10

// User is what the client shows about the signed-in visitor.
type User struct {
	IsAuthenticated bool   `json:"is_authenticated"`
	Name            string `json:"name,omitempty"`
	Email           string `json:"email,omitempty"`
}

// State is the persisted preferences blob.
type State struct {
	Favorites []artist.Artist `json:"favorites"`

	// SearchHistory is most recent first.
	SearchHistory []string `json:"search_history"`

	User User `json:"user"`
}

// Empty is the state of a new visitor.
func Empty() State {
	return State{Favorites: []artist.Artist{}, SearchHistory: []string{}}
}

// IsFavorite reports whether the artist is in the favourites.
func (s State) IsFavorite(artistID int) bool {
	return slices.ContainsFunc(s.Favorites, func(a artist.Artist) bool { return a.ID == artistID })
}

// clone returns a copy that shares no slices with s.
func (s State) clone() State {
	out := s
	out.Favorites = slices.Clone(s.Favorites)
	out.SearchHistory = slices.Clone(s.SearchHistory)
	if out.Favorites == nil {
		out.Favorites = []artist.Artist{}
	}
	if out.SearchHistory == nil {
		out.SearchHistory = []string{}
	}
	return out
}
