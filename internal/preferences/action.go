// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package preferences

import (
	"encoding/json"
	"slices"
	"strings"

	"github.com/taibuivan/artistly/internal/core/artist"
	"github.com/taibuivan/artistly/internal/platform/apperr"
	"github.com/taibuivan/artistly/internal/platform/validate"
)

// Action is a change to a [State]. Apply never mutates its argument.
type Action interface {
	Apply(state State) State
}

// AddFavorite appends the artist, moving it to the end if already present.
type AddFavorite struct {
	Artist artist.Artist `json:"artist"`
}

func (a AddFavorite) Apply(state State) State {
	next := state.clone()
	next.Favorites = slices.DeleteFunc(next.Favorites, func(f artist.Artist) bool { return f.ID == a.Artist.ID })
	next.Favorites = append(next.Favorites, a.Artist)
	return next
}

// RemoveFavorite drops the artist with the given id.
type RemoveFavorite struct {
	ArtistID int `json:"artist_id"`
}

func (a RemoveFavorite) Apply(state State) State {
	next := state.clone()
	next.Favorites = slices.DeleteFunc(next.Favorites, func(f artist.Artist) bool { return f.ID == a.ArtistID })
	return next
}

// AddSearch puts the query at the front of the history. Blank queries are
// ignored and an existing entry moves to the front.
type AddSearch struct {
	Query string `json:"query"`
}

func (a AddSearch) Apply(state State) State {
	query := strings.TrimSpace(a.Query)
	if query == "" {
		return state.clone()
	}

	next := state.clone()
	history := slices.DeleteFunc(next.SearchHistory, func(q string) bool { return q == query })
	history = append([]string{query}, history...)
	next.SearchHistory = history[:min(len(history), searchHistoryLimit)]
	return next
}

// ClearSearchHistory empties the history.
type ClearSearchHistory struct{}

func (ClearSearchHistory) Apply(state State) State {
	next := state.clone()
	next.SearchHistory = []string{}
	return next
}

// SetUser replaces the user details.
type SetUser struct {
	User User `json:"user"`
}

func (a SetUser) Apply(state State) State {
	next := state.clone()
	next.User = a.User
	return next
}

// # Wire Format

// Action type names accepted by [DecodeAction].
const (
	TypeAddFavorite        = "favorites/add"
	TypeRemoveFavorite     = "favorites/remove"
	TypeAddSearch          = "search/add"
	TypeClearSearchHistory = "search/clear"
	TypeSetUser            = "user/set"
)

// Envelope is the JSON form of an action: {"type": ..., "payload": {...}}.
type Envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// DecodeAction turns an envelope into an [Action].
func DecodeAction(envelope Envelope) (Action, error) {
	var action Action

	switch envelope.Type {
	case TypeAddFavorite:
		var a AddFavorite
		if err := decodePayload(envelope.Payload, &a); err != nil {
			return nil, err
		}
		if a.Artist.ID <= 0 {
			return nil, validate.RequiredError("artist.id", "Artist id is required")
		}
		action = a
	case TypeRemoveFavorite:
		var a RemoveFavorite
		if err := decodePayload(envelope.Payload, &a); err != nil {
			return nil, err
		}
		action = a
	case TypeAddSearch:
		var a AddSearch
		if err := decodePayload(envelope.Payload, &a); err != nil {
			return nil, err
		}
		action = a
	case TypeClearSearchHistory:
		action = ClearSearchHistory{}
	case TypeSetUser:
		var a SetUser
		if err := decodePayload(envelope.Payload, &a); err != nil {
			return nil, err
		}
		action = a
	default:
		return nil, apperr.BadRequest("Unknown action type " + envelope.Type)
	}

	return action, nil
}

func decodePayload(raw json.RawMessage, target any) error {
	if len(raw) == 0 {
		return validate.RequiredError("payload", "Payload is required")
	}
	if err := json.Unmarshal(raw, target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}
