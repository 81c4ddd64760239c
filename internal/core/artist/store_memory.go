// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package artist

import (
	"context"
	"slices"

	"github.com/taibuivan/artistly/internal/platform/apperr"
)

// MemoryRepository serves a fixed, already validated slice of artists.
type MemoryRepository struct {
	artists []Artist
	byID    map[int]int
}

// NewMemoryRepository indexes artists by id. The slice is copied.
func NewMemoryRepository(artists []Artist) *MemoryRepository {
	repository := &MemoryRepository{
		artists: slices.Clone(artists),
		byID:    make(map[int]int, len(artists)),
	}
	for i, a := range repository.artists {
		repository.byID[a.ID] = i
	}
	return repository
}

// List returns a copy of the catalogue.
func (repository *MemoryRepository) List(context context.Context) ([]Artist, error) {
	if err := context.Err(); err != nil {
		return nil, err
	}
	return slices.Clone(repository.artists), nil
}

// Get looks an artist up by id.
func (repository *MemoryRepository) Get(context context.Context, id int) (Artist, error) {
	if err := context.Err(); err != nil {
		return Artist{}, err
	}

	index, ok := repository.byID[id]
	if !ok {
		return Artist{}, apperr.NotFound("Artist")
	}
	return repository.artists[index], nil
}
