// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package submission

import (
	"context"
	"slices"
	"sync"

	"github.com/taibuivan/artistly/internal/platform/apperr"
)

// MemoryRepository is a single-writer, ordered, in-process store.
type MemoryRepository struct {
	mu      sync.RWMutex
	records []Submission
}

// NewMemoryRepository copies records into a new store.
func NewMemoryRepository(records []Submission) *MemoryRepository {
	return &MemoryRepository{records: slices.Clone(records)}
}

func (repository *MemoryRepository) List(context.Context) ([]Submission, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()
	return slices.Clone(repository.records), nil
}

func (repository *MemoryRepository) Get(_ context.Context, id int) (Submission, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	if i := repository.indexOf(id); i >= 0 {
		return repository.records[i], nil
	}
	return Submission{}, apperr.NotFound("Submission")
}

func (repository *MemoryRepository) SetStatus(_ context.Context, id int, status Status) (bool, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	i := repository.indexOf(id)
	if i < 0 {
		return false, nil
	}
	repository.records[i].Status = status
	return true, nil
}

func (repository *MemoryRepository) Delete(_ context.Context, id int) (bool, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	i := repository.indexOf(id)
	if i < 0 {
		return false, nil
	}
	repository.records = slices.Delete(repository.records, i, i+1)
	return true, nil
}

func (repository *MemoryRepository) Create(_ context.Context, s Submission) (Submission, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	next := 1
	for _, r := range repository.records {
		next = max(next, r.ID+1)
	}
	s.ID = next

	repository.records = append(repository.records, s)
	return s, nil
}

func (repository *MemoryRepository) Replace(_ context.Context, records []Submission) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	repository.records = slices.Clone(records)
	return nil
}

// indexOf must be called with the lock held.
func (repository *MemoryRepository) indexOf(id int) int {
	return slices.IndexFunc(repository.records, func(s Submission) bool { return s.ID == id })
}
