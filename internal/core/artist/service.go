// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package artist

import (
	"context"
	"log/slog"
)

// # Service Layer

// Service answers directory queries over the catalogue.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a new [Service].
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// # Directory Lookups

/*
List returns the artists visible under filter.

Description: The filter is validated first, so an inverted price window is
reported to the caller instead of silently producing an empty page.

Parameters:
  - context: context.Context
  - filter: Filter (Categories, location, price window, search query)

Returns:
  - []Artist: Matching artists in catalogue order, never nil
  - error: VALIDATION_ERROR or repository failures
*/
func (service *Service) List(context context.Context, filter Filter) ([]Artist, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	artists, err := service.repo.List(context)
	if err != nil {
		return nil, err
	}

	visible := Apply(artists, filter)

	service.logger.DebugContext(context, "artists_filtered",
		slog.Int("total", len(artists)),
		slog.Int("visible", len(visible)),
		slog.Int("active_filters", filter.ActiveCount()),
	)

	return visible, nil
}

// Get fetches a single artist profile.
func (service *Service) Get(context context.Context, id int) (Artist, error) {
	return service.repo.Get(context, id)
}

// Categories lists the distinct categories present in the catalogue.
func (service *Service) Categories(context context.Context) ([]string, error) {
	artists, err := service.repo.List(context)
	if err != nil {
		return nil, err
	}
	return Categories(artists), nil
}

// Search runs the free-text lookup over name, bio, category and location.
func (service *Service) Search(context context.Context, term string) ([]Artist, error) {
	artists, err := service.repo.List(context)
	if err != nil {
		return nil, err
	}
	return Search(artists, term), nil
}

// ByCategory lists the artists of one category, ignoring case.
func (service *Service) ByCategory(context context.Context, category string) ([]Artist, error) {
	artists, err := service.repo.List(context)
	if err != nil {
		return nil, err
	}
	return ByCategory(artists, category), nil
}
