// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"strings"

	"github.com/taibuivan/artistly/internal/core/artist"
	"github.com/taibuivan/artistly/internal/core/submission"
	"github.com/taibuivan/artistly/internal/platform/apperr"
	"github.com/taibuivan/artistly/internal/platform/validate"
	"github.com/taibuivan/artistly/pkg/slice"
)

// rawArtist mirrors the camelCase records in artists.json.
type rawArtist struct {
	ID        int      `json:"id"`
	Name      string   `json:"name"`
	Category  string   `json:"category"`
	Location  string   `json:"location"`
	City      string   `json:"city"`
	State     string   `json:"state"`
	PriceMin  int      `json:"priceMin"`
	PriceMax  int      `json:"priceMax"`
	Rating    float64  `json:"rating"`
	Reviews   int      `json:"reviews"`
	Image     string   `json:"image"`
	Languages []string `json:"languages"`
	Bio       string   `json:"bio"`
	Verified  bool     `json:"verified"`
}

// rawSubmission mirrors the camelCase records in submissions.json.
type rawSubmission struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	City        string `json:"city"`
	Fee         string `json:"fee"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Status      string `json:"status"`
	SubmittedAt string `json:"submittedAt"`
}

func (raw rawArtist) normalise(seen map[int]bool) (artist.Artist, []string) {
	a := artist.Artist{
		ID:        raw.ID,
		Name:      strings.TrimSpace(raw.Name),
		Category:  strings.TrimSpace(raw.Category),
		Location:  strings.TrimSpace(raw.Location),
		City:      strings.TrimSpace(raw.City),
		State:     strings.TrimSpace(raw.State),
		PriceMin:  raw.PriceMin,
		PriceMax:  raw.PriceMax,
		Rating:    raw.Rating,
		Reviews:   raw.Reviews,
		Image:     strings.TrimSpace(raw.Image),
		Languages: trimAll(raw.Languages),
		Bio:       strings.TrimSpace(raw.Bio),
		Verified:  raw.Verified,
	}

	city, state := splitLocation(a.Location)
	if a.City == "" {
		a.City = city
	}
	if a.State == "" {
		a.State = state
	}
	if a.Location == "" {
		a.Location = joinLocation(a.City, a.State)
	}

	validator := &validate.Validator{}
	validator.
		Required("name", a.Name).
		Custom("id", a.ID <= 0, "must be a positive integer").
		Custom("id", a.ID > 0 && seen[a.ID], "duplicate id").
		NonNegative("price_min", a.PriceMin).
		NonNegative("price_max", a.PriceMax).
		Custom("price_max", a.PriceMin > a.PriceMax, "priceMin exceeds priceMax")

	if validator.HasErrors() {
		return artist.Artist{}, reasons(validator)
	}

	a.FormatPrice()
	return a, nil
}

func (raw rawSubmission) normalise(seen map[int]bool) (submission.Submission, []string) {
	status := submission.Status(strings.ToLower(strings.TrimSpace(raw.Status)))
	if status == "" {
		status = submission.StatusPending
	}

	s := submission.Submission{
		ID:          raw.ID,
		Name:        strings.TrimSpace(raw.Name),
		Category:    strings.TrimSpace(raw.Category),
		City:        strings.TrimSpace(raw.City),
		Fee:         strings.TrimSpace(raw.Fee),
		Email:       strings.TrimSpace(raw.Email),
		Phone:       strings.TrimSpace(raw.Phone),
		Status:      status,
		SubmittedAt: strings.TrimSpace(raw.SubmittedAt),
	}

	validator := &validate.Validator{}
	validator.
		Required("name", s.Name).
		Custom("id", s.ID <= 0, "must be a positive integer").
		Custom("id", s.ID > 0 && seen[s.ID], "duplicate id").
		Custom("status", !s.Status.Valid(), "unknown status "+string(s.Status))

	if validator.HasErrors() {
		return submission.Submission{}, reasons(validator)
	}
	return s, nil
}

func reasons(validator *validate.Validator) []string {
	return slice.Map(validator.Errors(), func(e apperr.FieldError) string {
		return e.Field + ": " + e.Message
	})
}

// splitLocation reads "City, State". A value without a comma is a city.
func splitLocation(location string) (city, state string) {
	city, state, _ = strings.Cut(location, ",")
	return strings.TrimSpace(city), strings.TrimSpace(state)
}

func joinLocation(city, state string) string {
	switch {
	case city == "":
		return state
	case state == "":
		return city
	}
	return city + ", " + state
}

func trimAll(values []string) []string {
	out := []string{}
	for _, v := range values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
