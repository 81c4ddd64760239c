// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package catalog loads the static artist and submission datasets.

Both files are embedded in the binary. Every record passes through a
normalisation step before it reaches the domain packages: strings are
trimmed, missing optional fields get their defaults, and records that break
an invariant are dropped and reported instead of failing the whole load.
*/
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"

	"github.com/taibuivan/artistly/internal/core/artist"
	"github.com/taibuivan/artistly/internal/core/submission"
)

//go:embed data/artists.json
var artistsJSON []byte

//go:embed data/submissions.json
var submissionsJSON []byte

// # Result Types

// Dataset names used in a [Rejection].
const (
	DatasetArtists     = "artists"
	DatasetSubmissions = "submissions"
)

// Rejection describes one record that was dropped.
type Rejection struct {
	Dataset string   `json:"dataset"`
	Index   int      `json:"index"`
	ID      int      `json:"id"`
	Reasons []string `json:"reasons"`
}

// Report summarises a load.
type Report struct {
	Artists     int         `json:"artists"`
	Submissions int         `json:"submissions"`
	Rejected    []Rejection `json:"rejected"`
}

// Clean reports whether every record was accepted.
func (r Report) Clean() bool { return len(r.Rejected) == 0 }

// Catalog holds the accepted records in file order.
type Catalog struct {
	Artists     []artist.Artist
	Submissions []submission.Submission
	Report      Report
}

// SeedSubmissions returns a fresh copy of the submission dataset, suitable
// as the seed of [submission.NewService].
func (c *Catalog) SeedSubmissions() []submission.Submission {
	return slices.Clone(c.Submissions)
}

// # Loading

// Load parses the embedded datasets.
func Load(logger *slog.Logger) (*Catalog, error) {
	return Parse(artistsJSON, submissionsJSON, logger)
}

// Embedded returns the raw documents compiled into the binary.
func Embedded() (artists, submissions []byte) {
	return artistsJSON, submissionsJSON
}

/*
Parse normalises raw artist and submission JSON arrays.

Returns:
  - *Catalog: Accepted records plus a [Report] of rejections
  - error: Only when a document is not a JSON array of objects
*/
func Parse(artistsData, submissionsData []byte, logger *slog.Logger) (*Catalog, error) {
	var rawArtists []rawArtist
	if err := json.Unmarshal(artistsData, &rawArtists); err != nil {
		return nil, fmt.Errorf("catalog: decode artists: %w", err)
	}

	var rawSubmissions []rawSubmission
	if err := json.Unmarshal(submissionsData, &rawSubmissions); err != nil {
		return nil, fmt.Errorf("catalog: decode submissions: %w", err)
	}

	catalog := &Catalog{
		Artists:     []artist.Artist{},
		Submissions: []submission.Submission{},
		Report:      Report{Rejected: []Rejection{}},
	}

	seen := map[int]bool{}
	for i, raw := range rawArtists {
		a, reasons := raw.normalise(seen)
		if len(reasons) > 0 {
			catalog.reject(logger, DatasetArtists, i, raw.ID, reasons)
			continue
		}
		seen[a.ID] = true
		catalog.Artists = append(catalog.Artists, a)
	}

	seen = map[int]bool{}
	for i, raw := range rawSubmissions {
		s, reasons := raw.normalise(seen)
		if len(reasons) > 0 {
			catalog.reject(logger, DatasetSubmissions, i, raw.ID, reasons)
			continue
		}
		seen[s.ID] = true
		catalog.Submissions = append(catalog.Submissions, s)
	}

	catalog.Report.Artists = len(catalog.Artists)
	catalog.Report.Submissions = len(catalog.Submissions)

	logger.Info("catalog_loaded",
		slog.Int("artists", catalog.Report.Artists),
		slog.Int("submissions", catalog.Report.Submissions),
		slog.Int("rejected", len(catalog.Report.Rejected)),
	)

	return catalog, nil
}

func (catalog *Catalog) reject(logger *slog.Logger, dataset string, index, id int, reasons []string) {
	catalog.Report.Rejected = append(catalog.Report.Rejected, Rejection{
		Dataset: dataset,
		Index:   index,
		ID:      id,
		Reasons: reasons,
	})

	logger.Warn("catalog_record_rejected",
		slog.String("dataset", dataset),
		slog.Int("index", index),
		slog.Int("id", id),
		slog.Any("reasons", reasons),
	)
}
