// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package artist

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/artistly/internal/platform/database/schema"
	"github.com/taibuivan/artistly/internal/platform/dberr"
)

// PostgresRepository reads the catalogue from catalog.artist.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository wraps an open pool.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var selectArtists = fmt.Sprintf(`SELECT %s FROM %s`,
	strings.Join(schema.CatalogArtist.Columns(), ", "), schema.CatalogArtist.Table)

// List returns every artist ordered by id.
func (repository *PostgresRepository) List(context context.Context) ([]Artist, error) {
	query := selectArtists + fmt.Sprintf(` ORDER BY %s ASC`, schema.CatalogArtist.ID)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "Artist")
	}
	defer rows.Close()

	artists := []Artist{}
	for rows.Next() {
		a, err := scanArtist(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "Artist")
		}
		artists = append(artists, a)
	}

	return artists, dberr.Wrap(rows.Err(), "Artist")
}

// Get fetches a single artist.
func (repository *PostgresRepository) Get(context context.Context, id int) (Artist, error) {
	query := selectArtists + fmt.Sprintf(` WHERE %s = $1`, schema.CatalogArtist.ID)

	a, err := scanArtist(repository.db.QueryRow(context, query, id))
	if err != nil {
		return Artist{}, dberr.Wrap(err, "Artist")
	}
	return a, nil
}

// Upsert writes artists, replacing rows with the same id. Used to seed the
// table from the embedded catalogue.
func (repository *PostgresRepository) Upsert(context context.Context, artists []Artist) error {
	t := schema.CatalogArtist
	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (%s) DO UPDATE SET
			%s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s,
			%s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s,
			%s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s,
			%s = EXCLUDED.%s
	`,
		t.Table, strings.Join(t.Columns(), ", "), t.ID,
		t.Name, t.Name, t.Category, t.Category, t.Location, t.Location, t.City, t.City,
		t.State, t.State, t.PriceMin, t.PriceMin, t.PriceMax, t.PriceMax, t.Rating, t.Rating,
		t.Reviews, t.Reviews, t.Image, t.Image, t.Languages, t.Languages, t.Bio, t.Bio,
		t.Verified, t.Verified,
	)

	batch := &pgx.Batch{}
	for _, a := range artists {
		batch.Queue(query, a.ID, a.Name, a.Category, a.Location, a.City, a.State, a.PriceMin, a.PriceMax,
			a.Rating, a.Reviews, a.Image, a.Languages, a.Bio, a.Verified)
	}

	if err := repository.db.SendBatch(context, batch).Close(); err != nil {
		return dberr.Wrap(err, "Artist")
	}
	return nil
}

func scanArtist(row pgx.Row) (Artist, error) {
	var a Artist
	err := row.Scan(
		&a.ID, &a.Name, &a.Category, &a.Location, &a.City, &a.State, &a.PriceMin, &a.PriceMax,
		&a.Rating, &a.Reviews, &a.Image, &a.Languages, &a.Bio, &a.Verified,
	)
	if err != nil {
		return Artist{}, err
	}

	if a.Languages == nil {
		a.Languages = []string{}
	}
	a.FormatPrice()
	return a, nil
}
