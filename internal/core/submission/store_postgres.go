// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package submission

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/artistly/internal/platform/database/schema"
	"github.com/taibuivan/artistly/internal/platform/dberr"
)

// PostgresRepository stores submissions in review.submission.
//
// Writes that depend on the current contents (id assignment, replacement)
// take an exclusive table lock, keeping the single-writer semantics of the
// in-memory store.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository wraps an open pool.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var (
	submissionColumns = strings.Join(schema.ReviewSubmission.Columns(), ", ")
	selectSubmissions = fmt.Sprintf(`SELECT %s FROM %s`, submissionColumns, schema.ReviewSubmission.Table)
)

func (repository *PostgresRepository) List(context context.Context) ([]Submission, error) {
	query := selectSubmissions + fmt.Sprintf(` ORDER BY %s ASC`, schema.ReviewSubmission.ID)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "Submission")
	}
	defer rows.Close()

	records := []Submission{}
	for rows.Next() {
		s, err := scanSubmission(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "Submission")
		}
		records = append(records, s)
	}

	return records, dberr.Wrap(rows.Err(), "Submission")
}

func (repository *PostgresRepository) Get(context context.Context, id int) (Submission, error) {
	query := selectSubmissions + fmt.Sprintf(` WHERE %s = $1`, schema.ReviewSubmission.ID)

	s, err := scanSubmission(repository.db.QueryRow(context, query, id))
	if err != nil {
		return Submission{}, dberr.Wrap(err, "Submission")
	}
	return s, nil
}

func (repository *PostgresRepository) SetStatus(context context.Context, id int, status Status) (bool, error) {
	query := fmt.Sprintf(`UPDATE %s SET %s = $2 WHERE %s = $1`,
		schema.ReviewSubmission.Table, schema.ReviewSubmission.Status, schema.ReviewSubmission.ID)

	cmd, err := repository.db.Exec(context, query, id, string(status))
	if err != nil {
		return false, dberr.Wrap(err, "Submission")
	}
	return cmd.RowsAffected() > 0, nil
}

func (repository *PostgresRepository) Delete(context context.Context, id int) (bool, error) {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.ReviewSubmission.Table, schema.ReviewSubmission.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return false, dberr.Wrap(err, "Submission")
	}
	return cmd.RowsAffected() > 0, nil
}

func (repository *PostgresRepository) Create(context context.Context, s Submission) (Submission, error) {
	t := schema.ReviewSubmission

	err := pgx.BeginFunc(context, repository.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(context, fmt.Sprintf(`LOCK TABLE %s IN EXCLUSIVE MODE`, t.Table)); err != nil {
			return err
		}

		query := fmt.Sprintf(`
			INSERT INTO %s (%s)
			SELECT COALESCE(MAX(%s), 0) + 1, $1, $2, $3, $4, $5, $6, $7, $8 FROM %s
			RETURNING %s
		`, t.Table, submissionColumns, t.ID, t.Table, t.ID)

		return tx.QueryRow(context, query,
			s.Name, s.Category, s.City, s.Fee, s.Email, s.Phone, string(s.Status), s.SubmittedAt,
		).Scan(&s.ID)
	})
	if err != nil {
		return Submission{}, dberr.Wrap(err, "Submission")
	}

	return s, nil
}

func (repository *PostgresRepository) Replace(context context.Context, records []Submission) error {
	t := schema.ReviewSubmission

	err := pgx.BeginFunc(context, repository.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(context, fmt.Sprintf(`LOCK TABLE %s IN EXCLUSIVE MODE`, t.Table)); err != nil {
			return err
		}
		if _, err := tx.Exec(context, fmt.Sprintf(`DELETE FROM %s`, t.Table)); err != nil {
			return err
		}

		rows := make([][]any, len(records))
		for i, s := range records {
			rows[i] = []any{s.ID, s.Name, s.Category, s.City, s.Fee, s.Email, s.Phone, string(s.Status), s.SubmittedAt}
		}

		_, err := tx.CopyFrom(context,
			pgx.Identifier{"review", "submission"},
			t.Columns(),
			pgx.CopyFromRows(rows),
		)
		return err
	})

	return dberr.Wrap(err, "Submission")
}

func scanSubmission(row pgx.Row) (Submission, error) {
	var (
		s      Submission
		status string
	)
	err := row.Scan(&s.ID, &s.Name, &s.Category, &s.City, &s.Fee, &s.Email, &s.Phone, &status, &s.SubmittedAt)
	s.Status = Status(status)
	return s, err
}
