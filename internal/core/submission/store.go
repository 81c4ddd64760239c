// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package submission

import "context"

// Repository is the persistence boundary for submissions.
//
// Implementations apply each mutation atomically and keep insertion order.
// SetStatus and Delete report found=false for unknown ids instead of failing.
type Repository interface {
	List(context context.Context) ([]Submission, error)
	Get(context context.Context, id int) (Submission, error)
	SetStatus(context context.Context, id int, status Status) (found bool, err error)
	Delete(context context.Context, id int) (found bool, err error)

	// Create assigns the next id and appends the submission.
	Create(context context.Context, s Submission) (Submission, error)

	// Replace discards every record and loads records in order.
	Replace(context context.Context, records []Submission) error
}
