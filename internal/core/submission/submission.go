// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package submission runs the manager review workflow for artist applications.

Status changes are unguarded: any status may follow any other and the last
action wins. Every action goes through a simulated remote call first and is
applied only if that call succeeds and the request is still alive.
*/
package submission

import (
	"strings"
)

// # Domain Entities

// Status is the review state of a submission.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Valid reports whether s is one of the three known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Submission is an application awaiting or past manager review.
type Submission struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	City     string `json:"city"`

	// Fee is the applicant's free-text fee label, e.g. "₹10,000 - ₹20,000".
	Fee string `json:"fee"`

	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Status Status `json:"status"`

	// SubmittedAt is fixed at creation.
	SubmittedAt string `json:"submitted_at"`
}

// CreateInput carries the applicant's details for a new submission.
type CreateInput struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	City     string `json:"city"`
	Fee      string `json:"fee"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

// Stats summarises the list by status.
type Stats struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
}

// Matches reports whether term is a case-insensitive substring of the
// name, category, city or email. A blank term matches everything.
func (s Submission) Matches(term string) bool {
	needle := strings.ToLower(strings.TrimSpace(term))
	if needle == "" {
		return true
	}

	for _, field := range []string{s.Name, s.Category, s.City, s.Email} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

// # Field Names

const (
	FieldName     = "name"
	FieldCategory = "category"
	FieldCity     = "city"
	FieldEmail    = "email"
)
