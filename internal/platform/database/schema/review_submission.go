// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// ReviewSubmissionTable represents the 'review.submission' table
type ReviewSubmissionTable struct {
	Table       string
	ID          string
	Name        string
	Category    string
	City        string
	Fee         string
	Email       string
	Phone       string
	Status      string
	SubmittedAt string
}

// ReviewSubmission is the schema definition for review.submission
var ReviewSubmission = ReviewSubmissionTable{
	Table:       "review.submission",
	ID:          "id",
	Name:        "name",
	Category:    "category",
	City:        "city",
	Fee:         "fee",
	Email:       "email",
	Phone:       "phone",
	Status:      "status",
	SubmittedAt: "submittedat",
}

// Columns returns the columns read by the repository, in scan order.
func (t ReviewSubmissionTable) Columns() []string {
	return []string{t.ID, t.Name, t.Category, t.City, t.Fee, t.Email, t.Phone, t.Status, t.SubmittedAt}
}
