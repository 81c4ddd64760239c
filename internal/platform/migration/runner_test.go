// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package migration

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToPgx5DSN(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"postgres://u:p@localhost:5432/artistly", "pgx5://u:p@localhost:5432/artistly"},
		{"postgresql://localhost/artistly", "pgx5://localhost/artistly"},
		{"pgx5://localhost/artistly", "pgx5://localhost/artistly"},
		{"host=localhost dbname=artistly", "host=localhost dbname=artistly"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ToPgx5DSN(tt.in))
	}
}
