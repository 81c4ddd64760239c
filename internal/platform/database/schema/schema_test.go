// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColumns(t *testing.T) {
	assert.Len(t, CatalogArtist.Columns(), 14)
	assert.Equal(t, "id", CatalogArtist.Columns()[0])
	assert.Len(t, ReviewSubmission.Columns(), 9)
	assert.Equal(t, "submittedat", ReviewSubmission.Columns()[8])
}
