// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringSlice(t *testing.T) {
	assert.Nil(t, StringSlice())
	assert.Nil(t, StringSlice("", " , "))
	assert.Equal(t, []string{"Singer", "DJ"}, StringSlice("Singer, DJ"))
	assert.Equal(t, []string{"Singer", "DJ", "Dancer"}, StringSlice("Singer", "DJ,Singer", "Dancer"))
}
