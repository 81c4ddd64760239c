// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package convert_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/artistly/pkg/convert"
)

func TestConversions(t *testing.T) {
	assert.Equal(t, 42, convert.ToInt(" 42 "))
	assert.Equal(t, 0, convert.ToInt("forty"))
	assert.Equal(t, 7, convert.ToIntD("", 7))
	assert.True(t, convert.ToBool("true"))
	assert.True(t, convert.ToBool("1"))
	assert.False(t, convert.ToBool("yes"))
	assert.Equal(t, "100000", convert.Digits("₹1,00,000+"))
	assert.Empty(t, convert.Digits("free"))
}
