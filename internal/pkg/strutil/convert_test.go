//go:build unit
// +build unit

package strutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvertToInt(t *testing.T) {
	assert.Equal(t, 42, ConvertToInt("42"))
	assert.Equal(t, 0, ConvertToInt("not-a-number"))
	assert.Equal(t, 0, ConvertToInt(""))
	assert.Equal(t, -7, ConvertToInt("-7"))
}
