package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringToInt(t *testing.T) {
	assert.Equal(t, 42, StringToInt("42"))
	assert.Equal(t, -3, StringToInt("-3"))
	assert.Equal(t, 0, StringToInt("nope"))
	assert.Equal(t, 0, StringToInt(""))
}

func TestStringToUint(t *testing.T) {
	assert.Equal(t, uint(42), StringToUint("42"))
	assert.Equal(t, uint(0), StringToUint("-3"))
	assert.Equal(t, uint(0), StringToUint("4.2"))
	assert.Equal(t, uint(0), StringToUint(""))
}
