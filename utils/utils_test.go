package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIfThenElse(t *testing.T) {
	assert.Equal(t, "a", IfThenElse(true, "a", "b"))
	assert.Equal(t, "b", IfThenElse(false, "a", "b"))
	assert.Equal(t, 1, IfThenElse(true, 1, 2))
}

func TestStringIn(t *testing.T) {
	list := []string{"name", "address", "id", "geo"}
	assert.True(t, StringIn("name", list))
	assert.True(t, StringIn("geo", list))
	assert.False(t, StringIn("", list))
	assert.False(t, StringIn("Name", list))
	assert.False(t, StringIn("name", nil))
}
