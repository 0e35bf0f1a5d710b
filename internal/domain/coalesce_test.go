package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoalesce(t *testing.T) {
	assert.Equal(t, "b", Coalesce("", "b", "c"))
	assert.Equal(t, 3, Coalesce(0, 3))
	assert.Empty(t, Coalesce[string]())
}

func TestValueOr(t *testing.T) {
	n := 0
	assert.Equal(t, 0, ValueOr(5, &n), "a set zero still wins")
	assert.Equal(t, 5, ValueOr[int](5, nil))

	s := "x"
	assert.Equal(t, "x", ValueOr("fallback", nil, &s))
}
