package dbg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestName(t *testing.T) {
	type point struct{ X, Y float64 }
	a := Name(point{1, 2})
	assert.NotEmpty(t, a)
	assert.Equal(t, a, Name(point{1, 2}), "names are stable within a run")

	var nilPointer *point
	assert.Equal(t, "Ø", Name(nilPointer))
	assert.Equal(t, "Ø", Name(nil))
}
