package compass

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Smoke test. The internals are already tested.
func TestHeptadecagon(t *testing.T) {
	poly, err := Heptadecagon(Point{X: 1, Y: 1}, 2)
	require.NoError(t, err)
	assert.Len(t, poly.Points, 17)

	constructed, err := ConstructedHeptadecagon(Point{X: 1, Y: 1}, 2)
	require.NoError(t, err)
	for i := range poly.Points {
		assert.True(t, poly.Points[i].ApproxEqual(constructed.Points[i], 1e-6))
	}
}

func TestRegularPolygon(t *testing.T) {
	poly, err := RegularPolygon(Point{}, 1, math.Pi/2, 6)
	require.NoError(t, err)
	require.Len(t, poly.Points, 6)
	assert.InDelta(t, 0, poly.Points[0].X, 1e-12)
	assert.InDelta(t, 1, poly.Points[0].Y, 1e-12)

	_, err = RegularPolygon(Point{}, 1, 0, 2)
	assert.Equal(t, ErrDegenerateInput, errors.Cause(err))
}

func TestConstruct(t *testing.T) {
	ctx, err := Construct(Point{}, 3)
	require.NoError(t, err)
	_, ok := ctx.Point("P3")
	assert.True(t, ok)

	_, err = Construct(Point{}, 0)
	assert.Equal(t, ErrDegenerateInput, errors.Cause(err))
	_, err = Heptadecagon(Point{}, -2)
	assert.Error(t, err)
}
