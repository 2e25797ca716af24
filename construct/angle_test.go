package construct

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAngleBetween_Clamped(t *testing.T) {
	// These normalize to dot products that can land a hair past ±1
	for _, u := range []Point{{0.1, 0.3}, {1e-8, 1}, {3, 7}, {-0.7, 0.2}} {
		same := AngleBetween(u, u.Scale(7))
		opposite := AngleBetween(u, u.Scale(-3))
		assert.False(t, math.IsNaN(same))
		assert.False(t, math.IsNaN(opposite))
		assert.InDelta(t, 0, same, 1e-7)
		assert.InDelta(t, math.Pi, opposite, 1e-7)
	}
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 1.0, Clamp(1.0000000000000002, -1, 1))
	assert.Equal(t, -1.0, Clamp(-1.5, -1, 1))
	assert.Equal(t, 0.25, Clamp(0.25, -1, 1))
}

func TestSignedAngle(t *testing.T) {
	assert.InDelta(t, math.Pi/2, SignedAngle(Pt(1, 0), Pt(0, 1)), Tolerance)
	assert.InDelta(t, -math.Pi/2, SignedAngle(Pt(1, 0), Pt(0, -1)), Tolerance)
}

func TestBisect(t *testing.T) {
	for i := 1; i < 12; i++ {
		theta := math.Pi * float64(i) / 12
		for _, start := range []float64{0, 1, -2.5} {
			u := Pt(2, 0).Rotate(start)
			w := Pt(0.5, 0).Rotate(start + theta)
			t.Run(fmt.Sprintf("theta %d start %v", i, start), func(t *testing.T) {
				bisector := Bisect(u, w)
				assert.InDelta(t, 1, bisector.Length(), Tolerance)
				assert.InDelta(t, theta/2, AngleBetween(bisector, u), 1e-9)
				assert.InDelta(t, theta/2, AngleBetween(bisector, w), 1e-9)
			})
		}
	}
}

func TestDivideAngle(t *testing.T) {
	u := Pt(0, -1)
	w := Pt(4, -1)
	theta := AngleBetween(u, w)
	for _, f := range []float64{0.25, 0.5, 0.75} {
		d := DivideAngle(u, w, f)
		assert.InDelta(t, f*theta, AngleBetween(u, d), 1e-9)
		assert.InDelta(t, (1-f)*theta, AngleBetween(d, w), 1e-9)
	}

	// Clockwise from u to w works the same way
	d := DivideAngle(w, u, 0.25)
	assert.InDelta(t, 0.25*theta, AngleBetween(w, d), 1e-9)
	assert.InDelta(t, 0.75*theta, AngleBetween(d, u), 1e-9)

	// Half matches the bisector
	assert.True(t, DivideAngle(u, w, 0.5).ApproxEqual(Bisect(u, w), 1e-9))
}

func TestNormalizeAngle(t *testing.T) {
	assert.InDelta(t, 0.5, NormalizeAngle(0.5+4*math.Pi), Tolerance)
	assert.InDelta(t, 2*math.Pi-0.5, NormalizeAngle(-0.5), Tolerance)
}
