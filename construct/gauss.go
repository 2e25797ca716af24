package construct

import "math"

const HeptadecagonSides = 17

// cos(2π/17) by Gauss's 1796 formula:
//
//	16·cos(2π/17) = -1 + √17 + √(34 - 2√17)
//	              + 2√(17 + 3√17 - √(34 - 2√17) - 2√(34 + 2√17))
//
// Every quantity under a radical is built from square roots alone, which is
// exactly why the 17-gon can be drawn with compass and straightedge.
func GaussCos17() float64 {
	s17 := math.Sqrt(17)
	a := math.Sqrt(34 - 2*s17)
	b := math.Sqrt(34 + 2*s17)
	c := math.Sqrt(17 + 3*s17 - a - 2*b)
	return (-1 + s17 + a + 2*c) / 16
}

// Central angle of the 17-gon, recovered from Gauss's cosine.
func GaussStep17() float64 {
	return acos(GaussCos17())
}

// A regular 17-gon inscribed in c with its first vertex at theta0. The angular
// step comes from the closed form, not from 2π/17 directly, so the result is
// what an exact construction would produce.
func Heptadecagon(c Circle, theta0 float64) Polygon {
	return SteppedPolygon(c, theta0, GaussStep17(), HeptadecagonSides)
}
