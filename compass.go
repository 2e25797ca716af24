// Compass and straightedge constructions for Go.
//
// This package computes the geometry behind classical constructions, in
// particular the regular 17-gon, and hands back plain coordinates. Drawing and
// animating them is left to whatever consumes those coordinates.
package compass

import (
	"github.com/osuushi/compass/construct"
	"github.com/pkg/errors"
)

type Point = construct.Point
type Circle = construct.Circle
type Line = construct.Line
type Polygon = construct.Polygon
type Context = construct.Context

var ErrDegenerateInput = construct.ErrDegenerateInput

func circle(center Point, radius float64) (Circle, error) {
	c := Circle{Center: center, Radius: radius}
	if !c.Valid() {
		return c, errors.Wrapf(ErrDegenerateInput, "radius %v", radius)
	}
	return c, nil
}

// The regular 17-gon inscribed in the circle, with its first vertex at polar
// angle zero. Vertices are counterclockwise.
func Heptadecagon(center Point, radius float64) (Polygon, error) {
	c, err := circle(center, radius)
	if err != nil {
		return Polygon{}, err
	}
	return construct.Heptadecagon(c, 0), nil
}

// The same 17-gon, with its angular step taken from Richmond's construction.
func ConstructedHeptadecagon(center Point, radius float64) (Polygon, error) {
	c, err := circle(center, radius)
	if err != nil {
		return Polygon{}, err
	}
	return construct.ConstructedHeptadecagon(c)
}

// A regular n-gon inscribed in the circle, with its first vertex at theta0.
func RegularPolygon(center Point, radius, theta0 float64, n int) (Polygon, error) {
	c, err := circle(center, radius)
	if err != nil {
		return Polygon{}, err
	}
	if n < 3 {
		return Polygon{}, errors.Wrapf(ErrDegenerateInput, "%d vertices", n)
	}
	return construct.RegularPolygon(c, theta0, n), nil
}

// Every intermediate point, circle and line of Richmond's construction, for
// step by step illustration.
func Construct(center Point, radius float64) (Context, error) {
	c, err := circle(center, radius)
	if err != nil {
		return Context{}, err
	}
	return construct.Richmond(c)
}
