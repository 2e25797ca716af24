package construct

import (
	"fmt"
	"math"
)

func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

func (p Point) Scale(s float64) Point {
	return Point{p.X * s, p.Y * s}
}

func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// The z component of the 3D cross product. Positive when q is counterclockwise
// of p.
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

func (p Point) Distance(q Point) float64 {
	return q.Sub(p).Length()
}

// Unit vector in the same direction. The zero vector has no direction, and
// normalizing it is a caller error; the result is NaN.
func (p Point) Normalize() Point {
	return p.Scale(1 / p.Length())
}

// Rotate the vector counterclockwise about the origin.
func (p Point) Rotate(theta float64) Point {
	sin, cos := math.Sincos(theta)
	return Point{p.X*cos - p.Y*sin, p.X*sin + p.Y*cos}
}

func (p Point) RotateAbout(center Point, theta float64) Point {
	return p.Sub(center).Rotate(theta).Add(center)
}

// Counterclockwise perpendicular
func (p Point) Perp() Point {
	return Point{-p.Y, p.X}
}

// Polar angle of the vector, in (-π, π]
func (p Point) Angle() float64 {
	return math.Atan2(p.Y, p.X)
}

func (p Point) Lerp(q Point, t float64) Point {
	return p.Add(q.Sub(p).Scale(t))
}

func Midpoint(p, q Point) Point {
	return p.Lerp(q, 0.5)
}

func (p Point) ApproxEqual(q Point, tolerance float64) bool {
	return p.Distance(q) < tolerance
}

func (p Point) String() string {
	return fmt.Sprintf("(%.6f, %.6f)", p.X, p.Y)
}
