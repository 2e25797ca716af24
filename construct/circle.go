package construct

import "math"

// A circle is only meaningful with a positive radius.
func (c Circle) Valid() bool {
	return c.Radius > 0 && !math.IsNaN(c.Radius) && !math.IsInf(c.Radius, 0)
}

// The point on the circle at the given polar angle, measured counterclockwise
// from the positive x axis.
func (c Circle) PointAt(theta float64) Point {
	sin, cos := math.Sincos(theta)
	return Point{c.Center.X + c.Radius*cos, c.Center.Y + c.Radius*sin}
}

// Circle through q, centered at center. This is the compass operation.
func CircleThrough(center, q Point) Circle {
	return Circle{Center: center, Radius: center.Distance(q)}
}

// Circle having p and q as the ends of a diameter
func CircleOnDiameter(p, q Point) Circle {
	return Circle{Center: Midpoint(p, q), Radius: p.Distance(q) / 2}
}

func (c Circle) Contains(p Point) bool {
	return p.Distance(c.Center) < c.Radius
}

func (c Circle) OnCircle(p Point, tolerance float64) bool {
	return math.Abs(p.Distance(c.Center)-c.Radius) < tolerance
}
