package construct

import "math"

// Line through two distinct points. This is the straightedge operation.
func LineThrough(p, q Point) Line {
	return Line{Point: p, Direction: q.Sub(p)}
}

func LineFrom(p, direction Point) Line {
	return Line{Point: p, Direction: direction}
}

// Point at parameter t along the line.
func (l Line) At(t float64) Point {
	return l.Point.Add(l.Direction.Scale(t))
}

// The line perpendicular to this one passing through p
func (l Line) Perpendicular(p Point) Line {
	return Line{Point: p, Direction: l.Direction.Perp()}
}

// Unsigned distance from p to the line
func (l Line) Distance(p Point) float64 {
	return math.Abs(l.Direction.Cross(p.Sub(l.Point))) / l.Direction.Length()
}

// Foot of the perpendicular from p
func (l Line) Project(p Point) Point {
	t := p.Sub(l.Point).Dot(l.Direction) / l.Direction.Dot(l.Direction)
	return l.At(t)
}

func (s Segment) Line() Line {
	return LineThrough(s.Start, s.End)
}

func (s Segment) Length() float64 {
	return s.Start.Distance(s.End)
}
