package construct

import "math"

// Enumerate the n vertices of a regular polygon inscribed in c, starting at
// polar angle theta0 and proceeding counterclockwise in steps of exactly 2π/n.
//
// No attempt is made to correct theta0. If it came from a chain of floating
// point intersections, the polygon is only as good as that chain.
func RegularPolygon(c Circle, theta0 float64, n int) Polygon {
	return SteppedPolygon(c, theta0, 2*math.Pi/float64(n), n)
}

// Like RegularPolygon, but with an explicit angular step. This is how a
// polygon is laid out from a step measured off a construction, the way you
// would walk a compass around the circle.
func SteppedPolygon(c Circle, theta0, step float64, n int) Polygon {
	points := make([]Point, n)
	for k := range points {
		points[k] = c.PointAt(theta0 + float64(k)*step)
	}
	return Polygon{Points: points}
}

// The i'th vertex, with indices wrapping around so that Vertex(n) == Vertex(0).
func (poly Polygon) Vertex(i int) Point {
	return poly.Points[CircularIndex(i, len(poly.Points))]
}

// Edges of the closed polygon, including the closing edge from the last vertex
// back to the first.
func (poly Polygon) Edges() []Segment {
	edges := make([]Segment, len(poly.Points))
	for i, p := range poly.Points {
		edges[i] = Segment{p, poly.Vertex(i + 1)}
	}
	return edges
}

// Angle subtended at center by each edge, in edge order.
func (poly Polygon) CentralAngles(center Point) []float64 {
	angles := make([]float64, len(poly.Points))
	for i, edge := range poly.Edges() {
		angles[i] = AngleAt(center, edge.Start, edge.End)
	}
	return angles
}

func (poly Polygon) Reverse() Polygon {
	newPoly := Polygon{}
	for i := len(poly.Points) - 1; i >= 0; i-- {
		newPoly.Points = append(newPoly.Points, poly.Points[i])
	}
	return newPoly
}

// Shoelace area. Positive for counterclockwise polygons.
func (poly Polygon) SignedArea() float64 {
	var sum float64
	for _, edge := range poly.Edges() {
		sum += edge.Start.Cross(edge.End)
	}
	return sum / 2
}

func (poly Polygon) Perimeter() float64 {
	var sum float64
	for _, edge := range poly.Edges() {
		sum += edge.Length()
	}
	return sum
}
