package construct

// All geometry lives in the plane. Anything that would have a Z coordinate
// (the renderer works in 3D with Z = 0) simply leaves it off.

type Point struct {
	X float64
	Y float64
}

type Circle struct {
	Center Point
	Radius float64
}

// An infinite line through Point in the direction of Direction. The direction
// does not need to be unit length, but it must never be zero.
type Line struct {
	Point     Point
	Direction Point
}

// A closed polygon. Vertex order is angular order around the center, and there
// is an implied edge from the last vertex back to the first.
type Polygon struct {
	Points []Point
}

type Segment struct {
	Start, End Point
}
