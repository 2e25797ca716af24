package construct

import "math"

// Intersect a circle with an infinite line. The line's parametric form
// L(t) = P + t·D is substituted into |L(t) - C|² = r², giving a quadratic in t.
//
// The result is empty if the line misses the circle, and otherwise holds both
// roots ordered by increasing t, so the first point is the one the line reaches
// first when travelling along its direction. A tangent line gives the same
// point twice; use IntersectCircleLineDistinct if that matters.
//
// The direction must not be zero. That is a caller error and the result is
// undefined.
func IntersectCircleLine(c Circle, l Line) []Point {
	dx, dy := l.Direction.X, l.Direction.Y
	px, py := l.Point.X-c.Center.X, l.Point.Y-c.Center.Y

	a := dx*dx + dy*dy
	b := 2 * (dx*px + dy*py)
	cc := px*px + py*py - c.Radius*c.Radius

	discriminant := b*b - 4*a*cc
	if discriminant < 0 {
		return []Point{}
	}

	root := math.Sqrt(discriminant)
	t1 := (-b - root) / (2 * a)
	t2 := (-b + root) / (2 * a)
	return []Point{l.At(t1), l.At(t2)}
}

// Like IntersectCircleLine, but a line within Tolerance of tangency yields
// exactly one point (the foot of the perpendicular from the center) rather
// than two nearly identical ones.
func IntersectCircleLineDistinct(c Circle, l Line) []Point {
	d := l.Distance(c.Center)
	tolerance := Tolerance * math.Max(1, c.Radius)
	switch {
	case math.Abs(d-c.Radius) < tolerance:
		return []Point{l.Project(c.Center)}
	case d > c.Radius:
		return []Point{}
	}
	return IntersectCircleLine(c, l)
}

// Intersect two circles using the radical line. With d the distance between
// centers, the chord joining the intersections crosses the line of centers at
// distance a from the first center, and has half length h.
//
// Results are M + h·⊥ and M - h·⊥, where ⊥ is the clockwise perpendicular of
// C2 - C1. Swapping the circles flips ⊥, so the same two points come back in
// the other order.
//
// Concentric circles and circles that do not meet give an empty result.
func IntersectCircles(c1, c2 Circle) []Point {
	axis := c2.Center.Sub(c1.Center)
	d := axis.Length()
	if d == 0 {
		return []Point{}
	}

	r1, r2 := c1.Radius, c2.Radius
	a := (r1*r1 - r2*r2 + d*d) / (2 * d)
	h2 := r1*r1 - a*a
	if h2 < 0 {
		return []Point{}
	}
	h := math.Sqrt(h2)

	mid := c1.Center.Add(axis.Scale(a / d))
	perp := Point{axis.Y, -axis.X}.Scale(1 / d)
	return []Point{mid.Add(perp.Scale(h)), mid.Sub(perp.Scale(h))}
}

// Intersect two infinite lines. Parallel (or coincident) lines report false.
func IntersectLines(l1, l2 Line) (Point, bool) {
	denom := l1.Direction.Cross(l2.Direction)
	scale := l1.Direction.Length() * l2.Direction.Length()
	if math.Abs(denom) <= Tolerance*scale {
		return Point{}, false
	}
	t := l2.Point.Sub(l1.Point).Cross(l2.Direction) / denom
	return l1.At(t), true
}

// Of a set of candidate points, the one nearest to (or farthest from) a
// reference point. Constructions use this to say "the intersection on B's side".
func Nearest(ref Point, candidates []Point) (Point, bool) {
	return pick(ref, candidates, func(d, best float64) bool { return d < best })
}

func Farthest(ref Point, candidates []Point) (Point, bool) {
	return pick(ref, candidates, func(d, best float64) bool { return d > best })
}

func pick(ref Point, candidates []Point, better func(d, best float64) bool) (Point, bool) {
	if len(candidates) == 0 {
		return Point{}, false
	}
	best := candidates[0]
	bestDistance := ref.Distance(best)
	for _, p := range candidates[1:] {
		if d := ref.Distance(p); better(d, bestDistance) {
			best, bestDistance = p, d
		}
	}
	return best, true
}
