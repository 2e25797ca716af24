package construct

import "math"

// Unsigned angle between two vectors, in [0, π].
func AngleBetween(u, w Point) float64 {
	return acos(u.Normalize().Dot(w.Normalize()))
}

// Angle at vertex v of the triangle p, v, q
func AngleAt(v, p, q Point) float64 {
	return AngleBetween(p.Sub(v), q.Sub(v))
}

// Signed angle to rotate u onto w, in (-π, π]. Positive is counterclockwise.
func SignedAngle(u, w Point) float64 {
	return math.Atan2(u.Cross(w), u.Dot(w))
}

// Unit direction of the bisector of the angle between u and w. For opposite
// vectors the sum vanishes and the result is NaN; compass constructions never
// bisect a straight angle this way.
func Bisect(u, w Point) Point {
	return u.Normalize().Add(w.Normalize()).Normalize()
}

// Unit direction dividing the angle from u to w at fraction f, so f = 0.5
// bisects and f = 0.25 quarters. The rotation goes from u toward w through the
// smaller angle.
func DivideAngle(u, w Point, f float64) Point {
	theta := AngleBetween(u, w)
	if u.Cross(w) < 0 {
		theta = -theta
	}
	return u.Normalize().Rotate(f * theta)
}
