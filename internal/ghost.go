package internal

import "math"

// The vertex at infinity closing off the ghost triangles. Input points are
// finite, so it never collides with one.
var Infinity = Point{math.Inf(1), math.Inf(1)}

// A ghost triangle (u, v, Infinity) sits outside hull edge u-v. It is
// counterclockwise when the outside of the hull is to the left of u->v.
func (t Triangle) IsGhost() bool {
	return t.HasVertex(Infinity)
}

// Rotate a ghost triangle so Infinity comes last, keeping the cyclic order.
func (t Triangle) rotateGhost() Triangle {
	switch Infinity {
	case t.A:
		return Triangle{t.B, t.C, t.A}
	case t.B:
		return Triangle{t.C, t.A, t.B}
	}
	return t
}

// As the third vertex of a triangle recedes to infinity, its circumcircle
// through u and v tends to the open half-plane on that vertex's side of u-v.
// The chord u-v stays inside the circle the whole way, so the open segment
// counts too. The endpoints and the rest of the line do not.
func ghostCircumcircleContains(t Triangle, p Point) bool {
	t = t.rotateGhost()
	switch Orient(t.A, t.B, p) {
	case CCW:
		return true
	case Collinear:
		return t.A.Less(p) && p.Less(t.B) || t.B.Less(p) && p.Less(t.A)
	}
	return false
}

// Whether inserting p destroys t.
func inCavity(t Triangle, p Point) bool {
	if t.IsGhost() {
		return ghostCircumcircleContains(t, p)
	}
	return t.CircumcircleContains(p)
}
