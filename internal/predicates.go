package internal

// Geometric predicates. None of these use a tolerance: a zero determinant is
// treated as exactly zero, and the in-circle tie-break below depends on that.

type Orientation int

const (
	Collinear Orientation = iota
	CCW
	CW
)

func (o Orientation) String() string {
	switch o {
	case CCW:
		return "CCW"
	case CW:
		return "CW"
	default:
		return "Collinear"
	}
}

// Cross product of p1->p2 and p1->p3
func cross(p1, p2, p3 Point) float64 {
	return (p2.X-p1.X)*(p3.Y-p1.Y) - (p2.Y-p1.Y)*(p3.X-p1.X)
}

func Orient(p1, p2, p3 Point) Orientation {
	c := cross(p1, p2, p3)
	switch {
	case c > 0:
		return CCW
	case c < 0:
		return CW
	default:
		return Collinear
	}
}

type Vector3 struct {
	X, Y, Z float64
}

func (v Vector3) Sub(other Vector3) Vector3 {
	return Vector3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Lift a point onto the paraboloid z = x² + y². Four points are cocircular
// exactly when their lifts are coplanar.
func Lift(p Point) Vector3 {
	return Vector3{p.X, p.Y, p.X*p.X + p.Y*p.Y}
}

// Determinant of the 3x3 matrix with rows a, b, c
func det3(a, b, c Vector3) float64 {
	return a.X*(b.Y*c.Z-b.Z*c.Y) -
		a.Y*(b.X*c.Z-b.Z*c.X) +
		a.Z*(b.X*c.Y-b.Y*c.X)
}

// Report whether p lies strictly inside the circumcircle of (p1, p2, p3).
//
// The sign of the lifted determinant is interpreted according to the winding of
// (p1, p2, p3) as given, so callers must pass the vertices in the order the
// triangle actually stores them. A point exactly on the circle is not inside.
func InCircumcircle(p, p1, p2, p3 Point) bool {
	lp := Lift(p)
	v1 := Lift(p1).Sub(lp)
	v2 := Lift(p2).Sub(lp)
	v3 := Lift(p3).Sub(lp)
	det := det3(v1, v2, v3)

	if Orient(p1, p2, p3) == CCW {
		return det > 0
	}
	return det < 0
}

// Convenience wrapper using the triangle's stored order.
func (t Triangle) CircumcircleContains(p Point) bool {
	return InCircumcircle(p, t.A, t.B, t.C)
}
