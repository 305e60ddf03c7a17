package internal

import "fmt"

// Points are plain values. Equality is exact: the triangulator never rounds or
// snaps coordinates, so a point can be used directly as a map key and compared
// with ==.
type Point struct {
	X float64
	Y float64
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Lexicographic ordering, X first. This is only used to canonicalize edges and
// triangles, and has no geometric meaning.
func (p Point) Less(other Point) bool {
	if p.X != other.X {
		return p.X < other.X
	}
	return p.Y < other.Y
}

// An undirected edge. (A, B) and (B, A) are the same edge; use Key() when
// comparing or hashing.
type Edge struct {
	A, B Point
}

// Canonical form of an edge, with the lexicographically smaller point first.
type EdgeKey struct {
	Lo, Hi Point
}

func (e Edge) Key() EdgeKey {
	if e.B.Less(e.A) {
		return EdgeKey{e.B, e.A}
	}
	return EdgeKey{e.A, e.B}
}

func (e Edge) String() string {
	return fmt.Sprintf("%v-%v", e.A, e.B)
}

// Triangles produced by the triangulator are always stored counterclockwise.
// Triangles built by hand may have any order; Orientation() tells you which.
type Triangle struct {
	A, B, C Point
}

// Canonical, order independent form of a triangle.
type TriangleKey [3]Point

func (t Triangle) Key() TriangleKey {
	k := TriangleKey{t.A, t.B, t.C}
	// Three element sort
	if k[1].Less(k[0]) {
		k[0], k[1] = k[1], k[0]
	}
	if k[2].Less(k[1]) {
		k[1], k[2] = k[2], k[1]
	}
	if k[1].Less(k[0]) {
		k[0], k[1] = k[1], k[0]
	}
	return k
}

func (t Triangle) HasVertex(p Point) bool {
	return t.A == p || t.B == p || t.C == p
}

// True if the triangles share at least one vertex.
func (t Triangle) SharesVertexWith(other Triangle) bool {
	return t.HasVertex(other.A) || t.HasVertex(other.B) || t.HasVertex(other.C)
}

func (t Triangle) Edges() [3]Edge {
	return [3]Edge{{t.A, t.B}, {t.B, t.C}, {t.C, t.A}}
}

func (t Triangle) Orientation() Orientation {
	return Orient(t.A, t.B, t.C)
}

// Positive for counterclockwise triangles, negative for clockwise.
func (t Triangle) SignedArea() float64 {
	return cross(t.A, t.B, t.C) / 2
}

// Return the same triangle with its vertices in counterclockwise order. A
// collinear triangle is returned unchanged.
func (t Triangle) CCW() Triangle {
	if t.Orientation() == CW {
		return Triangle{t.B, t.A, t.C}
	}
	return t
}

func (t Triangle) String() string {
	return fmt.Sprintf("Triangle{%v, %v, %v}", t.A, t.B, t.C)
}
