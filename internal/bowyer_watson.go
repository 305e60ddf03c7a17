package internal

import (
	"math"
	"sort"

	"github.com/pkg/errors"
)

// Facilities for building a Delaunay triangulation by incremental insertion
// (Bowyer-Watson). Each point is inserted by finding every triangle whose
// circumcircle strictly contains it (the "bad" triangles), removing them, and
// fanning new triangles from the point to the boundary of the resulting hole.
//
// Instead of a large but finite super-triangle, the mesh is enclosed by ghost
// triangles: one per convex hull edge, closed off by the vertex at Infinity.
// This is the super-triangle pushed out to infinity. A finite one would reach
// into the circumcircles of thin hull triangles and leave notches in the hull
// once stripped.
//
// The whole mesh is rebuilt from the point list on every call. The output,
// including which diagonal is chosen for cocircular points, depends only on the
// input order.

// Compute the Delaunay triangulation of points. Fewer than three points gives
// an empty mesh. Every triangle in the result is counterclockwise, and together
// they tile the convex hull.
//
// The error wraps ErrDegenerateInput if the input has duplicate, non-finite or
// all-collinear points, and is an *InvariantError if the finished mesh fails
// validation.
func Triangulate(points []Point) (result *Mesh, err error) {
	defer func() {
		recoveredErr := HandleTriangulatePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()

	if len(points) < 3 {
		return NewMesh(), nil
	}
	if err := CheckInput(points); err != nil {
		return nil, err
	}

	mesh, inserted := seedMesh(points)
	for _, p := range points[inserted:] {
		insertPoint(mesh, p)
	}

	// Strip the scaffolding
	mesh.Each(func(i int, t Triangle) {
		if t.IsGhost() {
			mesh.Remove(i)
		}
	})
	mesh.Compact()

	if violations := Validate(mesh, points); len(violations) > 0 {
		return nil, &InvariantError{Violations: violations}
	}
	return mesh, nil
}

// Build the starting mesh from the leading run of collinear points plus the
// first point off their line, returning the mesh and how many points it used.
// Those points have exactly one triangulation, a fan from the off-line point,
// so seeding with it gives the same result as inserting them one by one.
//
// Assumes the input is not all collinear.
func seedMesh(points []Point) (*Mesh, int) {
	k := 2
	for Orient(points[0], points[1], points[k]) == Collinear {
		k++
	}
	line := append([]Point(nil), points[:k]...)
	sort.Slice(line, func(i, j int) bool {
		return line[i].Less(line[j])
	})
	apex := points[k]

	mesh := NewMesh()
	for i := 0; i+1 < len(line); i++ {
		mesh.Add(Triangle{line[i], line[i+1], apex}.CCW())
	}

	// Every edge bordering a single triangle is on the hull. Its ghost takes the
	// edge in the opposite direction, keeping the ghost counterclockwise.
	var all []int
	mesh.Each(func(i int, _ Triangle) {
		all = append(all, i)
	})
	for _, e := range cavityBoundary(mesh, all) {
		mesh.Add(Triangle{e.B, e.A, Infinity})
	}
	return mesh, k + 1
}

// Reject inputs that have no well defined triangulation.
func CheckInput(points []Point) error {
	seen := make(map[Point]struct{}, len(points))
	for _, p := range points {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
			return errors.Wrapf(ErrDegenerateInput, "non-finite point %v", p)
		}
		if _, ok := seen[p]; ok {
			return errors.Wrapf(ErrDegenerateInput, "duplicate point %v", p)
		}
		seen[p] = struct{}{}
	}
	if AllCollinear(points) {
		return errors.Wrapf(ErrDegenerateInput, "all %d points are collinear", len(points))
	}
	return nil
}

// True if every point lies on one line. Assumes no duplicates.
func AllCollinear(points []Point) bool {
	if len(points) < 3 {
		return true
	}
	a, b := points[0], points[1]
	for _, p := range points[2:] {
		if Orient(a, b, p) != Collinear {
			return false
		}
	}
	return true
}

// Insert a single point into the mesh, repairing the cavity around it.
func insertPoint(mesh *Mesh, p Point) {
	var bad []int
	mesh.Each(func(i int, t Triangle) {
		if inCavity(t, p) {
			bad = append(bad, i)
		}
	})

	boundary := cavityBoundary(mesh, bad)

	for _, i := range bad {
		mesh.Remove(i)
	}

	// Boundary edges keep the direction they had in their counterclockwise bad
	// triangle, and the cavity is star shaped around p, so each new triangle
	// comes out counterclockwise.
	for _, e := range boundary {
		t := Triangle{e.A, e.B, p}
		if t.IsGhost() {
			mesh.Add(t.rotateGhost())
			continue
		}
		if t.Orientation() == Collinear {
			fatalf(ErrDegenerateInput, "point %v is collinear with cavity edge %v", p, e)
		}
		mesh.Add(t.CCW())
	}

	mesh.Compact()
}

// Find the edges belonging to exactly one of the bad triangles. Every edge
// borders at most two triangles, so counting occurrences is a parity toggle:
// interior edges of the cavity are seen twice, boundary edges once.
//
// Edges come back in the order they were first seen, and in the direction of
// the triangle they came from, which keeps the output deterministic despite
// the map.
func cavityBoundary(mesh *Mesh, bad []int) []Edge {
	counts := make(map[EdgeKey]int)
	var order []Edge
	for _, i := range bad {
		for _, e := range mesh.Get(i).Edges() {
			key := e.Key()
			if counts[key] == 0 {
				order = append(order, e)
			}
			counts[key]++
		}
	}

	boundary := make([]Edge, 0, len(order))
	for _, e := range order {
		switch counts[e.Key()] {
		case 1:
			boundary = append(boundary, e)
		case 2:
			// Shared by two bad triangles; interior to the cavity
		default:
			fatalf(ErrInvariantViolation, "edge %v borders %d triangles", e, counts[e.Key()])
		}
	}
	return boundary
}
