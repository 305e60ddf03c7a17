package internal

import "fmt"

// A point found strictly inside the circumcircle of a mesh triangle.
type Violation struct {
	Point    Point
	Triangle Triangle
}

func (v Violation) String() string {
	return fmt.Sprintf("%v inside circumcircle of %v", v.Point, v.Triangle)
}

// Check the Delaunay property of a finished mesh against the points it was
// built from, returning every offending (point, triangle) pair. This is
// O(triangles × points), so it's a correctness gate, not something to call in
// a hot loop.
func Validate(mesh *Mesh, points []Point) []Violation {
	var violations []Violation
	mesh.Each(func(_ int, t Triangle) {
		for _, p := range points {
			if t.HasVertex(p) {
				continue
			}
			if t.CircumcircleContains(p) {
				violations = append(violations, Violation{p, t})
			}
		}
	})
	return violations
}

func IsDelaunay(mesh *Mesh, points []Point) bool {
	return len(Validate(mesh, points)) == 0
}
