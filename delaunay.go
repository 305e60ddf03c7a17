// Delaunay triangulation of 2D point sets by incremental insertion.
//
// Triangulate computes the triangulation of a point list in one shot. A
// Controller keeps a triangulation in step with a point list that grows, has
// its last point undone, or is cleared, and redraws it through a Renderer after
// every change.
package delaunay

import "github.com/osuushi/delaunay/internal"

type Point = internal.Point
type Edge = internal.Edge
type Triangle = internal.Triangle
type Violation = internal.Violation
type InvariantError = internal.InvariantError

type Renderer = internal.Renderer
type Controller = internal.Controller
type ControllerOption = internal.ControllerOption

var (
	ErrInvariantViolation = internal.ErrInvariantViolation
	ErrDegenerateInput    = internal.ErrDegenerateInput
)

var (
	NewController = internal.NewController
	WithLogger    = internal.WithLogger
)

// Compute the Delaunay triangulation of points, returning counterclockwise
// triangles. Fewer than three points gives no triangles and no error.
//
// Insertion order matters only when four or more points are cocircular: a point
// exactly on a circumcircle does not displace the triangle, so earlier points
// win ties.
func Triangulate(points []Point) ([]Triangle, error) {
	mesh, err := internal.Triangulate(points)
	if err != nil {
		return nil, err
	}
	return mesh.Triangles(), nil
}

// Check triangles against the points they were built from, returning every
// point strictly inside a triangle's circumcircle.
func Validate(triangles []Triangle, points []Point) []Violation {
	return internal.Validate(internal.NewMesh(triangles...), points)
}

// Read points from the centers of the <circle> elements of an SVG document.
var ParseSVGPoints = internal.ParseSVGPoints
