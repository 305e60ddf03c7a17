package internal

import (
	"io"
	"log"

	"github.com/pkg/errors"
)

// The drawing surface the controller publishes to. Implementations only need
// to draw; the controller always clears and redraws everything after a
// mutation.
type Renderer interface {
	DrawPoint(p Point)
	DrawLine(p1, p2 Point)
	ClearCanvas()
}

// Owns a point sequence and the most recent valid triangulation of it, and
// pushes both to a Renderer whenever they change.
//
// Every mutation is all or nothing: if retriangulating fails, the sequence is
// restored and the previously published mesh stays in place. A Controller is
// not safe for concurrent use.
type Controller struct {
	renderer Renderer
	logger   *log.Logger
	points   PointSequence
	mesh     *Mesh
}

type ControllerOption func(*Controller)

// Log recomputations and rejected mutations to logger.
func WithLogger(logger *log.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func NewController(renderer Renderer, opts ...ControllerOption) *Controller {
	c := &Controller{
		renderer: renderer,
		logger:   log.New(io.Discard, "", 0),
		mesh:     NewMesh(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Append a point and retriangulate. Duplicate points are rejected with an error
// wrapping ErrDegenerateInput and change nothing.
func (c *Controller) Add(p Point) error {
	if c.points.Contains(p) {
		err := errors.Wrapf(ErrDegenerateInput, "duplicate point %v", p)
		c.logger.Printf("add rejected: %v", err)
		return err
	}

	c.points.Push(p)
	if err := c.recompute(); err != nil {
		c.points.Pop()
		c.logger.Printf("add %v rejected: %v", p, err)
		return err
	}
	return nil
}

// Remove the most recently added point. Does nothing if there are no points.
func (c *Controller) Undo() error {
	if c.points.Empty() {
		return nil
	}
	p, _ := c.points.Pop()
	if err := c.recompute(); err != nil {
		// Can't happen for a sequence that was valid before the matching Add, but
		// keep the state consistent regardless.
		c.points.Push(p)
		c.logger.Printf("undo of %v rejected: %v", p, err)
		return err
	}
	return nil
}

// Drop every point and publish an empty mesh.
func (c *Controller) Reset() {
	c.points.Clear()
	c.mesh = NewMesh()
	c.logger.Printf("reset")
	c.publish()
}

// Copy of the current point sequence, oldest first.
func (c *Controller) Points() []Point {
	return c.points.Points()
}

// Copy of the currently published triangles.
func (c *Controller) Triangles() []Triangle {
	return c.mesh.Triangles()
}

// Rebuild the mesh from the whole sequence. On failure nothing is published.
func (c *Controller) recompute() error {
	mesh := NewMesh()
	if c.points.Len() >= 3 {
		var err error
		mesh, err = Triangulate(c.points.Points())
		if err != nil {
			return err
		}
	}
	c.mesh = mesh
	c.logger.Printf("triangulated %d points into %d triangles", c.points.Len(), mesh.Len())
	c.publish()
	return nil
}

func (c *Controller) publish() {
	if c.renderer == nil {
		return
	}
	c.renderer.ClearCanvas()
	for _, p := range c.points {
		c.renderer.DrawPoint(p)
	}
	c.mesh.Each(func(_ int, t Triangle) {
		c.renderer.DrawLine(t.A, t.B)
		c.renderer.DrawLine(t.B, t.C)
		c.renderer.DrawLine(t.C, t.A)
	})
}
