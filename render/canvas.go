// Raster rendering of triangulations with gg.
//
// Canvas implements the controller's Renderer on top of a gg.Context. World
// coordinates are y-up: the visible window is fitted to the points drawn, and
// flipped so the origin sits at the bottom left of the image.
package render

import (
	"image"
	"io"
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/delaunay/internal"
	"github.com/pkg/errors"
)

// Canvas buffers drawing operations and rasterizes them on demand, since the
// world-to-image transform depends on everything that has been drawn.
type Canvas struct {
	config Config
	points []internal.Point
	lines  []internal.Edge
	labels []internal.Triangle
}

func NewCanvas(config Config) *Canvas {
	return &Canvas{config: config.withDefaults()}
}

func (c *Canvas) DrawPoint(p internal.Point) {
	c.points = append(c.points, p)
}

func (c *Canvas) DrawLine(p1, p2 internal.Point) {
	c.lines = append(c.lines, internal.Edge{A: p1, B: p2})
}

func (c *Canvas) ClearCanvas() {
	c.points = nil
	c.lines = nil
	c.labels = nil
}

// Write a readable name at the centroid of each triangle. Only has an effect
// when labels are enabled in the config.
func (c *Canvas) LabelTriangles(triangles []internal.Triangle) {
	if !c.config.Labels {
		return
	}
	c.labels = append(c.labels, triangles...)
}

// World-space bounding box of everything drawn so far.
func (c *Canvas) bounds() (minX, minY, maxX, maxY float64) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	extend := func(p internal.Point) {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	for _, p := range c.points {
		extend(p)
	}
	for _, l := range c.lines {
		extend(l.A)
		extend(l.B)
	}
	if math.IsInf(minX, 1) {
		return 0, 0, 0, 0
	}
	return
}

// Rasterize the canvas.
func (c *Canvas) Image() image.Image {
	return c.context().Image()
}

func (c *Canvas) context() *gg.Context {
	cfg := c.config
	minX, minY, maxX, maxY := c.bounds()

	// Fit the drawing into the image, unless a fixed scale was asked for
	scale := cfg.Scale
	if scale <= 0 {
		scale = 1
		innerW := float64(cfg.Width - 2*cfg.Padding)
		innerH := float64(cfg.Height - 2*cfg.Padding)
		if maxX > minX && maxY > minY {
			scale = math.Min(innerW/(maxX-minX), innerH/(maxY-minY))
		}
	}

	dc := gg.NewContext(cfg.Width, cfg.Height)
	dc.SetHexColor(cfg.Background)
	dc.DrawRectangle(0, 0, float64(cfg.Width), float64(cfg.Height))
	dc.Fill()

	// Flip the context so the origin is at the bottom left
	dc.Translate(0, float64(cfg.Height))
	dc.Scale(1, -1)
	// Translate for padding
	dc.Translate(float64(cfg.Padding), float64(cfg.Padding))
	// Scale, then translate to min
	dc.Scale(scale, scale)
	dc.Translate(-minX, -minY)

	// Line width is always in pixels, but point radius has to undo the scale
	dc.SetLineWidth(cfg.LineWidth)
	dc.SetHexColor(cfg.LineColor)
	for _, l := range c.lines {
		dc.DrawLine(l.A.X, l.A.Y, l.B.X, l.B.Y)
	}
	dc.Stroke()

	dc.SetHexColor(cfg.PointColor)
	for _, p := range c.points {
		dc.DrawCircle(p.X, p.Y, cfg.PointRadius/scale)
	}
	dc.Fill()

	if len(c.labels) > 0 {
		c.drawLabels(dc)
	}
	return dc
}

func (c *Canvas) drawLabels(dc *gg.Context) {
	dc.SetHexColor(c.config.LabelColor)
	for _, t := range c.labels {
		cx := (t.A.X + t.B.X + t.C.X) / 3
		cy := (t.A.Y + t.B.Y + t.C.Y) / 3
		// Text has to be drawn in image space or it comes out upside down
		x, y := dc.TransformPoint(cx, cy)
		dc.Push()
		dc.Identity()
		dc.DrawStringAnchored(t.Name(), x, y, 0.5, 0.5)
		dc.Pop()
	}
}

func (c *Canvas) SavePNG(path string) error {
	if err := c.context().SavePNG(path); err != nil {
		return errors.Wrapf(err, "saving %s", path)
	}
	return nil
}

func (c *Canvas) EncodePNG(w io.Writer) error {
	return errors.Wrap(c.context().EncodePNG(w), "encoding png")
}

// Print the canvas inline in the terminal (iTerm only), by way of a temporary
// PNG file.
func (c *Canvas) Imgcat() error {
	f, err := os.CreateTemp("", "delaunay-*.png")
	if err != nil {
		return errors.Wrap(err, "creating temporary image")
	}
	defer os.Remove(f.Name())
	defer f.Close()

	if err := c.EncodePNG(f); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(err, "writing temporary image")
	}
	imgcat.CatFile(f.Name(), os.Stdout)
	return nil
}
