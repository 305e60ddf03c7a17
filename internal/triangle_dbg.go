package internal

import (
	"github.com/logrusorgru/aurora"
	"github.com/osuushi/delaunay/internal/dbg"
)

// Readable name for a triangle, coloured by its winding: green for
// counterclockwise, yellow for clockwise and red for collinear. The name is
// keyed on the vertex set, so the same triangle gets the same name whatever
// order its vertices are stored in.
func (t Triangle) DbgName() string {
	name := dbg.Name(t.Key())
	switch t.Orientation() {
	case CCW:
		return aurora.Green(name).String()
	case CW:
		return aurora.Yellow(name).String()
	default:
		return aurora.Red(name).String()
	}
}

// Plain name without terminal colours, for labelling images.
func (t Triangle) Name() string {
	return dbg.Name(t.Key())
}
