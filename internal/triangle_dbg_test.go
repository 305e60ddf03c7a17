package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTriangleDbgName(t *testing.T) {
	tri := Triangle{Point{0, 0}, Point{1, 0}, Point{0, 1}}
	flipped := Triangle{tri.B, tri.A, tri.C}

	// Same vertex set, same name, whatever the order
	assert.Equal(t, tri.Name(), flipped.Name())
	assert.Contains(t, tri.DbgName(), tri.Name())
	// Winding shows up as colour
	assert.NotEqual(t, tri.DbgName(), flipped.DbgName())

	degenerate := Triangle{Point{0, 0}, Point{1, 1}, Point{2, 2}}
	assert.Contains(t, degenerate.DbgName(), degenerate.Name())
}
