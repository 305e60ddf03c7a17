package internal

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	// A kite where the long diagonal is the wrong one
	a, b, c, d := Point{0, 0}, Point{4, -1}, Point{8, 0}, Point{4, 1}
	points := []Point{a, b, c, d}

	good := NewMesh(Triangle{a, b, d}, Triangle{b, c, d})
	assert.Empty(t, Validate(good, points))
	assert.True(t, IsDelaunay(good, points))

	bad := NewMesh(Triangle{a, b, c}, Triangle{a, c, d})
	violations := Validate(bad, points)
	assert.False(t, IsDelaunay(bad, points))
	assert.ElementsMatch(t, []Violation{
		{d, Triangle{a, b, c}},
		{b, Triangle{a, c, d}},
	}, violations)
}

func TestValidate_IgnoresOwnVertices(t *testing.T) {
	tri := Triangle{Point{0, 0}, Point{1, 0}, Point{0, 1}}
	assert.Empty(t, Validate(NewMesh(tri), []Point{tri.A, tri.B, tri.C}))
}

func TestInvariantError(t *testing.T) {
	tri := Triangle{Point{0, 0}, Point{2, 0}, Point{0, 2}}
	var violations []Violation
	for i := 0; i < 5; i++ {
		violations = append(violations, Violation{Point{0.1 * float64(i+1), 0.1}, tri})
	}
	var err error = &InvariantError{Violations: violations}
	assert.ErrorIs(t, err, ErrInvariantViolation)
	assert.Contains(t, err.Error(), "and 2 more")

	var invariantErr *InvariantError
	require.True(t, errors.As(err, &invariantErr))
	assert.Len(t, invariantErr.Violations, 5)
}
