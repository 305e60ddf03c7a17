package internal

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrient(t *testing.T) {
	cases := []struct {
		p1, p2, p3 Point
		expected   Orientation
	}{
		{Point{0, 0}, Point{1, 0}, Point{0, 1}, CCW},
		{Point{0, 0}, Point{0, 1}, Point{1, 0}, CW},
		{Point{0, 0}, Point{1, 1}, Point{2, 2}, Collinear},
		{Point{0, 0}, Point{1, 1}, Point{-3, -3}, Collinear},
		{Point{5, 5}, Point{5, 5}, Point{1, 2}, Collinear},
	}
	for _, c := range cases {
		t.Run(fmt.Sprintf("%v %v %v is %v", c.p1, c.p2, c.p3, c.expected), func(t *testing.T) {
			assert.Equal(t, c.expected, Orient(c.p1, c.p2, c.p3))
		})
	}
}

func TestLift(t *testing.T) {
	assert.Equal(t, Vector3{3, -4, 25}, Lift(Point{3, -4}))
	assert.Equal(t, Vector3{0, 0, 0}, Lift(Point{0, 0}))
}

func TestInCircumcircle(t *testing.T) {
	// Circumcircle is the unit circle
	a, b, c := Point{1, 0}, Point{0, 1}, Point{-1, 0}
	check := func(t *testing.T, p Point, expected bool) {
		t.Helper()
		assert.Equal(t, expected, InCircumcircle(p, a, b, c), "CCW, point %v", p)
		// The answer must not depend on the winding of the triangle
		assert.Equal(t, expected, InCircumcircle(p, b, a, c), "CW, point %v", p)
	}

	t.Run("inside", func(t *testing.T) {
		check(t, Point{0, 0}, true)
		check(t, Point{0.5, -0.5}, true)
		check(t, Point{0, -0.99}, true)
	})

	t.Run("outside", func(t *testing.T) {
		check(t, Point{2, 0}, false)
		check(t, Point{0.8, 0.8}, false)
		check(t, Point{0, -1.01}, false)
	})

	t.Run("exactly on the circle is not inside", func(t *testing.T) {
		check(t, Point{0, -1}, false)
		check(t, Point{1, 0}, false)
	})
}

func TestInCircumcircle_MatchesDistance(t *testing.T) {
	// Triangle with circumcenter (2, 1.5) and radius 2.5
	tri := Triangle{Point{0, 0}, Point{4, 0}, Point{0, 3}}
	center := Point{2, 1.5}
	for _, p := range RandomDisk(3, 200, 4) {
		// Shift the disk over the triangle
		p = Point{p.X - 148, p.Y - 103.5}
		d := dist(p, center)
		if d > 2.49 && d < 2.51 {
			continue // too close to call with floats
		}
		assert.Equal(t, d < 2.5, tri.CircumcircleContains(p), "point %v at distance %v", p, d)
		assert.Equal(t, d < 2.5, tri.CCW().CircumcircleContains(p))
	}
}
