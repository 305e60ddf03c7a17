package internal

import (
	"embed"
	"log"
	"math"
	"math/rand"
)

// Fixtures are SVG files in the fixtures/ directory, available by name sans
// extension. Each <circle> is one point, in document order. If anything goes
// wrong, loading aborts the test binary.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) []Point {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}
	defer fixture.Close()

	points, err := ParseSVGPoints(fixture)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}
	if len(points) == 0 {
		log.Fatalf("No points found in fixture %q", name)
	}
	return points
}

// Some ad hoc generated fixtures

// Random points uniformly distributed in a disk, centered at (150, 105).
func RandomDisk(seed int64, n int, radius float64) []Point {
	rng := rand.New(rand.NewSource(seed))
	points := make([]Point, 0, n)
	seen := make(map[Point]struct{})
	for len(points) < n {
		x, y := rng.Float64()-0.5, rng.Float64()-0.5 // in [-0.5, 0.5)
		if x*x+y*y >= 0.25 {
			continue
		}
		p := Point{x*2*radius + 150, y*2*radius + 105}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		points = append(points, p)
	}
	return points
}

// Random points uniformly distributed in [0, width) × [0, height). A rectangle's
// hull is long and nearly straight along each side, so it is full of thin hull
// triangles whose circumcircles reach far outside the points.
func RandomRect(seed int64, n int, width, height float64) []Point {
	rng := rand.New(rand.NewSource(seed))
	points := make([]Point, 0, n)
	seen := make(map[Point]struct{})
	for len(points) < n {
		p := Point{rng.Float64() * width, rng.Float64() * height}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		points = append(points, p)
	}
	return points
}

// Shuffled copy of points
func Shuffled(seed int64, points []Point) []Point {
	rng := rand.New(rand.NewSource(seed))
	result := append([]Point(nil), points...)
	rng.Shuffle(len(result), func(i, j int) {
		result[i], result[j] = result[j], result[i]
	})
	return result
}

// Number of points strictly on the convex hull (collinear points on hull edges
// are not counted), by monotone chain.
func HullSize(points []Point) int {
	sorted := append([]Point(nil), points...)
	// Insertion sort is plenty for fixture sizes
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && sorted[j].Less(sorted[j-1]); j-- {
			sorted[j], sorted[j-1] = sorted[j-1], sorted[j]
		}
	}

	half := func(pts []Point) []Point {
		var h []Point
		for _, p := range pts {
			for len(h) >= 2 && cross(h[len(h)-2], h[len(h)-1], p) <= 0 {
				h = h[:len(h)-1]
			}
			h = append(h, p)
		}
		return h
	}
	reversed := make([]Point, len(sorted))
	for i, p := range sorted {
		reversed[len(sorted)-1-i] = p
	}
	lower := half(sorted)
	upper := half(reversed)
	return len(lower) - 1 + len(upper) - 1
}

// Order independent set of triangles, for comparing meshes.
func TriangleKeySet(mesh *Mesh) map[TriangleKey]struct{} {
	set := make(map[TriangleKey]struct{})
	mesh.Each(func(_ int, t Triangle) {
		set[t.Key()] = struct{}{}
	})
	return set
}

func dist(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}
