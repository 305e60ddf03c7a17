package internal

// A Mesh is an arena of triangles. Triangles are addressed by their index in
// the arena, and removal only clears the alive marker, so indexes handed out
// earlier stay valid until Compact is called.
type Mesh struct {
	triangles []Triangle
	alive     []bool
	count     int
}

func NewMesh(triangles ...Triangle) *Mesh {
	m := &Mesh{}
	for _, t := range triangles {
		m.Add(t)
	}
	return m
}

// Add a triangle and return its index
func (m *Mesh) Add(t Triangle) int {
	m.triangles = append(m.triangles, t)
	m.alive = append(m.alive, true)
	m.count++
	return len(m.triangles) - 1
}

func (m *Mesh) Remove(i int) {
	if !m.alive[i] {
		return
	}
	m.alive[i] = false
	m.count--
}

func (m *Mesh) Alive(i int) bool {
	return m.alive[i]
}

func (m *Mesh) Get(i int) Triangle {
	return m.triangles[i]
}

// Number of live triangles
func (m *Mesh) Len() int {
	if m == nil {
		return 0
	}
	return m.count
}

// Call fn for each live triangle, in insertion order.
func (m *Mesh) Each(fn func(i int, t Triangle)) {
	if m == nil {
		return
	}
	for i, t := range m.triangles {
		if m.alive[i] {
			fn(i, t)
		}
	}
}

// Copy of the live triangles, in insertion order.
func (m *Mesh) Triangles() []Triangle {
	result := make([]Triangle, 0, m.Len())
	m.Each(func(_ int, t Triangle) {
		result = append(result, t)
	})
	return result
}

// Drop removed triangles from the arena. This invalidates indexes.
func (m *Mesh) Compact() {
	m.triangles = m.Triangles()
	m.alive = make([]bool, len(m.triangles))
	for i := range m.alive {
		m.alive[i] = true
	}
}

// True if the mesh holds a triangle with the same vertex set as t, regardless
// of vertex order.
func (m *Mesh) Contains(t Triangle) bool {
	key := t.Key()
	found := false
	m.Each(func(_ int, other Triangle) {
		if other.Key() == key {
			found = true
		}
	})
	return found
}

// Count how many live triangles border each edge.
func (m *Mesh) EdgeUse() map[EdgeKey]int {
	use := make(map[EdgeKey]int)
	m.Each(func(_ int, t Triangle) {
		for _, e := range t.Edges() {
			use[e.Key()]++
		}
	})
	return use
}

// Unique edges of the mesh, in the order they are first seen.
func (m *Mesh) Edges() []Edge {
	seen := make(map[EdgeKey]struct{})
	var edges []Edge
	m.Each(func(_ int, t Triangle) {
		for _, e := range t.Edges() {
			key := e.Key()
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			edges = append(edges, e)
		}
	})
	return edges
}
