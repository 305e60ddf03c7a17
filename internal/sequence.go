package internal

// The ordered point sequence driving the triangulator. Insertion order matters
// (it is the order points are fed to Bowyer-Watson), and it is the only history
// needed to support undo, so this is just a stack.
type PointSequence []Point

func (s *PointSequence) Push(p Point) {
	*s = append(*s, p)
}

// Pop the last point. The boolean is false if the sequence was empty.
func (s *PointSequence) Pop() (Point, bool) {
	if len(*s) == 0 {
		return Point{}, false
	}
	p := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return p, true
}

func (s *PointSequence) Empty() bool {
	return len(*s) == 0
}

func (s *PointSequence) Len() int {
	return len(*s)
}

func (s *PointSequence) Clear() {
	*s = (*s)[:0]
}

func (s *PointSequence) Contains(p Point) bool {
	for _, q := range *s {
		if q == p {
			return true
		}
	}
	return false
}

// Copy of the points, oldest first
func (s *PointSequence) Points() []Point {
	return append([]Point(nil), (*s)...)
}
