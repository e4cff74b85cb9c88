package sketch

import (
	"github.com/philipparndt/gocad/pkg/geometry"
)

// maxCapacity is the largest node count of any kind
const maxCapacity = 3

// Shape is one drawable entity: a kind plus its ordered control nodes.
// Node storage is fixed-size; only the first Len() entries are meaningful.
type Shape struct {
	kind    Kind
	nodes   [maxCapacity]geometry.Vector2
	count   int
	expired bool
}

// NewShape creates an empty shape of the given kind
func NewShape(kind Kind) Shape {
	return Shape{kind: kind}
}

// Kind returns the shape variant
func (s *Shape) Kind() Kind {
	return s.kind
}

// Len returns the number of placed nodes
func (s *Shape) Len() int {
	return s.count
}

// MaxNodes returns the node capacity of the shape's kind
func (s *Shape) MaxNodes() int {
	return s.kind.MaxNodes()
}

// Complete reports whether every node of the shape has been placed
func (s *Shape) Complete() bool {
	return s.count == s.MaxNodes()
}

// Node returns the position of node i
func (s *Shape) Node(i int) geometry.Vector2 {
	return s.nodes[i]
}

// Nodes returns a copy of the placed node positions in order
func (s *Shape) Nodes() []geometry.Vector2 {
	out := make([]geometry.Vector2, s.count)
	copy(out, s.nodes[:s.count])
	return out
}

// SetNode moves node i
func (s *Shape) SetNode(i int, pos geometry.Vector2) {
	if i < 0 || i >= s.count {
		return
	}
	s.nodes[i] = pos
}

// AppendNode adds a node at pos and returns its index.
// It returns false without changing the shape when the shape is full.
func (s *Shape) AppendNode(pos geometry.Vector2) (int, bool) {
	if s.count >= s.MaxNodes() {
		return -1, false
	}
	s.nodes[s.count] = pos
	s.count++
	return s.count - 1, true
}

// HitTest returns the index of the first node exactly at pos.
// Exact equality is sufficient because every node is placed on the grid.
func (s *Shape) HitTest(pos geometry.Vector2) (int, bool) {
	for i := 0; i < s.count; i++ {
		if s.nodes[i] == pos {
			return i, true
		}
	}
	return -1, false
}

// Expire marks the shape for removal on the next sweep
func (s *Shape) Expire() {
	s.expired = true
}

// Expired reports whether the shape is pending removal
func (s *Shape) Expired() bool {
	return s.expired
}

// CircleRadius returns the radius of a circle: the distance between its two
// nodes truncated to an integer. It returns 0 for incomplete shapes.
func (s *Shape) CircleRadius() int {
	if s.count < 2 {
		return 0
	}
	return int(s.nodes[1].Distance(s.nodes[0]))
}

// Bounds returns the normalized rectangle spanned by the first two nodes
func (s *Shape) Bounds() geometry.Rect {
	if s.count < 2 {
		return geometry.Rect{}
	}
	return geometry.RectFromCorners(s.nodes[0], s.nodes[1])
}
