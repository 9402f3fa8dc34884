package deform

// VertexSet is the set of vertex indices brushed on the current tick.
// Membership is a mask sized to the vertex buffer; Indices keeps first-seen
// order. Indices outside the capacity are rejected, never stored.
type VertexSet struct {
	member  []bool
	indices []int
}

// NewVertexSet creates an empty set able to hold indices in [0, n).
func NewVertexSet(n int) *VertexSet {
	return &VertexSet{member: make([]bool, n)}
}

// Add inserts i. It returns false if i is out of range or already present.
func (s *VertexSet) Add(i int) bool {
	if i < 0 || i >= len(s.member) || s.member[i] {
		return false
	}
	s.member[i] = true
	s.indices = append(s.indices, i)
	return true
}

// Contains reports whether i is in the set.
func (s *VertexSet) Contains(i int) bool {
	return i >= 0 && i < len(s.member) && s.member[i]
}

// Len returns the number of members.
func (s *VertexSet) Len() int { return len(s.indices) }

// Capacity returns the exclusive upper bound on valid indices.
func (s *VertexSet) Capacity() int { return len(s.member) }

// Indices returns the members in insertion order. The slice is reused by
// Reset; copy it to keep it across ticks.
func (s *VertexSet) Indices() []int { return s.indices }

// Reset empties the set, keeping its capacity.
func (s *VertexSet) Reset() {
	for _, i := range s.indices {
		s.member[i] = false
	}
	s.indices = s.indices[:0]
}

// Resize empties the set and changes its capacity to n.
func (s *VertexSet) Resize(n int) {
	if n == len(s.member) {
		s.Reset()
		return
	}
	s.member = make([]bool, n)
	s.indices = s.indices[:0]
}
