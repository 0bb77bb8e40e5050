package digraph

// NodeSet is an unordered set of nodes.
type NodeSet[N comparable] map[N]struct{}

// NewNodeSet builds a set from the given nodes.
func NewNodeSet[N comparable](nodes ...N) NodeSet[N] {
	s := make(NodeSet[N], len(nodes))
	for _, n := range nodes {
		s[n] = struct{}{}
	}
	return s
}

// Has reports membership.
func (s NodeSet[N]) Has(n N) bool {
	_, ok := s[n]
	return ok
}

// Add inserts n.
func (s NodeSet[N]) Add(n N) {
	s[n] = struct{}{}
}

// Clone returns an independent copy.
func (s NodeSet[N]) Clone() NodeSet[N] {
	out := make(NodeSet[N], len(s))
	for n := range s {
		out[n] = struct{}{}
	}
	return out
}

// IntersectWith removes every element of s not present in other.
func (s NodeSet[N]) IntersectWith(other NodeSet[N]) {
	for n := range s {
		if _, ok := other[n]; !ok {
			delete(s, n)
		}
	}
}

// Equal reports whether both sets hold exactly the same nodes.
func (s NodeSet[N]) Equal(other NodeSet[N]) bool {
	if len(s) != len(other) {
		return false
	}
	for n := range s {
		if _, ok := other[n]; !ok {
			return false
		}
	}
	return true
}

// Nodes returns the elements in unspecified order.
func (s NodeSet[N]) Nodes() []N {
	out := make([]N, 0, len(s))
	for n := range s {
		out = append(out, n)
	}
	return out
}
