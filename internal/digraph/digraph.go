// Package digraph implements a generic mutable directed graph with
// traversal, reachability, path enumeration, and dominator analysis.
// Nodes are opaque comparable values; the graph never interprets them.
package digraph

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEdgeNotFound is returned by DelEdge when the edge is not present.
var ErrEdgeNotFound = errors.New("edge not found")

// Edge is an ordered pair of nodes.
type Edge[N comparable] struct {
	Src N
	Dst N
}

// DiGraph is a directed graph over nodes of type N.
// Edges form a multiset: AddEdge never deduplicates, and the successor
// and predecessor indices mirror the edge list occurrence for occurrence.
// A DiGraph is not safe for concurrent mutation.
type DiGraph[N comparable] struct {
	nodes map[N]struct{}
	edges []Edge[N] // insertion order, duplicates allowed
	succ  map[N][]N
	pred  map[N][]N

	// Stable integer identity per node, assigned at registration and
	// never reused. Used by the DOT exporter instead of hashing.
	index map[N]int
	next  int
}

// New allocates an empty DiGraph.
func New[N comparable]() *DiGraph[N] {
	return &DiGraph[N]{
		nodes: make(map[N]struct{}),
		succ:  make(map[N][]N),
		pred:  make(map[N][]N),
		index: make(map[N]int),
	}
}

// HasNode reports whether n is registered.
func (g *DiGraph[N]) HasNode(n N) bool {
	_, ok := g.nodes[n]
	return ok
}

// Nodes returns all registered nodes. Order is unspecified.
func (g *DiGraph[N]) Nodes() []N {
	out := make([]N, 0, len(g.nodes))
	for n := range g.nodes {
		out = append(out, n)
	}
	return out
}

// NodeCount returns the number of registered nodes.
func (g *DiGraph[N]) NodeCount() int {
	return len(g.nodes)
}

// Edges returns a copy of the edge list in insertion order, including
// duplicates.
func (g *DiGraph[N]) Edges() []Edge[N] {
	out := make([]Edge[N], len(g.edges))
	copy(out, g.edges)
	return out
}

// EdgeCount returns the number of edges, counting duplicates.
func (g *DiGraph[N]) EdgeCount() int {
	return len(g.edges)
}

// AddNode registers n with empty adjacency. Adding a known node is a no-op.
func (g *DiGraph[N]) AddNode(n N) {
	if _, ok := g.nodes[n]; ok {
		return
	}
	g.nodes[n] = struct{}{}
	g.index[n] = g.next
	g.next++
}

// DelNode removes n and every edge touching it. Deleting an unknown
// node is a no-op.
func (g *DiGraph[N]) DelNode(n N) {
	if _, ok := g.nodes[n]; !ok {
		return
	}
	// Cascade edge removal before dropping the node itself so the
	// adjacency indices never hold a dangling entry.
	for _, p := range g.Predecessors(n) {
		if err := g.DelEdge(p, n); err != nil {
			panic(fmt.Sprintf("digraph: predecessor index out of sync for %v: %v", n, err))
		}
	}
	for _, s := range g.Successors(n) {
		if err := g.DelEdge(n, s); err != nil {
			panic(fmt.Sprintf("digraph: successor index out of sync for %v: %v", n, err))
		}
	}
	delete(g.nodes, n)
	delete(g.succ, n)
	delete(g.pred, n)
	delete(g.index, n)
}

// AddEdge appends the edge (src, dst), registering both endpoints if
// needed. Repeated calls create parallel edges.
func (g *DiGraph[N]) AddEdge(src, dst N) {
	g.AddNode(src)
	g.AddNode(dst)
	g.edges = append(g.edges, Edge[N]{Src: src, Dst: dst})
	g.succ[src] = append(g.succ[src], dst)
	g.pred[dst] = append(g.pred[dst], src)
}

// AddUniqEdge adds the edge (src, dst) unless dst is already a direct
// successor of src.
func (g *DiGraph[N]) AddUniqEdge(src, dst N) {
	for _, s := range g.succ[src] {
		if s == dst {
			return
		}
	}
	g.AddEdge(src, dst)
}

// DelEdge removes exactly one occurrence of (src, dst) from the edge
// list and the adjacency indices. Returns ErrEdgeNotFound if no such
// edge exists.
func (g *DiGraph[N]) DelEdge(src, dst N) error {
	i := -1
	for j, e := range g.edges {
		if e.Src == src && e.Dst == dst {
			i = j
			break
		}
	}
	if i < 0 {
		return fmt.Errorf("digraph: %v -> %v: %w", src, dst, ErrEdgeNotFound)
	}
	g.edges = append(g.edges[:i], g.edges[i+1:]...)
	g.succ[src] = removeOne(g.succ[src], dst)
	g.pred[dst] = removeOne(g.pred[dst], src)
	return nil
}

// removeOne deletes the first occurrence of v from s, preserving order.
func removeOne[N comparable](s []N, v N) []N {
	for i, x := range s {
		if x == v {
			return append(s[:i], s[i+1:]...)
		}
	}
	return s
}

// Successors returns the direct successors of n in insertion order.
// Unknown nodes yield an empty slice.
func (g *DiGraph[N]) Successors(n N) []N {
	out := make([]N, len(g.succ[n]))
	copy(out, g.succ[n])
	return out
}

// Predecessors returns the direct predecessors of n in insertion order.
// Unknown nodes yield an empty slice.
func (g *DiGraph[N]) Predecessors(n N) []N {
	out := make([]N, len(g.pred[n]))
	copy(out, g.pred[n])
	return out
}

// Leaves returns all nodes with no successors. Order is unspecified.
func (g *DiGraph[N]) Leaves() []N {
	var out []N
	for n := range g.nodes {
		if len(g.succ[n]) == 0 {
			out = append(out, n)
		}
	}
	return out
}

// Heads returns all nodes with no predecessors. Order is unspecified.
func (g *DiGraph[N]) Heads() []N {
	var out []N
	for n := range g.nodes {
		if len(g.pred[n]) == 0 {
			out = append(out, n)
		}
	}
	return out
}

// String renders the graph for debugging: one line per node, then one
// "src -> dst" line per edge.
func (g *DiGraph[N]) String() string {
	var b strings.Builder
	for n := range g.nodes {
		fmt.Fprintf(&b, "%v\n", n)
	}
	for _, e := range g.edges {
		fmt.Fprintf(&b, "%v -> %v\n", e.Src, e.Dst)
	}
	return strings.TrimSuffix(b.String(), "\n")
}
