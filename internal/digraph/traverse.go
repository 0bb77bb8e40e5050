package digraph

import "iter"

// SuccessorsSeq iterates the direct successors of n in insertion order
// without allocating a copy.
func (g *DiGraph[N]) SuccessorsSeq(n N) iter.Seq[N] {
	return func(yield func(N) bool) {
		for _, s := range g.succ[n] {
			if !yield(s) {
				return
			}
		}
	}
}

// PredecessorsSeq iterates the direct predecessors of n in insertion
// order without allocating a copy.
func (g *DiGraph[N]) PredecessorsSeq(n N) iter.Seq[N] {
	return func(yield func(N) bool) {
		for _, p := range g.pred[n] {
			if !yield(p) {
				return
			}
		}
	}
}

// LeavesSeq iterates all nodes with no successors. Order is unspecified.
func (g *DiGraph[N]) LeavesSeq() iter.Seq[N] {
	return func(yield func(N) bool) {
		for n := range g.nodes {
			if len(g.succ[n]) == 0 && !yield(n) {
				return
			}
		}
	}
}

// HeadsSeq iterates all nodes with no predecessors. Order is unspecified.
func (g *DiGraph[N]) HeadsSeq() iter.Seq[N] {
	return func(yield func(N) bool) {
		for n := range g.nodes {
			if len(g.pred[n]) == 0 && !yield(n) {
				return
			}
		}
	}
}

// ReachableSons iterates every node reachable from head by following
// successor edges, head included. Each node is yielded exactly once,
// so the sequence is finite even on cyclic graphs. Order is a valid
// traversal order but otherwise unspecified. The sequence is
// restartable: every range over it walks the graph anew.
func (g *DiGraph[N]) ReachableSons(head N) iter.Seq[N] {
	return reachableFrom(head, func(n N) []N { return g.succ[n] })
}

// ReachableParents iterates every node from which leaf is reachable,
// leaf included, by following predecessor edges.
func (g *DiGraph[N]) ReachableParents(leaf N) iter.Seq[N] {
	return reachableFrom(leaf, func(n N) []N { return g.pred[n] })
}

// reachableFrom is the shared worklist traversal. An explicit stack
// plus visited set keeps it iterative; deep graphs must not recurse.
func reachableFrom[N comparable](start N, next func(N) []N) iter.Seq[N] {
	return func(yield func(N) bool) {
		visited := make(NodeSet[N])
		todo := []N{start}
		for len(todo) > 0 {
			n := todo[len(todo)-1]
			todo = todo[:len(todo)-1]
			if visited.Has(n) {
				continue
			}
			visited.Add(n)
			if !yield(n) {
				return
			}
			todo = append(todo, next(n)...)
		}
	}
}
