package digraph

import (
	"fmt"
	"iter"
)

// ComputeDominators returns, for every node reachable from head, the
// full set of its dominators (head dominates everything, every node
// dominates itself). Nodes not reachable from head are absent from the
// result.
func (g *DiGraph[N]) ComputeDominators(head N) map[N]NodeSet[N] {
	return computeGenericDominators(head,
		g.ReachableSons(head),
		func(n N) []N { return g.pred[n] },
		func(n N) []N { return g.succ[n] })
}

// ComputePostdominators returns, for every node from which leaf is
// reachable, the full set of its postdominators. It is the mirror of
// ComputeDominators with every edge reversed.
func (g *DiGraph[N]) ComputePostdominators(leaf N) map[N]NodeSet[N] {
	return computeGenericDominators(leaf,
		g.ReachableParents(leaf),
		func(n N) []N { return g.succ[n] },
		func(n N) []N { return g.pred[n] })
}

// computeGenericDominators runs the dominator fixed point in either
// direction. reachable yields the universe (nodes reachable from
// start); prev and next look up neighbors against and along the
// dominance direction. Every reachable node's candidate set starts as
// the full universe, except start, whose set is {start}; a worklist
// then intersects predecessor sets until nothing changes.
func computeGenericDominators[N comparable](start N, reachable iter.Seq[N], prev, next func(N) []N) map[N]NodeSet[N] {
	universe := make(NodeSet[N])
	for n := range reachable {
		universe.Add(n)
	}

	doms := make(map[N]NodeSet[N], len(universe))
	for n := range universe {
		doms[n] = universe.Clone()
	}
	doms[start] = NewNodeSet(start)

	todo := universe.Clone()
	for len(todo) > 0 {
		var n N
		for n = range todo {
			break
		}
		delete(todo, n)

		// The start set never changes.
		if n == start {
			continue
		}

		// Intersect the dominator sets of all in-universe predecessors.
		var newDom NodeSet[N]
		for _, p := range prev(n) {
			if !universe.Has(p) {
				continue
			}
			if newDom == nil {
				newDom = doms[p].Clone()
			} else {
				newDom.IntersectWith(doms[p])
			}
		}

		// Only the start node may lack in-universe predecessors; a
		// non-start node without one means the reachability pass and
		// the adjacency indices disagree. Abort loudly rather than
		// return wrong sets.
		if newDom == nil {
			panic(fmt.Sprintf("digraph: reachable node %v has no predecessor in the universe", n))
		}

		newDom.Add(n)

		if newDom.Equal(doms[n]) {
			continue
		}
		doms[n] = newDom
		for _, s := range next(n) {
			if universe.Has(s) {
				todo.Add(s)
			}
		}
	}
	return doms
}

// ImmediateDominators reduces full dominator sets to the immediate
// dominator of each node: the unique strict dominator closest to it.
// The start node (whose only dominator is itself) has no immediate
// dominator and is absent from the result.
func ImmediateDominators[N comparable](doms map[N]NodeSet[N]) map[N]N {
	idom := make(map[N]N, len(doms))
	for n, ds := range doms {
		if len(ds) <= 1 {
			continue // start node
		}
		// The immediate dominator is the strict dominator whose own
		// set holds every other strict dominator of n.
		for d := range ds {
			if d == n {
				continue
			}
			if len(doms[d]) == len(ds)-1 {
				idom[n] = d
				break
			}
		}
	}
	return idom
}

// DominatorTree inverts an immediate-dominator map into a child map:
// each node to the nodes it immediately dominates.
func DominatorTree[N comparable](idom map[N]N) map[N][]N {
	tree := make(map[N][]N, len(idom))
	for n, d := range idom {
		tree[d] = append(tree[d], n)
	}
	return tree
}
