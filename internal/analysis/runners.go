package analysis

import (
	"fmt"
	"iter"
	"slices"

	"github.com/nhoffmann/graphd/internal/digraph"
)

func requireNode(m *Model, field, name string) error {
	if name == "" {
		return fmt.Errorf("%w: %s is required", ErrBadRequest, field)
	}
	if !m.G.HasNode(name) {
		return fmt.Errorf("%w: unknown node %q", ErrBadRequest, name)
	}
	return nil
}

func sortedSets(doms map[string]digraph.NodeSet[string]) map[string][]string {
	out := make(map[string][]string, len(doms))
	for n, s := range doms {
		nodes := s.Nodes()
		slices.Sort(nodes)
		out[n] = nodes
	}
	return out
}

func runDominators(m *Model, req *Request) (*Result, error) {
	if err := requireNode(m, "head", req.Head); err != nil {
		return nil, err
	}
	doms := m.G.ComputeDominators(req.Head)
	return &Result{
		Kind:       KindDominators,
		Dominators: sortedSets(doms),
		Immediate:  digraph.ImmediateDominators(doms),
	}, nil
}

func runPostdominators(m *Model, req *Request) (*Result, error) {
	if err := requireNode(m, "leaf", req.Leaf); err != nil {
		return nil, err
	}
	doms := m.G.ComputePostdominators(req.Leaf)
	return &Result{
		Kind:       KindPostdominators,
		Dominators: sortedSets(doms),
		Immediate:  digraph.ImmediateDominators(doms),
	}, nil
}

func runPaths(m *Model, req *Request) (*Result, error) {
	if err := requireNode(m, "src", req.Src); err != nil {
		return nil, err
	}
	if err := requireNode(m, "dst", req.Dst); err != nil {
		return nil, err
	}
	if req.Cycles < 0 {
		return nil, fmt.Errorf("%w: cycles must be >= 0", ErrBadRequest)
	}
	paths := m.G.FindPath(req.Src, req.Dst, req.Cycles)
	if paths == nil {
		paths = [][]string{}
	}
	return &Result{Kind: KindPaths, Paths: paths}, nil
}

func runReachable(m *Model, req *Request) (*Result, error) {
	if err := requireNode(m, "node", req.Node); err != nil {
		return nil, err
	}
	var seq iter.Seq[string]
	switch req.Direction {
	case "", DirForward:
		seq = m.G.ReachableSons(req.Node)
	case DirBackward:
		seq = m.G.ReachableParents(req.Node)
	default:
		return nil, fmt.Errorf("%w: direction must be %q or %q", ErrBadRequest, DirForward, DirBackward)
	}
	nodes := []string{}
	for n := range seq {
		nodes = append(nodes, n)
	}
	slices.Sort(nodes)
	return &Result{Kind: KindReachable, Reachable: nodes}, nil
}
