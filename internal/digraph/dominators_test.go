package digraph_test

import (
	"slices"
	"testing"

	"github.com/nhoffmann/graphd/internal/digraph"
)

func domSet(t *testing.T, doms map[string]digraph.NodeSet[string], n string) []string {
	t.Helper()
	s, ok := doms[n]
	if !ok {
		t.Fatalf("no dominator set for %s", n)
	}
	out := s.Nodes()
	slices.Sort(out)
	return out
}

func TestDominatorsChain(t *testing.T) {
	g := digraph.New[string]()
	g.AddEdge("head", "a")
	g.AddEdge("a", "b")
	g.AddEdge("b", "c")

	doms := g.ComputeDominators("head")

	if got := domSet(t, doms, "head"); !slices.Equal(got, []string{"head"}) {
		t.Errorf("dom(head) = %v", got)
	}
	if got := domSet(t, doms, "a"); !slices.Equal(got, []string{"a", "head"}) {
		t.Errorf("dom(a) = %v", got)
	}
	if got := domSet(t, doms, "b"); !slices.Equal(got, []string{"a", "b", "head"}) {
		t.Errorf("dom(b) = %v", got)
	}
	if got := domSet(t, doms, "c"); !slices.Equal(got, []string{"a", "b", "c", "head"}) {
		t.Errorf("dom(c) = %v", got)
	}
}

func TestDominatorsDiamond(t *testing.T) {
	g := digraph.New[string]()
	g.AddEdge("head", "a")
	g.AddEdge("head", "b")
	g.AddEdge("a", "c")
	g.AddEdge("b", "c")

	doms := g.ComputeDominators("head")

	// Two independent paths reach c, so neither a nor b dominates it.
	if got := domSet(t, doms, "c"); !slices.Equal(got, []string{"c", "head"}) {
		t.Errorf("dom(c) = %v, want [c head]", got)
	}
	if got := domSet(t, doms, "a"); !slices.Equal(got, []string{"a", "head"}) {
		t.Errorf("dom(a) = %v", got)
	}
}

func TestDominatorsLoop(t *testing.T) {
	g := digraph.New[string]()
	g.AddEdge("head", "a")
	g.AddEdge("a", "b")
	g.AddEdge("b", "a") // back edge
	g.AddEdge("b", "exit")

	doms := g.ComputeDominators("head")

	if got := domSet(t, doms, "a"); !slices.Equal(got, []string{"a", "head"}) {
		t.Errorf("dom(a) = %v", got)
	}
	if got := domSet(t, doms, "b"); !slices.Equal(got, []string{"a", "b", "head"}) {
		t.Errorf("dom(b) = %v", got)
	}
	if got := domSet(t, doms, "exit"); !slices.Equal(got, []string{"a", "b", "exit", "head"}) {
		t.Errorf("dom(exit) = %v", got)
	}
}

func TestDominatorsExcludeUnreachable(t *testing.T) {
	g := digraph.New[string]()
	g.AddEdge("head", "a")
	g.AddEdge("x", "y") // not reachable from head

	doms := g.ComputeDominators("head")

	if _, ok := doms["x"]; ok {
		t.Error("unreachable node x should have no dominator set")
	}
	if _, ok := doms["y"]; ok {
		t.Error("unreachable node y should have no dominator set")
	}
	if len(doms) != 2 {
		t.Errorf("expected sets for head and a only, got %d", len(doms))
	}
}

func TestPostdominatorsChain(t *testing.T) {
	g := digraph.New[string]()
	g.AddEdge("head", "a")
	g.AddEdge("a", "leaf")

	pdoms := g.ComputePostdominators("leaf")

	if got := domSet(t, pdoms, "leaf"); !slices.Equal(got, []string{"leaf"}) {
		t.Errorf("pdom(leaf) = %v", got)
	}
	if got := domSet(t, pdoms, "a"); !slices.Equal(got, []string{"a", "leaf"}) {
		t.Errorf("pdom(a) = %v", got)
	}
	if got := domSet(t, pdoms, "head"); !slices.Equal(got, []string{"a", "head", "leaf"}) {
		t.Errorf("pdom(head) = %v", got)
	}
}

// Postdominators must equal dominators computed on the edge-reversed graph.
func TestPostdominatorsMirror(t *testing.T) {
	edges := [][2]string{
		{"h", "a"}, {"h", "b"}, {"a", "c"}, {"b", "c"},
		{"c", "d"}, {"d", "c"}, {"c", "leaf"},
	}

	g := digraph.New[string]()
	rev := digraph.New[string]()
	for _, e := range edges {
		g.AddEdge(e[0], e[1])
		rev.AddEdge(e[1], e[0])
	}

	pdoms := g.ComputePostdominators("leaf")
	doms := rev.ComputeDominators("leaf")

	if len(pdoms) != len(doms) {
		t.Fatalf("universe mismatch: %d vs %d", len(pdoms), len(doms))
	}
	for n, want := range doms {
		got, ok := pdoms[n]
		if !ok {
			t.Fatalf("missing postdominator set for %s", n)
		}
		if !got.Equal(want) {
			t.Errorf("pdom(%s) = %v, want %v", n, got.Nodes(), want.Nodes())
		}
	}
}

func TestImmediateDominators(t *testing.T) {
	g := digraph.New[string]()
	g.AddEdge("head", "a")
	g.AddEdge("head", "b")
	g.AddEdge("a", "c")
	g.AddEdge("b", "c")
	g.AddEdge("c", "d")

	idom := digraph.ImmediateDominators(g.ComputeDominators("head"))

	want := map[string]string{"a": "head", "b": "head", "c": "head", "d": "c"}
	if len(idom) != len(want) {
		t.Fatalf("idom = %v, want %v", idom, want)
	}
	for n, d := range want {
		if idom[n] != d {
			t.Errorf("idom(%s) = %s, want %s", n, idom[n], d)
		}
	}

	tree := digraph.DominatorTree(idom)
	kids := tree["head"]
	slices.Sort(kids)
	if !slices.Equal(kids, []string{"a", "b", "c"}) {
		t.Errorf("head's children = %v, want [a b c]", kids)
	}
	if !slices.Equal(tree["c"], []string{"d"}) {
		t.Errorf("c's children = %v, want [d]", tree["c"])
	}
}
