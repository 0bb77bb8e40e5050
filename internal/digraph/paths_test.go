package digraph_test

import (
	"slices"
	"testing"

	"github.com/nhoffmann/graphd/internal/digraph"
)

// sortPaths gives path sets a canonical order for comparison; the
// enumeration order itself is not part of the contract.
func sortPaths(paths [][]string) {
	slices.SortFunc(paths, func(a, b []string) int {
		return slices.Compare(a, b)
	})
}

func TestFindPathTrivial(t *testing.T) {
	g := digraph.New[string]()
	g.AddNode("a")

	paths := g.FindPath("a", "a", 0)
	if len(paths) != 1 || !slices.Equal(paths[0], []string{"a"}) {
		t.Fatalf("expected single-node path [a], got %v", paths)
	}
}

func TestFindPathChain(t *testing.T) {
	g := digraph.New[string]()
	g.AddEdge("a", "b")
	g.AddEdge("b", "c")

	paths := g.FindPath("a", "c", 0)
	if len(paths) != 1 || !slices.Equal(paths[0], []string{"a", "b", "c"}) {
		t.Fatalf("expected [a b c], got %v", paths)
	}
}

func TestFindPathDiamond(t *testing.T) {
	g := digraph.New[string]()
	g.AddEdge("h", "a")
	g.AddEdge("h", "b")
	g.AddEdge("a", "c")
	g.AddEdge("b", "c")

	paths := g.FindPath("h", "c", 0)
	sortPaths(paths)
	want := [][]string{{"h", "a", "c"}, {"h", "b", "c"}}
	if len(paths) != 2 || !slices.Equal(paths[0], want[0]) || !slices.Equal(paths[1], want[1]) {
		t.Fatalf("expected both diamond paths, got %v", paths)
	}
}

func TestFindPathNoPath(t *testing.T) {
	g := digraph.New[string]()
	g.AddEdge("a", "b")
	g.AddEdge("c", "d")

	if paths := g.FindPath("a", "d", 0); len(paths) != 0 {
		t.Fatalf("expected no path, got %v", paths)
	}
	// Reverse direction of an existing edge.
	if paths := g.FindPath("b", "a", 0); len(paths) != 0 {
		t.Fatalf("expected no path against edge direction, got %v", paths)
	}
}

func TestFindPathSelfLoopTerminates(t *testing.T) {
	g := digraph.New[string]()
	g.AddEdge("a", "b")
	g.AddEdge("b", "b") // self-loop at an intermediate node
	g.AddEdge("b", "c")

	paths := g.FindPath("a", "c", 0)
	if len(paths) != 1 || !slices.Equal(paths[0], []string{"a", "b", "c"}) {
		t.Fatalf("expected [a b c] only, got %v", paths)
	}
}

func TestFindPathCycleBudget(t *testing.T) {
	g := digraph.New[string]()
	g.AddEdge("a", "b")
	g.AddEdge("b", "c")
	g.AddEdge("c", "b") // b-c cycle

	// Budget 0: only the direct path.
	paths := g.FindPath("a", "c", 0)
	if len(paths) != 1 || !slices.Equal(paths[0], []string{"a", "b", "c"}) {
		t.Fatalf("budget 0: expected [a b c], got %v", paths)
	}

	// Budget 1: one extra trip around the cycle is allowed.
	paths = g.FindPath("a", "c", 1)
	sortPaths(paths)
	if len(paths) != 2 {
		t.Fatalf("budget 1: expected 2 paths, got %v", paths)
	}
	if !slices.Equal(paths[1], []string{"a", "b", "c", "b", "c"}) {
		t.Errorf("budget 1: expected looping path [a b c b c], got %v", paths[1])
	}
}
