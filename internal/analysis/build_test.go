package analysis_test

import (
	"strings"
	"testing"

	"github.com/nhoffmann/graphd/internal/analysis"
	"github.com/nhoffmann/graphd/internal/config"
)

func diamondConfig() *config.GraphConfig {
	return &config.GraphConfig{
		Version: "v1",
		Graph: config.GraphDef{
			Nodes: []string{"isolated"},
			Edges: []config.EdgeDef{
				{From: "head", To: "a"},
				{From: "head", To: "b"},
				{From: "a", To: "c", Label: "taken"},
				{From: "b", To: "c"},
			},
		},
	}
}

func TestBuild(t *testing.T) {
	m, err := analysis.Build(diamondConfig())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if m.G.NodeCount() != 5 {
		t.Errorf("nodes = %d, want 5 (incl. isolated)", m.G.NodeCount())
	}
	if m.G.EdgeCount() != 4 {
		t.Errorf("edges = %d, want 4", m.G.EdgeCount())
	}
	if !m.G.HasNode("isolated") {
		t.Error("declared node missing")
	}
}

func TestBuildUniqEdges(t *testing.T) {
	cfg := &config.GraphConfig{
		Version: "v1",
		Graph: config.GraphDef{
			Edges: []config.EdgeDef{
				{From: "a", To: "b", Uniq: true},
				{From: "a", To: "b", Uniq: true},
				{From: "a", To: "b"}, // not uniq: a parallel edge
			},
		},
	}
	m, err := analysis.Build(cfg)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if m.G.EdgeCount() != 2 {
		t.Errorf("edges = %d, want 2 (one uniq + one parallel)", m.G.EdgeCount())
	}
}

func TestBuildIncompleteEdge(t *testing.T) {
	cfg := &config.GraphConfig{
		Version: "v1",
		Graph:   config.GraphDef{Edges: []config.EdgeDef{{From: "a"}}},
	}
	if _, err := analysis.Build(cfg); err == nil {
		t.Fatal("expected error for incomplete edge")
	}
}

// Labels are resolved per (src, dst) pair, so parallel edges share the
// first configured label.
func TestParallelEdgeLabels(t *testing.T) {
	cfg := &config.GraphConfig{
		Version: "v1",
		Graph: config.GraphDef{
			Edges: []config.EdgeDef{
				{From: "a", To: "b", Label: "first"},
				{From: "a", To: "b", Label: "second"},
			},
		},
	}
	m, err := analysis.Build(cfg)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	out := m.Dot()
	if got := strings.Count(out, `label="first"`); got != 2 {
		t.Errorf("expected both parallel edges labelled %q, got %d occurrences in:\n%s", "first", got, out)
	}
	if strings.Contains(out, `label="second"`) {
		t.Errorf("later label must not override the first:\n%s", out)
	}
}

func TestModelDot(t *testing.T) {
	m, err := analysis.Build(diamondConfig())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	out := m.Dot()
	if !strings.Contains(out, `label="taken"`) {
		t.Errorf("configured edge label missing from DOT:\n%s", out)
	}
	if strings.Count(out, "{") != strings.Count(out, "}") {
		t.Errorf("unbalanced braces:\n%s", out)
	}
}
