package analysis

import (
	"fmt"

	"github.com/nhoffmann/graphd/internal/config"
	"github.com/nhoffmann/graphd/internal/digraph"
)

// Model is the served graph plus presentation data the core does not
// carry (edge labels for DOT export).
//
// Labels is keyed by edge endpoints because the DOT hook resolves
// labels per (src, dst) pair: parallel edges always render with one
// shared label, the first one configured.
type Model struct {
	G      *digraph.DiGraph[string]
	Labels map[digraph.Edge[string]]string
}

// Build constructs a Model from a validated GraphConfig.
func Build(cfg *config.GraphConfig) (*Model, error) {
	m := &Model{
		G:      digraph.New[string](),
		Labels: make(map[digraph.Edge[string]]string),
	}
	for _, n := range cfg.Graph.Nodes {
		m.G.AddNode(n)
	}
	for i, e := range cfg.Graph.Edges {
		if e.From == "" || e.To == "" {
			return nil, fmt.Errorf("graph.edges[%d]: incomplete edge %q -> %q", i, e.From, e.To)
		}
		if e.Uniq {
			m.G.AddUniqEdge(e.From, e.To)
		} else {
			m.G.AddEdge(e.From, e.To)
		}
		if e.Label != "" {
			key := digraph.Edge[string]{Src: e.From, Dst: e.To}
			if _, ok := m.Labels[key]; !ok {
				m.Labels[key] = e.Label
			}
		}
	}
	return m, nil
}

// Dot renders the model's graph with configured edge labels.
func (m *Model) Dot() string {
	return m.G.Dot(&digraph.DotOptions[string]{
		EdgeLabel: func(src, dst string) string {
			return m.Labels[digraph.Edge[string]{Src: src, Dst: dst}]
		},
	})
}
