package digraph

import (
	"fmt"
	"strings"
)

// DotOptions customizes DOT rendering. Nil hooks fall back to
// fmt.Sprint for node labels and empty edge labels.
type DotOptions[N comparable] struct {
	NodeLabel func(n N) string
	EdgeLabel func(src, dst N) string
}

// Dot renders the graph in Graphviz DOT form: one statement per node,
// one per edge. Node identifiers are the graph's stable per-node
// integer indices, so output identity never depends on node hashing.
func (g *DiGraph[N]) Dot(opts *DotOptions[N]) string {
	nodeLabel := func(n N) string { return fmt.Sprint(n) }
	edgeLabel := func(src, dst N) string { return "" }
	if opts != nil && opts.NodeLabel != nil {
		nodeLabel = opts.NodeLabel
	}
	if opts != nil && opts.EdgeLabel != nil {
		edgeLabel = opts.EdgeLabel
	}

	var b strings.Builder
	b.WriteString("digraph g {\n")
	b.WriteString("graph [\nsplines=polyline,\n];\n")
	b.WriteString("node [\nfontsize = \"16\",\nshape = \"box\"\n];\n")
	for n := range g.nodes {
		fmt.Fprintf(&b, "n%d [label=%q];\n", g.index[n], nodeLabel(n))
	}
	for _, e := range g.edges {
		fmt.Fprintf(&b, "n%d -> n%d [label=%q];\n",
			g.index[e.Src], g.index[e.Dst], edgeLabel(e.Src, e.Dst))
	}
	b.WriteString("}\n")
	return b.String()
}
