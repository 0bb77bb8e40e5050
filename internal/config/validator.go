package config

import (
	"fmt"
	"strings"
)

// Validate checks the config for:
//   - Required fields (version)
//   - Empty or duplicate node names
//   - Edges with missing endpoints
func Validate(cfg *GraphConfig) error {
	var errs []string

	if cfg.Version == "" {
		errs = append(errs, "version is required")
	}

	seen := make(map[string]int) // node name → first index
	for i, n := range cfg.Graph.Nodes {
		if n == "" {
			errs = append(errs, fmt.Sprintf("graph.nodes[%d]: name must not be empty", i))
			continue
		}
		if first, ok := seen[n]; ok {
			errs = append(errs, fmt.Sprintf("graph.nodes[%d]: duplicate node %q (first seen at graph.nodes[%d])", i, n, first))
		} else {
			seen[n] = i
		}
	}

	for i, e := range cfg.Graph.Edges {
		if e.From == "" {
			errs = append(errs, fmt.Sprintf("graph.edges[%d]: from is required", i))
		}
		if e.To == "" {
			errs = append(errs, fmt.Sprintf("graph.edges[%d]: to is required", i))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation errors:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
