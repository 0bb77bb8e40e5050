package analysis

// Kind identifies an analysis operation.
type Kind string

const (
	KindDominators     Kind = "dominators"
	KindPostdominators Kind = "postdominators"
	KindPaths          Kind = "paths"
	KindReachable      Kind = "reachable"
)

// Reachability directions.
const (
	DirForward  = "forward"
	DirBackward = "backward"
)

// Request is the canonical input model for all analyses. Kind selects
// the operation; the remaining fields parameterize it.
type Request struct {
	Kind Kind `json:"kind"`

	// dominators / postdominators
	Head string `json:"head,omitempty"`
	Leaf string `json:"leaf,omitempty"`

	// paths
	Src string `json:"src,omitempty"`
	Dst string `json:"dst,omitempty"`
	// Cycles bounds per-branch revisits during path enumeration.
	// 0 (the default) tolerates no cycling.
	Cycles int `json:"cycles,omitempty"`

	// reachable
	Node      string `json:"node,omitempty"`
	Direction string `json:"direction,omitempty"` // forward (default) or backward
}

// Result is the outcome of a single analysis.
type Result struct {
	Kind       Kind  `json:"kind"`
	DurationMs int64 `json:"duration_ms"`

	// Dominators maps each node in the universe to its full
	// dominator (or postdominator) set, sorted.
	Dominators map[string][]string `json:"dominators,omitempty"`
	// Immediate is the reduction of Dominators to immediate dominators.
	Immediate map[string]string `json:"immediate_dominators,omitempty"`

	Paths [][]string `json:"paths,omitempty"`

	Reachable []string `json:"reachable,omitempty"`
}
