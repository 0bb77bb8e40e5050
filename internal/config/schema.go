package config

// GraphConfig is the top-level YAML structure.
type GraphConfig struct {
	Version string     `yaml:"version"`
	Server  ServerConf `yaml:"server"`
	Graph   GraphDef   `yaml:"graph"`
}

// ServerConf holds tunable service settings.
type ServerConf struct {
	AnalysisWorkers   int `yaml:"analysis_workers"`
	QueueDepth        int `yaml:"queue_depth"`
	AnalysisTimeoutMs int `yaml:"analysis_timeout_ms"`
	JobRetention      int `yaml:"job_retention"` // max finished jobs kept in memory
}

// GraphDef describes the directed graph to serve.
type GraphDef struct {
	// Nodes lists nodes explicitly; only isolated nodes need this,
	// since edges register their endpoints automatically.
	Nodes []string  `yaml:"nodes"`
	Edges []EdgeDef `yaml:"edges"`
}

// EdgeDef is a single directed edge.
type EdgeDef struct {
	From  string `yaml:"from"`
	To    string `yaml:"to"`
	Label string `yaml:"label,omitempty"`
	// Uniq skips insertion when an identical edge already exists;
	// otherwise repeated entries create parallel edges.
	Uniq bool `yaml:"uniq,omitempty"`
}
