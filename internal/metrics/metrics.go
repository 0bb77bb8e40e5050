package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	AnalysesRun = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "graphd_analyses_total",
		Help: "Total number of analyses run, labelled by kind and status.",
	}, []string{"kind", "status"})

	AnalysesDropped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "graphd_analyses_dropped_total",
		Help: "Total number of analyses rejected due to a full queue.",
	})

	AnalysisDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "graphd_analysis_duration_ms",
		Help:    "Analysis execution latency in milliseconds.",
		Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000, 2500},
	})

	GraphReloads = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "graphd_graph_reloads_total",
		Help: "Total number of graph reload attempts, labelled by outcome.",
	}, []string{"status"})

	GraphNodes = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "graphd_graph_nodes",
		Help: "Number of nodes in the currently served graph.",
	})

	GraphEdges = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "graphd_graph_edges",
		Help: "Number of edges in the currently served graph.",
	})

	QueueUtilization = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "graphd_queue_utilization_ratio",
		Help: "Current analysis queue utilization (0-1).",
	})
)
