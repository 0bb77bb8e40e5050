package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"slices"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/nhoffmann/graphd/internal/analysis"
	"github.com/nhoffmann/graphd/internal/config"
	"github.com/nhoffmann/graphd/internal/metrics"
)

const maxBatchSize = 100

// Handler holds all HTTP handler dependencies.
type Handler struct {
	eng    *analysis.Engine
	loader *config.Loader
	mux    *http.ServeMux
}

// New creates an HTTP handler and registers all routes.
func New(eng *analysis.Engine, loader *config.Loader) http.Handler {
	h := &Handler{eng: eng, loader: loader, mux: http.NewServeMux()}

	h.mux.HandleFunc("POST /v1/analyses", h.runAnalysis)
	h.mux.HandleFunc("POST /v1/analyses/batch", h.runBatch)
	h.mux.HandleFunc("GET /v1/analyses/{id}", h.getJob)
	h.mux.HandleFunc("GET /v1/graph", h.graphSummary)
	h.mux.HandleFunc("GET /v1/graph/dot", h.graphDot)
	h.mux.HandleFunc("POST /v1/graph/reload", h.reloadGraph)
	h.mux.HandleFunc("GET /healthz", h.healthz)
	h.mux.HandleFunc("GET /readyz", h.readyz)
	h.mux.Handle("GET /metrics", promhttp.Handler())

	return loggingMiddleware(h.mux)
}

// POST /v1/analyses — synchronous single analysis.
func (h *Handler) runAnalysis(w http.ResponseWriter, r *http.Request) {
	var req analysis.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid JSON: %s", err))
		return
	}
	if req.Kind == "" {
		writeError(w, http.StatusBadRequest, "analysis kind is required")
		return
	}

	res, err := h.eng.RunSync(r.Context(), &req)
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// POST /v1/analyses/batch — async batch submission (up to 100).
func (h *Handler) runBatch(w http.ResponseWriter, r *http.Request) {
	var reqs []*analysis.Request
	if err := json.NewDecoder(r.Body).Decode(&reqs); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid JSON: %s", err))
		return
	}
	if len(reqs) == 0 {
		writeError(w, http.StatusBadRequest, "batch must contain at least one analysis")
		return
	}
	if len(reqs) > maxBatchSize {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("batch size %d exceeds max %d", len(reqs), maxBatchSize))
		return
	}
	// A JSON null decodes into a nil element; reject it (and missing
	// kinds) up front so no invalid request reaches the workers.
	for i, req := range reqs {
		if req == nil {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("analyses[%d]: must be an object", i))
			return
		}
		if req.Kind == "" {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("analyses[%d]: analysis kind is required", i))
			return
		}
	}

	jobIDs := make([]string, 0, len(reqs))
	rejected := 0
	for _, req := range reqs {
		id, err := h.eng.RunAsync(req)
		if err != nil {
			rejected++
			continue
		}
		jobIDs = append(jobIDs, id)
	}

	writeJSON(w, http.StatusAccepted, map[string]interface{}{
		"job_ids":  jobIDs,
		"total":    len(reqs),
		"queued":   len(jobIDs),
		"rejected": rejected,
	})
}

// GET /v1/analyses/{id} — async job status and result.
func (h *Handler) getJob(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	job, ok := h.eng.Job(id)
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Sprintf("no job %q", id))
		return
	}
	writeJSON(w, http.StatusOK, job)
}

// GET /v1/graph — summary of the currently served graph.
func (h *Handler) graphSummary(w http.ResponseWriter, r *http.Request) {
	g := h.eng.Model().G
	heads := g.Heads()
	leaves := g.Leaves()
	slices.Sort(heads)
	slices.Sort(leaves)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"nodes":  g.NodeCount(),
		"edges":  g.EdgeCount(),
		"heads":  heads,
		"leaves": leaves,
	})
}

// GET /v1/graph/dot — DOT export of the current graph.
func (h *Handler) graphDot(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/vnd.graphviz")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(h.eng.Model().Dot()))
}

// POST /v1/graph/reload — re-read the config, rebuild, swap.
func (h *Handler) reloadGraph(w http.ResponseWriter, r *http.Request) {
	// Validate the candidate before committing: a rejected config must
	// leave loader.Config() pointing at what is actually served.
	cfg, err := h.loader.Peek()
	if err != nil {
		metrics.GraphReloads.WithLabelValues("error").Inc()
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if err := config.Validate(cfg); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	m, err := analysis.Build(cfg)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	h.loader.Commit(cfg)
	h.eng.SwapModel(m)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"reloaded": true,
		"nodes":    m.G.NodeCount(),
		"edges":    m.G.EdgeCount(),
	})
}

// GET /healthz — always 200 (liveness probe).
func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GET /readyz — 503 if the analysis queue is >80% full.
func (h *Handler) readyz(w http.ResponseWriter, r *http.Request) {
	util := h.eng.QueueUtilization()
	metrics.QueueUtilization.Set(util)
	if util > 0.8 {
		writeJSON(w, http.StatusServiceUnavailable, map[string]interface{}{
			"status":            "overloaded",
			"queue_utilization": util,
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":            "ready",
		"queue_utilization": util,
	})
}

// statusFor maps engine errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, analysis.ErrBadRequest):
		return http.StatusUnprocessableEntity
	case errors.Is(err, analysis.ErrQueueFull):
		return http.StatusTooManyRequests
	case errors.Is(err, analysis.ErrTimeout):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
