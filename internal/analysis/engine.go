package analysis

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/nhoffmann/graphd/internal/config"
	"github.com/nhoffmann/graphd/internal/metrics"
)

// ErrQueueFull is returned when the analysis queue rejects a request.
var ErrQueueFull = errors.New("analysis queue full")

// ErrTimeout is returned when a synchronous analysis exceeds the
// configured wait deadline.
var ErrTimeout = errors.New("analysis timeout")

// JobStatus is the lifecycle state of an async analysis job.
type JobStatus string

const (
	JobPending JobStatus = "pending"
	JobDone    JobStatus = "done"
	JobFailed  JobStatus = "failed"
)

// Job is an asynchronous analysis submission.
type Job struct {
	ID          string     `json:"id"`
	Status      JobStatus  `json:"status"`
	Request     *Request   `json:"request"`
	Result      *Result    `json:"result,omitempty"`
	Error       string     `json:"error,omitempty"`
	SubmittedAt time.Time  `json:"submitted_at"`
	FinishedAt  *time.Time `json:"finished_at,omitempty"`
}

type work struct {
	req     *Request
	job     string // async job id, empty for sync work
	resultC chan outcome
}

type outcome struct {
	res *Result
	err error
}

// Engine runs analyses against the currently loaded graph model.
// The model pointer is swapped atomically on hot reload, so in-flight
// analyses always see a consistent graph.
type Engine struct {
	model    atomic.Pointer[Model]
	registry *Registry
	pool     *workerPool[*work]
	conf     config.ServerConf

	jobs *jobStore
}

// New creates an Engine and starts its worker pool.
func New(ctx context.Context, m *Model, reg *Registry, conf config.ServerConf) *Engine {
	e := &Engine{
		registry: reg,
		conf:     conf,
		jobs:     newJobStore(conf.JobRetention),
	}
	e.SwapModel(m)
	e.pool = newWorkerPool(ctx, conf.AnalysisWorkers, conf.QueueDepth, e.execute)
	return e
}

// SwapModel atomically replaces the graph model (used on hot-reload).
func (e *Engine) SwapModel(m *Model) {
	e.model.Store(m)
	metrics.GraphNodes.Set(float64(m.G.NodeCount()))
	metrics.GraphEdges.Set(float64(m.G.EdgeCount()))
}

// Model returns the current graph model.
func (e *Engine) Model() *Model {
	return e.model.Load()
}

// RunSync runs one analysis and waits for its result.
// Returns ErrQueueFull when the queue rejects it and ErrTimeout when
// the configured deadline passes first.
func (e *Engine) RunSync(ctx context.Context, req *Request) (*Result, error) {
	resultC := make(chan outcome, 1)
	if !e.pool.Submit(&work{req: req, resultC: resultC}) {
		metrics.AnalysesDropped.Inc()
		return nil, fmt.Errorf("%w (capacity %d)", ErrQueueFull, e.conf.QueueDepth)
	}

	timeout := time.Duration(e.conf.AnalysisTimeoutMs) * time.Millisecond
	select {
	case out := <-resultC:
		return out.res, out.err
	case <-time.After(timeout):
		return nil, fmt.Errorf("%w after %v", ErrTimeout, timeout)
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// RunAsync enqueues an analysis for background processing and returns
// its job id. Returns ErrQueueFull when the queue rejects it.
func (e *Engine) RunAsync(req *Request) (string, error) {
	job := &Job{
		ID:          uuid.New().String(),
		Status:      JobPending,
		Request:     req,
		SubmittedAt: time.Now(),
	}
	e.jobs.put(job)
	if !e.pool.Submit(&work{req: req, job: job.ID}) {
		e.jobs.drop(job.ID)
		metrics.AnalysesDropped.Inc()
		return "", fmt.Errorf("%w (capacity %d)", ErrQueueFull, e.conf.QueueDepth)
	}
	return job.ID, nil
}

// Job returns a snapshot of the job with the given id.
func (e *Engine) Job(id string) (*Job, bool) {
	return e.jobs.get(id)
}

// QueueUtilization returns queue used / capacity (0-1).
func (e *Engine) QueueUtilization() float64 {
	if e.pool.QueueCap() == 0 {
		return 0
	}
	return float64(e.pool.QueueLen()) / float64(e.pool.QueueCap())
}

// Shutdown drains the worker pool.
func (e *Engine) Shutdown() {
	e.pool.Drain()
}

func (e *Engine) execute(ctx context.Context, w *work) {
	res, err := e.run(w.req)
	if w.resultC != nil {
		w.resultC <- outcome{res: res, err: err}
	}
	if w.job != "" {
		e.jobs.finish(w.job, res, err)
	}
}

func (e *Engine) run(req *Request) (*Result, error) {
	// A panic here would kill the worker goroutine and the process
	// with it; a nil request must fail like any other bad input.
	if req == nil {
		return nil, fmt.Errorf("%w: nil request", ErrBadRequest)
	}
	start := time.Now()
	m := e.model.Load()

	runner, err := e.registry.Get(req.Kind)
	if err != nil {
		metrics.AnalysesRun.WithLabelValues(string(req.Kind), "error").Inc()
		return nil, err
	}
	res, err := runner(m, req)
	if err != nil {
		metrics.AnalysesRun.WithLabelValues(string(req.Kind), "error").Inc()
		return nil, err
	}
	res.DurationMs = time.Since(start).Milliseconds()
	metrics.AnalysesRun.WithLabelValues(string(req.Kind), "success").Inc()
	metrics.AnalysisDuration.Observe(float64(res.DurationMs))
	return res, nil
}
