package orchestrate

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/clusterlab/clusterlab/algorithm"
	"github.com/clusterlab/clusterlab/dataset"
	"github.com/clusterlab/clusterlab/job"
	"github.com/clusterlab/clusterlab/model"
	"github.com/clusterlab/clusterlab/resolve"
)

// ErrUnknownJob is returned for a JobID the orchestrator has never issued.
var ErrUnknownJob = errors.New("orchestrate: unknown job")

// Options configures an Orchestrator.
type Options struct {
	// MaxWorkers bounds the number of concurrently running jobs.
	// If 0, defaults to runtime.GOMAXPROCS(0).
	MaxWorkers int64

	// Logger receives job lifecycle events. If nil, logging is disabled.
	Logger *slog.Logger

	// Metrics receives job counters. If nil, NoopCollector is used.
	Metrics Collector
}

// Option mutates Options.
type Option func(*Options)

// WithMaxWorkers bounds concurrent job execution.
func WithMaxWorkers(n int64) Option {
	return func(o *Options) { o.MaxWorkers = n }
}

// WithLogger sets the lifecycle logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithMetrics sets the metrics collector.
func WithMetrics(c Collector) Option {
	return func(o *Options) { o.Metrics = c }
}

type jobState struct {
	id        model.JobID
	cfg       model.Config
	status    model.Status
	result    *model.Result
	err       error
	cancelled bool
	cancel    context.CancelFunc
	started   time.Time
	done      chan struct{}
}

// Orchestrator manages pending, running, and completed clustering jobs over
// one immutable typed table. The table must not be replaced while any job is
// non-terminal or any derived result is still in use.
type Orchestrator struct {
	table      *dataset.Table
	capability algorithm.Capability
	sem        *semaphore.Weighted
	logger     *slog.Logger
	metrics    Collector

	mu     sync.Mutex
	nextID model.JobID
	jobs   map[model.JobID]*jobState
}

// New creates an Orchestrator for the given table and clustering capability.
func New(table *dataset.Table, capability algorithm.Capability, opts ...Option) *Orchestrator {
	options := Options{}
	for _, opt := range opts {
		opt(&options)
	}
	if options.MaxWorkers <= 0 {
		options.MaxWorkers = int64(runtime.GOMAXPROCS(0))
	}
	if options.Logger == nil {
		options.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if options.Metrics == nil {
		options.Metrics = NoopCollector{}
	}

	return &Orchestrator{
		table:      table,
		capability: capability,
		sem:        semaphore.NewWeighted(options.MaxWorkers),
		logger:     options.Logger,
		metrics:    options.Metrics,
		jobs:       make(map[model.JobID]*jobState),
	}
}

// Submit registers a new job for the given configuration and dispatches it
// asynchronously. The returned JobID is unique within the orchestrator.
//
// Identical configurations are not deduplicated: every submission resolves
// its own matrix and runs the capability again.
func (o *Orchestrator) Submit(cfg model.Config) model.JobID {
	ctx, cancel := context.WithCancel(context.Background())

	o.mu.Lock()
	o.nextID++
	js := &jobState{
		id:     o.nextID,
		cfg:    cfg,
		status: model.StatusPending,
		cancel: cancel,
		done:   make(chan struct{}),
	}
	o.jobs[js.id] = js
	o.mu.Unlock()

	o.metrics.RecordSubmit()
	o.logger.Debug("job submitted", "job", js.id, "config", cfg.String())

	go o.run(ctx, js)
	return js.id
}

func (o *Orchestrator) run(ctx context.Context, js *jobState) {
	defer close(js.done)
	defer js.cancel()

	if err := o.sem.Acquire(ctx, 1); err != nil {
		o.finish(js, nil, err)
		return
	}
	defer o.sem.Release(1)

	o.mu.Lock()
	if js.cancelled {
		o.mu.Unlock()
		o.finish(js, nil, context.Canceled)
		return
	}
	js.status = model.StatusRunning
	js.started = time.Now()
	o.mu.Unlock()

	res, err := resolve.Resolve(o.table, js.cfg.Policy)
	if err != nil {
		o.finish(js, nil, err)
		return
	}

	result, err := job.Run(ctx, res, js.cfg, o.capability)
	if result != nil {
		result.Job = js.id
	}
	o.finish(js, result, err)
}

// finish moves the job into its terminal state. Results arriving after a
// cancellation are discarded.
func (o *Orchestrator) finish(js *jobState, result *model.Result, err error) {
	o.mu.Lock()
	elapsed := time.Duration(0)
	if !js.started.IsZero() {
		elapsed = time.Since(js.started)
	}
	switch {
	case js.cancelled:
		js.status = model.StatusCancelled
		js.result = nil
		js.err = context.Canceled
	case err != nil:
		js.status = model.StatusFailed
		js.err = err
	default:
		js.status = model.StatusCompleted
		js.result = result
	}
	status := js.status
	o.mu.Unlock()

	switch status {
	case model.StatusCancelled:
		o.metrics.RecordCancel()
		o.logger.Debug("job cancelled", "job", js.id)
	case model.StatusFailed:
		o.metrics.RecordFailure(elapsed, err)
		o.logger.Warn("job failed", "job", js.id, "config", js.cfg.String(), "error", err)
	default:
		o.metrics.RecordComplete(elapsed)
		o.logger.Info("job completed", "job", js.id, "config", js.cfg.String(),
			"clusters", result.Clusters, "rows", len(result.RowMap), "elapsed", elapsed)
	}
}

// Cancel requests cooperative cancellation of a job. It is a no-op for jobs
// already in a terminal state. The external capability is not interrupted
// forcibly; a late result is discarded.
func (o *Orchestrator) Cancel(id model.JobID) error {
	o.mu.Lock()
	js, ok := o.jobs[id]
	if !ok {
		o.mu.Unlock()
		return ErrUnknownJob
	}
	if js.status.Terminal() {
		o.mu.Unlock()
		return nil
	}
	js.cancelled = true
	o.mu.Unlock()

	js.cancel()
	return nil
}

// Result reports the job's current status and, once terminal, its result or
// error. The error is the job's own failure cause, never another job's.
func (o *Orchestrator) Result(id model.JobID) (model.Status, *model.Result, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	js, ok := o.jobs[id]
	if !ok {
		return 0, nil, ErrUnknownJob
	}
	return js.status, js.result, js.err
}

// Config returns the configuration a job was submitted with.
func (o *Orchestrator) Config(id model.JobID) (model.Config, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	js, ok := o.jobs[id]
	if !ok {
		return model.Config{}, ErrUnknownJob
	}
	return js.cfg, nil
}

// Wait blocks until the job reaches a terminal state or ctx is done, then
// reports like Result.
func (o *Orchestrator) Wait(ctx context.Context, id model.JobID) (model.Status, *model.Result, error) {
	o.mu.Lock()
	js, ok := o.jobs[id]
	o.mu.Unlock()
	if !ok {
		return 0, nil, ErrUnknownJob
	}

	select {
	case <-js.done:
		return o.Result(id)
	case <-ctx.Done():
		return 0, nil, ctx.Err()
	}
}
