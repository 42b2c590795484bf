package clusterlab

import (
	"context"
	"fmt"
	"io"

	"github.com/clusterlab/clusterlab/algorithm"
	"github.com/clusterlab/clusterlab/compare"
	"github.com/clusterlab/clusterlab/dataset"
	"github.com/clusterlab/clusterlab/model"
	"github.com/clusterlab/clusterlab/orchestrate"
	"github.com/clusterlab/clusterlab/resolve"
	"github.com/clusterlab/clusterlab/score"
	"github.com/clusterlab/clusterlab/viz"
)

// Workbench ties a loaded dataset, its clustering orchestrator, and the
// comparison view state together. It is the single consumer of orchestrator
// results; construct one instance per dataset session, not a process-wide
// singleton.
//
// Workbench methods are not safe for concurrent use. The jobs it dispatches
// run concurrently internally.
type Workbench struct {
	capability algorithm.Capability
	logger     *Logger
	metrics    MetricsCollector
	maxWorkers int64
	palette    []string

	table *dataset.Table
	orch  *orchestrate.Orchestrator
	views *compare.ViewState
}

// New creates a Workbench delegating numeric clustering to the given
// capability.
func New(capability algorithm.Capability, opts ...Option) *Workbench {
	o := options{
		logger:  NoopLogger(),
		metrics: NoopMetricsCollector{},
	}
	for _, opt := range opts {
		opt(&o)
	}

	return &Workbench{
		capability: capability,
		logger:     o.logger,
		metrics:    o.metrics,
		maxWorkers: o.maxWorkers,
		palette:    o.palette,
		views:      compare.NewViewState(o.palette...),
	}
}

// Load parses the dataset file at path and makes it the active table.
//
// Loading replaces the previous table, so all existing views are cleared and
// a fresh orchestrator is created: views snapshot the table they were built
// from and are never silently rebuilt against new data.
func (w *Workbench) Load(path string, mode dataset.Mode) error {
	t, err := dataset.Open(path, mode)
	if err != nil {
		return translateError(err)
	}
	w.install(t)
	w.logger.Info("dataset loaded", "path", path, "rows", t.Len(), "features", t.Features(), "classes", t.ClassCount())
	return nil
}

// LoadReader is Load over an arbitrary reader.
func (w *Workbench) LoadReader(r io.Reader, mode dataset.Mode) error {
	t, err := dataset.Parse(r, mode)
	if err != nil {
		return translateError(err)
	}
	w.install(t)
	w.logger.Info("dataset loaded", "rows", t.Len(), "features", t.Features(), "classes", t.ClassCount())
	return nil
}

func (w *Workbench) install(t *dataset.Table) {
	w.table = t
	w.views = compare.NewViewState(w.palette...)
	w.orch = orchestrate.New(t, w.capability,
		orchestrate.WithMaxWorkers(w.maxWorkers),
		orchestrate.WithLogger(w.logger.Logger),
		orchestrate.WithMetrics(w.metrics),
	)
}

// Table returns the active typed table, or nil before the first Load.
func (w *Workbench) Table() *dataset.Table { return w.table }

// Views returns the comparison view state.
func (w *Workbench) Views() *compare.ViewState { return w.views }

// Submit dispatches a clustering job for the configuration against the
// active table. Validation and resolution failures surface in the job's
// terminal state, not here.
func (w *Workbench) Submit(cfg model.Config) (model.JobID, error) {
	if w.table == nil {
		return 0, ErrNoDataset
	}
	return w.orch.Submit(cfg), nil
}

// Cancel requests cooperative cancellation of a job.
func (w *Workbench) Cancel(id model.JobID) error {
	if w.orch == nil {
		return orchestrate.ErrUnknownJob
	}
	return w.orch.Cancel(id)
}

// Result reports a job's status and, once terminal, its result or
// translated error.
func (w *Workbench) Result(id model.JobID) (model.Status, *model.Result, error) {
	if w.orch == nil {
		return 0, nil, orchestrate.ErrUnknownJob
	}
	status, res, err := w.orch.Result(id)
	return status, res, translateError(err)
}

// Accept waits for the job to finish and appends it to the comparison
// state: completed jobs become regular views, failed jobs become failed
// placeholders so the misconfiguration stays visible. It returns the new
// view's index.
//
// Cancelled jobs are not added; Accept returns the cancellation error.
func (w *Workbench) Accept(ctx context.Context, id model.JobID) (int, error) {
	if w.orch == nil {
		return -1, orchestrate.ErrUnknownJob
	}

	status, res, err := w.orch.Wait(ctx, id)
	switch status {
	case model.StatusCompleted:
		return w.views.Add(res), nil
	case model.StatusFailed:
		cfg, cfgErr := w.orch.Config(id)
		if cfgErr != nil {
			return -1, cfgErr
		}
		return w.views.AddFailed(cfg, translateError(err)), nil
	default:
		if err == nil {
			err = fmt.Errorf("job %s not accepted in state %s", id, status)
		}
		return -1, err
	}
}

// RenderView writes an HTML scatter chart of one completed view to wr.
// Display coordinates come from projecting the view's matrix onto its first
// two principal components; the matrix is re-derived from the table, which
// is safe because resolution is deterministic.
func (w *Workbench) RenderView(wr io.Writer, index int, title string) error {
	snapshot, res, err := w.viewData(index)
	if err != nil {
		return err
	}

	resolution, err := resolve.Resolve(w.table, res.Config.Policy)
	if err != nil {
		return translateError(err)
	}
	coords, err := viz.Coordinates(resolution.Matrix, 2)
	if err != nil {
		return err
	}
	return viz.RenderScatter(wr, snapshot, coords, title)
}

// ExportView writes the original data with the view's cluster assignment as
// a trailing CSV column: the cluster number, "noise" for noise points, or
// empty for rows the view's policy excluded.
func (w *Workbench) ExportView(wr io.Writer, index int) error {
	_, res, err := w.viewData(index)
	if err != nil {
		return err
	}
	return WriteClusteredCSV(wr, w.table, res)
}

// RandIndex reports the agreement between a completed view's clustering and
// the dataset's label column, in [0, 1].
func (w *Workbench) RandIndex(index int) (float64, error) {
	if w.table == nil {
		return 0, ErrNoDataset
	}
	if !w.table.HasLabels() {
		return 0, ErrNoLabels
	}
	_, res, err := w.viewData(index)
	if err != nil {
		return 0, err
	}
	return score.RandIndex(res.Assignment, w.table.Labels()), nil
}

func (w *Workbench) viewData(index int) ([]compare.PointDisplay, *model.Result, error) {
	if w.table == nil {
		return nil, nil, ErrNoDataset
	}
	v, err := w.views.View(index)
	if err != nil {
		return nil, nil, err
	}
	snapshot, err := w.views.Snapshot(index)
	if err != nil {
		return nil, nil, err
	}
	return snapshot, v.Result, nil
}
