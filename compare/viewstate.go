package compare

import (
	"errors"
	"fmt"

	"github.com/clusterlab/clusterlab/model"
)

// ErrViewOutOfRange is returned for a view index outside the current set.
var ErrViewOutOfRange = errors.New("compare: view index out of range")

// ErrViewFailed is returned when an operation needs a completed result but
// the view is a failed placeholder.
var ErrViewFailed = errors.New("compare: view holds a failed job")

// View is one entry of the comparison state: either an accepted job result
// with its color table, or a failed placeholder keeping the slot visible so
// the user can see which configuration failed and why.
type View struct {
	Config model.Config
	Result *model.Result // nil for a failed placeholder
	Err    error         // non-nil for a failed placeholder

	colors map[model.ClusterID]string
}

// Failed reports whether the view is a failed placeholder.
func (v *View) Failed() bool { return v.Err != nil }

// Color returns the display color assigned to a cluster of this view.
func (v *View) Color(c model.ClusterID) string {
	if c.IsNoise() {
		return NoiseColor
	}
	return v.colors[c]
}

// PointDisplay is the render-layer form of one data point in a view.
type PointDisplay struct {
	// Row is the original row index in the typed table.
	Row int
	// Cluster is the point's normalized cluster identifier.
	Cluster model.ClusterID
	// Color is the stable display color of the cluster.
	Color string
	// Noise marks points outside every cluster.
	Noise bool
}

// ViewState is the ordered, mutable collection of views. Views are appended
// on job completion, removed explicitly, and never mutated in place;
// replacing a view means re-running the job and adding a new result.
type ViewState struct {
	palette []string
	views   []*View
}

// NewViewState creates an empty view state drawing colors from the given
// palette, or from DefaultPalette if none is supplied.
func NewViewState(palette ...string) *ViewState {
	if len(palette) == 0 {
		palette = DefaultPalette
	}
	return &ViewState{palette: palette}
}

// Len returns the number of views, failed placeholders included.
func (s *ViewState) Len() int { return len(s.views) }

// Add appends a completed result and assigns each of its clusters a color
// from the shared palette, in ascending cluster order. It returns the new
// view's index. The identities assigned here never change afterwards.
func (s *ViewState) Add(res *model.Result) int {
	colors := make(map[model.ClusterID]string, res.Clusters)
	for c := 0; c < res.Clusters; c++ {
		colors[model.ClusterID(c)] = s.palette[c%len(s.palette)]
	}
	s.views = append(s.views, &View{Config: res.Config, Result: res, colors: colors})
	return len(s.views) - 1
}

// AddFailed appends a failed placeholder for a job that did not produce a
// result, so the failure stays visible instead of silently disappearing.
func (s *ViewState) AddFailed(cfg model.Config, err error) int {
	s.views = append(s.views, &View{Config: cfg, Err: err})
	return len(s.views) - 1
}

// View returns the view at index.
func (s *ViewState) View(index int) (*View, error) {
	if index < 0 || index >= len(s.views) {
		return nil, fmt.Errorf("%w: %d of %d", ErrViewOutOfRange, index, len(s.views))
	}
	return s.views[index], nil
}

// Remove deletes one view. Remaining views keep their color tables and
// results untouched; only their positions shift.
func (s *ViewState) Remove(index int) error {
	if index < 0 || index >= len(s.views) {
		return fmt.Errorf("%w: %d of %d", ErrViewOutOfRange, index, len(s.views))
	}
	s.views = append(s.views[:index], s.views[index+1:]...)
	return nil
}

// Clear drops every view. The caller must invoke it after re-parsing the
// dataset: existing views snapshot the old table and are never rebuilt
// implicitly.
func (s *ViewState) Clear() {
	s.views = nil
}

// Project reports how an original data row is represented in one view.
// ok is false when the row was excluded from the view's matrix (or the view
// is a failed placeholder).
func (s *ViewState) Project(index, originalRow int) (c model.ClusterID, ok bool, err error) {
	v, err := s.View(index)
	if err != nil {
		return 0, false, err
	}
	if v.Failed() {
		return 0, false, nil
	}
	c, ok = v.Result.Assignment[originalRow]
	return c, ok, nil
}

// Snapshot returns the render-layer form of a view: one PointDisplay per
// surviving row, in ascending original row order.
func (s *ViewState) Snapshot(index int) ([]PointDisplay, error) {
	v, err := s.View(index)
	if err != nil {
		return nil, err
	}
	if v.Failed() {
		return nil, fmt.Errorf("%w: %s: %w", ErrViewFailed, v.Config, v.Err)
	}

	points := make([]PointDisplay, 0, len(v.Result.RowMap))
	for _, row := range v.Result.RowMap {
		c := v.Result.Assignment[row]
		points = append(points, PointDisplay{
			Row:     row,
			Cluster: c,
			Color:   v.Color(c),
			Noise:   c.IsNoise(),
		})
	}
	return points, nil
}
