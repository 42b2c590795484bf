// Package viz renders comparison view snapshots as self-contained echarts
// scatter charts. It is an output adapter only: layout and interactivity
// live in the generated chart, never in the core.
package viz

import (
	"fmt"
	"io"
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/clusterlab/clusterlab/compare"
	"github.com/clusterlab/clusterlab/internal/pca"
	"github.com/clusterlab/clusterlab/model"
)

// Coordinates computes dims-dimensional display coordinates for a job's
// numeric matrix via principal component projection. The result is aligned
// with the matrix rows, i.e. with the view's snapshot order.
func Coordinates(matrix [][]float64, dims int) ([][]float64, error) {
	return pca.Project(matrix, dims)
}

// RenderScatter writes an HTML scatter chart of one view to w.
//
// points and coords must be aligned: coords[i] holds the display position of
// points[i] (at least two dimensions; extra dimensions are ignored). Each
// cluster becomes one series in its stable display color, with noise points
// collected into a trailing "Noise" series.
func RenderScatter(w io.Writer, points []compare.PointDisplay, coords [][]float64, title string) error {
	if len(points) != len(coords) {
		return fmt.Errorf("viz: %d points but %d coordinates", len(points), len(coords))
	}

	series := make(map[model.ClusterID][]opts.ScatterData)
	colors := make(map[model.ClusterID]string)
	for i, p := range points {
		if len(coords[i]) < 2 {
			return fmt.Errorf("viz: coordinate %d has %d dimensions, want at least 2", i, len(coords[i]))
		}
		series[p.Cluster] = append(series[p.Cluster], opts.ScatterData{
			Value: []interface{}{coords[i][0], coords[i][1]},
		})
		colors[p.Cluster] = p.Color
	}

	ids := make([]model.ClusterID, 0, len(series))
	for c := range series {
		ids = append(ids, c)
	}
	// Ascending cluster order with noise last.
	sort.Slice(ids, func(i, j int) bool {
		if ids[i].IsNoise() != ids[j].IsNoise() {
			return !ids[i].IsNoise()
		}
		return ids[i] < ids[j]
	})

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(charts.WithTitleOpts(opts.Title{Title: title}))

	for _, c := range ids {
		name := fmt.Sprintf("Cluster %d", int(c))
		if c.IsNoise() {
			name = "Noise"
		}
		scatter.AddSeries(name, series[c]).
			SetSeriesOptions(charts.WithItemStyleOpts(opts.ItemStyle{Color: colors[c]}))
	}

	return scatter.Render(w)
}
