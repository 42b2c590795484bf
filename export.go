package clusterlab

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/clusterlab/clusterlab/dataset"
	"github.com/clusterlab/clusterlab/model"
)

// WriteClusteredCSV writes the original table with one extra trailing column
// holding the cluster each row was assigned to in the given result.
//
// Cells are written as their verbatim input tokens. The cluster column holds
// the cluster number, "noise" for noise points, or "" for rows the result's
// resolver policy excluded.
func WriteClusteredCSV(w io.Writer, t *dataset.Table, res *model.Result) error {
	cw := csv.NewWriter(w)

	record := make([]string, 0, t.Features()+2)
	for row := 0; row < t.Len(); row++ {
		record = record[:0]
		for col := 0; col < t.Features(); col++ {
			record = append(record, t.Cell(row, col).Token)
		}
		if t.HasLabels() {
			record = append(record, t.Label(row))
		}

		cluster := ""
		if c, ok := res.Assignment[row]; ok {
			if c.IsNoise() {
				cluster = "noise"
			} else {
				cluster = strconv.Itoa(int(c))
			}
		}
		record = append(record, cluster)

		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
