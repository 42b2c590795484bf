package dataset

// Cell is one value of the typed table: either a parsed float or an opaque
// non-numeric token. The raw token is preserved verbatim in both cases so the
// original data can be re-exported without loss.
type Cell struct {
	Value   float64
	Token   string
	Numeric bool
}

// Schema describes the structure of a parsed table.
type Schema struct {
	// Features is the number of feature columns, excluding any label column.
	Features int
	// HasLabels reports whether the table was parsed in trailing-label mode.
	HasLabels bool
	// NumericColumn reports, per feature column, whether every cell in that
	// column parsed as a float.
	NumericColumn []bool
}

// Table is an immutable, typed view of one parsed dataset. All rows have
// exactly Schema.Features cells. A table must not be replaced while any job
// still holds a matrix derived from it; re-parsing requires the caller to
// clear dependent state first.
type Table struct {
	schema Schema
	rows   [][]Cell
	labels []string
}

// Len returns the number of data rows.
func (t *Table) Len() int { return len(t.rows) }

// Features returns the number of feature columns.
func (t *Table) Features() int { return t.schema.Features }

// Schema returns a copy of the table schema.
func (t *Table) Schema() Schema {
	s := t.schema
	s.NumericColumn = append([]bool(nil), t.schema.NumericColumn...)
	return s
}

// Cell returns the cell at (row, col).
func (t *Table) Cell(row, col int) Cell { return t.rows[row][col] }

// Row returns the cells of one row. The returned slice is shared; callers
// must not modify it.
func (t *Table) Row(row int) []Cell { return t.rows[row] }

// HasLabels reports whether the table carries a trailing label column.
func (t *Table) HasLabels() bool { return t.schema.HasLabels }

// Label returns the label of one row. It returns "" when the table was
// parsed without a trailing label column.
func (t *Table) Label(row int) string {
	if !t.schema.HasLabels {
		return ""
	}
	return t.labels[row]
}

// Labels returns a copy of the label column, or nil if there is none.
func (t *Table) Labels() []string {
	if !t.schema.HasLabels {
		return nil
	}
	return append([]string(nil), t.labels...)
}

// ClassCount returns the number of distinct labels, or 0 if the table has no
// label column.
func (t *Table) ClassCount() int {
	if !t.schema.HasLabels {
		return 0
	}
	seen := make(map[string]struct{}, len(t.labels))
	for _, l := range t.labels {
		seen[l] = struct{}{}
	}
	return len(seen)
}

// NumericColumn reports whether every cell of the given feature column is
// numeric.
func (t *Table) NumericColumn(col int) bool { return t.schema.NumericColumn[col] }
