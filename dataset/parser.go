package dataset

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// Mode selects how the final column of each row is interpreted.
type Mode uint8

const (
	// ModePlain treats every column as a feature.
	ModePlain Mode = iota
	// ModeTrailingLabel treats the final column of every row as a
	// pre-existing classification label rather than a feature.
	ModeTrailingLabel
)

// ErrEmptyDataset is returned when the input contains no data rows.
var ErrEmptyDataset = errors.New("dataset: input contains no data rows")

// ErrNoFeatures is returned when label extraction leaves no feature columns.
var ErrNoFeatures = errors.New("dataset: no feature columns after label extraction")

// MalformedRowError indicates a row whose token count differs from the rest
// of the file. Parsing fails as a whole; no partial table is produced.
type MalformedRowError struct {
	Line int // 1-based input line number
	Got  int
	Want int
}

func (e *MalformedRowError) Error() string {
	return fmt.Sprintf("dataset: line %d has %d values, want %d", e.Line, e.Got, e.Want)
}

// Parse reads comma-separated rows from r and builds a typed table.
//
// Every line must carry the same number of tokens. Tokens that parse as
// floats become numeric cells; everything else is kept verbatim as an opaque
// token. In ModeTrailingLabel the final token of each row is recorded as the
// row's label instead of a feature.
func Parse(r io.Reader, mode Mode) (*Table, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("dataset: read input: %w", err)
	}
	return ParseString(string(raw), mode)
}

// ParseString is Parse over an in-memory string.
func ParseString(s string, mode Mode) (*Table, error) {
	lines := strings.Split(s, "\n")

	var (
		rows     [][]Cell
		labels   []string
		features = -1
		numeric  []bool
	)

	for i, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			// Blank lines (typically the trailing newline) carry no row.
			continue
		}

		tokens := strings.Split(line, ",")
		if features == -1 {
			features = len(tokens)
			if mode == ModeTrailingLabel {
				features--
			}
			if features < 1 {
				return nil, ErrNoFeatures
			}
			numeric = make([]bool, features)
			for c := range numeric {
				numeric[c] = true
			}
		}

		want := features
		if mode == ModeTrailingLabel {
			want++
		}
		if len(tokens) != want {
			return nil, &MalformedRowError{Line: i + 1, Got: len(tokens), Want: want}
		}

		if mode == ModeTrailingLabel {
			labels = append(labels, tokens[features])
			tokens = tokens[:features]
		}

		cells := make([]Cell, features)
		for c, tok := range tokens {
			v, err := strconv.ParseFloat(strings.TrimSpace(tok), 64)
			if err == nil {
				cells[c] = Cell{Value: v, Token: tok, Numeric: true}
			} else {
				cells[c] = Cell{Token: tok}
				numeric[c] = false
			}
		}
		rows = append(rows, cells)
	}

	if len(rows) == 0 {
		return nil, ErrEmptyDataset
	}

	return &Table{
		schema: Schema{Features: features, HasLabels: mode == ModeTrailingLabel, NumericColumn: numeric},
		rows:   rows,
		labels: labels,
	}, nil
}

// Open parses the dataset file at path. Files ending in ".gz" are
// decompressed transparently.
func Open(path string, mode Mode) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("dataset: gzip: %w", err)
		}
		defer zr.Close()
		r = zr
	}

	return Parse(r, mode)
}
