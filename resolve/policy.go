package resolve

import "fmt"

// Policy selects how non-numeric cells are handled when deriving a numeric
// matrix from a typed table.
type Policy uint8

const (
	// ZeroFill replaces every non-numeric cell with 0.0.
	ZeroFill Policy = iota
	// CategoryIndex assigns each distinct non-numeric token of a column an
	// increasing integer code in order of first appearance.
	CategoryIndex
	// ExcludePoints drops every row that contains a non-numeric cell.
	ExcludePoints
	// ExcludeFeatures drops every column that contains a non-numeric cell.
	ExcludeFeatures
)

// String returns the kebab-case name of the policy.
func (p Policy) String() string {
	switch p {
	case ZeroFill:
		return "zero-fill"
	case CategoryIndex:
		return "category-index"
	case ExcludePoints:
		return "exclude-points"
	case ExcludeFeatures:
		return "exclude-features"
	default:
		return fmt.Sprintf("policy(%d)", uint8(p))
	}
}

// Valid reports whether p is one of the four defined policies.
func (p Policy) Valid() bool { return p <= ExcludeFeatures }
