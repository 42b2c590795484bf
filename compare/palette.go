package compare

// NoiseColor is the fixed display color for noise points in every view.
const NoiseColor = "#7f7f7f"

// DefaultPalette is the shared cluster color palette. Colors are assigned to
// a view's clusters in ascending cluster order and wrap around for results
// with more clusters than palette entries.
var DefaultPalette = []string{
	"#000080", // navy
	"#0060ff", // blue
	"#00d0ff", // cyan
	"#20ff9f", // spring green
	"#9fff20", // lime
	"#ffd000", // amber
	"#ff6000", // orange
	"#ff2000", // vermilion
	"#c00000", // red
	"#800000", // maroon
}
