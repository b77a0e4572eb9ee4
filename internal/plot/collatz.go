package plot

import (
	"fmt"
	"strconv"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/collatz/internal/collatz"
)

// Sequence draws one line per seed against the iteration index.
func Sequence(m collatz.Matrix, opts Options) string {
	if m.Rows() == 0 {
		return ""
	}

	data := make([][]float64, m.Cols())
	legends := make([]string, m.Cols())
	colors := make([]asciigraph.AnsiColor, m.Cols())
	for j := range data {
		col := m.Column(j)
		series := make([]float64, len(col))
		for i, v := range col {
			series[i] = float64(v)
		}
		data[j] = series
		legends[j] = strconv.FormatInt(m[0][j], 10)
		colors[j] = palette[j%len(palette)]
	}

	graph := asciigraph.PlotMany(data,
		asciigraph.Height(opts.height()),
		asciigraph.Width(opts.width()),
		asciigraph.Caption("Iterations"),
		asciigraph.SeriesColors(colors...),
		asciigraph.SeriesLegends(legends...),
	)

	return TitleStyle.Render("Collatz's sequence for selected starting points") + "\n" +
		AxisStyle.Render("Value of sequence") + "\n" + graph
}

// StoppingTimes draws stopping times as a scatter against the seeds or as a
// histogram of their distribution. ModeNone yields an empty string.
func StoppingTimes(seeds collatz.Seeds, times []int, mode Mode, opts Options) string {
	ys := make([]float64, len(times))
	for i, t := range times {
		ys[i] = float64(t)
	}

	switch mode {
	case ModeScatter:
		return scatter(toFloats(seeds), ys, axes{
			title: "Iterations before Collatz's sequence converges to 1",
			x:     "Starting point",
			y:     "Number of iterations",
		}, ScatterStyle, opts)
	case ModeHistogram:
		return histogram(ys, axes{
			title: "Distribution of iterations before Collatz's seq. converges to 1",
			x:     "Number of iterations",
			y:     "Frequency",
		}, opts)
	}
	return ""
}

// MaxValues scatters each seed's maximum. Options.YRange overrides the y axis.
func MaxValues(seeds collatz.Seeds, maxes []int64, opts Options) string {
	return scatter(toFloats(seeds), toFloats(maxes), axes{
		title: "Max of Collatz's sequence for different starting points",
		x:     "Starting point",
		y:     "Maximum of the sequence",
	}, MaxStyle, opts)
}

// ModeWarning formats a rejected plot mode for display on stderr.
func ModeWarning(err error) string {
	return ErrorStyle.Render(fmt.Sprintf("ERROR: %v", err))
}

func toFloats(vals []int64) []float64 {
	out := make([]float64, len(vals))
	for i, v := range vals {
		out[i] = float64(v)
	}
	return out
}
