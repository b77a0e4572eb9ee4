package plot

import "github.com/charmbracelet/lipgloss"

// scatter draws (x, y) pairs on a braille canvas. Options.YRange, when set,
// replaces the data's y extent.
func scatter(xs, ys []float64, a axes, style lipgloss.Style, opts Options) string {
	n := len(xs)
	if len(ys) < n {
		n = len(ys)
	}
	if n == 0 {
		return ""
	}
	xs, ys = xs[:n], ys[:n]

	var b bounds
	b.xMin, b.xMax = widen(extent(xs))
	if opts.YRange != nil {
		b.yMin, b.yMax = widen(opts.YRange.Bottom, opts.YRange.Top)
	} else {
		b.yMin, b.yMax = widen(extent(ys))
	}

	c := newCanvas(opts.width(), opts.height())
	for i := range xs {
		if ys[i] < b.yMin || ys[i] > b.yMax {
			continue
		}
		c.set(scale(xs[i], b.xMin, b.xMax, c.dotWidth()), scale(ys[i], b.yMin, b.yMax, c.dotHeight()))
	}

	return frame(a, c.lines(), style, b)
}
