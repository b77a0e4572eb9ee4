package plot

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const labelWidth = 10

type axes struct {
	title, x, y string
}

type bounds struct {
	xMin, xMax, yMin, yMax float64
}

func extent(vals []float64) (float64, float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range vals {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi
}

// widen keeps degenerate ranges drawable.
func widen(lo, hi float64) (float64, float64) {
	if hi > lo {
		return lo, hi
	}
	return lo - 0.5, hi + 0.5
}

func scale(v, lo, hi float64, n int) int {
	return int(math.Round((v - lo) / (hi - lo) * float64(n-1)))
}

func tick(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

// frame draws y labels on the first and last body rows and an x axis below.
func frame(a axes, body []string, style lipgloss.Style, b bounds) string {
	var sb strings.Builder
	pad := strings.Repeat(" ", labelWidth)

	sb.WriteString(TitleStyle.Render(a.title))
	sb.WriteString("\n")
	sb.WriteString(AxisStyle.Render(a.y))
	sb.WriteString("\n")

	for i, line := range body {
		label := pad
		switch i {
		case 0:
			label = fmt.Sprintf("%*s", labelWidth, tick(b.yMax))
		case len(body) - 1:
			label = fmt.Sprintf("%*s", labelWidth, tick(b.yMin))
		}
		sb.WriteString(AxisStyle.Render(label))
		sb.WriteString(" ┤")
		sb.WriteString(style.Render(line))
		sb.WriteString("\n")
	}

	width := 0
	if len(body) > 0 {
		width = len([]rune(body[0]))
	}
	lo, hi := tick(b.xMin), tick(b.xMax)
	gap := width - len(lo) - len(hi)
	if gap < 1 {
		gap = 1
	}
	sb.WriteString(pad + " └" + strings.Repeat("─", width) + "\n")
	sb.WriteString(pad + "  " + lo + strings.Repeat(" ", gap) + hi + "\n")
	sb.WriteString(pad + "  " + AxisStyle.Render(a.x))
	return sb.String()
}
