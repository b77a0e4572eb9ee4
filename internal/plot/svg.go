package plot

import (
	"fmt"
	"strings"

	"github.com/san-kum/collatz/internal/collatz"
)

// SequenceSVG renders every seed's trajectory as a polyline sharing one
// y scale.
func SequenceSVG(m collatz.Matrix, width, height int) string {
	if m.Rows() == 0 || m.Cols() == 0 {
		return ""
	}

	lo, hi := m[0][0], m[0][0]
	for _, row := range m {
		for _, v := range row {
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
	}
	span := float64(hi - lo)
	if span == 0 {
		span = 1
	}
	steps := float64(m.Rows() - 1)
	if steps == 0 {
		steps = 1
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height)

	for j := 0; j < m.Cols(); j++ {
		fmt.Fprintf(&sb, `<polyline fill="none" stroke="%s" stroke-width="1.5" data-seed="%d" points="`,
			svgPalette[j%len(svgPalette)], m[0][j])
		for i, row := range m {
			x := float64(i) / steps * float64(width)
			y := float64(height) - float64(row[j]-lo)/span*float64(height)
			if i > 0 {
				sb.WriteString(" ")
			}
			fmt.Fprintf(&sb, "%.1f,%.1f", x, y)
		}
		sb.WriteString("\"/>\n")
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}
