package plot

import "strings"

var blocks = []rune(" ▁▂▃▄▅▆▇█")

// Bin counts values into n equal-width bins spanning [min, max]; the last bin
// is closed so the maximum lands in it.
func Bin(values []float64, n int) (counts []int, lo, hi float64) {
	if n < 1 {
		n = 1
	}
	counts = make([]int, n)
	if len(values) == 0 {
		return counts, 0, 0
	}

	lo, hi = widen(extent(values))
	width := (hi - lo) / float64(n)
	for _, v := range values {
		i := int((v - lo) / width)
		if i >= n {
			i = n - 1
		}
		counts[i]++
	}
	return counts, lo, hi
}

// histogram renders one column per bin using eighth-block glyphs.
func histogram(values []float64, a axes, opts Options) string {
	if len(values) == 0 {
		return ""
	}
	counts, lo, hi := Bin(values, opts.bins())
	height := opts.height()

	peak := 0
	for _, c := range counts {
		if c > peak {
			peak = c
		}
	}

	body := make([]string, height)
	for r := 0; r < height; r++ {
		var sb strings.Builder
		floor := (height - 1 - r) * 8
		for _, c := range counts {
			level := 0
			if peak > 0 {
				level = c*height*8/peak - floor
			}
			if level < 0 {
				level = 0
			}
			if level > 8 {
				level = 8
			}
			sb.WriteRune(blocks[level])
		}
		body[r] = sb.String()
	}

	return frame(a, body, BarStyle, bounds{xMin: lo, xMax: hi, yMin: 0, yMax: float64(peak)})
}
