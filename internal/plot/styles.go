package plot

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00ffff"))

	AxisStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888899"))

	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ff4444"))

	ScatterStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00ccff"))

	MaxStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff5555"))

	BarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#3355ff"))
)

// palette cycles per seed in multi-series line plots.
var palette = []asciigraph.AnsiColor{
	asciigraph.Red,
	asciigraph.Green,
	asciigraph.Blue,
	asciigraph.Yellow,
	asciigraph.Cyan,
	asciigraph.Magenta,
}

// svgPalette mirrors palette for SVG export.
var svgPalette = []string{"#ff5555", "#55ff55", "#5555ff", "#ffff55", "#55ffff", "#ff55ff"}
