package tui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/collatz/internal/collatz"
)

var (
	cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white  = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	red    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	yellow = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
)

const previewLen = 24

// Model walks one seed at a time; it recomputes the trajectory whenever the
// seed changes.
type Model struct {
	seed          int64
	maxSteps      int
	path          []int64
	peak          int64
	err           error
	editing       bool
	editBuf       string
	width, height int
}

func New(seed int64, maxSteps int) Model {
	if seed < 1 {
		seed = 1
	}
	m := Model{maxSteps: maxSteps, width: 80, height: 24}
	return m.jump(seed)
}

func Run(seed int64, maxSteps int) error {
	_, err := tea.NewProgram(New(seed, maxSteps), tea.WithAltScreen()).Run()
	return err
}

func (m Model) Seed() int64   { return m.seed }
func (m Model) Path() []int64 { return m.path }
func (m Model) Peak() int64   { return m.peak }
func (m Model) Err() error    { return m.err }
func (m Model) Init() tea.Cmd { return nil }
func (m Model) Editing() bool { return m.editing }

func (m Model) jump(seed int64) Model {
	if seed < 1 {
		seed = 1
	}
	m.seed = seed
	m.path, m.err = collatz.Trajectory(seed, m.maxSteps)
	m.peak = seed
	if m.err != nil {
		return m
	}
	e, err := collatz.New(collatz.Int(seed), collatz.Config{MaxSteps: m.maxSteps})
	if err != nil {
		m.err = err
		return m
	}
	if stats, err := e.Analyze(); err == nil {
		m.peak = stats[0].Max
	}
	return m
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.editing {
			return m.editKey(msg)
		}
		return m.browseKey(msg)
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	}
	return m, nil
}

func (m Model) browseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key := msg.String(); key {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		return m.jump(m.seed + 1), nil
	case "down", "j":
		return m.jump(m.seed - 1), nil
	case "right", "l":
		return m.jump(m.seed + 10), nil
	case "left", "h":
		return m.jump(m.seed - 10), nil
	case "/":
		m.editing, m.editBuf = true, ""
	default:
		if len(key) == 1 && key[0] >= '0' && key[0] <= '9' {
			m.editing, m.editBuf = true, key
		}
	}
	return m, nil
}

func (m Model) editKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key := msg.String(); key {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.editing = false
	case "enter":
		m.editing = false
		if n, err := strconv.ParseInt(m.editBuf, 10, 64); err == nil && n > 0 {
			return m.jump(n), nil
		}
	case "backspace":
		if len(m.editBuf) > 0 {
			m.editBuf = m.editBuf[:len(m.editBuf)-1]
		}
	default:
		if len(key) == 1 && key[0] >= '0' && key[0] <= '9' && len(m.editBuf) < 18 {
			m.editBuf += key
		}
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(cyan.Render("collatz explorer"))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "%s %s\n", dim.Render("seed     "), white.Render(strconv.FormatInt(m.seed, 10)))

	if m.err != nil {
		b.WriteString(red.Render(m.err.Error()))
		b.WriteString("\n")
	} else {
		fmt.Fprintf(&b, "%s %s\n", dim.Render("stopping "), yellow.Render(strconv.Itoa(len(m.path))))
		fmt.Fprintf(&b, "%s %s\n", dim.Render("max      "), yellow.Render(strconv.FormatInt(m.peak, 10)))
	}
	b.WriteString("\n")

	if len(m.path) > 1 {
		data := make([]float64, len(m.path))
		for i, v := range m.path {
			data[i] = float64(v)
		}
		width := m.width - 14
		if width < 20 {
			width = 20
		}
		b.WriteString(asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(width),
			asciigraph.Caption("trajectory"),
		))
		b.WriteString("\n\n")
	}

	b.WriteString(dim.Render(preview(m.path)))
	b.WriteString("\n\n")

	if m.editing {
		b.WriteString(white.Render("jump to: " + m.editBuf + "_"))
	} else {
		b.WriteString(dim.Render("↑/↓ ±1  ←/→ ±10  0-9 or / jump  q quit"))
	}
	return b.String()
}

func preview(path []int64) string {
	n := len(path)
	if n > previewLen {
		n = previewLen
	}
	parts := make([]string, n)
	for i := 0; i < n; i++ {
		parts[i] = strconv.FormatInt(path[i], 10)
	}
	s := strings.Join(parts, " → ")
	if len(path) > previewLen {
		s += " → …"
	}
	return s
}
