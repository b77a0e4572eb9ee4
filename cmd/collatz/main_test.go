package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/san-kum/collatz/internal/collatz"
	"github.com/san-kum/collatz/internal/config"
	"github.com/san-kum/collatz/internal/export"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestStopping_InvalidModeStillPrintsResult(t *testing.T) {
	out, errOut, err := execute(t, "stopping", "6", "27", "--plot", "bogus", "--format", "csv")
	require.NoError(t, err)
	require.Contains(t, errOut, `invalid plot mode "bogus"`)
	require.Equal(t, "seed,stopping_time\n6,9\n27,112\n", out)
}

func TestStopping_Histogram(t *testing.T) {
	out, errOut, err := execute(t, "stopping", "1..50", "--plot", "hist", "--bins", "10")
	require.NoError(t, err)
	require.Empty(t, errOut)
	require.Contains(t, out, "Frequency")
}

func TestMax_JSON(t *testing.T) {
	out, _, err := execute(t, "max", "6,27", "--format", "json")
	require.NoError(t, err)

	var doc export.StatsDoc
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	require.Equal(t, []map[string]int64{
		{"seed": 6, "max": 16},
		{"seed": 27, "max": 9232},
	}, doc.Results)
}

func TestMax_PlotWithYLim(t *testing.T) {
	out, _, err := execute(t, "max", "1..30", "--plot", "--ylim", "0,100")
	require.NoError(t, err)
	require.Contains(t, out, "Max of Collatz's sequence for different starting points")

	_, _, err = execute(t, "max", "6", "--ylim", "100")
	require.Error(t, err)
}

func TestSequence_CSV(t *testing.T) {
	out, _, err := execute(t, "sequence", "6", "-n", "12", "--format", "csv")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 13)
	got := make([]string, 0, 12)
	for _, l := range lines[1:] {
		got = append(got, strings.Split(l, ",")[1])
	}
	require.Equal(t, "6 3 10 5 16 8 4 2 1 4 2 1", strings.Join(got, " "))
}

func TestSequence_SVG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seq.svg")
	_, errOut, err := execute(t, "sequence", "6", "27", "--svg", path)
	require.NoError(t, err)
	require.Contains(t, errOut, "wrote")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, 2, strings.Count(string(data), "<polyline"))
}

func TestAnalyze_Preset(t *testing.T) {
	out, _, err := execute(t, "analyze", "--preset", "famous", "--format", "csv")
	require.NoError(t, err)
	require.Equal(t, "seed,stopping_time,max\n6,9,16\n27,112,9232\n97,119,9232\n871,179,190996\n", out)
}

func TestAnalyze_MaxSteps(t *testing.T) {
	_, _, err := execute(t, "analyze", "27", "--max-steps", "10")
	require.ErrorIs(t, err, collatz.ErrNotConverged)
}

func TestInvalidSeed(t *testing.T) {
	_, _, err := execute(t, "stopping", "0")
	require.ErrorIs(t, err, collatz.ErrInvalidSeed)

	_, _, err = execute(t, "stopping")
	require.ErrorIs(t, err, collatz.ErrNoSeeds)
}

func TestConfigInitAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "collatz.yaml")

	_, _, err := execute(t, "config", "init", path, "--preset", "famous")
	require.NoError(t, err)

	_, _, err = execute(t, "config", "init", path)
	require.Error(t, err, "existing file needs --force")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, config.SeedList{"6", "27", "97", "871"}, cfg.Seeds)

	out, _, err := execute(t, "stopping", "--config", path, "--format", "csv")
	require.NoError(t, err)
	require.Equal(t, "seed,stopping_time\n6,9\n27,112\n97,119\n871,179\n", out)
}

func TestPresets(t *testing.T) {
	out, _, err := execute(t, "presets")
	require.NoError(t, err)
	for _, name := range config.ListPresets() {
		require.Contains(t, out, name)
	}
}
