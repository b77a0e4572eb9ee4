package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/san-kum/collatz/internal/collatz"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Iterations != collatz.DefaultIterations {
		t.Errorf("expected %d iterations, got %d", collatz.DefaultIterations, cfg.Iterations)
	}
	if cfg.Plot.Bins != DefaultBins {
		t.Errorf("expected %d bins, got %d", DefaultBins, cfg.Plot.Bins)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoad(t *testing.T) {
	require := require.New(t)

	path := filepath.Join(t.TempDir(), "collatz.yaml")
	data := `
seeds: [6, "20..22", 27]
max_steps: 500
plot:
  mode: hist
  ylim: {bottom: 0, top: 5000}
`
	require.NoError(os.WriteFile(path, []byte(data), 0644))

	cfg, err := Load(path)
	require.NoError(err)
	require.Equal(SeedList{"6", "20..22", "27"}, cfg.Seeds)
	require.Equal(500, cfg.MaxSteps)
	require.Equal("hist", cfg.Plot.Mode)
	require.Equal(DefaultBins, cfg.Plot.Bins, "unset fields keep defaults")
	require.Equal(DefaultIterations, cfg.Iterations)
	require.Equal(&YRange{Bottom: 0, Top: 5000}, cfg.Plot.YLim)

	in, err := cfg.Input()
	require.NoError(err)
	require.Equal(collatz.Ints{6, 20, 21, 22, 27}, in)
	require.Equal(500, cfg.Engine().MaxSteps)
}

func TestLoad_ScalarSeed(t *testing.T) {
	require := require.New(t)

	path := filepath.Join(t.TempDir(), "one.yaml")
	require.NoError(os.WriteFile(path, []byte("seeds: 27\n"), 0644))

	cfg, err := Load(path)
	require.NoError(err)

	in, err := cfg.Input()
	require.NoError(err)
	require.Equal(collatz.Int(27), in)
}

func TestLoad_BadSeeds(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("seeds: {a: 1}\n"), 0644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	require := require.New(t)

	path := filepath.Join(t.TempDir(), "saved.yaml")
	cfg := GetPreset("thousand")
	require.NotNil(cfg)
	require.NoError(Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(err)
	require.Equal(cfg, loaded)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"iterations", func(c *Config) { c.Iterations = 0 }, ErrIterations},
		{"bins", func(c *Config) { c.Plot.Bins = 0 }, ErrBins},
		{"ylim", func(c *Config) { c.Plot.YLim = &YRange{Bottom: 10, Top: 10} }, ErrYRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			require.ErrorIs(t, cfg.Validate(), tt.want)
		})
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("famous")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	cfg.Seeds[0] = "1"
	if Presets["famous"].Seeds[0] != "6" {
		t.Error("GetPreset leaked the shared preset")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets()
	require.Equal(t, []string{"famous", "records", "small", "thousand"}, presets)
}
