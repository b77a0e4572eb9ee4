package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/collatz/internal/collatz"
	"github.com/san-kum/collatz/internal/config"
	"github.com/san-kum/collatz/internal/export"
	"github.com/san-kum/collatz/internal/plot"
	"github.com/san-kum/collatz/internal/tui"
)

// loadConfig layers config file or preset, then explicitly set flags, then
// positional seeds.
func loadConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	switch {
	case configFile != "":
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	case preset != "":
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	flags := cmd.Flags()
	if flags.Changed("max-steps") {
		cfg.MaxSteps = maxSteps
	}
	if flags.Changed("workers") {
		cfg.Workers = workers
	}
	if flags.Changed("format") || cfg.Format == "" {
		cfg.Format = format
	}
	if flags.Changed("iterations") {
		cfg.Iterations = iterations
	}
	if flags.Changed("bins") {
		cfg.Plot.Bins = bins
	}
	if cmd.Name() == "stopping" && flags.Changed("plot") {
		cfg.Plot.Mode = plotMode
	}
	if flags.Changed("ylim") {
		r, err := parseYLim(ylim)
		if err != nil {
			return nil, err
		}
		cfg.Plot.YLim = r
	}
	if len(args) > 0 {
		cfg.Seeds = config.SeedList(args)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func parseYLim(s string) (*config.YRange, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return nil, fmt.Errorf("ylim must be bottom,top, got %q", s)
	}
	bottom, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return nil, fmt.Errorf("ylim bottom: %w", err)
	}
	top, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return nil, fmt.Errorf("ylim top: %w", err)
	}
	return &config.YRange{Bottom: bottom, Top: top}, nil
}

func setup(cmd *cobra.Command, args []string) (*config.Config, *collatz.Engine, export.Format, error) {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return nil, nil, "", err
	}
	f, err := export.ParseFormat(cfg.Format)
	if err != nil {
		return nil, nil, "", err
	}
	in, err := cfg.Input()
	if err != nil {
		return nil, nil, "", err
	}
	engine, err := collatz.New(in, cfg.Engine())
	if err != nil {
		return nil, nil, "", err
	}
	return cfg, engine, f, nil
}

func plotOptions(cfg *config.Config) plot.Options {
	opts := plot.DefaultOptions()
	opts.Bins = cfg.Plot.Bins
	if cfg.Plot.YLim != nil {
		opts.YRange = &plot.Range{Bottom: cfg.Plot.YLim.Bottom, Top: cfg.Plot.YLim.Top}
	}
	return opts
}

func runSequence(cmd *cobra.Command, args []string) error {
	cfg, engine, f, err := setup(cmd, args)
	if err != nil {
		return err
	}

	m, err := engine.Sequence(cfg.Iterations)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if err := export.WriteMatrix(out, f, m); err != nil {
		return err
	}

	if plotLines {
		fmt.Fprintln(out)
		fmt.Fprintln(out, plot.Sequence(m, plotOptions(cfg)))
	}
	if svgPath != "" {
		if err := os.WriteFile(svgPath, []byte(plot.SequenceSVG(m, 800, 400)), 0644); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", svgPath)
	}
	return nil
}

// runStopping reports a bad plot mode on stderr but still prints the numbers.
func runStopping(cmd *cobra.Command, args []string) error {
	cfg, engine, f, err := setup(cmd, args)
	if err != nil {
		return err
	}

	mode, modeErr := plot.ParseMode(cfg.Plot.Mode)
	if modeErr != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), plot.ModeWarning(modeErr))
	}

	times, err := engine.StoppingTimes()
	if err != nil {
		return err
	}

	seeds := engine.Seeds()
	stats := make([]collatz.Stats, len(seeds))
	for i, s := range seeds {
		stats[i] = collatz.Stats{Seed: s, StoppingTime: times[i]}
	}

	out := cmd.OutOrStdout()
	if err := export.WriteStats(out, f, stats, export.StoppingTime); err != nil {
		return err
	}
	if mode != plot.ModeNone {
		fmt.Fprintln(out)
		fmt.Fprintln(out, plot.StoppingTimes(seeds, times, mode, plotOptions(cfg)))
	}
	return nil
}

func runMax(cmd *cobra.Command, args []string) error {
	cfg, engine, f, err := setup(cmd, args)
	if err != nil {
		return err
	}

	maxes, err := engine.MaxValues()
	if err != nil {
		return err
	}

	seeds := engine.Seeds()
	stats := make([]collatz.Stats, len(seeds))
	for i, s := range seeds {
		stats[i] = collatz.Stats{Seed: s, Max: maxes[i]}
	}

	out := cmd.OutOrStdout()
	if err := export.WriteStats(out, f, stats, export.MaxValue); err != nil {
		return err
	}

	show := plotMax
	if !cmd.Flags().Changed("plot") {
		if mode, err := plot.ParseMode(cfg.Plot.Mode); err == nil && mode != plot.ModeNone {
			show = true
		}
	}
	if show {
		fmt.Fprintln(out)
		fmt.Fprintln(out, plot.MaxValues(seeds, maxes, plotOptions(cfg)))
	}
	return nil
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	_, engine, f, err := setup(cmd, args)
	if err != nil {
		return err
	}

	start := time.Now()
	stats, err := engine.AnalyzeContext(cmd.Context())
	if err != nil {
		var nc *collatz.NonConvergenceError
		if errors.As(err, &nc) {
			return fmt.Errorf("%w (raise --max-steps or drop seed %d)", err, nc.Seed)
		}
		return err
	}

	if err := export.WriteStats(cmd.OutOrStdout(), f, stats, export.AllFields); err != nil {
		return err
	}
	if f == export.FormatTable {
		fmt.Fprintf(cmd.ErrOrStderr(), "\nanalyzed %d seeds in %v\n", len(stats), time.Since(start))
	}
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "presets:")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(out, "  %-10s seeds=%s plot=%s\n", name, strings.Join(p.Seeds, ","), p.Plot.Mode)
	}
	return nil
}

func runExplore(cmd *cobra.Command, args []string) error {
	seed := int64(27)
	if len(args) == 1 {
		seeds, err := config.ParseSeeds(args)
		if err != nil {
			return err
		}
		if len(seeds) != 1 {
			return fmt.Errorf("explore takes a single seed, got %d", len(seeds))
		}
		seed = seeds[0]
	}
	if seed < 1 {
		return &collatz.InvalidSeedError{Seed: seed}
	}

	steps := maxSteps
	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return err
		}
		if !cmd.Flags().Changed("max-steps") {
			steps = cfg.MaxSteps
		}
	}
	return tui.Run(seed, steps)
}

func initConfig(cmd *cobra.Command, args []string) error {
	path := "collatz.yaml"
	if len(args) == 1 {
		path = args[0]
	}

	cfg := config.DefaultConfig()
	if preset != "" {
		if cfg = config.GetPreset(preset); cfg == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}
	if len(cfg.Seeds) == 0 {
		cfg.Seeds = config.SeedList{"6", "27"}
	}

	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}
	if err := config.Save(path, cfg); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
	return nil
}
