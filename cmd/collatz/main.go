package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	configFile string
	preset     string
	maxSteps   int
	workers    int
	format     string
	// sequence
	iterations int
	plotLines  bool
	svgPath    string
	// stopping
	plotMode string
	bins     int
	// max
	plotMax bool
	ylim    string
	// config init
	force bool
)

// main runs the collatz CLI and exits with status 1 if the command fails.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "collatz",
		Short:        "collatz sequence lab",
		SilenceUsage: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset seeds and settings")
	pf.IntVar(&maxSteps, "max-steps", 0, "give up on a seed after this many states (0 = never)")
	pf.IntVar(&workers, "workers", 0, "parallel workers for analyze (0 = GOMAXPROCS)")
	pf.StringVar(&format, "format", "table", "output format: table, csv or json")

	sequenceCmd := &cobra.Command{
		Use:   "sequence [seeds...]",
		Short: "print the first n values of each trajectory",
		RunE:  runSequence,
	}
	sequenceCmd.Flags().IntVarP(&iterations, "iterations", "n", 100, "rows to generate")
	sequenceCmd.Flags().BoolVar(&plotLines, "plot", false, "plot every trajectory")
	sequenceCmd.Flags().StringVar(&svgPath, "svg", "", "also write the plot as SVG to this path")

	stoppingCmd := &cobra.Command{
		Use:   "stopping [seeds...]",
		Short: "number of states until each trajectory reaches 1",
		RunE:  runStopping,
	}
	stoppingCmd.Flags().StringVar(&plotMode, "plot", "none", "plot mode: none, scatter or hist")
	stoppingCmd.Flags().IntVar(&bins, "bins", 100, "histogram bins")

	maxCmd := &cobra.Command{
		Use:   "max [seeds...]",
		Short: "largest value reached by each trajectory",
		RunE:  runMax,
	}
	maxCmd.Flags().BoolVar(&plotMax, "plot", false, "scatter seeds against maxima")
	maxCmd.Flags().StringVar(&ylim, "ylim", "", "y axis range as bottom,top")

	analyzeCmd := &cobra.Command{
		Use:   "analyze [seeds...]",
		Short: "stopping time and maximum for each seed, in parallel",
		RunE:  runAnalyze,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	exploreCmd := &cobra.Command{
		Use:   "explore [seed]",
		Short: "browse trajectories interactively",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runExplore,
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "manage config files",
	}
	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write a starter config (from --preset if given)",
		Args:  cobra.MaximumNArgs(1),
		RunE:  initConfig,
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	configCmd.AddCommand(initCmd)

	rootCmd.AddCommand(sequenceCmd, stoppingCmd, maxCmd, analyzeCmd, presetsCmd, exploreCmd, configCmd)
	return rootCmd
}
