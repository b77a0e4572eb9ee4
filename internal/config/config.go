package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/collatz/internal/collatz"
)

const (
	DefaultIterations = collatz.DefaultIterations
	DefaultBins       = 100
	DefaultFormat     = "table"
	DefaultPlotMode   = "none"
)

type Config struct {
	Seeds      SeedList   `yaml:"seeds"`
	Iterations int        `yaml:"iterations"`
	MaxSteps   int        `yaml:"max_steps"`
	Workers    int        `yaml:"workers"`
	Format     string     `yaml:"format"`
	Plot       PlotConfig `yaml:"plot"`
}

type PlotConfig struct {
	Mode string  `yaml:"mode"`
	Bins int     `yaml:"bins"`
	YLim *YRange `yaml:"ylim,omitempty"`
}

// YRange overrides the y axis of the max-value scatter.
type YRange struct {
	Bottom float64 `yaml:"bottom"`
	Top    float64 `yaml:"top"`
}

// SeedList keeps seeds as written so ranges like "1..100" survive a round trip.
type SeedList []string

// UnmarshalYAML accepts a scalar ("27" or "1..100") or a sequence of them.
func (s *SeedList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		*s = SeedList{value.Value}
	case yaml.SequenceNode:
		out := make(SeedList, 0, len(value.Content))
		for _, n := range value.Content {
			if n.Kind != yaml.ScalarNode {
				return fmt.Errorf("line %d: seed entries must be scalars", n.Line)
			}
			out = append(out, n.Value)
		}
		*s = out
	default:
		return fmt.Errorf("line %d: seeds must be a value or a list", value.Line)
	}
	return nil
}

func DefaultConfig() *Config {
	return &Config{
		Iterations: DefaultIterations,
		Format:     DefaultFormat,
		Plot: PlotConfig{
			Mode: DefaultPlotMode,
			Bins: DefaultBins,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

var (
	ErrIterations = errors.New("config: iterations must be at least 1")
	ErrBins       = errors.New("config: plot bins must be positive")
	ErrYRange     = errors.New("config: ylim bottom must be below top")
)

func (c *Config) Validate() error {
	if c.Iterations < 1 {
		return ErrIterations
	}
	if c.Plot.Bins < 1 {
		return ErrBins
	}
	if c.Plot.YLim != nil && c.Plot.YLim.Bottom >= c.Plot.YLim.Top {
		return ErrYRange
	}
	return nil
}

// Input parses the configured seeds into an engine input.
func (c *Config) Input() (collatz.Input, error) {
	seeds, err := ParseSeeds(c.Seeds)
	if err != nil {
		return nil, err
	}
	if len(seeds) == 1 {
		return collatz.Int(seeds[0]), nil
	}
	return seeds, nil
}

func (c *Config) Engine() collatz.Config {
	return collatz.Config{
		MaxSteps: c.MaxSteps,
		Workers:  c.Workers,
	}
}
