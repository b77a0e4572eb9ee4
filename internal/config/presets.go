package config

import "sort"

var Presets = map[string]*Config{
	"small": {
		Seeds: SeedList{"1..100"}, Iterations: 120, Format: "table",
		Plot: PlotConfig{Mode: "scatter", Bins: DefaultBins},
	},
	"famous": {
		Seeds: SeedList{"6", "27", "97", "871"}, Iterations: DefaultIterations, Format: "table",
		Plot: PlotConfig{Mode: "none", Bins: DefaultBins},
	},
	// seeds whose stopping time beats every smaller seed
	"records": {
		Seeds: SeedList{"1", "2", "3", "6", "7", "9", "18", "25", "27", "54", "73", "97",
			"129", "171", "231", "313", "327", "649", "703", "871"},
		Iterations: 180, Format: "table",
		Plot: PlotConfig{Mode: "scatter", Bins: DefaultBins},
	},
	"thousand": {
		Seeds: SeedList{"1..1000"}, Iterations: DefaultIterations, Format: "table",
		Plot: PlotConfig{Mode: "hist", Bins: 50, YLim: &YRange{Bottom: 0, Top: 10000}},
	},
}

// GetPreset returns a copy so callers can override fields freely.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := *p
	cfg.Seeds = append(SeedList(nil), p.Seeds...)
	if p.Plot.YLim != nil {
		ylim := *p.Plot.YLim
		cfg.Plot.YLim = &ylim
	}
	return &cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
