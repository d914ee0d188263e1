// Package config loads the JSON file describing a demo pathguide run:
// which guide to construct, its seed, the demo generator's shape, and
// whether to serve metrics.
//
// Grounded on cmd/focus/main.go's loadConfig: a two-phase JSON read
// distinguishes an explicitly-set field from an absent one, so a user can
// write "seed": 0 without it being silently replaced by the default.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// GuideKind selects which of the three guides a run drives.
type GuideKind string

const (
	GuideDefault  GuideKind = "default"
	GuideBFS      GuideKind = "bfs"
	GuideWeighted GuideKind = "weighted"
)

// Config describes one demo run.
type Config struct {
	Guide      GuideKind `json:"guide"`
	Seed       int64     `json:"seed"`
	HasSeed    bool      `json:"-"`
	Depth      int       `json:"depth"`
	Arity      int       `json:"arity"`
	Weights    []float64 `json:"weights"`
	MetricsAddr string   `json:"metricsAddr"`
	TraceSize  int       `json:"traceSize"`
	ReportPath string    `json:"reportPath"`
}

// Default returns the baseline configuration applied before any file is
// read.
func Default() Config {
	return Config{
		Guide:      GuideBFS,
		Depth:      4,
		Arity:      2,
		TraceSize:  64,
		ReportPath: "pathguide-report.json",
	}
}

// Load reads path (if it exists) and overlays only the keys explicitly
// present in the file onto the default configuration. A missing file is
// not an error: it simply yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	raw := make(map[string]json.RawMessage)
	if err := json.Unmarshal(data, &raw); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if len(raw) == 0 {
		return cfg, nil
	}

	var userCfg Config
	if err := json.Unmarshal(data, &userCfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	if _, ok := raw["guide"]; ok {
		cfg.Guide = userCfg.Guide
	}
	if _, ok := raw["seed"]; ok {
		cfg.Seed = userCfg.Seed
		cfg.HasSeed = true
	}
	if _, ok := raw["depth"]; ok {
		cfg.Depth = userCfg.Depth
	}
	if _, ok := raw["arity"]; ok {
		cfg.Arity = userCfg.Arity
	}
	if _, ok := raw["weights"]; ok {
		cfg.Weights = userCfg.Weights
	}
	if _, ok := raw["metricsAddr"]; ok {
		cfg.MetricsAddr = userCfg.MetricsAddr
	}
	if _, ok := raw["traceSize"]; ok {
		cfg.TraceSize = userCfg.TraceSize
	}
	if _, ok := raw["reportPath"]; ok {
		cfg.ReportPath = userCfg.ReportPath
	}

	return cfg, nil
}

// SeedPtr returns &Seed when the user set one explicitly, else nil so
// guide constructors fall back to platform entropy.
func (c Config) SeedPtr() *int64 {
	if !c.HasSeed {
		return nil
	}
	s := c.Seed
	return &s
}
