// Package config loads runtime configuration from a YAML file, with
// sensible defaults when the file is absent.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"dcf_valuation/pkg/core/dcf"
	"dcf_valuation/pkg/core/sensitivity"
)

// Config is the application configuration for the API server and demo CLI.
type Config struct {
	HTTPPort    int     `yaml:"http_port"`
	NeutralBand float64 `yaml:"neutral_band"`

	// Scenarios are named overrides applied on top of a request's base
	// assumptions (bull/base/bear presets).
	Scenarios []ScenarioConfig `yaml:"scenarios"`
}

// ScenarioConfig overrides a subset of assumption fields. Nil means "keep
// the base value".
type ScenarioConfig struct {
	Name               string   `yaml:"name"`
	RevenueGrowthRate  *float64 `yaml:"revenue_growth_rate"`
	FCFMargin          *float64 `yaml:"fcf_margin"`
	TerminalGrowthRate *float64 `yaml:"terminal_growth_rate"`
	WACC               *float64 `yaml:"wacc"`
	ProjectionYears    *int     `yaml:"projection_years"`
}

// Apply derives a scenario's assumption set from a base by copy-with-override.
func (s ScenarioConfig) Apply(base dcf.ValuationAssumptions) dcf.ValuationAssumptions {
	if s.RevenueGrowthRate != nil {
		base.RevenueGrowthRate = *s.RevenueGrowthRate
	}
	if s.FCFMargin != nil {
		base.FCFMargin = *s.FCFMargin
	}
	if s.TerminalGrowthRate != nil {
		base.TerminalGrowthRate = *s.TerminalGrowthRate
	}
	if s.WACC != nil {
		base.WACC = *s.WACC
	}
	if s.ProjectionYears != nil {
		base.ProjectionYears = *s.ProjectionYears
	}
	return base
}

// Scenarios expands the configured presets against a base assumption set.
func (c *Config) BuildScenarios(base dcf.ValuationAssumptions) []sensitivity.Scenario {
	out := make([]sensitivity.Scenario, len(c.Scenarios))
	for i, sc := range c.Scenarios {
		out[i] = sensitivity.Scenario{Name: sc.Name, Assumptions: sc.Apply(base)}
	}
	return out
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		HTTPPort:    8080,
		NeutralBand: dcf.DefaultNeutralBand,
	}
}

// Load reads a YAML config file. A missing file is not an error: defaults
// apply, matching how the server is run in development.
func Load(path string) (*Config, error) {
	cfg := Default()

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.HTTPPort == 0 {
		cfg.HTTPPort = 8080
	}
	if cfg.NeutralBand == 0 {
		cfg.NeutralBand = dcf.DefaultNeutralBand
	}
	return cfg, nil
}
