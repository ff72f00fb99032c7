package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dcf_valuation/pkg/core/dcf"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.HTTPPort)
	assert.Equal(t, dcf.DefaultNeutralBand, cfg.NeutralBand)
	assert.Empty(t, cfg.Scenarios)
}

func TestLoadConfigFile(t *testing.T) {
	raw := `
http_port: 9090
neutral_band: 0.05
scenarios:
  - name: bull
    revenue_growth_rate: 0.30
    wacc: 0.10
  - name: bear
    revenue_growth_rate: 0.10
    terminal_growth_rate: 0.02
    wacc: 0.13
`
	path := filepath.Join(t.TempDir(), "dcf.yaml")
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.HTTPPort)
	assert.Equal(t, 0.05, cfg.NeutralBand)
	require.Len(t, cfg.Scenarios, 2)
	assert.Equal(t, "bull", cfg.Scenarios[0].Name)
	require.NotNil(t, cfg.Scenarios[0].WACC)
	assert.Equal(t, 0.10, *cfg.Scenarios[0].WACC)
	assert.Nil(t, cfg.Scenarios[0].TerminalGrowthRate)
}

func TestLoadPartialFileBackfillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dcf.yaml")
	require.NoError(t, os.WriteFile(path, []byte("http_port: 3000\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3000, cfg.HTTPPort)
	assert.Equal(t, dcf.DefaultNeutralBand, cfg.NeutralBand)
}

func TestLoadMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dcf.yaml")
	require.NoError(t, os.WriteFile(path, []byte("http_port: [oops\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestScenarioApplyOverridesOnlySetFields(t *testing.T) {
	base := dcf.ValuationAssumptions{
		RevenueGrowthRate:  0.20,
		FCFMargin:          0.35,
		TerminalGrowthRate: 0.03,
		WACC:               0.11,
		ProjectionYears:    5,
	}
	wacc := 0.13
	growth := 0.10
	sc := ScenarioConfig{Name: "bear", WACC: &wacc, RevenueGrowthRate: &growth}

	got := sc.Apply(base)
	assert.Equal(t, 0.13, got.WACC)
	assert.Equal(t, 0.10, got.RevenueGrowthRate)
	assert.Equal(t, 0.35, got.FCFMargin)
	assert.Equal(t, 0.03, got.TerminalGrowthRate)
	assert.Equal(t, 5, got.ProjectionYears)

	// Base untouched.
	assert.Equal(t, 0.11, base.WACC)
}

func TestBuildScenarios(t *testing.T) {
	base := dcf.ValuationAssumptions{
		RevenueGrowthRate:  0.20,
		TerminalGrowthRate: 0.03,
		WACC:               0.11,
		ProjectionYears:    5,
	}
	g := 0.30
	cfg := &Config{Scenarios: []ScenarioConfig{{Name: "bull", RevenueGrowthRate: &g}}}

	scenarios := cfg.BuildScenarios(base)
	require.Len(t, scenarios, 1)
	assert.Equal(t, "bull", scenarios[0].Name)
	assert.Equal(t, 0.30, scenarios[0].Assumptions.RevenueGrowthRate)
	assert.Equal(t, 0.11, scenarios[0].Assumptions.WACC)
}
