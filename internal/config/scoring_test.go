package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultScoringIsValid(t *testing.T) {
	cfg := DefaultScoring()
	require.NoError(t, cfg.Validate())
	assert.Empty(t, cfg.OverlapWarnings())
}

func TestShippedKeywordsFileLoads(t *testing.T) {
	cfg, err := LoadScoring("../../config/monetization-keywords.json")
	require.NoError(t, err)

	// The file must match the built-in tables so either source behaves the same
	assert.Equal(t, DefaultScoring(), cfg)
}

func TestValidateRejectsMissingCategory(t *testing.T) {
	cfg := DefaultScoring()
	cfg.PainPoints.Keywords = nil

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pain_points")
}

func TestValidateRejectsEmptyIntentTable(t *testing.T) {
	cfg := DefaultScoring()
	cfg.IntentPatterns = nil
	assert.Error(t, cfg.Validate())
}

func TestValidateRejectsBadMultiplier(t *testing.T) {
	cfg := DefaultScoring()
	cfg.AgentRoles[0].Multiplier = 0
	assert.Error(t, cfg.Validate())
}

func TestOverlapWarnings(t *testing.T) {
	cfg := DefaultScoring()
	cfg.PainPoints.Keywords = append(cfg.PainPoints.Keywords, "budget")

	warnings := cfg.OverlapWarnings()
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "budget")
	assert.Contains(t, warnings[0], "high_value")
}

func TestCategoriesOrder(t *testing.T) {
	cfg := DefaultScoring()
	var names []string
	for _, nc := range cfg.Categories() {
		names = append(names, nc.Name)
	}
	assert.Equal(t, []string{"high_value", "opportunity", "market_intel", "pain_points"}, names)
}
