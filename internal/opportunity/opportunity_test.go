package opportunity

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aiaiai-consulting/moltbook-monitor/internal/config"
)

func newEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := New(config.DefaultScoring())
	require.NoError(t, err)
	return e
}

func TestHighValueOpportunity(t *testing.T) {
	e := newEngine(t)

	result := e.Analyze(
		"Looking for B2B SaaS solution, have budget of $50k MRR for enterprise pricing",
		"StartupCEO_Bot",
	)

	assert.GreaterOrEqual(t, result.Score, 8.0)
	assert.Contains(t, []string{"seeking_solution", "budget_discussion"}, result.Intent)
	assert.True(t, result.Actionable)
	assert.NotEmpty(t, result.Keywords)
	assert.Equal(t, "decision_maker", result.AgentRole)
	assert.True(t, strings.HasPrefix(result.Recommendation, "HIGH PRIORITY"), result.Recommendation)
}

func TestMediumOpportunity(t *testing.T) {
	e := newEngine(t)

	result := e.Analyze(
		"Frustrated with current expensive tool, looking for alternative",
		"TechLead_AI",
	)

	assert.GreaterOrEqual(t, result.Score, 6.0)
	assert.Less(t, result.Score, 8.0)
	assert.Equal(t, "pain_point", result.Intent)
	assert.Equal(t, "technical", result.AgentRole)
}

func TestLowOpportunity(t *testing.T) {
	e := newEngine(t)

	result := e.Analyze(
		"Just sharing some thoughts about the weather today",
		"RandomBot",
	)

	assert.Less(t, result.Score, 6.0)
	assert.False(t, result.Actionable)
	assert.Equal(t, "general", result.Intent)
	assert.Equal(t, "No significant monetization opportunity detected.", result.Recommendation)
}

func TestIntentClassification(t *testing.T) {
	e := newEngine(t)

	cases := []struct {
		content string
		intent  string
	}{
		{"Need vendor for CRM system", "seeking_solution"},
		{"Budget approved for $100k investment", "budget_discussion"},
		{"Current solution is broken and slow", "pain_point"},
		{"Market size for AI tools is $5B", "market_intel"},
	}

	for _, tc := range cases {
		result := e.Analyze(tc.content, "TestBot")
		assert.Equal(t, tc.intent, result.Intent, "content: %s", tc.content)
	}
}

func TestIntentTieBreakUsesTableOrder(t *testing.T) {
	e := newEngine(t)

	// Hits exactly one seeking_solution pattern and one budget_discussion
	// pattern; the intent listed first in the table must win.
	for i := 0; i < 50; i++ {
		result := e.Analyze("we need a bigger budget", "TestBot")
		assert.Equal(t, "seeking_solution", result.Intent)
	}
}

func TestScoreBounds(t *testing.T) {
	e := newEngine(t)

	loaded := "Looking for enterprise solution, budget approved, pricing and contract " +
		"procurement, frustrated with expensive broken slow vendor, market size trend funding"
	result := e.Analyze(loaded, "CEO_Founder_Director")

	assert.LessOrEqual(t, result.Score, 10.0)
	assert.GreaterOrEqual(t, result.Score, 0.0)
	assert.True(t, result.Actionable)
}

func TestActionableMatchesThreshold(t *testing.T) {
	e := newEngine(t)

	// Medium band: 6.5 base * 1.2 marketer multiplier = 7.8
	result := e.Analyze("need a vendor recommendation", "GrowthHacker")
	assert.InDelta(t, 7.8, result.Score, 0.001)
	assert.True(t, result.Actionable)
	assert.True(t, strings.HasPrefix(result.Recommendation, "MEDIUM PRIORITY"), result.Recommendation)
}

func TestKeywordMatchingIsCaseInsensitiveSubstring(t *testing.T) {
	e := newEngine(t)

	result := e.Analyze("EXPLORING ENTERPRISE SOLUTIONS", "SomeBot")
	assert.Contains(t, result.Keywords, "enterprise")
	// "solution" matches inside "SOLUTIONS"
	assert.Contains(t, result.Keywords, "solution")
}

func TestAgentRoleDefaultsToGeneral(t *testing.T) {
	e := newEngine(t)

	result := e.Analyze("need a solution", "xq_7")
	assert.Equal(t, "general", result.AgentRole)
}

func TestWeightAttributionStopsAtFirstCategory(t *testing.T) {
	cfg := &config.ScoringConfig{
		HighValue:   config.KeywordCategory{Weight: 2.0, Keywords: []string{"budget"}},
		Opportunity: config.KeywordCategory{Weight: 1.5, Keywords: []string{"budget"}},
		MarketIntel: config.KeywordCategory{Weight: 1.0, Keywords: []string{"industry"}},
		PainPoints:  config.KeywordCategory{Weight: 1.2, Keywords: []string{"slow"}},
		IntentPatterns: []config.IntentPattern{
			{Intent: "seeking_solution", Patterns: []string{"looking for"}},
		},
	}
	e, err := New(cfg)
	require.NoError(t, err)

	result := e.Analyze("our budget", "TestBot")

	// Recorded once per category occurrence...
	assert.Equal(t, []string{"budget", "budget"}, result.Keywords)
	// ...but scored once, with the first category's weight.
	assert.InDelta(t, 2.0, result.Score, 0.001)
}

func TestConfiguredGeneralRoleMultiplierApplies(t *testing.T) {
	cfg := config.DefaultScoring()
	cfg.AgentRoles = append(cfg.AgentRoles, config.AgentRole{
		Role: "general", Multiplier: 2.0, Keywords: []string{"zzz-never-matches"},
	})
	e, err := New(cfg)
	require.NoError(t, err)

	// No role keyword matches, so the fallback role is "general" - which is
	// explicitly configured here, so its multiplier applies.
	result := e.Analyze("market size is growing", "PlainBot")
	assert.Equal(t, "general", result.AgentRole)
	assert.InDelta(t, 4.0, result.Score, 0.001) // (1.0 keyword + 1.0 intent) * 2.0
}

func TestRejectsInvalidConfig(t *testing.T) {
	_, err := New(&config.ScoringConfig{})
	require.Error(t, err)
}

func TestLowPriorityRecommendationListsKeywords(t *testing.T) {
	e := newEngine(t)

	result := e.Analyze(
		"Frustrated with current expensive tool, looking for alternative",
		"RandomBot",
	)

	require.GreaterOrEqual(t, result.Score, 5.0)
	require.Less(t, result.Score, 7.0)
	assert.True(t, strings.HasPrefix(result.Recommendation, "LOW PRIORITY"), result.Recommendation)
	assert.Contains(t, result.Recommendation, "looking for")
}
