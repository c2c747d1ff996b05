package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Category names, in the fixed order used for keyword matching and weight
// attribution.
const (
	CategoryHighValue   = "high_value"
	CategoryOpportunity = "opportunity"
	CategoryMarketIntel = "market_intel"
	CategoryPainPoints  = "pain_points"
)

// KeywordCategory is one weighted group of trigger phrases.
type KeywordCategory struct {
	Keywords []string `json:"keywords"`
	Weight   float64  `json:"weight"`
}

// IntentPattern maps an intent name to its trigger phrases. Intents are kept
// in a slice because classification tie-breaks on table order.
type IntentPattern struct {
	Intent   string   `json:"intent"`
	Patterns []string `json:"patterns"`
}

// AgentRole maps a role name to agent-name trigger phrases and a score
// multiplier. Roles are scanned in slice order, first match wins.
type AgentRole struct {
	Role       string   `json:"role"`
	Keywords   []string `json:"keywords"`
	Multiplier float64  `json:"multiplier"`
}

// ScoringConfig is the tunable surface of the opportunity scoring engine.
// It is loaded once at startup and never mutated afterwards.
type ScoringConfig struct {
	HighValue      KeywordCategory `json:"high_value"`
	Opportunity    KeywordCategory `json:"opportunity"`
	MarketIntel    KeywordCategory `json:"market_intel"`
	PainPoints     KeywordCategory `json:"pain_points"`
	IntentPatterns []IntentPattern `json:"intent_patterns"`
	AgentRoles     []AgentRole     `json:"agent_roles"`
}

// NamedCategory pairs a category with its name for ordered iteration.
type NamedCategory struct {
	Name     string
	Category KeywordCategory
}

// Categories returns the keyword categories in matching order.
func (c *ScoringConfig) Categories() []NamedCategory {
	return []NamedCategory{
		{CategoryHighValue, c.HighValue},
		{CategoryOpportunity, c.Opportunity},
		{CategoryMarketIntel, c.MarketIntel},
		{CategoryPainPoints, c.PainPoints},
	}
}

// Role returns the configured role by name, if present.
func (c *ScoringConfig) Role(name string) (AgentRole, bool) {
	for _, r := range c.AgentRoles {
		if r.Role == name {
			return r, true
		}
	}
	return AgentRole{}, false
}

// LoadScoring reads and validates a scoring config from a JSON file.
func LoadScoring(path string) (*ScoringConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scoring config %s: %w", path, err)
	}

	var cfg ScoringConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse scoring config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scoring config %s: %w", path, err)
	}
	return &cfg, nil
}

// Validate checks that every required category and table is present and
// well-formed. Called once at load; the engine assumes a valid config.
func (c *ScoringConfig) Validate() error {
	for _, nc := range c.Categories() {
		if len(nc.Category.Keywords) == 0 {
			return fmt.Errorf("keyword category %q has no keywords", nc.Name)
		}
		if nc.Category.Weight <= 0 {
			return fmt.Errorf("keyword category %q has non-positive weight %.2f", nc.Name, nc.Category.Weight)
		}
	}

	if len(c.IntentPatterns) == 0 {
		return fmt.Errorf("intent_patterns table is empty")
	}
	for _, ip := range c.IntentPatterns {
		if ip.Intent == "" || len(ip.Patterns) == 0 {
			return fmt.Errorf("intent %q has no patterns", ip.Intent)
		}
	}

	for _, r := range c.AgentRoles {
		if r.Role == "" || len(r.Keywords) == 0 {
			return fmt.Errorf("agent role %q has no keywords", r.Role)
		}
		if r.Multiplier <= 0 {
			return fmt.Errorf("agent role %q has non-positive multiplier %.2f", r.Role, r.Multiplier)
		}
	}

	return nil
}

// OverlapWarnings reports keywords that appear in more than one category.
// Weight attribution stops at the first category containing a keyword, so an
// overlap usually indicates a config mistake rather than intent.
func (c *ScoringConfig) OverlapWarnings() []string {
	seen := make(map[string]string)
	var warnings []string

	for _, nc := range c.Categories() {
		for _, kw := range nc.Category.Keywords {
			if first, ok := seen[kw]; ok {
				warnings = append(warnings, fmt.Sprintf(
					"keyword %q in category %q is shadowed by category %q", kw, nc.Name, first))
				continue
			}
			seen[kw] = nc.Name
		}
	}
	return warnings
}

// DefaultScoring returns the scoring config shipped with the repository.
// Used when no keywords file is configured, and by tests.
func DefaultScoring() *ScoringConfig {
	return &ScoringConfig{
		HighValue: KeywordCategory{
			Weight: 2.0,
			Keywords: []string{
				"budget", "enterprise", "mrr", "arr", "pricing",
				"contract", "procurement", "invest",
			},
		},
		Opportunity: KeywordCategory{
			Weight: 1.5,
			Keywords: []string{
				"looking for", "need", "seeking", "recommend",
				"alternative", "vendor", "solution",
			},
		},
		MarketIntel: KeywordCategory{
			Weight: 1.0,
			Keywords: []string{
				"market size", "competitor", "industry", "trend",
				"funding", "acquisition", "valuation",
			},
		},
		PainPoints: KeywordCategory{
			Weight: 1.2,
			Keywords: []string{
				"frustrated", "broken", "slow", "expensive",
				"struggling", "pain", "switching from",
			},
		},
		IntentPatterns: []IntentPattern{
			{Intent: "seeking_solution", Patterns: []string{
				"looking for", "need", "seeking", "searching for",
				"recommend", "vendor", "anyone know",
			}},
			{Intent: "budget_discussion", Patterns: []string{
				"budget", "price", "pricing", "cost",
				"invest", "spend", "approved",
			}},
			{Intent: "pain_point", Patterns: []string{
				"frustrated", "broken", "slow", "expensive",
				"problem", "issue", "struggling",
			}},
			{Intent: "market_intel", Patterns: []string{
				"market size", "industry", "competitor", "trend",
				"growth", "funding round", "valuation",
			}},
		},
		AgentRoles: []AgentRole{
			{Role: "decision_maker", Multiplier: 1.5, Keywords: []string{
				"ceo", "founder", "cto", "coo", "chief", "vp", "head of", "director",
			}},
			{Role: "technical", Multiplier: 1.0, Keywords: []string{
				"tech", "engineer", "dev", "architect",
			}},
			{Role: "investor", Multiplier: 1.4, Keywords: []string{
				"investor", "capital", "fund", "angel",
			}},
			{Role: "marketer", Multiplier: 1.2, Keywords: []string{
				"marketing", "growth", "sales",
			}},
		},
	}
}
