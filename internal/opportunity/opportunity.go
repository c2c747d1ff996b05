// Package opportunity scores posts for monetization opportunity using the
// keyword, intent and agent-role tables from the scoring config.
package opportunity

import (
	"fmt"
	"math"
	"strings"

	"github.com/aiaiai-consulting/moltbook-monitor/internal/config"
	"github.com/aiaiai-consulting/moltbook-monitor/internal/types"
)

// Defaults returned when no intent pattern or role keyword matches.
const (
	DefaultIntent = "general"
	DefaultRole   = "general"
)

// ActionableThreshold is the score at which a post warrants follow-up.
const ActionableThreshold = 7.0

// maxScore caps the composed score.
const maxScore = 10.0

// intentBonuses are fixed per-intent score additions. Unknown intents
// contribute nothing.
var intentBonuses = map[string]float64{
	"seeking_solution":  2.0,
	"budget_discussion": 2.5,
	"pain_point":        1.5,
	"market_intel":      1.0,
	"general":           0.0,
}

// Engine analyzes post content for monetization opportunities. It is
// deterministic and side-effect-free over an immutable config, so a single
// Engine is safe for concurrent use.
type Engine struct {
	cfg *config.ScoringConfig
}

// New creates an engine. The config must already satisfy Validate; New
// re-checks so a hand-built config fails here rather than mid-batch.
func New(cfg *config.ScoringConfig) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("scoring config rejected: %w", err)
	}
	return &Engine{cfg: cfg}, nil
}

// Analyze scores a post's content and author name.
func (e *Engine) Analyze(content, agentName string) types.OpportunityResult {
	lower := strings.ToLower(content)

	keywords := e.matchKeywords(lower)
	intent := e.classifyIntent(lower)
	role := e.classifyAgentRole(agentName)
	score := e.calculateScore(keywords, intent, role)

	return types.OpportunityResult{
		Score:          score,
		Intent:         intent,
		AgentRole:      role,
		Keywords:       keywords,
		Actionable:     score >= ActionableThreshold,
		Recommendation: recommendation(score, intent, keywords),
	}
}

// matchKeywords collects configured phrases contained in the content, in
// category order then phrase order. A phrase configured in two categories is
// recorded once per category occurrence.
func (e *Engine) matchKeywords(content string) []string {
	var matched []string
	for _, nc := range e.cfg.Categories() {
		for _, kw := range nc.Category.Keywords {
			if strings.Contains(content, strings.ToLower(kw)) {
				matched = append(matched, kw)
			}
		}
	}
	return matched
}

// classifyIntent picks the intent whose patterns hit the content most often.
// Ties go to the intent listed first in the config table.
func (e *Engine) classifyIntent(content string) string {
	best := DefaultIntent
	bestCount := 0

	for _, ip := range e.cfg.IntentPatterns {
		count := 0
		for _, p := range ip.Patterns {
			if strings.Contains(content, strings.ToLower(p)) {
				count++
			}
		}
		if count > bestCount {
			best = ip.Intent
			bestCount = count
		}
	}

	return best
}

// classifyAgentRole returns the first configured role with a keyword
// contained in the lower-cased agent name.
func (e *Engine) classifyAgentRole(agentName string) string {
	lower := strings.ToLower(agentName)
	for _, r := range e.cfg.AgentRoles {
		for _, kw := range r.Keywords {
			if strings.Contains(lower, strings.ToLower(kw)) {
				return r.Role
			}
		}
	}
	return DefaultRole
}

// calculateScore composes the final 0-10 opportunity score from matched
// keywords, the intent bonus and the role multiplier.
func (e *Engine) calculateScore(keywords []string, intent, role string) float64 {
	score := 0.0

	// Each distinct keyword contributes the weight of the first category
	// containing it, regardless of how many categories matched it.
	scored := make(map[string]bool, len(keywords))
	for _, kw := range keywords {
		if scored[kw] {
			continue
		}
		scored[kw] = true

		for _, nc := range e.cfg.Categories() {
			if containsKeyword(nc.Category.Keywords, kw) {
				score += nc.Category.Weight
				break
			}
		}
	}

	score += intentBonuses[intent]

	// The multiplier applies only when the role is actually configured; the
	// fallback role is usually absent from the table and multiplies by 1.
	if r, ok := e.cfg.Role(role); ok {
		score *= r.Multiplier
	}

	return round2(math.Min(score, maxScore))
}

// recommendation renders the follow-up advice for a score band. Bands are
// inclusive at their lower bound and checked highest first.
func recommendation(score float64, intent string, keywords []string) string {
	switch {
	case score >= 9.0:
		return fmt.Sprintf("HIGH PRIORITY: %s detected with strong signals. Immediate outreach recommended.", intentTitle(intent))
	case score >= 7.0:
		return fmt.Sprintf("MEDIUM PRIORITY: %s detected. Monitor and consider outreach.", intentTitle(intent))
	case score >= 5.0:
		top := keywords
		if len(top) > 3 {
			top = top[:3]
		}
		return fmt.Sprintf("LOW PRIORITY: Some monetization signals detected (%s). Add to watchlist.", strings.Join(top, ", "))
	default:
		return "No significant monetization opportunity detected."
	}
}

// intentTitle turns "seeking_solution" into "Seeking Solution".
func intentTitle(intent string) string {
	words := strings.Split(intent, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func containsKeyword(keywords []string, kw string) bool {
	for _, k := range keywords {
		if k == kw {
			return true
		}
	}
	return false
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
