// Package sentiment scores text against an AFINN-style polarity lexicon.
package sentiment

import (
	"math"
	"strings"

	"github.com/aiaiai-consulting/moltbook-monitor/internal/types"
)

// Label values for SentimentResult.
const (
	LabelPositive = "positive"
	LabelNegative = "negative"
	LabelNeutral  = "neutral"
)

// Analyzer sums per-token lexicon polarity over text. The lexicon is
// read-only after construction, so Analyze is safe to call concurrently.
type Analyzer struct {
	lexicon map[string]int
}

// New creates an analyzer backed by the built-in English lexicon.
func New() *Analyzer {
	return &Analyzer{lexicon: lexicon}
}

// NewWithLexicon creates an analyzer with a custom word-score table.
func NewWithLexicon(words map[string]int) *Analyzer {
	return &Analyzer{lexicon: words}
}

// Analyze scores a piece of text. Empty or non-lexical text yields a zero
// score with the neutral label.
func (a *Analyzer) Analyze(text string) types.SentimentResult {
	var score float64
	for _, token := range tokenize(text) {
		if v, ok := a.lexicon[token]; ok {
			score += float64(v)
		}
	}

	label := LabelNeutral
	switch {
	case score > 1.0:
		label = LabelPositive
	case score < -1.0:
		label = LabelNegative
	}

	return types.SentimentResult{
		Score:     score,
		Label:     label,
		Magnitude: math.Abs(score),
	}
}

// tokenize lower-cases the text and splits it into words, stripping anything
// that is not a letter, digit or apostrophe.
func tokenize(text string) []string {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '\'':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		default:
			return ' '
		}
	}, text)

	return strings.Fields(cleaned)
}
