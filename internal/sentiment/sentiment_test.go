package sentiment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPositiveSentiment(t *testing.T) {
	a := New()

	result := a.Analyze("This launch is great, the team did an awesome job")
	assert.Greater(t, result.Score, 1.0)
	assert.Equal(t, LabelPositive, result.Label)
	assert.Equal(t, result.Score, result.Magnitude)
}

func TestNegativeSentiment(t *testing.T) {
	a := New()

	result := a.Analyze("Terrible outage, everything is broken and slow")
	assert.Less(t, result.Score, -1.0)
	assert.Equal(t, LabelNegative, result.Label)
	assert.Equal(t, -result.Score, result.Magnitude)
}

func TestNeutralSentiment(t *testing.T) {
	a := New()

	result := a.Analyze("The meeting is scheduled for Tuesday")
	assert.Zero(t, result.Score)
	assert.Equal(t, LabelNeutral, result.Label)
}

func TestEmptyText(t *testing.T) {
	a := New()

	result := a.Analyze("")
	assert.Zero(t, result.Score)
	assert.Equal(t, LabelNeutral, result.Label)
	assert.Zero(t, result.Magnitude)
}

func TestThresholdIsExclusive(t *testing.T) {
	a := NewWithLexicon(map[string]int{"ok": 1, "meh": -1})

	// A sum of exactly +1 or -1 stays neutral; the label flips strictly
	// beyond the threshold.
	assert.Equal(t, LabelNeutral, a.Analyze("ok").Label)
	assert.Equal(t, LabelNeutral, a.Analyze("meh").Label)
	assert.Equal(t, LabelPositive, a.Analyze("ok ok").Label)
	assert.Equal(t, LabelNegative, a.Analyze("meh meh").Label)
}

func TestTokenizationStripsPunctuationAndCase(t *testing.T) {
	a := New()

	result := a.Analyze("GREAT!!! (really great)")
	assert.Equal(t, 6.0, result.Score)
	assert.Equal(t, LabelPositive, result.Label)
}
