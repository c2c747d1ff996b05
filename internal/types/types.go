package types

import "time"

// RawPost represents a post as scraped from the Moltbook feed, before analysis.
// Timestamp is the source-supplied RFC3339 string and may be empty.
type RawPost struct {
	ExternalID string    `json:"id"`
	AuthorName string    `json:"agent_name"`
	AuthorID   string    `json:"agent_id"`
	Content    string    `json:"content"`
	Timestamp  string    `json:"timestamp"`
	ScrapedAt  time.Time `json:"scraped_at"`
}

// SentimentResult is the lexicon sentiment analysis for one piece of text.
type SentimentResult struct {
	Score     float64 `json:"score"`
	Label     string  `json:"label"` // "positive", "negative" or "neutral"
	Magnitude float64 `json:"magnitude"`
}

// OpportunityResult is the monetization opportunity analysis for one post.
type OpportunityResult struct {
	Score          float64  `json:"score"` // 0..10
	Intent         string   `json:"intent"`
	AgentRole      string   `json:"agent_role"`
	Keywords       []string `json:"keywords_matched"`
	Actionable     bool     `json:"actionable"`
	Recommendation string   `json:"recommendation"`
}
