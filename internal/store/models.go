package store

import "time"

// EnrichedPost is the durable record for one analyzed feed post. Rows are
// written once and never updated.
type EnrichedPost struct {
	ID                int64     `json:"id"`
	ExternalID        string    `json:"moltbook_post_id"`
	AgentName         string    `json:"agent_name"`
	AgentID           string    `json:"agent_id"`
	Content           string    `json:"content"`
	Timestamp         time.Time `json:"timestamp"`
	SentimentScore    float64   `json:"sentiment_score"`
	SentimentLabel    string    `json:"sentiment_label"`
	OpportunityScore  float64   `json:"opportunity_score"`
	OpportunityIntent string    `json:"opportunity_intent"`
	KeywordsMatched   string    `json:"keywords_matched"` // comma-joined
	Actionable        bool      `json:"actionable"`
	IsTrending        bool      `json:"is_trending"` // reserved for the trend detector
	ScrapedAt         time.Time `json:"scraped_at"`
}
