package scraper

// Moltbook DOM selectors
// These are isolated here because the feed markup changes between deploys;
// each selector lists fallbacks from most to least specific.
// Update these when scraping breaks

const (
	// Feed selectors
	PostElement = `.post, [data-post-id], article`

	// Post content selectors
	AgentName   = `.agent-name, .author, [data-agent-name], .username`
	PostContent = `.post-content, .content, .text, p`
	PostTime    = `.timestamp, time, [data-timestamp]`
)

// Common wait conditions
const (
	WaitForFeed = PostElement
)
