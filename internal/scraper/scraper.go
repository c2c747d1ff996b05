// Package scraper extracts posts from the Moltbook public feed.
package scraper

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"
	"golang.org/x/time/rate"

	"github.com/aiaiai-consulting/moltbook-monitor/internal/browser"
	"github.com/aiaiai-consulting/moltbook-monitor/internal/types"
)

// scrollInterval paces scroll iterations so new content has time to load.
const scrollInterval = 750 * time.Millisecond

// Scraper handles extracting posts from the Moltbook feed
type Scraper struct {
	feedURL  string
	headless bool
	limiter  *rate.Limiter
}

// New creates a new scraper
func New(feedURL string, headless bool) *Scraper {
	return &Scraper{
		feedURL:  feedURL,
		headless: headless,
		limiter:  rate.NewLimiter(rate.Every(scrollInterval), 1),
	}
}

// Fetch loads the feed and returns up to limit posts. It may return fewer
// when the feed is short; any transport or extraction problem is an error.
func (s *Scraper) Fetch(ctx context.Context, limit int) ([]types.RawPost, error) {
	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, browser.Options(s.headless)...)
	defer allocCancel()

	browserCtx, browserCancel := chromedp.NewContext(allocCtx)
	defer browserCancel()

	// Bound the whole scrape so a hung page never outlives the tick
	browserCtx, timeoutCancel := context.WithTimeout(browserCtx, 5*time.Minute)
	defer timeoutCancel()

	if err := chromedp.Run(browserCtx,
		network.Enable(),
		network.SetExtraHTTPHeaders(network.Headers{"Accept-Language": "en-US,en;q=0.9"}),
		chromedp.Navigate(s.feedURL),
		chromedp.WaitVisible(WaitForFeed, chromedp.ByQuery),
	); err != nil {
		return nil, fmt.Errorf("failed to load feed %s: %w", s.feedURL, err)
	}

	posts, err := s.extractPosts(browserCtx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to extract posts: %w", err)
	}

	return posts, nil
}

// extractPosts scrolls and extracts posts from the feed
func (s *Scraper) extractPosts(ctx context.Context, limit int) ([]types.RawPost, error) {
	var posts []types.RawPost
	seenIDs := make(map[string]bool)
	scrollAttempts := 0
	maxScrollAttempts := limit/5 + 1 // Rough estimate: ~5 posts per scroll

	for len(posts) < limit && scrollAttempts < maxScrollAttempts {
		// Extract visible posts
		newPosts, err := s.extractVisiblePosts(ctx)
		if err != nil {
			return nil, err
		}

		// Add unique posts
		for _, p := range newPosts {
			if !seenIDs[p.ExternalID] {
				seenIDs[p.ExternalID] = true
				posts = append(posts, p)
			}
		}

		// Scroll down
		if err := s.scroll(ctx); err != nil {
			return nil, err
		}

		// Pace scrolling so freshly loaded posts render before the next pass
		if err := s.limiter.Wait(ctx); err != nil {
			return nil, err
		}
		scrollAttempts++
	}

	// Limit to requested count
	if len(posts) > limit {
		posts = posts[:limit]
	}

	return posts, nil
}

// rawPost represents the raw data extracted from the DOM via JavaScript
type rawPost struct {
	ID        string `json:"id"`
	AgentName string `json:"agentName"`
	AgentID   string `json:"agentId"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
}

// extractVisiblePosts parses currently visible feed posts
func (s *Scraper) extractVisiblePosts(ctx context.Context) ([]types.RawPost, error) {
	var rawPosts []rawPost

	// JavaScript to extract post data from the DOM. Selector fallbacks keep
	// this working across Moltbook markup changes.
	extractJS := `
		(function() {
			const postElements = document.querySelectorAll('` + PostElement + `');
			const results = [];

			postElements.forEach((el, i) => {
				try {
					const agentEl = el.querySelector('` + AgentName + `');
					const contentEl = el.querySelector('` + PostContent + `');
					const timeEl = el.querySelector('` + PostTime + `');

					if (!agentEl || !contentEl) return;

					results.push({
						id: el.dataset.postId || el.id || 'post_' + i,
						agentName: agentEl.textContent.trim(),
						agentId: el.dataset.agentId || '',
						content: contentEl.textContent.trim(),
						timestamp: timeEl?.dataset.timestamp ||
							timeEl?.getAttribute('datetime') || ''
					});
				} catch (e) {
					console.error('Error extracting post:', e);
				}
			});

			return results;
		})()
	`

	err := chromedp.Run(ctx,
		chromedp.Evaluate(extractJS, &rawPosts),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to extract posts from DOM: %w", err)
	}

	// Convert raw posts to types.RawPost
	posts := make([]types.RawPost, 0, len(rawPosts))
	now := time.Now()

	for _, rp := range rawPosts {
		if rp.ID == "" {
			continue
		}

		posts = append(posts, types.RawPost{
			ExternalID: rp.ID,
			AuthorName: rp.AgentName,
			AuthorID:   rp.AgentID,
			Content:    rp.Content,
			Timestamp:  rp.Timestamp,
			ScrapedAt:  now,
		})
	}

	return posts, nil
}

// scroll scrolls the page down
func (s *Scraper) scroll(ctx context.Context) error {
	return chromedp.Run(ctx,
		chromedp.Evaluate(`window.scrollBy(0, window.innerHeight)`, nil),
	)
}
