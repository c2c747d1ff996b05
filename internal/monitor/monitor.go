// Package monitor runs the fetch -> analyze -> persist pipeline for one tick.
package monitor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/aiaiai-consulting/moltbook-monitor/internal/opportunity"
	"github.com/aiaiai-consulting/moltbook-monitor/internal/sentiment"
	"github.com/aiaiai-consulting/moltbook-monitor/internal/store"
	"github.com/aiaiai-consulting/moltbook-monitor/internal/types"
)

// FeedSource yields a bounded batch of raw posts. It may return fewer than
// limit, and must fail with an error rather than return partial garbage.
type FeedSource interface {
	Fetch(ctx context.Context, limit int) ([]types.RawPost, error)
}

// PostStore persists enriched posts with uniqueness on the external post id.
// A duplicate insert must be reported as store.ErrDuplicatePost.
type PostStore interface {
	InsertPost(p *store.EnrichedPost) (int64, error)
}

// Monitor orchestrates one monitoring batch per invocation. Both analyzers
// are pure over immutable config, so posts within a batch are processed on a
// bounded worker pool.
type Monitor struct {
	feed      FeedSource
	store     PostStore
	sentiment *sentiment.Analyzer
	engine    *opportunity.Engine
	batchSize int
	workers   int
	log       *logrus.Entry
}

// New creates a monitor. batchSize and workers must be positive.
func New(feed FeedSource, posts PostStore, sa *sentiment.Analyzer, engine *opportunity.Engine, batchSize, workers int, log *logrus.Logger) *Monitor {
	return &Monitor{
		feed:      feed,
		store:     posts,
		sentiment: sa,
		engine:    engine,
		batchSize: batchSize,
		workers:   workers,
		log:       log.WithField("component", "monitor"),
	}
}

// Run executes one batch: fetch, analyze and persist each post. A fetch
// failure ends the run early; the returned error is for the scheduler to
// log, the schedule itself continues. Per-post failures are logged and never
// abort the batch.
func (m *Monitor) Run(ctx context.Context) error {
	posts, err := m.feed.Fetch(ctx, m.batchSize)
	if err != nil {
		return fmt.Errorf("feed fetch failed: %w", err)
	}
	m.log.Infof("fetched %d posts", len(posts))

	var stored, skipped, failed atomic.Int64

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(m.workers)

	for _, p := range posts {
		g.Go(func() error {
			switch err := m.processPost(ctx, p); {
			case err == nil:
				stored.Add(1)
			case errors.Is(err, store.ErrDuplicatePost):
				// Expected on re-scrapes; the unique index already holds the row
				m.log.WithField("post_id", p.ExternalID).Debug("duplicate post skipped")
				skipped.Add(1)
			default:
				m.log.WithField("post_id", p.ExternalID).Errorf("failed to process post: %v", err)
				failed.Add(1)
			}
			return nil
		})
	}
	g.Wait()

	m.log.Infof("run complete: %d fetched, %d stored, %d duplicates, %d failed",
		len(posts), stored.Load(), skipped.Load(), failed.Load())
	return nil
}

// processPost analyzes a single raw post and writes the enriched record.
func (m *Monitor) processPost(ctx context.Context, raw types.RawPost) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	sent := m.sentiment.Analyze(raw.Content)
	opp := m.engine.Analyze(raw.Content, raw.AuthorName)

	ts, err := resolveTimestamp(raw)
	if err != nil {
		return err
	}

	post := &store.EnrichedPost{
		ExternalID:        raw.ExternalID,
		AgentName:         raw.AuthorName,
		AgentID:           raw.AuthorID,
		Content:           raw.Content,
		Timestamp:         ts,
		SentimentScore:    sent.Score,
		SentimentLabel:    sent.Label,
		OpportunityScore:  opp.Score,
		OpportunityIntent: opp.Intent,
		KeywordsMatched:   strings.Join(opp.Keywords, ","),
		Actionable:        opp.Actionable,
		ScrapedAt:         raw.ScrapedAt,
	}

	id, err := m.store.InsertPost(post)
	if err != nil {
		return err
	}

	m.log.WithField("post_id", raw.ExternalID).Debugf("saved post %d: %s (score: %.2f)",
		id, raw.AuthorName, opp.Score)
	return nil
}

// resolveTimestamp parses the source timestamp, defaulting to the scrape
// time when the source supplied none.
func resolveTimestamp(raw types.RawPost) (time.Time, error) {
	if raw.Timestamp == "" {
		if raw.ScrapedAt.IsZero() {
			return time.Now(), nil
		}
		return raw.ScrapedAt, nil
	}

	ts, err := time.Parse(time.RFC3339, raw.Timestamp)
	if err != nil {
		return time.Time{}, fmt.Errorf("malformed timestamp %q: %w", raw.Timestamp, err)
	}
	return ts, nil
}
