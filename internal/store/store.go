package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	sqlite "modernc.org/sqlite"
)

// ErrDuplicatePost is returned by InsertPost when a post with the same
// external id already exists. Re-scraping the same feed surfaces the same
// posts over time, so callers treat this as a skip, not a failure.
var ErrDuplicatePost = errors.New("post already stored")

// SQLite extended result codes for unique constraint violations.
const (
	sqliteConstraintPrimaryKey = 1555
	sqliteConstraintUnique     = 2067
)

// Store handles all database operations
type Store struct {
	db *sql.DB
}

// New creates a new Store with SQLite backend
func New(dbPath string) (*Store, error) {
	// Ensure directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}

	return s, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate creates the database schema
func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS posts (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		moltbook_post_id TEXT NOT NULL UNIQUE,
		agent_name TEXT NOT NULL,
		agent_id TEXT,
		content TEXT NOT NULL,
		timestamp DATETIME NOT NULL,
		sentiment_score REAL,
		sentiment_label TEXT,
		opportunity_score REAL,
		opportunity_intent TEXT,
		keywords_matched TEXT,
		actionable BOOLEAN NOT NULL DEFAULT 0,
		is_trending BOOLEAN NOT NULL DEFAULT 0,
		scraped_at DATETIME NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_posts_scraped_at ON posts(scraped_at);
	CREATE INDEX IF NOT EXISTS idx_posts_actionable ON posts(actionable, opportunity_score);
	`

	_, err := s.db.Exec(schema)
	return err
}

// InsertPost writes an enriched post and returns its assigned id. A post
// whose external id is already stored yields ErrDuplicatePost.
func (s *Store) InsertPost(p *EnrichedPost) (int64, error) {
	res, err := s.db.Exec(`
		INSERT INTO posts (moltbook_post_id, agent_name, agent_id, content, timestamp,
			sentiment_score, sentiment_label,
			opportunity_score, opportunity_intent, keywords_matched, actionable,
			is_trending, scraped_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, p.ExternalID, p.AgentName, p.AgentID, p.Content, p.Timestamp,
		p.SentimentScore, p.SentimentLabel,
		p.OpportunityScore, p.OpportunityIntent, p.KeywordsMatched, p.Actionable,
		p.IsTrending, p.ScrapedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("post %s: %w", p.ExternalID, ErrDuplicatePost)
		}
		return 0, err
	}

	return res.LastInsertId()
}

// GetPostByExternalID fetches a stored post by its Moltbook post id.
// Returns (nil, nil) when the post is absent.
func (s *Store) GetPostByExternalID(externalID string) (*EnrichedPost, error) {
	var p EnrichedPost
	err := s.db.QueryRow(`
		SELECT id, moltbook_post_id, agent_name, agent_id, content, timestamp,
			sentiment_score, sentiment_label,
			opportunity_score, opportunity_intent, keywords_matched, actionable,
			is_trending, scraped_at
		FROM posts WHERE moltbook_post_id = ?
	`, externalID).Scan(
		&p.ID, &p.ExternalID, &p.AgentName, &p.AgentID, &p.Content, &p.Timestamp,
		&p.SentimentScore, &p.SentimentLabel,
		&p.OpportunityScore, &p.OpportunityIntent, &p.KeywordsMatched, &p.Actionable,
		&p.IsTrending, &p.ScrapedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// CountPosts returns the number of stored posts.
func (s *Store) CountPosts() (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM posts`).Scan(&n)
	return n, err
}

// ActionablePosts returns actionable posts ordered by opportunity score,
// for the alerting layer to consume.
func (s *Store) ActionablePosts(limit int) ([]EnrichedPost, error) {
	rows, err := s.db.Query(`
		SELECT id, moltbook_post_id, agent_name, agent_id, content, timestamp,
			sentiment_score, sentiment_label,
			opportunity_score, opportunity_intent, keywords_matched, actionable,
			is_trending, scraped_at
		FROM posts
		WHERE actionable = 1
		ORDER BY opportunity_score DESC, scraped_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []EnrichedPost
	for rows.Next() {
		var p EnrichedPost
		err := rows.Scan(
			&p.ID, &p.ExternalID, &p.AgentName, &p.AgentID, &p.Content, &p.Timestamp,
			&p.SentimentScore, &p.SentimentLabel,
			&p.OpportunityScore, &p.OpportunityIntent, &p.KeywordsMatched, &p.Actionable,
			&p.IsTrending, &p.ScrapedAt,
		)
		if err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

// isUniqueViolation reports whether err is a SQLite unique constraint error.
func isUniqueViolation(err error) bool {
	var se *sqlite.Error
	if errors.As(err, &se) {
		code := se.Code()
		return code == sqliteConstraintUnique || code == sqliteConstraintPrimaryKey
	}
	return false
}
