package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
)

// Config holds all application configuration
type Config struct {
	Version  int            `toml:"version"`
	Scraping ScrapingConfig `toml:"scraping"`
	Analysis AnalysisConfig `toml:"analysis"`
	Database DatabaseConfig `toml:"database"`
	Log      LogConfig      `toml:"log"`
}

type ScrapingConfig struct {
	FeedURL         string `toml:"feed_url"`
	PostsPerScrape  int    `toml:"posts_per_scrape"`
	IntervalSeconds int    `toml:"interval_seconds"`
	Headless        bool   `toml:"headless"`
}

type AnalysisConfig struct {
	KeywordsPath string `toml:"keywords_path"`
	Workers      int    `toml:"workers"`
}

type DatabaseConfig struct {
	Path string `toml:"path"`
}

type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// Default returns a Config with sensible defaults
func Default() *Config {
	return &Config{
		Version: 1,
		Scraping: ScrapingConfig{
			FeedURL:         "https://moltbook.ai/feed",
			PostsPerScrape:  50,
			IntervalSeconds: 300,
			Headless:        true,
		},
		Analysis: AnalysisConfig{
			KeywordsPath: "config/monetization-keywords.json",
			Workers:      4,
		},
		Database: DatabaseConfig{
			Path: "data/moltbook.db",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads config from the given path and applies environment overrides.
// A missing file is not an error: defaults are used so the daemon can run
// from a bare checkout.
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	cfg.applyEnv()

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv overlays environment variables onto the loaded config.
func (c *Config) applyEnv() {
	if v := os.Getenv("HEARTBEAT_INTERVAL_SECONDS"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil {
			c.Scraping.IntervalSeconds = secs
		}
	}
	if v := os.Getenv("MOLTBOOK_FEED_URL"); v != "" {
		c.Scraping.FeedURL = v
	}
	if v := os.Getenv("DATABASE_PATH"); v != "" {
		c.Database.Path = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
}

func (c *Config) validate() error {
	if c.Scraping.IntervalSeconds <= 0 {
		return fmt.Errorf("scraping.interval_seconds must be positive, got %d", c.Scraping.IntervalSeconds)
	}
	if c.Scraping.PostsPerScrape <= 0 {
		return fmt.Errorf("scraping.posts_per_scrape must be positive, got %d", c.Scraping.PostsPerScrape)
	}
	if c.Analysis.Workers <= 0 {
		c.Analysis.Workers = 1
	}
	return nil
}

// Save writes config to disk
func (c *Config) Save(path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	defer f.Close()

	encoder := toml.NewEncoder(f)
	return encoder.Encode(c)
}
