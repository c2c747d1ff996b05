// Command moltbook-monitor periodically scrapes the Moltbook feed, scores
// each post for sentiment and monetization opportunity, and persists the
// enriched records for downstream alerting.
package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/aiaiai-consulting/moltbook-monitor/internal/config"
	"github.com/aiaiai-consulting/moltbook-monitor/internal/logger"
	"github.com/aiaiai-consulting/moltbook-monitor/internal/monitor"
	"github.com/aiaiai-consulting/moltbook-monitor/internal/opportunity"
	"github.com/aiaiai-consulting/moltbook-monitor/internal/scheduler"
	"github.com/aiaiai-consulting/moltbook-monitor/internal/scraper"
	"github.com/aiaiai-consulting/moltbook-monitor/internal/sentiment"
	"github.com/aiaiai-consulting/moltbook-monitor/internal/store"
)

const jobName = "moltbook-monitor"

func main() {
	configPath := flag.String("config", "config.toml", "path to config file")
	once := flag.Bool("once", false, "run a single monitoring batch and exit")
	flag.Parse()

	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logrus.Fatalf("failed to load config: %v", err)
	}

	log, err := logger.Setup(cfg.Log)
	if err != nil {
		logrus.Fatalf("failed to set up logging: %v", err)
	}

	scoring, err := loadScoring(cfg.Analysis.KeywordsPath, log)
	if err != nil {
		log.Fatalf("failed to load scoring config: %v", err)
	}
	for _, w := range scoring.OverlapWarnings() {
		log.Warn(w)
	}

	engine, err := opportunity.New(scoring)
	if err != nil {
		log.Fatalf("failed to build opportunity engine: %v", err)
	}

	posts, err := store.New(cfg.Database.Path)
	if err != nil {
		log.Fatalf("failed to open store at %s: %v", cfg.Database.Path, err)
	}
	defer posts.Close()

	feed := scraper.New(cfg.Scraping.FeedURL, cfg.Scraping.Headless)
	mon := monitor.New(feed, posts, sentiment.New(), engine,
		cfg.Scraping.PostsPerScrape, cfg.Analysis.Workers, log)

	sched := scheduler.New(log)

	if *once {
		if err := sched.RunNow(jobName, mon.Run); err != nil {
			log.Fatalf("run failed: %v", err)
		}
		return
	}

	if err := sched.AddIntervalJob(jobName, cfg.Scraping.IntervalSeconds, mon.Run); err != nil {
		log.Fatalf("failed to schedule monitoring job: %v", err)
	}

	log.Infof("moltbook-monitor starting (interval: %ds, batch: %d)",
		cfg.Scraping.IntervalSeconds, cfg.Scraping.PostsPerScrape)
	sched.Start()

	// Block until interrupted, then let any in-flight run drain
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh

	log.Infof("received %s, shutting down", sig)
	<-sched.Stop().Done()
	log.Info("shutdown complete")
}

// loadScoring reads the keywords file, falling back to the built-in tables
// when no path is configured.
func loadScoring(path string, log *logrus.Logger) (*config.ScoringConfig, error) {
	if path == "" {
		log.Info("no keywords file configured, using built-in scoring tables")
		return config.DefaultScoring(), nil
	}
	return config.LoadScoring(path)
}
