package main

import (
	"context"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vytor/vocabflash/internal/api"
	"github.com/vytor/vocabflash/internal/catalog"
	"github.com/vytor/vocabflash/internal/config"
	"github.com/vytor/vocabflash/internal/db"
	"github.com/vytor/vocabflash/internal/llm"
	"github.com/vytor/vocabflash/internal/logger"
	"github.com/vytor/vocabflash/internal/practice"
	"github.com/vytor/vocabflash/internal/repository/sqlite"
	"github.com/vytor/vocabflash/internal/services"
	"github.com/vytor/vocabflash/internal/worker"
	"github.com/vytor/vocabflash/web"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	startTime := time.Now()
	cfg := config.Load()

	// Initialize logger
	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithColors(true),
	)
	logger.SetDefault(log)

	log.Info("===========================================")
	log.Info("VocabFlash Server Starting")
	log.Info("===========================================")

	if err := cfg.Validate(); err != nil {
		log.Error("%v", err)
		os.Exit(1)
	}
	log.Info("configuration loaded")
	log.Debug("addr=%s", cfg.Addr)
	log.Debug("db_path=%s", cfg.DBPath)
	log.Debug("log_level=%s", cfg.LogLevel)
	log.Debug("site_url=%s", cfg.SiteURL)
	log.Debug("llm_provider=%s", cfg.LLMProvider)
	log.Debug("llm_timeout=%s", cfg.LLMTimeout())
	log.Debug("session_ttl=%s", cfg.SessionTTL())
	log.Debug("session_sweep_interval=%s", cfg.SessionSweepInterval())
	log.Debug("session_max_count=%d", cfg.SessionMaxCount)
	log.Debug("worker_count=%d", cfg.WorkerCount)
	log.Debug("worker_queue_size=%d", cfg.WorkerQueueSize)

	// Open database
	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Error("failed to open database: %v", err)
		os.Exit(1)
	}
	defer func() {
		log.Debug("closing database connection")
		database.Close()
	}()

	// Seed the catalogue
	cat, err := catalog.Load()
	if err != nil {
		log.Error("failed to load catalog: %v", err)
		os.Exit(1)
	}
	if err := sqlite.SeedCatalog(context.Background(), database.DB, cat); err != nil {
		log.Error("failed to seed catalog: %v", err)
		os.Exit(1)
	}
	log.Info("catalog seeded: topics=%d, words=%d, posts=%d", len(cat.Topics), len(cat.Words), len(cat.Posts))

	// Load templates
	log.Debug("loading templates")
	tmpl, err := api.LoadTemplates(web.Templates())
	if err != nil {
		log.Error("failed to load templates: %v", err)
		os.Exit(1)
	}
	log.Debug("templates loaded successfully")

	provider, err := llm.NewFromConfig(cfg)
	if err != nil {
		log.Error("failed to configure llm provider: %v", err)
		os.Exit(1)
	}
	log.Info("llm provider: %s", provider.Name())

	// Initialize repositories and services
	topicRepo := sqlite.NewTopicRepository(database.DB)
	wordRepo := sqlite.NewWordRepository(database.DB)
	blogRepo := sqlite.NewBlogRepository(database.DB)

	sessions := practice.NewStore(cfg.SessionTTL(), practice.WithMaxEntries(cfg.SessionMaxCount))
	topicService := services.NewTopicService(topicRepo, wordRepo)

	srv := &api.Server{
		TopicService:      topicService,
		BlogService:       services.NewBlogService(blogRepo),
		StudyService:      services.NewStudyService(topicService, sessions),
		SuggestionService: services.NewSuggestionService(blogRepo, provider, cfg.LLMTimeout()),
		DB:                database,
		Templates:         tmpl,
		Static:            web.Static(),
		SiteURL:           cfg.SiteURL,
		Version:           version,
		StartTime:         startTime,
		RequestTimeout:    cfg.LLMTimeout() + 5*time.Second,
	}

	// Initialize worker pool
	pool := worker.NewPool(cfg.WorkerCount, cfg.WorkerQueueSize)
	ctx, cancel := context.WithCancel(context.Background())
	pool.Start(ctx)
	go scheduleSweeps(ctx, pool, &worker.SweepSessionsJob{Store: sessions}, cfg.SessionSweepInterval())

	// Configure HTTP server
	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      srv.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.LLMTimeout() + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start HTTP server
	go func() {
		log.Info("HTTP server listening on %s", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error: %v", err)
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop

	log.Info("received signal %v, initiating graceful shutdown", sig)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	log.Debug("stopping sweep scheduler")
	cancel()

	log.Debug("shutting down HTTP server")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error: %v", err)
	}

	log.Debug("stopping worker pool")
	pool.Stop()

	if closer, ok := provider.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			log.Warn("failed to close llm provider: %v", err)
		}
	}

	log.Info("===========================================")
	log.Info("VocabFlash Server Stopped")
	log.Info("===========================================")
}

// scheduleSweeps submits job every interval until ctx is done. A full queue
// only skips that tick.
func scheduleSweeps(ctx context.Context, pool *worker.Pool, job worker.Job, interval time.Duration) {
	log := logger.Default().WithPrefix("scheduler")
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := pool.Submit(job); err != nil {
				log.Warn("skipped %s: %v", job.Name(), err)
			}
		}
	}
}
