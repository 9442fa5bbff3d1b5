package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/example/lingodrill/internal/ai"
	"github.com/example/lingodrill/internal/api"
	"github.com/example/lingodrill/internal/articles"
	"github.com/example/lingodrill/internal/config"
	"github.com/example/lingodrill/internal/db"
	"github.com/example/lingodrill/internal/logger"
	"github.com/example/lingodrill/internal/progresscsv"
	"github.com/example/lingodrill/internal/repository"
	"github.com/example/lingodrill/internal/repository/sqlite"
	"github.com/example/lingodrill/internal/review"
	"github.com/example/lingodrill/internal/services"
	"github.com/example/lingodrill/internal/session"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Default().Error("%v", err)
		os.Exit(1)
	}

	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithColors(true),
	)
	logger.SetDefault(log)

	log.Info("===========================================")
	log.Info("LingoDrill Server Starting")
	log.Info("===========================================")
	log.Info("configuration loaded")
	log.Debug("addr=%s", cfg.Addr)
	log.Debug("db_path=%s", cfg.DBPath)
	log.Debug("articles_dir=%s", cfg.ArticlesDir)
	log.Debug("legacy_csv=%s", cfg.LegacyCSV)
	log.Debug("log_level=%s", cfg.LogLevel)
	log.Debug("session_size=%d", cfg.SessionSize)
	log.Debug("review_limit=%d", cfg.ReviewLimit)

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Error("failed to open database: %v", err)
		os.Exit(1)
	}
	defer func() {
		log.Debug("closing database connection")
		database.Close()
	}()

	progressRepo := sqlite.NewWordProgressRepository(database.DB)
	profileRepo := sqlite.NewProfileRepository(database.DB)
	historyRepo := sqlite.NewHistoryRepository(database.DB)

	if err := importLegacyProgress(context.Background(), progressRepo, cfg.LegacyCSV); err != nil {
		log.Warn("legacy progress import failed: %v", err)
	}

	var source ai.Source
	client, err := ai.NewClient(ai.Config{
		APIKey:  cfg.OpenAIAPIKey,
		BaseURL: cfg.OpenAIBaseURL,
		Model:   cfg.OpenAIModel,
		Timeout: cfg.AITimeout,
	})
	switch {
	case err == ai.ErrNoAPIKey:
		log.Warn("no OPENAI_API_KEY set, running with the built-in question bank only")
	case err != nil:
		log.Error("failed to build question source: %v", err)
		os.Exit(1)
	default:
		source = client
	}

	composer := session.NewComposer(session.Params{
		Due:         review.NewDueSelector(progressRepo, nil),
		History:     historyRepo,
		Articles:    articles.NewStore(cfg.ArticlesDir),
		Source:      source,
		ReviewLimit: cfg.ReviewLimit,
	})

	profileService := services.NewProfileService(profileRepo, progressRepo, historyRepo)
	reviewService := services.NewReviewService(progressRepo, nil)
	practiceService := services.NewPracticeService(profileService, reviewService, historyRepo, composer, source, nil)

	srv := &api.Server{
		Profiles:    profileService,
		Practice:    practiceService,
		Reviews:     reviewService,
		Progress:    progressRepo,
		DB:          database.DB,
		SessionSize: cfg.SessionSize,
	}

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      srv.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("HTTP server listening on %s", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error: %v", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop

	log.Info("received signal %v, initiating graceful shutdown", sig)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	log.Debug("shutting down HTTP server")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error: %v", err)
	}

	log.Info("===========================================")
	log.Info("LingoDrill Server Stopped")
	log.Info("===========================================")
}

// importLegacyProgress seeds the store from the legacy CSV file, once, when
// the store is still empty. The file is left in place afterwards.
func importLegacyProgress(ctx context.Context, progress repository.WordProgressRepository, path string) error {
	log := logger.Default().WithPrefix("import")

	if path == "" {
		return nil
	}

	count, err := progress.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		log.Debug("store already has %d records, skipping legacy import", count)
		return nil
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Debug("no legacy progress file at %s", path)
			return nil
		}
		return err
	}
	defer f.Close()

	records, skipped, err := progresscsv.Read(f)
	if err != nil {
		return err
	}
	for _, rec := range records {
		if err := progress.Upsert(ctx, rec); err != nil {
			return err
		}
	}
	log.Info("imported %d legacy progress records (%d malformed rows skipped)", len(records), skipped)
	return nil
}
