package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	_ "modernc.org/sqlite"

	"github.com/reelcat/reelcat/internal/api"
	"github.com/reelcat/reelcat/internal/artifact"
	"github.com/reelcat/reelcat/internal/catalog"
	"github.com/reelcat/reelcat/internal/config"
	"github.com/reelcat/reelcat/internal/events"
	"github.com/reelcat/reelcat/internal/metadata"
	"github.com/reelcat/reelcat/internal/probe"
	"github.com/reelcat/reelcat/internal/server"
	"github.com/reelcat/reelcat/internal/subtitles"
	"github.com/reelcat/reelcat/internal/tmdb"
)

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	if r.status == 200 { // Only capture first WriteHeader call
		r.status = code
	}
	r.ResponseWriter.WriteHeader(code)
}

func logRequests(next http.Handler, log *slog.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := &statusRecorder{ResponseWriter: w, status: 200}
		next.ServeHTTP(wrapped, r)
		log.Info("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", wrapped.status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

func runServer(configPath string) error {
	// Load config
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if errs := cfg.Validate(); len(errs) > 0 {
		return &config.ConfigError{Path: configPath, Errors: errs}
	}

	// Create logger
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Server.LogLevel),
	}))

	// Ensure working directories exist
	for _, dir := range []string{
		cfg.Library.PostersDir,
		cfg.Library.SubtitlesDir,
		filepath.Dir(cfg.Library.MetadataPath),
		filepath.Dir(cfg.Database.Path),
	} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create dir %s: %w", dir, err)
		}
	}

	// Open history database
	db, err := sql.Open("sqlite", cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer func() { _ = db.Close() }()

	if _, err := db.Exec(events.Schema); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	history := events.NewRefreshLog(db)

	// === Metadata and artifact pipeline ===
	tmdbClient := tmdb.NewClient(cfg.TMDB.APIKey, tmdb.WithLanguage(cfg.TMDB.Language))
	matcher := metadata.NewMatcher(tmdbClient, logger.With("component", "matcher"))

	prober := probe.New(cfg.Refresh.FFprobePath, cfg.Refresh.ProbeTimeout(), logger.With("component", "probe"))

	posters := artifact.NewPosterCache(cfg.Library.PostersDir, "/posters", nil, logger.With("component", "posters"))

	// Subtitles degrade to a no-op when no OpenSubtitles key is configured.
	var fetcher artifact.SubtitleFetcher
	if cfg.OpenSubtitles.APIKey != "" {
		fetcher = subtitles.NewClient(cfg.OpenSubtitles.APIKey)
	}
	subs := artifact.NewSubtitleCache(cfg.Library.SubtitlesDir, "/subtitles", fetcher, cfg.OpenSubtitles.Languages, logger.With("component", "subtitles"))

	store := catalog.NewStore(cfg.Library.MetadataPath)
	builder := catalog.NewBuilder(
		cfg.Library.MoviesDir,
		store,
		matcher,
		prober,
		posters,
		subs,
		cfg.Refresh.Parallelism,
		logger.With("component", "catalog"),
	)
	runner := server.NewRunner(builder, history, logger.With("component", "runner"))

	// === Background Jobs ===
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		if err := runner.Run(ctx); err != nil && err != context.Canceled {
			logger.Error("runner error", "error", err)
		}
	}()

	// === HTTP Setup ===
	mux := http.NewServeMux()

	apiServer := api.New(store, runner, history, cfg.Library.MoviesDir, version, logger.With("component", "api"))
	apiServer.RegisterRoutes(mux)

	// Static artifact mounts
	mux.Handle("GET /posters/", http.StripPrefix("/posters/", http.FileServer(http.Dir(cfg.Library.PostersDir))))
	mux.Handle("GET /subtitles/", http.StripPrefix("/subtitles/", http.FileServer(http.Dir(cfg.Library.SubtitlesDir))))

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("server starting",
		"addr", addr,
		"movies_dir", cfg.Library.MoviesDir,
		"metadata", cfg.Library.MetadataPath,
		"database", cfg.Database.Path,
		"subtitles", fetcher != nil,
		"log_level", cfg.Server.LogLevel,
	)

	// === HTTP Server ===
	srv := &http.Server{Addr: addr, Handler: logRequests(api.CORS(mux), logger)}

	// Start server in goroutine
	go func() {
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	logger.Info("received signal, shutting down", "signal", sig.String())

	// Cancel background jobs (this stops the runner)
	cancel()

	// Graceful HTTP shutdown with 30s timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("server stopped")
	return nil
}
