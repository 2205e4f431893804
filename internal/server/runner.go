// Package server runs catalog refreshes, serializing them behind a queue.
package server

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/reelcat/reelcat/internal/catalog"
	"github.com/reelcat/reelcat/internal/events"
)

// Refresher rebuilds the catalog; implemented by catalog.Builder.
type Refresher interface {
	Refresh(ctx context.Context) ([]catalog.Entry, error)
}

// Runner executes refreshes one at a time. Asynchronous triggers go through
// a buffered channel consumed by Run; synchronous callers share in-flight
// refreshes via singleflight, so concurrent cold reads cost one rescan.
type Runner struct {
	builder Refresher
	history *events.RefreshLog // may be nil
	log     *slog.Logger

	trigger chan struct{}
	group   singleflight.Group
}

// NewRunner creates a refresh runner.
func NewRunner(builder Refresher, history *events.RefreshLog, log *slog.Logger) *Runner {
	if log == nil {
		log = slog.Default()
	}
	return &Runner{
		builder: builder,
		history: history,
		log:     log,
		trigger: make(chan struct{}, 1),
	}
}

// Enqueue requests an asynchronous refresh. It never blocks: when a refresh
// is already queued the trigger is dropped and Enqueue reports false.
func (r *Runner) Enqueue() bool {
	select {
	case r.trigger <- struct{}{}:
		return true
	default:
		return false
	}
}

// Run consumes refresh triggers until the context is canceled.
func (r *Runner) Run(ctx context.Context) error {
	r.log.Info("refresh runner started")
	for {
		select {
		case <-ctx.Done():
			r.log.Info("refresh runner stopped")
			return ctx.Err()
		case <-r.trigger:
			if _, err := r.RefreshNow(ctx); err != nil {
				r.log.Error("background refresh failed", "error", err)
			}
		}
	}
}

// RefreshNow runs a refresh immediately, coalescing concurrent callers onto
// a single underlying rescan.
func (r *Runner) RefreshNow(ctx context.Context) ([]catalog.Entry, error) {
	v, err, _ := r.group.Do("refresh", func() (any, error) {
		return r.runOnce(ctx)
	})
	if err != nil {
		return nil, err
	}
	return v.([]catalog.Entry), nil
}

func (r *Runner) runOnce(ctx context.Context) ([]catalog.Entry, error) {
	started := time.Now().UTC()
	entries, err := r.builder.Refresh(ctx)
	finished := time.Now().UTC()

	if r.history != nil {
		record := events.RefreshRecord{
			StartedAt:  started,
			FinishedAt: finished,
			EntryCount: len(entries),
		}
		if err != nil {
			record.Error = err.Error()
		}
		if _, histErr := r.history.Append(record); histErr != nil {
			// History is best-effort; the refresh outcome matters more.
			r.log.Warn("failed to record refresh history", "error", histErr)
		}
	}

	return entries, err
}
