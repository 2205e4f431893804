package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/reelcat/reelcat/internal/metadata"
	"github.com/reelcat/reelcat/internal/probe"
	"github.com/reelcat/reelcat/pkg/filename"
)

//go:generate mockgen -source=builder.go -destination=mocks/mocks.go -package=mocks

// videoExtensions is the fixed allow-list of recognized video files.
var videoExtensions = map[string]bool{
	".mp4": true,
	".mkv": true,
	".avi": true,
}

// Matcher selects an external metadata candidate for a parsed title.
type Matcher interface {
	Match(ctx context.Context, title string, year int) *metadata.Match
}

// Prober extracts technical attributes from a video file.
type Prober interface {
	Probe(ctx context.Context, path string) probe.Result
}

// PosterCache resolves a poster URL to a cached server-relative path.
type PosterCache interface {
	Ensure(ctx context.Context, url, title string) (string, bool)
}

// SubtitleCache resolves cached subtitle paths per language for a title.
type SubtitleCache interface {
	Ensure(ctx context.Context, title string, year int) map[string]string
}

// Builder rebuilds the catalog from the video directory. Each refresh is a
// full rescan: one entry per eligible file, in directory listing order,
// persisted as a whole.
type Builder struct {
	moviesDir   string
	store       *Store
	matcher     Matcher
	prober      Prober
	posters     PosterCache
	subtitles   SubtitleCache
	parallelism int
	log         *slog.Logger
}

// NewBuilder creates a catalog builder.
func NewBuilder(moviesDir string, store *Store, matcher Matcher, prober Prober, posters PosterCache, subtitles SubtitleCache, parallelism int, log *slog.Logger) *Builder {
	if parallelism <= 0 {
		parallelism = 4
	}
	if log == nil {
		log = slog.Default()
	}
	return &Builder{
		moviesDir:   moviesDir,
		store:       store,
		matcher:     matcher,
		prober:      prober,
		posters:     posters,
		subtitles:   subtitles,
		parallelism: parallelism,
		log:         log,
	}
}

// Refresh rescans the video directory, enriches every eligible file, and
// persists the result as the new snapshot. Per-file failures degrade fields
// to absent and never drop an entry; only an unreadable directory or a
// failed snapshot write is an error, and the prior snapshot survives both.
func (b *Builder) Refresh(ctx context.Context) ([]Entry, error) {
	dirEntries, err := os.ReadDir(b.moviesDir)
	if err != nil {
		return nil, fmt.Errorf("list videos: %w", err)
	}

	var files []string
	for _, de := range dirEntries {
		if de.IsDir() {
			continue
		}
		if videoExtensions[strings.ToLower(filepath.Ext(de.Name()))] {
			files = append(files, de.Name())
		}
	}

	// Files are independent, so enrichment runs in parallel; results land
	// in listing-order slots so the snapshot order stays deterministic.
	entries := make([]Entry, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.parallelism)
	for i, name := range files {
		g.Go(func() error {
			entries[i] = b.buildEntry(gctx, name)
			return nil
		})
	}
	_ = g.Wait()

	if err := b.store.Replace(entries); err != nil {
		return nil, fmt.Errorf("persist snapshot: %w", err)
	}

	b.log.Info("catalog refreshed", "entries", len(entries))
	return entries, nil
}

// buildEntry assembles the catalog entry for one file.
func (b *Builder) buildEntry(ctx context.Context, name string) Entry {
	info := filename.Parse(name)
	b.log.Debug("refreshing", "file", name, "title", info.Title, "year", info.Year)

	title := info.Title
	year := info.Year
	var posterURL string

	if m := b.matcher.Match(ctx, info.Title, info.Year); m != nil {
		title = m.Title
		posterURL = m.PosterURL
		if y, err := strconv.Atoi(m.Year); err == nil {
			year = y
		} else {
			year = 0
		}
	}

	entry := Entry{Filename: name, Title: title}
	if year > 0 {
		entry.Year = &year
	}

	if posterURL != "" {
		if p, ok := b.posters.Ensure(ctx, posterURL, title); ok {
			entry.Poster = &p
		}
	}

	if subs := b.subtitles.Ensure(ctx, title, year); len(subs) > 0 {
		entry.Subtitles = subs
	}

	r := b.prober.Probe(ctx, filepath.Join(b.moviesDir, name))
	entry.Duration = r.Duration
	entry.Width = r.Width
	entry.Height = r.Height
	entry.Codec = r.Codec

	return entry
}
