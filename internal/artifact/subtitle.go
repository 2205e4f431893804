package artifact

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path"
	"path/filepath"

	"github.com/reelcat/reelcat/internal/subtitles"
)

// SubtitleFetcher is the outbound provider boundary, implemented by
// subtitles.Client.
type SubtitleFetcher interface {
	Fetch(ctx context.Context, title string, year int, lang string) ([]byte, error)
}

// SubtitleCache persists subtitle files under a directory, one per
// (title, language) pair. A file already on disk is never fetched again.
type SubtitleCache struct {
	dir       string
	prefix    string // server-relative URL prefix, e.g. "/subtitles"
	fetcher   SubtitleFetcher
	languages []string
	log       *slog.Logger
}

// NewSubtitleCache creates a subtitle cache rooted at dir. fetcher may be
// nil when no subtitle provider is configured; Ensure then only reports
// files already on disk.
func NewSubtitleCache(dir, prefix string, fetcher SubtitleFetcher, languages []string, log *slog.Logger) *SubtitleCache {
	if log == nil {
		log = slog.Default()
	}
	return &SubtitleCache{dir: dir, prefix: prefix, fetcher: fetcher, languages: languages, log: log}
}

// Ensure resolves subtitles for every configured language and returns a
// language → server-relative path mapping containing only the languages
// that resolved to a file. Provider failures cost that language its entry,
// nothing more.
func (s *SubtitleCache) Ensure(ctx context.Context, title string, year int) map[string]string {
	found := make(map[string]string)

	for _, lang := range s.languages {
		name := subtitleName(title, lang)
		target := filepath.Join(s.dir, name)

		if _, err := os.Stat(target); err == nil {
			s.log.Debug("subtitle cache hit", "path", target)
			found[lang] = path.Join(s.prefix, name)
			continue
		}

		if s.fetcher == nil {
			continue
		}

		data, err := s.fetcher.Fetch(ctx, title, year, lang)
		if err != nil {
			if errors.Is(err, subtitles.ErrNoSubtitles) {
				s.log.Debug("no subtitles available", "title", title, "lang", lang)
			} else {
				s.log.Warn("subtitle fetch failed", "title", title, "lang", lang, "error", err)
			}
			continue
		}

		if err := WriteFileAtomic(s.dir, name, data); err != nil {
			s.log.Warn("subtitle write failed", "path", target, "error", err)
			continue
		}

		s.log.Info("subtitle saved", "path", target)
		found[lang] = path.Join(s.prefix, name)
	}

	return found
}

func subtitleName(title, lang string) string {
	return fmt.Sprintf("%s.%s.srt", Sanitize(title), lang)
}
