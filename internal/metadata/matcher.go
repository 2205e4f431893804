// Package metadata selects a single best external match for a parsed title.
package metadata

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/reelcat/reelcat/internal/tmdb"
)

const defaultImageBaseURL = "https://image.tmdb.org/t/p/"
const posterSize = "w500"

// Match is the usable outcome of a provider lookup.
type Match struct {
	Title     string
	Year      string // 4-digit, "" if the provider has none
	PosterURL string // "" if the provider has no poster
}

// SearchProvider is the outbound search boundary, implemented by tmdb.Client.
type SearchProvider interface {
	SearchMovies(ctx context.Context, query string) ([]tmdb.SearchResult, error)
}

// Matcher queries a provider and picks one candidate.
type Matcher struct {
	provider  SearchProvider
	imageBase string
	log       *slog.Logger
}

// MatcherOption configures a Matcher.
type MatcherOption func(*Matcher)

// WithImageBaseURL sets a custom poster image base URL (for testing).
func WithImageBaseURL(base string) MatcherOption {
	return func(m *Matcher) {
		m.imageBase = base
	}
}

// NewMatcher creates a new matcher.
func NewMatcher(provider SearchProvider, log *slog.Logger, opts ...MatcherOption) *Matcher {
	if log == nil {
		log = slog.Default()
	}
	m := &Matcher{provider: provider, imageBase: defaultImageBaseURL, log: log}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Match searches the provider for title and returns the first candidate whose
// release year matches, else the first result overall, else nil.
// Provider failures are logged and reported as "no match"; they never
// propagate to the caller.
//
// This is deliberately a weak heuristic: no scoring, no confidence
// threshold, sequels and remakes are not disambiguated.
func (m *Matcher) Match(ctx context.Context, title string, year int) *Match {
	results, err := m.provider.SearchMovies(ctx, title)
	if err != nil {
		m.log.Warn("metadata search failed", "title", title, "error", err)
		return nil
	}
	if len(results) == 0 {
		return nil
	}

	picked := &results[0]
	if year > 0 {
		prefix := strconv.Itoa(year)
		for i := range results {
			if len(results[i].ReleaseDate) >= 4 && results[i].ReleaseDate[:4] == prefix {
				picked = &results[i]
				break
			}
		}
	}

	match := &Match{
		Title: picked.Title,
		Year:  picked.Year(),
	}
	if picked.PosterPath != "" {
		match.PosterURL = m.imageBase + posterSize + picked.PosterPath
	}
	return match
}
