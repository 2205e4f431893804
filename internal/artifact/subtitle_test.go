package artifact

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reelcat/reelcat/internal/subtitles"
)

type stubFetcher struct {
	payloads map[string][]byte // lang -> payload
	err      error
	calls    int
}

func (s *stubFetcher) Fetch(ctx context.Context, title string, year int, lang string) ([]byte, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	data, ok := s.payloads[lang]
	if !ok {
		return nil, subtitles.ErrNoSubtitles
	}
	return data, nil
}

func TestSubtitleCache_Ensure(t *testing.T) {
	dir := t.TempDir()
	fetcher := &stubFetcher{payloads: map[string][]byte{
		"en": []byte("english subs"),
		"de": []byte("deutsche untertitel"),
	}}
	cache := NewSubtitleCache(dir, "/subtitles", fetcher, []string{"en", "de", "fr"}, testLogger())

	got := cache.Ensure(context.Background(), "Inception", 2010)

	assert.Equal(t, map[string]string{
		"en": "/subtitles/Inception.en.srt",
		"de": "/subtitles/Inception.de.srt",
	}, got, "unresolved languages are silently absent")

	data, err := os.ReadFile(filepath.Join(dir, "Inception.en.srt"))
	require.NoError(t, err)
	assert.Equal(t, "english subs", string(data))
}

func TestSubtitleCache_Ensure_CacheHit(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Inception.en.srt"), []byte("existing"), 0644))

	fetcher := &stubFetcher{payloads: map[string][]byte{"en": []byte("fresh")}}
	cache := NewSubtitleCache(dir, "/subtitles", fetcher, []string{"en"}, testLogger())

	got := cache.Ensure(context.Background(), "Inception", 2010)

	assert.Equal(t, map[string]string{"en": "/subtitles/Inception.en.srt"}, got)
	assert.Equal(t, 0, fetcher.calls, "existing file must not trigger a fetch")

	data, err := os.ReadFile(filepath.Join(dir, "Inception.en.srt"))
	require.NoError(t, err)
	assert.Equal(t, "existing", string(data), "cache hit must not overwrite")
}

func TestSubtitleCache_Ensure_NoFetcher(t *testing.T) {
	dir := t.TempDir()
	cache := NewSubtitleCache(dir, "/subtitles", nil, []string{"en"}, testLogger())

	got := cache.Ensure(context.Background(), "Inception", 2010)
	assert.Empty(t, got, "missing provider yields an empty mapping, not a failure")
}

func TestSubtitleCache_Ensure_ProviderDown(t *testing.T) {
	dir := t.TempDir()
	fetcher := &stubFetcher{err: errors.New("connection refused")}
	cache := NewSubtitleCache(dir, "/subtitles", fetcher, []string{"en", "de"}, testLogger())

	got := cache.Ensure(context.Background(), "Inception", 2010)
	assert.Empty(t, got)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "failures must leave no partial files")
}
