package catalog_test

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/reelcat/reelcat/internal/catalog"
	"github.com/reelcat/reelcat/internal/catalog/mocks"
	"github.com/reelcat/reelcat/internal/metadata"
	"github.com/reelcat/reelcat/internal/probe"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// touch creates empty video files in dir.
func touch(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0644))
	}
}

func ptr[T any](v T) *T { return &v }

func TestBuilder_Refresh_FullEnrichment(t *testing.T) {
	ctrl := gomock.NewController(t)
	moviesDir := t.TempDir()
	touch(t, moviesDir, "Inception.2010.mkv")
	store := catalog.NewStore(filepath.Join(t.TempDir(), "metadata.json"))

	matcher := mocks.NewMockMatcher(ctrl)
	matcher.EXPECT().
		Match(gomock.Any(), "Inception", 2010).
		Return(&metadata.Match{Title: "Inception", Year: "2010", PosterURL: "https://image.tmdb.org/t/p/w500/abc.jpg"})

	posters := mocks.NewMockPosterCache(ctrl)
	posters.EXPECT().
		Ensure(gomock.Any(), "https://image.tmdb.org/t/p/w500/abc.jpg", "Inception").
		Return("/posters/Inception.jpg", true)

	subs := mocks.NewMockSubtitleCache(ctrl)
	subs.EXPECT().
		Ensure(gomock.Any(), "Inception", 2010).
		Return(map[string]string{"en": "/subtitles/Inception.en.srt"})

	prober := mocks.NewMockProber(ctrl)
	prober.EXPECT().
		Probe(gomock.Any(), filepath.Join(moviesDir, "Inception.2010.mkv")).
		Return(probe.Result{Duration: ptr(8880.0), Width: ptr(1920), Height: ptr(1080), Codec: ptr("h264")})

	b := catalog.NewBuilder(moviesDir, store, matcher, prober, posters, subs, 1, testLogger())

	entries, err := b.Refresh(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)

	e := entries[0]
	assert.Equal(t, "Inception.2010.mkv", e.Filename)
	assert.Equal(t, "Inception", e.Title)
	require.NotNil(t, e.Year)
	assert.Equal(t, 2010, *e.Year)
	require.NotNil(t, e.Poster)
	assert.Equal(t, "/posters/Inception.jpg", *e.Poster)
	assert.Equal(t, map[string]string{"en": "/subtitles/Inception.en.srt"}, e.Subtitles)
	require.NotNil(t, e.Duration)
	assert.Equal(t, 8880.0, *e.Duration)
	assert.Equal(t, 1920, *e.Width)
	assert.Equal(t, 1080, *e.Height)
	assert.Equal(t, "h264", *e.Codec)

	// The refresh persisted the same entries it returned.
	persisted, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, entries, persisted)
}

func TestBuilder_Refresh_AllProvidersFail(t *testing.T) {
	ctrl := gomock.NewController(t)
	moviesDir := t.TempDir()
	touch(t, moviesDir, "Unknown Reel.mkv")
	store := catalog.NewStore(filepath.Join(t.TempDir(), "metadata.json"))

	matcher := mocks.NewMockMatcher(ctrl)
	matcher.EXPECT().Match(gomock.Any(), "Unknown Reel", 0).Return(nil)

	// No match means no poster URL, so the poster cache must not be asked.
	posters := mocks.NewMockPosterCache(ctrl)

	subs := mocks.NewMockSubtitleCache(ctrl)
	subs.EXPECT().Ensure(gomock.Any(), "Unknown Reel", 0).Return(nil)

	prober := mocks.NewMockProber(ctrl)
	prober.EXPECT().Probe(gomock.Any(), gomock.Any()).Return(probe.Result{})

	b := catalog.NewBuilder(moviesDir, store, matcher, prober, posters, subs, 1, testLogger())

	entries, err := b.Refresh(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1, "an unenriched file still gets its entry")

	e := entries[0]
	assert.Equal(t, "Unknown Reel.mkv", e.Filename)
	assert.Equal(t, "Unknown Reel", e.Title)
	assert.Nil(t, e.Year)
	assert.Nil(t, e.Poster)
	assert.Nil(t, e.Subtitles)
	assert.Nil(t, e.Duration)
	assert.Nil(t, e.Width)
	assert.Nil(t, e.Height)
	assert.Nil(t, e.Codec)
}

func TestBuilder_Refresh_FiltersAndOrders(t *testing.T) {
	ctrl := gomock.NewController(t)
	moviesDir := t.TempDir()
	touch(t, moviesDir,
		"Alien.1979.mkv",
		"Heat.1995.MP4", // extension match is case-insensitive
		"Zodiac.2007.avi",
		"notes.txt",
		"cover.jpg",
	)
	require.NoError(t, os.Mkdir(filepath.Join(moviesDir, "extras.mkv"), 0755))
	store := catalog.NewStore(filepath.Join(t.TempDir(), "metadata.json"))

	matcher := mocks.NewMockMatcher(ctrl)
	matcher.EXPECT().Match(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(3)
	subs := mocks.NewMockSubtitleCache(ctrl)
	subs.EXPECT().Ensure(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(3)
	prober := mocks.NewMockProber(ctrl)
	prober.EXPECT().Probe(gomock.Any(), gomock.Any()).Return(probe.Result{}).Times(3)
	posters := mocks.NewMockPosterCache(ctrl)

	b := catalog.NewBuilder(moviesDir, store, matcher, prober, posters, subs, 3, testLogger())

	entries, err := b.Refresh(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 3, "entry count equals eligible file count")

	// Directory listing order, regardless of which enrichment finished first.
	assert.Equal(t, "Alien.1979.mkv", entries[0].Filename)
	assert.Equal(t, "Heat.1995.MP4", entries[1].Filename)
	assert.Equal(t, "Zodiac.2007.avi", entries[2].Filename)
}

func TestBuilder_Refresh_EmptyDirectory(t *testing.T) {
	moviesDir := t.TempDir()
	store := catalog.NewStore(filepath.Join(t.TempDir(), "metadata.json"))
	ctrl := gomock.NewController(t)

	b := catalog.NewBuilder(moviesDir, store,
		mocks.NewMockMatcher(ctrl), mocks.NewMockProber(ctrl),
		mocks.NewMockPosterCache(ctrl), mocks.NewMockSubtitleCache(ctrl), 2, testLogger())

	entries, err := b.Refresh(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries)
	assert.True(t, store.Exists(), "an empty snapshot is still a snapshot")
}

func TestBuilder_Refresh_MissingDirectory(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := catalog.NewStore(filepath.Join(t.TempDir(), "metadata.json"))

	b := catalog.NewBuilder(filepath.Join(t.TempDir(), "nope"), store,
		mocks.NewMockMatcher(ctrl), mocks.NewMockProber(ctrl),
		mocks.NewMockPosterCache(ctrl), mocks.NewMockSubtitleCache(ctrl), 2, testLogger())

	_, err := b.Refresh(context.Background())
	assert.Error(t, err)
	assert.False(t, store.Exists(), "failed refresh must not write a snapshot")
}

func TestBuilder_Refresh_Idempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	moviesDir := t.TempDir()
	touch(t, moviesDir, "Inception.2010.mkv")
	store := catalog.NewStore(filepath.Join(t.TempDir(), "metadata.json"))

	matcher := mocks.NewMockMatcher(ctrl)
	matcher.EXPECT().
		Match(gomock.Any(), "Inception", 2010).
		Return(&metadata.Match{Title: "Inception", Year: "2010", PosterURL: "https://image.tmdb.org/t/p/w500/abc.jpg"}).
		Times(2)
	posters := mocks.NewMockPosterCache(ctrl)
	posters.EXPECT().
		Ensure(gomock.Any(), gomock.Any(), "Inception").
		Return("/posters/Inception.jpg", true).
		Times(2)
	subs := mocks.NewMockSubtitleCache(ctrl)
	subs.EXPECT().Ensure(gomock.Any(), "Inception", 2010).Return(nil).Times(2)
	prober := mocks.NewMockProber(ctrl)
	prober.EXPECT().
		Probe(gomock.Any(), gomock.Any()).
		Return(probe.Result{Duration: ptr(8880.0), Codec: ptr("h264")}).
		Times(2)

	b := catalog.NewBuilder(moviesDir, store, matcher, prober, posters, subs, 1, testLogger())

	first, err := b.Refresh(context.Background())
	require.NoError(t, err)
	second, err := b.Refresh(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second, "unchanged directory must reproduce an identical catalog")
}
