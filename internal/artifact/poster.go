package artifact

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"time"
)

const defaultPosterExt = ".jpg"

// Cap on bytes read from a poster response.
const maxPosterSize = 20 << 20

// PosterCache persists poster images under a directory, one per title.
// A poster already on disk is never fetched again.
type PosterCache struct {
	dir        string
	prefix     string // server-relative URL prefix, e.g. "/posters"
	httpClient *http.Client
	log        *slog.Logger
}

// NewPosterCache creates a poster cache rooted at dir.
func NewPosterCache(dir, prefix string, httpClient *http.Client, log *slog.Logger) *PosterCache {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	if log == nil {
		log = slog.Default()
	}
	return &PosterCache{dir: dir, prefix: prefix, httpClient: httpClient, log: log}
}

// Ensure returns the server-relative path of the poster for title, fetching
// it from rawURL only when no file exists yet at the computed target.
// Any fetch or decode failure returns ok=false and leaves no partial file.
func (p *PosterCache) Ensure(ctx context.Context, rawURL, title string) (string, bool) {
	name := Sanitize(title) + posterExt(rawURL)
	target := filepath.Join(p.dir, name)

	if _, err := os.Stat(target); err == nil {
		p.log.Debug("poster cache hit", "path", target)
		return path.Join(p.prefix, name), true
	}

	data, err := p.download(ctx, rawURL)
	if err != nil {
		p.log.Warn("poster fetch failed", "url", rawURL, "error", err)
		return "", false
	}

	// Decode and re-encode so a corrupt or non-image payload never lands
	// on disk as a poster.
	encoded, err := reencode(data, posterExt(rawURL))
	if err != nil {
		p.log.Warn("poster decode failed", "url", rawURL, "error", err)
		return "", false
	}

	if err := WriteFileAtomic(p.dir, name, encoded); err != nil {
		p.log.Warn("poster write failed", "path", target, "error", err)
		return "", false
	}

	p.log.Info("poster saved", "path", target)
	return path.Join(p.prefix, name), true
}

func (p *PosterCache) download(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("poster fetch error: %s", resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxPosterSize))
	if err != nil {
		return nil, fmt.Errorf("read poster: %w", err)
	}
	return data, nil
}

// posterExt picks the target extension from the URL path, defaulting to .jpg.
func posterExt(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return defaultPosterExt
	}
	switch ext := path.Ext(u.Path); ext {
	case ".jpg", ".jpeg", ".png":
		return ext
	default:
		return defaultPosterExt
	}
}

func reencode(data []byte, ext string) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	var out bytes.Buffer
	if ext == ".png" {
		err = png.Encode(&out, img)
	} else {
		err = jpeg.Encode(&out, img, &jpeg.Options{Quality: 90})
	}
	if err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
