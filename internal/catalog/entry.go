// Package catalog builds and persists the video catalog snapshot.
package catalog

// Entry describes one video file in the catalog. Filename is the unique key
// against the filesystem; every enrichment field is optional and omitted
// from JSON when absent, so a failed lookup shows as "we don't know more"
// rather than a missing row.
type Entry struct {
	Filename  string            `json:"filename"`
	Title     string            `json:"title"`
	Year      *int              `json:"year,omitempty"`
	Poster    *string           `json:"poster,omitempty"`
	Subtitles map[string]string `json:"subtitles,omitempty"`
	Duration  *float64          `json:"duration,omitempty"`
	Width     *int              `json:"width,omitempty"`
	Height    *int              `json:"height,omitempty"`
	Codec     *string           `json:"codec,omitempty"`
}
