// Package tmdb provides a client for The Movie Database search API.
package tmdb

// SearchResult represents one candidate from a TMDB movie search.
type SearchResult struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Overview    string `json:"overview"`
	ReleaseDate string `json:"release_date"` // "2010-07-15"
	PosterPath  string `json:"poster_path"`  // "/abc123.jpg"
}

// searchResponse is the envelope TMDB wraps search results in.
type searchResponse struct {
	Page         int            `json:"page"`
	Results      []SearchResult `json:"results"`
	TotalResults int            `json:"total_results"`
}

// Year returns the 4-digit release year string, or "" if unknown.
func (r *SearchResult) Year() string {
	if len(r.ReleaseDate) < 4 {
		return ""
	}
	return r.ReleaseDate[:4]
}
