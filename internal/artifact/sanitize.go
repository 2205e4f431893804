// Package artifact caches derived files (posters, subtitles) on disk,
// fetching each one at most once.
package artifact

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// unsafe covers runes that are path separators or otherwise hostile in
// file names across filesystems.
const unsafe = ` /\:*?"<>|`

// Sanitize derives a stable, path-safe file name stem from a title.
// Diacritics are stripped so "Léon" and "Leon" address the same artifact.
func Sanitize(title string) string {
	s := removeAccents(title)

	var b strings.Builder
	for _, r := range s {
		switch {
		case strings.ContainsRune(unsafe, r):
			b.WriteRune('_')
		case unicode.IsControl(r):
			// skip
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func removeAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, s)
	return result
}
