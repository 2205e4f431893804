// Package filename extracts a display title and optional year from video file names.
package filename

import (
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// Info contains the title and year parsed from a file name.
type Info struct {
	Title string
	Year  int // 0 when the name carries no year
}

// trailingYear matches an optional 4-digit year, possibly parenthesized,
// at the end of a normalized name.
var trailingYear = regexp.MustCompile(`^(.*?)\s*\(?(\d{4})\)?$`)

// Parse extracts title and year from a video file name.
// It never fails: names without a recognizable year degrade to the whole
// normalized name as title.
func Parse(name string) Info {
	base := strings.TrimSuffix(name, filepath.Ext(name))

	// Normalize separators
	base = strings.ReplaceAll(base, ".", " ")
	base = strings.ReplaceAll(base, "_", " ")
	base = strings.Join(strings.Fields(base), " ")

	if m := trailingYear.FindStringSubmatch(base); m != nil {
		title := strings.TrimSpace(m[1])
		if title != "" {
			year, _ := strconv.Atoi(m[2])
			return Info{Title: title, Year: year}
		}
	}

	return Info{Title: base}
}
