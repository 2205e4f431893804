package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

var moviesCmd = &cobra.Command{
	Use:   "movies",
	Short: "List the movie catalog",
	Long: `List the movie catalog.

Examples:
  reelcat movies            # Show the catalog as a table
  reelcat movies --json     # Raw catalog JSON`,
	RunE: runMoviesCmd,
}

func init() {
	rootCmd.AddCommand(moviesCmd)
}

func runMoviesCmd(cmd *cobra.Command, args []string) error {
	client := NewClient(serverURL)
	movies, err := client.Movies()
	if err != nil {
		return fmt.Errorf("fetch failed: %w", err)
	}

	if jsonOutput {
		printJSON(movies)
		return nil
	}

	printMovies(movies)
	return nil
}

func printMovies(movies []MovieResponse) {
	if len(movies) == 0 {
		fmt.Println("No movies in catalog")
		return
	}

	fmt.Printf("Movies (%d):\n\n", len(movies))
	fmt.Printf("  %-40s %-6s %-10s %-10s %s\n", "TITLE", "YEAR", "DURATION", "CODEC", "SUBS")
	fmt.Println("  " + strings.Repeat("-", 76))

	for _, m := range movies {
		title := m.Title
		if len(title) > 40 {
			title = title[:37] + "..."
		}
		year := "-"
		if m.Year != nil {
			year = fmt.Sprintf("%d", *m.Year)
		}
		duration := "-"
		if m.Duration != nil {
			duration = formatDuration(*m.Duration)
		}
		codec := "-"
		if m.Codec != nil {
			codec = *m.Codec
		}
		subs := "-"
		if len(m.Subtitles) > 0 {
			langs := make([]string, 0, len(m.Subtitles))
			for lang := range m.Subtitles {
				langs = append(langs, lang)
			}
			sort.Strings(langs)
			subs = strings.Join(langs, ",")
		}
		fmt.Printf("  %-40s %-6s %-10s %-10s %s\n", title, year, duration, codec, subs)
	}
}

func formatDuration(seconds float64) string {
	total := int(seconds)
	h := total / 3600
	m := (total % 3600) / 60
	if h > 0 {
		return fmt.Sprintf("%dh%02dm", h, m)
	}
	return fmt.Sprintf("%dm", m)
}
