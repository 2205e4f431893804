package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Trigger a library refresh",
	Long: `Trigger a background library refresh.

The server rescans the movies directory, re-fetches missing metadata,
and replaces the catalog snapshot.

Examples:
  reelcat refresh              # Queue a refresh
  reelcat refresh history      # Show past refresh runs`,
	RunE: runRefreshCmd,
}

var refreshHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "Show past refresh runs",
	RunE:  runRefreshHistory,
}

func init() {
	rootCmd.AddCommand(refreshCmd)
	refreshHistoryCmd.Flags().IntP("limit", "n", 20, "Maximum number of runs to show")
	refreshCmd.AddCommand(refreshHistoryCmd)
}

func runRefreshCmd(cmd *cobra.Command, args []string) error {
	client := NewClient(serverURL)
	ack, err := client.TriggerRefresh()
	if err != nil {
		return fmt.Errorf("refresh failed: %w", err)
	}

	if jsonOutput {
		printJSON(ack)
		return nil
	}

	fmt.Printf("Refresh %s\n", ack.Status)
	return nil
}

func runRefreshHistory(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")

	client := NewClient(serverURL)
	records, err := client.RefreshHistory(limit)
	if err != nil {
		return fmt.Errorf("history fetch failed: %w", err)
	}

	if jsonOutput {
		printJSON(records)
		return nil
	}

	printHistory(records)
	return nil
}

func printHistory(records []RefreshRecord) {
	if len(records) == 0 {
		fmt.Println("No refresh runs recorded")
		return
	}

	fmt.Printf("Refresh runs (%d):\n\n", len(records))
	fmt.Printf("  %-4s %-20s %-10s %-8s %s\n", "ID", "STARTED", "DURATION", "ENTRIES", "RESULT")
	fmt.Println("  " + strings.Repeat("-", 60))

	for _, r := range records {
		started := r.StartedAt
		duration := "-"
		if s, err := time.Parse(time.RFC3339Nano, r.StartedAt); err == nil {
			started = s.Local().Format("2006-01-02 15:04:05")
			if f, err := time.Parse(time.RFC3339Nano, r.FinishedAt); err == nil {
				duration = f.Sub(s).Round(time.Millisecond).String()
			}
		}
		result := "ok"
		if r.Error != "" {
			result = r.Error
		}
		fmt.Printf("  %-4d %-20s %-10s %-8d %s\n", r.ID, started, duration, r.EntryCount, result)
	}
}
