package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fabriqa-labs/fabriqa-cli/internal/core/domain"
)

var flagHistoryLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent export and import actions",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&flagHistoryLimit, "limit", "n", 20, "maximum entries to show")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}

	entries, err := historyService.Recent(context.Background(), flagHistoryLimit)
	if err != nil {
		return fmt.Errorf("reading history: %w", err)
	}

	if len(entries) == 0 {
		cmd.Println("No history yet.")
		return nil
	}

	for _, entry := range entries {
		cmd.Println(formatHistoryEntry(entry))
	}
	return nil
}

func formatHistoryEntry(entry domain.HistoryEntry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %-6s %-8s %5d docs",
		entry.CreatedAt.Format("2006-01-02 15:04:05"),
		entry.Action, entry.ArtifactType, entry.DocumentCount)
	if entry.Action == domain.ActionImport && entry.Mode != "" {
		fmt.Fprintf(&b, "  mode=%s", entry.Mode)
	}
	if entry.Actor != "" {
		fmt.Fprintf(&b, "  by %s", entry.Actor)
	}
	if entry.FileName != "" {
		fmt.Fprintf(&b, "  (%s)", entry.FileName)
	}
	return b.String()
}
