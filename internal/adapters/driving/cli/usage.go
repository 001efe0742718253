package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/fabriqa-labs/fabriqa-cli/internal/core/domain"
)

var usageCmd = &cobra.Command{
	Use:   "usage",
	Short: "Estimate how much data the collections hold",
	Long: `Scans every known collection and reports per-collection document counts
and an approximate serialized payload size. Read-only.`,
	RunE: runUsage,
}

func init() {
	rootCmd.AddCommand(usageCmd)
}

func runUsage(cmd *cobra.Command, _ []string) error {
	if usageService == nil {
		return errors.New("usage service not configured")
	}

	report, err := usageService.Estimate(context.Background())
	if err != nil {
		return fmt.Errorf("estimating usage: %w", err)
	}

	cmd.Printf("Usage as of %s\n\n", report.GeneratedAt.Format("2006-01-02 15:04:05"))
	for _, name := range domain.CollectionRegistry {
		cmd.Printf("  %-22s %6d\n", name, report.DocumentCounts[name])
	}
	cmd.Println()
	cmd.Printf("Collections scanned: %d\n", report.CollectionsScanned)
	cmd.Printf("Total documents:     %d\n", report.TotalDocuments)
	cmd.Printf("Estimated size:      %s\n", humanize.Bytes(uint64(report.EstimatedBytes)))
	return nil
}
