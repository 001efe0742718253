package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fabriqa-labs/fabriqa-cli/internal/core/ports/driving"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export collections into a backup artifact",
	Long: `Snapshots document collections into a single portable backup file.

Subcommands select the scope: the full registry, a single month of the
time-bearing collections, or only the settings collections.`,
	RunE: runExportFull,
}

var exportFullCmd = &cobra.Command{
	Use:   "full",
	Short: "Export every known collection",
	RunE:  runExportFull,
}

var exportMonthCmd = &cobra.Command{
	Use:   "month <YYYY-MM>",
	Short: "Export one month of the time-bearing collections",
	Args:  cobra.ExactArgs(1),
	RunE:  runExportMonth,
}

var exportSettingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Export only the configuration collections",
	RunE:  runExportSettings,
}

func init() {
	exportCmd.AddCommand(exportFullCmd)
	exportCmd.AddCommand(exportMonthCmd)
	exportCmd.AddCommand(exportSettingsCmd)
	rootCmd.AddCommand(exportCmd)
}

func runExportFull(cmd *cobra.Command, _ []string) error {
	return runExport(cmd, func(ctx context.Context) (*driving.ExportResult, error) {
		return exportService.ExportFull(ctx, actorName())
	})
}

func runExportMonth(cmd *cobra.Command, args []string) error {
	return runExport(cmd, func(ctx context.Context) (*driving.ExportResult, error) {
		return exportService.ExportWindowed(ctx, actorName(), args[0])
	})
}

func runExportSettings(cmd *cobra.Command, _ []string) error {
	return runExport(cmd, func(ctx context.Context) (*driving.ExportResult, error) {
		return exportService.ExportSettings(ctx, actorName())
	})
}

func runExport(cmd *cobra.Command, export func(context.Context) (*driving.ExportResult, error)) error {
	if exportService == nil {
		return errors.New("export service not configured")
	}

	result, err := export(context.Background())
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	meta := result.Artifact.Metadata
	cmd.Printf("Exported %d documents across %d collections.\n",
		meta.TotalDocuments, len(meta.CollectionsIncluded))
	if artifactStore != nil {
		cmd.Printf("Artifact: %s (in %s)\n", result.FileName, artifactStore.Dir())
	} else {
		cmd.Printf("Artifact: %s\n", result.FileName)
	}
	return nil
}
