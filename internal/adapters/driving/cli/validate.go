package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fabriqa-labs/fabriqa-cli/internal/core/services"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check a backup artifact without touching the store",
	Long: `Runs the structural and semantic artifact checks: JSON shape, format
version compatibility, and collection registry membership. Nothing is
read from or written to the store.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	if artifactStore == nil {
		return errors.New("artifact store not configured")
	}

	raw, err := artifactStore.Read(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("reading artifact: %w", err)
	}

	artifact, err := services.ValidateArtifact(raw)
	if err != nil {
		cmd.Printf("Invalid: %v\n", err)
		return errors.New("artifact failed validation")
	}

	meta := artifact.Metadata
	cmd.Println("Artifact is valid.")
	cmd.Printf("  Type:        %s\n", meta.Type)
	if meta.Month != "" {
		cmd.Printf("  Month:       %s\n", meta.Month)
	}
	cmd.Printf("  Version:     %s\n", meta.Version)
	cmd.Printf("  Created:     %s by %s\n", meta.CreatedAt, meta.CreatedBy)
	cmd.Printf("  Collections: %d\n", len(meta.CollectionsIncluded))
	cmd.Printf("  Documents:   %d\n", meta.TotalDocuments)
	return nil
}
