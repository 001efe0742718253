package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fabriqa-labs/fabriqa-cli/internal/core/services"
)

var convertCmd = &cobra.Command{
	Use:   "convert <file>",
	Short: "Convert a foreign export into a backup artifact",
	Long: `Best-effort conversion of a loosely-structured external export (an array
of rows, or an object holding one) into a standard backup artifact.

Rows referencing unknown collections or carrying unparsable payloads are
dropped. The converted artifact is written to the backup directory and
validated before the command reports success.`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	if converterService == nil || artifactStore == nil {
		return errors.New("converter not configured")
	}

	raw, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading foreign export: %w", err)
	}

	artifact, err := converterService.Convert(raw, actorName())
	if err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}

	// The converted artifact must pass the same gate as any other.
	encoded, err := artifactStore.Write(context.Background(), artifact)
	if err != nil {
		return fmt.Errorf("writing converted artifact: %w", err)
	}
	data, err := artifactStore.Read(context.Background(), encoded)
	if err != nil {
		return fmt.Errorf("re-reading converted artifact: %w", err)
	}
	if _, err := services.ValidateArtifact(data); err != nil {
		return fmt.Errorf("converted artifact failed validation: %w", err)
	}

	cmd.Printf("Converted %d documents across %d collections.\n",
		artifact.Metadata.TotalDocuments, len(artifact.Metadata.CollectionsIncluded))
	cmd.Printf("Artifact: %s (in %s)\n", encoded, artifactStore.Dir())
	return nil
}
