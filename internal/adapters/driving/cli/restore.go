package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fabriqa-labs/fabriqa-cli/internal/core/domain"
)

var (
	flagRestoreMode string
	flagRestoreYes  bool
)

var restoreCmd = &cobra.Command{
	Use:   "restore <file>",
	Short: "Replay a backup artifact into the store",
	Long: `Validates a backup artifact, takes an automatic safety snapshot, and
replays the artifact's collections into the store.

Modes:
  merge       - upsert documents by key, never delete
  replace     - delete each artifact collection's documents, then insert
  full_reset  - replace, plus empty every known collection absent from
                the artifact

Destructive modes prompt for confirmation unless --yes is given.`,
	Args: cobra.ExactArgs(1),
	RunE: runRestore,
}

func init() {
	restoreCmd.Flags().StringVarP(&flagRestoreMode, "mode", "m", string(domain.RestoreMerge),
		"restore mode: merge, replace or full_reset")
	restoreCmd.Flags().BoolVarP(&flagRestoreYes, "yes", "y", false,
		"skip the confirmation prompt for destructive modes")
	rootCmd.AddCommand(restoreCmd)
}

func runRestore(cmd *cobra.Command, args []string) error {
	if restoreService == nil || artifactStore == nil {
		return errors.New("restore service not configured")
	}

	mode := domain.RestoreMode(flagRestoreMode)
	if !mode.IsValid() {
		return fmt.Errorf("unknown restore mode %q (merge, replace or full_reset)", flagRestoreMode)
	}

	path := args[0]
	raw, err := artifactStore.Read(context.Background(), path)
	if err != nil {
		return fmt.Errorf("reading artifact: %w", err)
	}

	if mode.Destructive() && !flagRestoreYes {
		if !confirm(cmd, fmt.Sprintf("Mode %q deletes existing documents. Continue? [y/N] ", mode)) {
			cmd.Println("Restore cancelled.")
			return nil
		}
	}

	cmd.Printf("Restoring %s (mode: %s)...\n", filepath.Base(path), mode)

	result := restoreService.Restore(context.Background(), raw, mode, actorName(),
		filepath.Base(path), func(step string, percent int) {
			cmd.Printf("[%3d%%] %s\n", percent, step)
		})

	if !result.Success {
		if result.Restored > 0 {
			cmd.Printf("Restore failed after %d documents; the pre-restore snapshot is the recovery path.\n",
				result.Restored)
		}
		return fmt.Errorf("restore failed: %s", result.Error)
	}

	cmd.Printf("Restored %d documents.\n", result.Restored)
	return nil
}

// confirm reads a y/N answer from the command's input stream.
func confirm(cmd *cobra.Command, prompt string) bool {
	cmd.Print(prompt)
	reader := bufio.NewReader(cmd.InOrStdin())
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
