// Package cli implements the cobra command surface that drives the backup
// engine: export, restore, validate, convert, history, usage.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fabriqa-labs/fabriqa-cli/internal/adapters/driven/config/file"
	"github.com/fabriqa-labs/fabriqa-cli/internal/adapters/driven/packaging"
	"github.com/fabriqa-labs/fabriqa-cli/internal/adapters/driven/storage/sqlite"
	"github.com/fabriqa-labs/fabriqa-cli/internal/core/ports/driven"
	"github.com/fabriqa-labs/fabriqa-cli/internal/core/ports/driving"
	"github.com/fabriqa-labs/fabriqa-cli/internal/core/services"
	"github.com/fabriqa-labs/fabriqa-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Services wired by initServices and consumed by the commands.
var (
	configStore      driven.ConfigStore
	artifactStore    *packaging.FileStore
	exportService    driving.ExportService
	restoreService   driving.RestoreService
	usageService     driving.UsageService
	historyService   driving.HistoryService
	converterService driving.ConverterService

	sqliteStore *sqlite.Store

	// servicesWired short-circuits initServices once the graph is built,
	// and lets tests inject their own services.
	servicesWired bool
)

// Flags shared across commands.
var (
	flagVerbose   bool
	flagDataDir   string
	flagBackupDir string
	flagActor     string
)

var rootCmd = &cobra.Command{
	Use:   "fabriqa",
	Short: "Backup and restore for the fabriqa manufacturing console",
	Long: `fabriqa snapshots the console's document collections into portable
backup artifacts and replays them back under merge, replace or full-reset
semantics, with an automatic safety snapshot and an audit trail.`,
	SilenceUsage:      true,
	PersistentPreRunE: initServices,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default ~/.fabriqa/data)")
	rootCmd.PersistentFlags().StringVar(&flagBackupDir, "backup-dir", "", "backup directory (default ~/.fabriqa/backups)")
	rootCmd.PersistentFlags().StringVar(&flagActor, "actor", "", "actor recorded in the audit trail (default from config)")
}

// initServices builds the adapter and service graph once per invocation.
func initServices(cmd *cobra.Command, _ []string) error {
	if servicesWired {
		return nil
	}

	logger.SetVerbose(flagVerbose)

	cfg, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("opening config: %w", err)
	}
	configStore = cfg

	dataDir := flagDataDir
	if dataDir == "" {
		dataDir = cfg.GetString("data.dir")
	}
	store, err := sqlite.NewStore(dataDir)
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	sqliteStore = store

	backupDir := flagBackupDir
	if backupDir == "" {
		backupDir = cfg.GetString("backup.dir")
	}
	artifacts, err := packaging.NewFileStore(backupDir)
	if err != nil {
		return fmt.Errorf("opening backup directory: %w", err)
	}
	artifactStore = artifacts

	chunkSize := cfg.GetInt("store.chunk_size")
	accessor := services.NewCollectionAccessor(store.DocumentStore(), chunkSize)
	writer := services.NewBatchWriter(store.DocumentStore(), accessor)
	ledger := services.NewHistoryLedger(store.HistoryStore())
	exporter := services.NewExporter(accessor, artifacts, ledger)

	exportService = exporter
	restoreService = services.NewRestorer(accessor, writer, exporter, ledger)
	usageService = services.NewUsageEstimator(accessor)
	historyService = ledger
	converterService = services.NewConverter()

	servicesWired = true
	return nil
}

// actorName resolves the audit actor: flag, then config, then OS user.
func actorName() string {
	if flagActor != "" {
		return flagActor
	}
	if configStore != nil {
		if actor := configStore.GetString("actor"); actor != "" {
			return actor
		}
	}
	if user := os.Getenv("USER"); user != "" {
		return user
	}
	return "operator"
}

// Execute runs the root command.
func Execute() {
	defer func() {
		if sqliteStore != nil {
			sqliteStore.Close()
		}
	}()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
