package driving

import (
	"context"

	"github.com/fabriqa-labs/fabriqa-cli/internal/core/domain"
)

// ProgressFunc receives coarse-grained progress milestones during long
// operations: a human-readable step label and a percentage in [0,100].
// Invoked only at milestone boundaries, not at fixed intervals.
type ProgressFunc func(step string, percent int)

// ExportResult reports a completed export.
type ExportResult struct {
	// Artifact is the assembled backup artifact.
	Artifact *domain.BackupArtifact

	// FileName is the name the artifact was packaged under.
	FileName string
}

// ExportService assembles backup artifacts from the document store.
type ExportService interface {
	// ExportFull snapshots the entire Collection Registry.
	ExportFull(ctx context.Context, actor string) (*ExportResult, error)

	// ExportWindowed snapshots the time-bearing collections restricted to
	// one month, given as "YYYY-MM".
	ExportWindowed(ctx context.Context, actor, month string) (*ExportResult, error)

	// ExportSettings snapshots only the Settings Registry collections.
	ExportSettings(ctx context.Context, actor string) (*ExportResult, error)
}

// RestoreResult reports the outcome of a restore run.
type RestoreResult struct {
	// Success is true when every step completed.
	Success bool

	// Error carries the failure description when Success is false.
	Error string

	// Restored counts the documents written across fully-committed
	// collections, including those committed before a mid-run failure.
	Restored int
}

// RestoreService replays a backup artifact into the document store.
type RestoreService interface {
	// Restore validates the raw artifact, takes a safety snapshot, replays
	// every included collection under the given mode, and records the run
	// in the history ledger. fileName is recorded for audit only.
	//
	// The result is always non-nil; validation and store failures are
	// reported through it rather than by a separate error return.
	Restore(ctx context.Context, raw []byte, mode domain.RestoreMode, actor, fileName string, progress ProgressFunc) *RestoreResult
}

// UsageService reports how much data the registry collections hold.
type UsageService interface {
	// Estimate scans every registry collection and sums document counts
	// and approximate payload bytes.
	Estimate(ctx context.Context) (*domain.UsageReport, error)
}

// HistoryService exposes the audit ledger.
type HistoryService interface {
	// Record appends an entry, best-effort. Failures are logged and
	// swallowed; history is advisory, not part of the consistency contract.
	Record(ctx context.Context, entry *domain.HistoryEntry)

	// Recent returns up to n most-recent entries, newest first.
	Recent(ctx context.Context, n int) ([]domain.HistoryEntry, error)
}

// ConverterService turns a loosely-structured foreign export into a
// standard backup artifact.
type ConverterService interface {
	// Convert parses the foreign payload, dropping rows that reference
	// unknown collections or carry unparsable payloads. Fails with
	// domain.ErrEmptyConversion when nothing survives.
	Convert(raw []byte, actor string) (*domain.BackupArtifact, error)
}
