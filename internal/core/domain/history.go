package domain

import "time"

// HistoryAction distinguishes export from import ledger records.
type HistoryAction string

const (
	// ActionExport records a produced backup artifact.
	ActionExport HistoryAction = "export"

	// ActionImport records a replayed backup artifact.
	ActionImport HistoryAction = "import"
)

// HistoryEntry is an immutable audit record of one export or import.
// Entries are created once, appended to the ledger, and never mutated or
// deleted by this subsystem.
type HistoryEntry struct {
	// ID is the ledger-assigned identifier.
	ID string

	// Action is export or import.
	Action HistoryAction

	// ArtifactType is the artifact's export type.
	ArtifactType ExportType

	// Mode is the restore mode; set only for imports.
	Mode RestoreMode

	// DocumentCount is the number of documents exported or restored.
	DocumentCount int

	// Collections lists the collection names touched, in artifact order.
	Collections []string

	// Actor identifies who triggered the action.
	Actor string

	// FileName is the originating artifact file name, when known.
	FileName string

	// CreatedAt is when the action completed.
	CreatedAt time.Time
}
