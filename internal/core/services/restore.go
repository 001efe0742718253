package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/fabriqa-labs/fabriqa-cli/internal/core/domain"
	"github.com/fabriqa-labs/fabriqa-cli/internal/core/ports/driving"
	"github.com/fabriqa-labs/fabriqa-cli/internal/logger"
)

// safetyActorSuffix tags the automatic pre-restore snapshot in the ledger
// so operators can tell it apart from manual exports.
const safetyActorSuffix = " (auto-before-restore)"

// Ensure Restorer implements the interface.
var _ driving.RestoreService = (*Restorer)(nil)

// Restorer replays backup artifacts into the document store. The run is a
// linear state machine: validate, safety-snapshot, replay each included
// collection, sweep unlisted collections for full resets, record history.
// Any failure aborts at its current position; already-committed chunks are
// not rolled back — the safety snapshot is the recovery path.
type Restorer struct {
	accessor *CollectionAccessor
	writer   *BatchWriter
	exporter driving.ExportService
	history  driving.HistoryService
}

// NewRestorer creates a restore orchestrator.
func NewRestorer(accessor *CollectionAccessor, writer *BatchWriter, exporter driving.ExportService, history driving.HistoryService) *Restorer {
	return &Restorer{accessor: accessor, writer: writer, exporter: exporter, history: history}
}

// Restore validates and replays a raw artifact under the given mode.
//
//nolint:gocyclo // Orchestration function with necessary sequential steps
func (r *Restorer) Restore(
	ctx context.Context,
	raw []byte,
	mode domain.RestoreMode,
	actor, fileName string,
	progress driving.ProgressFunc,
) *driving.RestoreResult {
	report := func(step string, percent int) {
		if progress != nil {
			progress(step, percent)
		}
	}
	fail := func(restored int, err error) *driving.RestoreResult {
		logger.Warn("Restore failed: %v", err)
		return &driving.RestoreResult{Success: false, Error: err.Error(), Restored: restored}
	}

	if !mode.IsValid() {
		return fail(0, fmt.Errorf("%w: restore mode %q", domain.ErrInvalidInput, mode))
	}

	// 1. VALIDATE - pure check, nothing touched on failure
	report("validating artifact", 5)
	artifact, err := ValidateArtifact(raw)
	if err != nil {
		return fail(0, err)
	}

	// 2. SAFETY SNAPSHOT - a destructive restore must never proceed
	// without a fresh full copy from immediately before it
	report("taking safety snapshot", 8)
	if _, err := r.exporter.ExportFull(ctx, actor+safetyActorSuffix); err != nil {
		return fail(0, fmt.Errorf("safety snapshot: %w", err))
	}

	// 3. REPLAY each included collection, in artifact order
	names := artifact.Metadata.CollectionsIncluded
	if len(names) == 0 {
		names = sortedKeys(artifact.Collections)
	}

	restored := 0
	for i, name := range names {
		if mode != domain.RestoreFullReset && !domain.IsKnownCollection(name) {
			// Tampered or stale artifact; leave unknown collections alone.
			continue
		}

		report("restoring "+name, 10+(i*80)/len(names))

		docs := artifact.Collections[name]
		switch {
		case len(docs) > 0:
			if err := r.writer.Write(ctx, name, docs, mode); err != nil {
				return fail(restored, err)
			}
			restored += len(docs)
		case mode.Destructive():
			// An empty collection in the artifact means the collection
			// should end up empty.
			if _, err := r.accessor.Clear(ctx, name); err != nil {
				return fail(restored, err)
			}
		}
	}

	// 4. SWEEP unlisted registry collections so the store's membership
	// matches the artifact exactly
	if mode == domain.RestoreFullReset {
		report("sweeping unlisted collections", 92)
		included := make(map[string]bool, len(names))
		for _, name := range names {
			included[name] = true
		}
		for _, name := range domain.CollectionRegistry {
			if included[name] {
				continue
			}
			if _, err := r.accessor.Clear(ctx, name); err != nil {
				return fail(restored, err)
			}
		}
	}

	// 5. HISTORY - best-effort, never fails the restore
	report("recording history", 95)
	r.history.Record(ctx, &domain.HistoryEntry{
		Action:        domain.ActionImport,
		ArtifactType:  artifact.Metadata.Type,
		Mode:          mode,
		DocumentCount: restored,
		Collections:   names,
		Actor:         actor,
		FileName:      fileName,
		CreatedAt:     time.Now(),
	})

	report("done", 100)
	logger.Info("Restore complete: %d documents across %d collections", restored, len(names))
	return &driving.RestoreResult{Success: true, Restored: restored}
}

// sortedKeys returns the map's keys in lexical order, used only as a
// fallback when an artifact omits its included-collections list.
func sortedKeys(collections map[string][]domain.Document) []string {
	keys := make([]string, 0, len(collections))
	for name := range collections {
		keys = append(keys, name)
	}
	sort.Strings(keys)
	return keys
}
