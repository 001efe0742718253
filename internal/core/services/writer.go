package services

import (
	"context"
	"fmt"

	"github.com/fabriqa-labs/fabriqa-cli/internal/core/domain"
	"github.com/fabriqa-labs/fabriqa-cli/internal/core/ports/driven"
	"github.com/fabriqa-labs/fabriqa-cli/internal/logger"
)

// BatchWriter persists document lists into a collection under a restore
// mode, split into chunks of the store's per-transaction ceiling.
type BatchWriter struct {
	store    driven.DocumentStore
	accessor *CollectionAccessor
}

// NewBatchWriter creates a writer sharing the accessor's chunk size.
func NewBatchWriter(store driven.DocumentStore, accessor *CollectionAccessor) *BatchWriter {
	return &BatchWriter{store: store, accessor: accessor}
}

// Write upserts the documents into the collection under the given mode.
// Destructive modes clear the collection first. Chunks commit sequentially:
// chunk i+1 is only attempted after chunk i committed, so a mid-collection
// failure leaves chunks 0..i-1 written and nothing from i onward applied.
// That non-atomicity across chunks is a store limitation, not a bug.
func (w *BatchWriter) Write(ctx context.Context, name string, docs []domain.Document, mode domain.RestoreMode) error {
	if !mode.IsValid() {
		return fmt.Errorf("%w: restore mode %q", domain.ErrInvalidInput, mode)
	}

	if mode.Destructive() {
		if _, err := w.accessor.Clear(ctx, name); err != nil {
			return err
		}
	}

	// Merge semantics apply exactly when the mode is merge; replace and
	// full_reset overwrite documents wholesale.
	merge := mode == domain.RestoreMerge
	chunkSize := w.accessor.ChunkSize()

	for start := 0; start < len(docs); start += chunkSize {
		end := min(start+chunkSize, len(docs))

		chunk := make([]domain.Document, 0, end-start)
		for _, doc := range docs[start:end] {
			id := doc.ID()
			if id == "" {
				id = w.store.AllocateID()
			}
			chunk = append(chunk, doc.WithID(id))
		}

		if err := w.store.WriteChunk(ctx, name, chunk, merge); err != nil {
			return fmt.Errorf("%w: %s documents %d-%d: %w", domain.ErrWriteFailure, name, start, end-1, err)
		}
		logger.Debug("Wrote %s documents %d-%d", name, start, end-1)
	}

	return nil
}
