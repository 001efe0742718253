package services

import (
	"context"
	"fmt"

	"github.com/fabriqa-labs/fabriqa-cli/internal/core/domain"
	"github.com/fabriqa-labs/fabriqa-cli/internal/core/ports/driven"
	"github.com/fabriqa-labs/fabriqa-cli/internal/logger"
)

// CollectionAccessor reads and clears whole collections on top of the
// document store primitives.
type CollectionAccessor struct {
	store     driven.DocumentStore
	chunkSize int
}

// NewCollectionAccessor creates an accessor over the given store.
// A chunkSize of 0 falls back to domain.StoreChunkLimit.
func NewCollectionAccessor(store driven.DocumentStore, chunkSize int) *CollectionAccessor {
	if chunkSize <= 0 {
		chunkSize = domain.StoreChunkLimit
	}
	return &CollectionAccessor{store: store, chunkSize: chunkSize}
}

// ChunkSize returns the per-transaction ceiling the accessor honours.
func (a *CollectionAccessor) ChunkSize() int {
	return a.chunkSize
}

// ReadAll fetches every document of a collection, each stamped with its
// store key under domain.DocIDField. Returns an empty slice, never nil,
// when the collection holds no documents.
func (a *CollectionAccessor) ReadAll(ctx context.Context, name string) ([]domain.Document, error) {
	docs, err := a.store.ReadAll(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %w", domain.ErrStoreUnavailable, name, err)
	}
	if docs == nil {
		docs = []domain.Document{}
	}
	return docs, nil
}

// Clear deletes every document of a collection in fixed-size chunks, each
// committed independently. A failure mid-sweep leaves the collection
// partially cleared; that state is retryable, not atomic. Returns how many
// documents were deleted before returning.
func (a *CollectionAccessor) Clear(ctx context.Context, name string) (int, error) {
	deleted := 0
	for {
		n, err := a.store.DeleteChunk(ctx, name, a.chunkSize)
		if err != nil {
			return deleted, fmt.Errorf("clearing %s: %w", name, err)
		}
		deleted += n
		if n < a.chunkSize {
			logger.Debug("Cleared %s: %d documents", name, deleted)
			return deleted, nil
		}
	}
}
