package driven

import (
	"context"

	"github.com/fabriqa-labs/fabriqa-cli/internal/core/domain"
)

// DocumentStore exposes the four primitives the engine needs from the
// hosted document store. Any store offering these, plus a per-transaction
// chunk-size ceiling, satisfies the contract.
//
// The store offers at most per-chunk atomicity: a WriteChunk or DeleteChunk
// call either fully commits or fully fails, but nothing larger is atomic.
type DocumentStore interface {
	// ReadAll fetches every document of a collection, each stamped with its
	// store key under domain.DocIDField. Returns an empty slice, never nil,
	// for an empty collection.
	ReadAll(ctx context.Context, collection string) ([]domain.Document, error)

	// DeleteChunk deletes up to limit documents from a collection in one
	// atomic transaction and reports how many were deleted. A return of 0
	// means the collection is empty.
	DeleteChunk(ctx context.Context, collection string, limit int) (int, error)

	// WriteChunk upserts the given documents in one atomic transaction.
	// Every document must already carry its target key. With merge set,
	// fields are merged into any existing document; otherwise the existing
	// document is fully overwritten.
	WriteChunk(ctx context.Context, collection string, docs []domain.Document, merge bool) error

	// AllocateID mints a new store-assigned document key.
	AllocateID() string
}
