package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/fabriqa-labs/fabriqa-cli/internal/core/domain"
	"github.com/fabriqa-labs/fabriqa-cli/internal/core/ports/driven"
)

// Ensure DocumentStore implements the interface.
var _ driven.DocumentStore = (*DocumentStore)(nil)

// DocumentStore is an in-memory implementation of driven.DocumentStore.
// Each WriteChunk/DeleteChunk call commits atomically under the store lock,
// mirroring the hosted store's per-chunk transaction boundary.
type DocumentStore struct {
	mu          sync.RWMutex
	collections map[string]map[string]domain.Document
}

// NewDocumentStore creates a new in-memory document store.
func NewDocumentStore() *DocumentStore {
	return &DocumentStore{
		collections: make(map[string]map[string]domain.Document),
	}
}

// ReadAll fetches every document of a collection, stamped with its key.
// Documents are returned in key order for reproducible output.
func (s *DocumentStore) ReadAll(_ context.Context, collection string) ([]domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	docs := s.collections[collection]
	result := make([]domain.Document, 0, len(docs))
	for _, id := range sortedIDs(docs) {
		result = append(result, docs[id].WithID(id))
	}
	return result, nil
}

// DeleteChunk deletes up to limit documents in one commit.
func (s *DocumentStore) DeleteChunk(_ context.Context, collection string, limit int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	docs := s.collections[collection]
	deleted := 0
	for _, id := range sortedIDs(docs) {
		if deleted >= limit {
			break
		}
		delete(docs, id)
		deleted++
	}
	return deleted, nil
}

// WriteChunk upserts the documents in one commit. With merge set, incoming
// fields are laid over any existing document; otherwise the existing
// document is replaced wholesale.
func (s *DocumentStore) WriteChunk(_ context.Context, collection string, docs []domain.Document, merge bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.collections[collection]
	if !ok {
		existing = make(map[string]domain.Document)
		s.collections[collection] = existing
	}

	for _, doc := range docs {
		id := doc.ID()
		if id == "" {
			return domain.ErrInvalidInput
		}
		fields := doc.Fields()
		if current, found := existing[id]; merge && found {
			merged := current.Clone()
			for k, v := range fields {
				merged[k] = v
			}
			existing[id] = merged
		} else {
			existing[id] = fields
		}
	}
	return nil
}

// AllocateID mints a new store-assigned document key.
func (s *DocumentStore) AllocateID() string {
	return uuid.NewString()
}

// Count reports how many documents a collection holds. Test helper.
func (s *DocumentStore) Count(collection string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.collections[collection])
}

func sortedIDs(docs map[string]domain.Document) []string {
	ids := make([]string, 0, len(docs))
	for id := range docs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
