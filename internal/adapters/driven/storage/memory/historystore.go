package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/fabriqa-labs/fabriqa-cli/internal/core/domain"
	"github.com/fabriqa-labs/fabriqa-cli/internal/core/ports/driven"
)

// Ensure HistoryStore implements the interface.
var _ driven.HistoryStore = (*HistoryStore)(nil)

// HistoryStore is an in-memory implementation of driven.HistoryStore.
type HistoryStore struct {
	mu      sync.RWMutex
	entries []domain.HistoryEntry
}

// NewHistoryStore creates a new in-memory history store.
func NewHistoryStore() *HistoryStore {
	return &HistoryStore{}
}

// Append stores a copy of the entry, assigning an ID if it has none.
func (s *HistoryStore) Append(_ context.Context, entry *domain.HistoryEntry) error {
	if entry == nil {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *entry
	if stored.ID == "" {
		stored.ID = uuid.NewString()
	}
	stored.Collections = append([]string(nil), entry.Collections...)
	s.entries = append(s.entries, stored)
	return nil
}

// Recent returns up to n entries, newest first.
func (s *HistoryStore) Recent(_ context.Context, n int) ([]domain.HistoryEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := append([]domain.HistoryEntry(nil), s.entries...)
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	if n > 0 && len(result) > n {
		result = result[:n]
	}
	return result, nil
}
