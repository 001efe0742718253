package driven

import (
	"context"

	"github.com/fabriqa-labs/fabriqa-cli/internal/core/domain"
)

// HistoryStore persists the append-only export/import audit ledger.
type HistoryStore interface {
	// Append stores a new ledger entry. Entries are never updated or
	// deleted afterwards.
	Append(ctx context.Context, entry *domain.HistoryEntry) error

	// Recent returns up to n entries ordered by timestamp descending.
	Recent(ctx context.Context, n int) ([]domain.HistoryEntry, error)
}
