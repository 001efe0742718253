package services

import (
	"context"
	"time"

	"github.com/fabriqa-labs/fabriqa-cli/internal/core/domain"
	"github.com/fabriqa-labs/fabriqa-cli/internal/core/ports/driven"
	"github.com/fabriqa-labs/fabriqa-cli/internal/core/ports/driving"
	"github.com/fabriqa-labs/fabriqa-cli/internal/logger"
)

// Ensure HistoryLedger implements the interface.
var _ driving.HistoryService = (*HistoryLedger)(nil)

// HistoryLedger appends immutable audit records of every export and import.
// Appends are best-effort: a ledger failure must never fail the operation
// that produced the entry.
type HistoryLedger struct {
	store driven.HistoryStore
}

// NewHistoryLedger creates a ledger over the given store.
func NewHistoryLedger(store driven.HistoryStore) *HistoryLedger {
	return &HistoryLedger{store: store}
}

// Record appends an entry, stamping the timestamp if the caller left it
// zero. Failures are logged and swallowed.
func (l *HistoryLedger) Record(ctx context.Context, entry *domain.HistoryEntry) {
	if entry == nil {
		return
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	if err := l.store.Append(ctx, entry); err != nil {
		logger.Warn("History append failed (action=%s, actor=%s): %v", entry.Action, entry.Actor, err)
	}
}

// Recent returns up to n most-recent entries, newest first.
func (l *HistoryLedger) Recent(ctx context.Context, n int) ([]domain.HistoryEntry, error) {
	return l.store.Recent(ctx, n)
}
