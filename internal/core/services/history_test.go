package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fabriqa-labs/fabriqa-cli/internal/adapters/driven/storage/memory"
	"github.com/fabriqa-labs/fabriqa-cli/internal/core/domain"
)

func TestHistoryLedger_RecordAndRecent(t *testing.T) {
	ledger := NewHistoryLedger(memory.NewHistoryStore())
	base := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		ledger.Record(context.Background(), &domain.HistoryEntry{
			Action:        domain.ActionExport,
			ArtifactType:  domain.ExportFull,
			DocumentCount: i,
			Actor:         "tester",
			CreatedAt:     base.Add(time.Duration(i) * time.Minute),
		})
	}

	entries, err := ledger.Recent(context.Background(), 2)

	require.NoError(t, err)
	require.Len(t, entries, 2)
	// Newest first.
	assert.Equal(t, 2, entries[0].DocumentCount)
	assert.Equal(t, 1, entries[1].DocumentCount)
}

func TestHistoryLedger_Record_StampsTimestamp(t *testing.T) {
	store := memory.NewHistoryStore()
	ledger := NewHistoryLedger(store)

	ledger.Record(context.Background(), &domain.HistoryEntry{Action: domain.ActionImport})

	entries, err := store.Recent(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.False(t, entries[0].CreatedAt.IsZero())
	assert.NotEmpty(t, entries[0].ID)
}

func TestHistoryLedger_Record_SwallowsStoreFailure(t *testing.T) {
	ledger := NewHistoryLedger(failingHistoryStore{})

	// Must not panic or propagate.
	ledger.Record(context.Background(), &domain.HistoryEntry{Action: domain.ActionExport})
}

func TestHistoryLedger_Record_NilEntry(t *testing.T) {
	ledger := NewHistoryLedger(memory.NewHistoryStore())

	ledger.Record(context.Background(), nil)

	entries, err := ledger.Recent(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
