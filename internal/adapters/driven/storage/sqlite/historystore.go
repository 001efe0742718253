package sqlite

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fabriqa-labs/fabriqa-cli/internal/core/domain"
	"github.com/fabriqa-labs/fabriqa-cli/internal/core/ports/driven"
)

// historyStore implements driven.HistoryStore.
type historyStore struct {
	store *Store
}

var _ driven.HistoryStore = (*historyStore)(nil)

// Append stores a new ledger entry. Entries are insert-only; nothing in
// this subsystem updates or deletes them.
func (s *historyStore) Append(ctx context.Context, entry *domain.HistoryEntry) error {
	if entry == nil {
		return domain.ErrInvalidInput
	}

	id := entry.ID
	if id == "" {
		id = uuid.NewString()
	}

	collectionsJSON, err := json.Marshal(entry.Collections)
	if err != nil {
		return fmt.Errorf("encoding collections: %w", err)
	}

	_, err = s.store.db.ExecContext(ctx, `
		INSERT INTO history_entries
			(id, action, artifact_type, restore_mode, document_count, collections, actor, file_name, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, id, string(entry.Action), string(entry.ArtifactType), string(entry.Mode),
		entry.DocumentCount, string(collectionsJSON), entry.Actor, entry.FileName,
		entry.CreatedAt.UTC().Format(time.RFC3339Nano))

	if err != nil {
		return fmt.Errorf("appending history entry: %w", err)
	}
	return nil
}

// Recent returns up to n entries ordered by timestamp descending.
func (s *historyStore) Recent(ctx context.Context, n int) ([]domain.HistoryEntry, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, action, artifact_type, restore_mode, document_count, collections, actor, file_name, created_at
		FROM history_entries
		ORDER BY created_at DESC, id
		LIMIT ?
	`, n)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	var entries []domain.HistoryEntry
	for rows.Next() {
		var entry domain.HistoryEntry
		var action, artifactType, mode, collectionsJSON, createdAt string

		if err := rows.Scan(&entry.ID, &action, &artifactType, &mode,
			&entry.DocumentCount, &collectionsJSON, &entry.Actor,
			&entry.FileName, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning history entry: %w", err)
		}

		entry.Action = domain.HistoryAction(action)
		entry.ArtifactType = domain.ExportType(artifactType)
		entry.Mode = domain.RestoreMode(mode)
		if err := json.Unmarshal([]byte(collectionsJSON), &entry.Collections); err != nil {
			return nil, fmt.Errorf("decoding collections for %s: %w", entry.ID, err)
		}
		if ts, err := time.Parse(time.RFC3339Nano, createdAt); err == nil {
			entry.CreatedAt = ts
		}

		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating history: %w", err)
	}
	return entries, nil
}
