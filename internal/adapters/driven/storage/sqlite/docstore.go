package sqlite

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/fabriqa-labs/fabriqa-cli/internal/core/domain"
	"github.com/fabriqa-labs/fabriqa-cli/internal/core/ports/driven"
)

// documentStore implements driven.DocumentStore.
type documentStore struct {
	store *Store
}

var _ driven.DocumentStore = (*documentStore)(nil)

// ReadAll fetches every document of a collection, stamped with its key.
func (s *documentStore) ReadAll(ctx context.Context, collection string) ([]domain.Document, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT doc_id, fields FROM documents WHERE collection = ? ORDER BY doc_id
	`, collection)
	if err != nil {
		return nil, fmt.Errorf("querying %s: %w", collection, err)
	}
	defer rows.Close()

	docs := []domain.Document{}
	for rows.Next() {
		var docID, fieldsJSON string
		if err := rows.Scan(&docID, &fieldsJSON); err != nil {
			return nil, fmt.Errorf("scanning document: %w", err)
		}

		var doc domain.Document
		if err := json.Unmarshal([]byte(fieldsJSON), &doc); err != nil {
			return nil, fmt.Errorf("decoding document %s: %w", docID, err)
		}
		if doc == nil {
			doc = domain.Document{}
		}
		doc[domain.DocIDField] = docID
		docs = append(docs, doc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating %s: %w", collection, err)
	}
	return docs, nil
}

// DeleteChunk deletes up to limit documents in one transaction.
func (s *documentStore) DeleteChunk(ctx context.Context, collection string, limit int) (int, error) {
	result, err := s.store.db.ExecContext(ctx, `
		DELETE FROM documents
		WHERE collection = ? AND doc_id IN (
			SELECT doc_id FROM documents WHERE collection = ? ORDER BY doc_id LIMIT ?
		)
	`, collection, collection, limit)
	if err != nil {
		return 0, fmt.Errorf("deleting from %s: %w", collection, err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("counting deleted rows: %w", err)
	}
	return int(n), nil
}

// WriteChunk upserts the documents in one transaction. With merge set,
// incoming fields are laid over the stored document's fields; otherwise the
// stored fields are replaced wholesale.
func (s *documentStore) WriteChunk(ctx context.Context, collection string, docs []domain.Document, merge bool) error {
	tx, err := s.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning write transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	for _, doc := range docs {
		id := doc.ID()
		if id == "" {
			return domain.ErrInvalidInput
		}

		fields := doc.Fields()
		if merge {
			var existingJSON string
			err := tx.QueryRowContext(ctx,
				"SELECT fields FROM documents WHERE collection = ? AND doc_id = ?",
				collection, id).Scan(&existingJSON)
			if err == nil {
				var existing domain.Document
				if err := json.Unmarshal([]byte(existingJSON), &existing); err == nil && existing != nil {
					for k, v := range fields {
						existing[k] = v
					}
					fields = existing
				}
			}
		}

		fieldsJSON, err := json.Marshal(fields)
		if err != nil {
			return fmt.Errorf("encoding document %s: %w", id, err)
		}

		if _, err := tx.ExecContext(ctx, `
			INSERT INTO documents (collection, doc_id, fields)
			VALUES (?, ?, ?)
			ON CONFLICT(collection, doc_id) DO UPDATE SET
				fields = excluded.fields,
				updated_at = CURRENT_TIMESTAMP
		`, collection, id, string(fieldsJSON)); err != nil {
			return fmt.Errorf("upserting document %s: %w", id, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing write chunk: %w", err)
	}
	return nil
}

// AllocateID mints a new store-assigned document key.
func (s *documentStore) AllocateID() string {
	return uuid.NewString()
}
