package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fabriqa-labs/fabriqa-cli/internal/adapters/driven/storage/memory"
	"github.com/fabriqa-labs/fabriqa-cli/internal/core/domain"
	"github.com/fabriqa-labs/fabriqa-cli/internal/core/ports/driven"
)

// recordingStore wraps a DocumentStore to count chunk commits and inject
// failures at chosen positions.
type recordingStore struct {
	driven.DocumentStore

	writeChunks  int
	deleteChunks int

	failWriteAt int // fail the Nth WriteChunk call (1-based); 0 = never
	failDeletes bool
	failReads   bool
}

func (s *recordingStore) ReadAll(ctx context.Context, collection string) ([]domain.Document, error) {
	if s.failReads {
		return nil, errors.New("store unreachable")
	}
	return s.DocumentStore.ReadAll(ctx, collection)
}

func (s *recordingStore) DeleteChunk(ctx context.Context, collection string, limit int) (int, error) {
	if s.failDeletes {
		return 0, errors.New("delete rejected")
	}
	s.deleteChunks++
	return s.DocumentStore.DeleteChunk(ctx, collection, limit)
}

func (s *recordingStore) WriteChunk(ctx context.Context, collection string, docs []domain.Document, merge bool) error {
	s.writeChunks++
	if s.failWriteAt != 0 && s.writeChunks >= s.failWriteAt {
		return errors.New("write rejected")
	}
	return s.DocumentStore.WriteChunk(ctx, collection, docs, merge)
}

// memArtifactStore is an in-memory driven.ArtifactStore.
type memArtifactStore struct {
	writes    []*domain.BackupArtifact
	failWrite bool
}

var _ driven.ArtifactStore = (*memArtifactStore)(nil)

func (m *memArtifactStore) Write(_ context.Context, artifact *domain.BackupArtifact) (string, error) {
	if m.failWrite {
		return "", errors.New("disk full")
	}
	m.writes = append(m.writes, artifact)
	return fmt.Sprintf("backup_test_%d.json", len(m.writes)), nil
}

func (m *memArtifactStore) Read(_ context.Context, _ string) ([]byte, error) {
	return nil, errors.New("not supported")
}

// failingHistoryStore always rejects appends.
type failingHistoryStore struct{}

var _ driven.HistoryStore = (*failingHistoryStore)(nil)

func (failingHistoryStore) Append(context.Context, *domain.HistoryEntry) error {
	return errors.New("ledger offline")
}

func (failingHistoryStore) Recent(context.Context, int) ([]domain.HistoryEntry, error) {
	return nil, errors.New("ledger offline")
}

// seedDocs writes n documents with predictable keys and a marker field.
func seedDocs(t *testing.T, store *memory.DocumentStore, collection string, n int) {
	t.Helper()
	docs := make([]domain.Document, 0, n)
	for i := 0; i < n; i++ {
		docs = append(docs, domain.Document{
			domain.DocIDField: fmt.Sprintf("%s-%04d", collection, i),
			"seq":             float64(i),
		})
	}
	require.NoError(t, store.WriteChunk(context.Background(), collection, docs, false))
}
