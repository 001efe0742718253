package sqlite

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fabriqa-labs/fabriqa-cli/internal/core/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestNewStore_RunsMigrations(t *testing.T) {
	store := newTestStore(t)

	// Both tables exist and are queryable.
	docs, err := store.DocumentStore().ReadAll(context.Background(), "products")
	require.NoError(t, err)
	assert.Empty(t, docs)

	entries, err := store.HistoryStore().Recent(context.Background(), 5)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestNewStore_ReopenIsIdempotent(t *testing.T) {
	dir := t.TempDir()

	first, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := NewStore(dir)
	require.NoError(t, err)
	assert.NoError(t, second.Close())
}

func TestDocumentStore_WriteReadRoundTrip(t *testing.T) {
	docs := newTestStore(t).DocumentStore()
	ctx := context.Background()

	in := []domain.Document{
		{domain.DocIDField: "p-1", "name": "widget", "qty": float64(5)},
		{domain.DocIDField: "p-2", "name": "gadget"},
	}
	require.NoError(t, docs.WriteChunk(ctx, "products", in, false))

	out, err := docs.ReadAll(ctx, "products")

	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "p-1", out[0].ID())
	assert.Equal(t, "widget", out[0]["name"])
	assert.Equal(t, float64(5), out[0]["qty"])
}

func TestDocumentStore_WriteChunk_MergeSemantics(t *testing.T) {
	docs := newTestStore(t).DocumentStore()
	ctx := context.Background()

	require.NoError(t, docs.WriteChunk(ctx, "products",
		[]domain.Document{{domain.DocIDField: "p-1", "name": "widget", "qty": float64(5)}}, false))
	require.NoError(t, docs.WriteChunk(ctx, "products",
		[]domain.Document{{domain.DocIDField: "p-1", "qty": float64(9)}}, true))

	out, err := docs.ReadAll(ctx, "products")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "widget", out[0]["name"])
	assert.Equal(t, float64(9), out[0]["qty"])
}

func TestDocumentStore_WriteChunk_OverwriteSemantics(t *testing.T) {
	docs := newTestStore(t).DocumentStore()
	ctx := context.Background()

	require.NoError(t, docs.WriteChunk(ctx, "products",
		[]domain.Document{{domain.DocIDField: "p-1", "name": "widget"}}, false))
	require.NoError(t, docs.WriteChunk(ctx, "products",
		[]domain.Document{{domain.DocIDField: "p-1", "qty": float64(9)}}, false))

	out, err := docs.ReadAll(ctx, "products")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.NotContains(t, out[0], "name")
}

func TestDocumentStore_DeleteChunk(t *testing.T) {
	docs := newTestStore(t).DocumentStore()
	ctx := context.Background()

	var in []domain.Document
	for i := 0; i < 5; i++ {
		in = append(in, domain.Document{domain.DocIDField: fmt.Sprintf("p-%d", i)})
	}
	require.NoError(t, docs.WriteChunk(ctx, "products", in, false))

	n, err := docs.DeleteChunk(ctx, "products", 2)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = docs.DeleteChunk(ctx, "products", 10)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	out, err := docs.ReadAll(ctx, "products")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestDocumentStore_CollectionsAreIsolated(t *testing.T) {
	docs := newTestStore(t).DocumentStore()
	ctx := context.Background()

	require.NoError(t, docs.WriteChunk(ctx, "products",
		[]domain.Document{{domain.DocIDField: "x-1"}}, false))
	require.NoError(t, docs.WriteChunk(ctx, "employees",
		[]domain.Document{{domain.DocIDField: "x-1"}}, false))

	n, err := docs.DeleteChunk(ctx, "products", 10)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	out, err := docs.ReadAll(ctx, "employees")
	require.NoError(t, err)
	assert.Len(t, out, 1)
}

func TestHistoryStore_AppendAndRecent(t *testing.T) {
	history := newTestStore(t).HistoryStore()
	ctx := context.Background()
	base := time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		require.NoError(t, history.Append(ctx, &domain.HistoryEntry{
			Action:        domain.ActionExport,
			ArtifactType:  domain.ExportFull,
			DocumentCount: i,
			Collections:   []string{"products"},
			Actor:         "tester",
			FileName:      fmt.Sprintf("backup_%d.json", i),
			CreatedAt:     base.Add(time.Duration(i) * time.Minute),
		}))
	}

	entries, err := history.Recent(ctx, 2)

	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, 2, entries[0].DocumentCount)
	assert.Equal(t, 1, entries[1].DocumentCount)
	assert.Equal(t, []string{"products"}, entries[0].Collections)
	assert.Equal(t, domain.ActionExport, entries[0].Action)
	assert.NotEmpty(t, entries[0].ID)
}

func TestHistoryStore_RoundTripsImportFields(t *testing.T) {
	history := newTestStore(t).HistoryStore()
	ctx := context.Background()

	require.NoError(t, history.Append(ctx, &domain.HistoryEntry{
		Action:        domain.ActionImport,
		ArtifactType:  domain.ExportSettings,
		Mode:          domain.RestoreFullReset,
		DocumentCount: 12,
		Actor:         "tester",
		CreatedAt:     time.Now(),
	}))

	entries, err := history.Recent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, domain.ActionImport, entries[0].Action)
	assert.Equal(t, domain.RestoreFullReset, entries[0].Mode)
	assert.Equal(t, domain.ExportSettings, entries[0].ArtifactType)
}
