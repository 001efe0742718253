package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/fabriqa-labs/fabriqa-cli/internal/core/domain"
	"github.com/fabriqa-labs/fabriqa-cli/internal/core/ports/driving"
)

// Ensure UsageEstimator implements the interface.
var _ driving.UsageService = (*UsageEstimator)(nil)

// UsageEstimator samples every registry collection to report document
// counts and an approximate serialized payload size. Read-only; it writes
// nothing and records no history entry.
type UsageEstimator struct {
	accessor *CollectionAccessor
}

// NewUsageEstimator creates a usage estimator over the given accessor.
func NewUsageEstimator(accessor *CollectionAccessor) *UsageEstimator {
	return &UsageEstimator{accessor: accessor}
}

// Estimate scans the full Collection Registry.
func (u *UsageEstimator) Estimate(ctx context.Context) (*domain.UsageReport, error) {
	report := &domain.UsageReport{
		GeneratedAt:    time.Now(),
		DocumentCounts: make(map[string]int, len(domain.CollectionRegistry)),
	}

	for _, name := range domain.CollectionRegistry {
		docs, err := u.accessor.ReadAll(ctx, name)
		if err != nil {
			return nil, err
		}
		report.CollectionsScanned++
		report.DocumentCounts[name] = len(docs)
		report.TotalDocuments += len(docs)
		for _, doc := range docs {
			report.EstimatedBytes += approxSize(doc)
		}
	}

	return report, nil
}

// approxSize is the serialized byte size of a document, falling back to the
// raw string rendering when a field refuses to marshal.
func approxSize(doc domain.Document) int64 {
	b, err := json.Marshal(doc)
	if err != nil {
		return int64(len(fmt.Sprint(doc)))
	}
	return int64(len(b))
}
