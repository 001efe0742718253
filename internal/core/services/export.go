package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fabriqa-labs/fabriqa-cli/internal/core/domain"
	"github.com/fabriqa-labs/fabriqa-cli/internal/core/ports/driven"
	"github.com/fabriqa-labs/fabriqa-cli/internal/core/ports/driving"
	"github.com/fabriqa-labs/fabriqa-cli/internal/logger"
)

// Ensure Exporter implements the interface.
var _ driving.ExportService = (*Exporter)(nil)

// Exporter assembles backup artifacts from the document store.
type Exporter struct {
	accessor  *CollectionAccessor
	artifacts driven.ArtifactStore
	history   driving.HistoryService
}

// NewExporter creates an export orchestrator.
func NewExporter(accessor *CollectionAccessor, artifacts driven.ArtifactStore, history driving.HistoryService) *Exporter {
	return &Exporter{accessor: accessor, artifacts: artifacts, history: history}
}

// ExportFull snapshots the entire Collection Registry.
func (e *Exporter) ExportFull(ctx context.Context, actor string) (*driving.ExportResult, error) {
	return e.export(ctx, domain.ExportFull, "", actor, domain.CollectionRegistry, nil)
}

// ExportWindowed snapshots the time-bearing collections restricted to the
// given "YYYY-MM" month. A document is kept when its first present date
// field (date, then period, then createdAt) is a string prefixed by the
// month key. Documents carrying none of those fields are kept; the filter
// fails open.
func (e *Exporter) ExportWindowed(ctx context.Context, actor, month string) (*driving.ExportResult, error) {
	if _, err := time.Parse("2006-01", month); err != nil {
		return nil, fmt.Errorf("%w: month %q is not YYYY-MM", domain.ErrInvalidInput, month)
	}
	return e.export(ctx, domain.ExportWindowed, month, actor, domain.WindowedRegistry, func(doc domain.Document) bool {
		return matchesMonth(doc, month)
	})
}

// ExportSettings snapshots only the Settings Registry collections,
// unfiltered.
func (e *Exporter) ExportSettings(ctx context.Context, actor string) (*driving.ExportResult, error) {
	return e.export(ctx, domain.ExportSettings, "", actor, domain.SettingsRegistry, nil)
}

// export is the shared template: read each target collection, filter,
// assemble metadata from what was actually collected, package, log history.
func (e *Exporter) export(
	ctx context.Context,
	exportType domain.ExportType,
	month, actor string,
	targets []string,
	keep func(domain.Document) bool,
) (*driving.ExportResult, error) {
	collections := make(map[string][]domain.Document, len(targets))

	for _, name := range targets {
		docs, err := e.accessor.ReadAll(ctx, name)
		if err != nil {
			return nil, err
		}
		if keep != nil {
			kept := make([]domain.Document, 0, len(docs))
			for _, doc := range docs {
				if keep(doc) {
					kept = append(kept, doc)
				}
			}
			docs = kept
		}
		collections[name] = docs
	}

	artifact := domain.NewArtifact(exportType, month, actor, targets, collections)

	fileName, err := e.artifacts.Write(ctx, artifact)
	if err != nil {
		return nil, fmt.Errorf("packaging artifact: %w", err)
	}
	logger.Info("Exported %d documents to %s", artifact.Metadata.TotalDocuments, fileName)

	e.history.Record(ctx, &domain.HistoryEntry{
		Action:        domain.ActionExport,
		ArtifactType:  exportType,
		DocumentCount: artifact.Metadata.TotalDocuments,
		Collections:   artifact.Metadata.CollectionsIncluded,
		Actor:         actor,
		FileName:      fileName,
		CreatedAt:     time.Now(),
	})

	return &driving.ExportResult{Artifact: artifact, FileName: fileName}, nil
}

// matchesMonth decides a document's window membership from the first
// date-like string field present.
func matchesMonth(doc domain.Document, month string) bool {
	for _, field := range domain.DateFieldPriority {
		if v, ok := doc[field].(string); ok {
			return strings.HasPrefix(v, month)
		}
	}
	// No recognizable date field: keep the document.
	return true
}
