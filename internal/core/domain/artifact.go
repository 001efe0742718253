package domain

import "time"

// ExportType identifies what slice of the store an artifact carries.
type ExportType string

const (
	// ExportFull covers the entire Collection Registry.
	ExportFull ExportType = "full"

	// ExportWindowed covers the time-bearing collections filtered to one month.
	ExportWindowed ExportType = "windowed"

	// ExportSettings covers only the Settings Registry collections.
	ExportSettings ExportType = "settings"
)

// IsValid reports whether the export type is one of the known values.
func (t ExportType) IsValid() bool {
	switch t {
	case ExportFull, ExportWindowed, ExportSettings:
		return true
	default:
		return false
	}
}

// RestoreMode selects the conflict-resolution policy applied when replaying
// an artifact into the store.
type RestoreMode string

const (
	// RestoreMerge upserts documents by key and never deletes.
	RestoreMerge RestoreMode = "merge"

	// RestoreReplace deletes each artifact collection's existing documents
	// before inserting the artifact's.
	RestoreReplace RestoreMode = "replace"

	// RestoreFullReset is RestoreReplace plus emptying every registry
	// collection the artifact does not mention.
	RestoreFullReset RestoreMode = "full_reset"
)

// IsValid reports whether the restore mode is one of the known values.
func (m RestoreMode) IsValid() bool {
	switch m {
	case RestoreMerge, RestoreReplace, RestoreFullReset:
		return true
	default:
		return false
	}
}

// Destructive reports whether the mode deletes existing documents.
func (m RestoreMode) Destructive() bool {
	return m == RestoreReplace || m == RestoreFullReset
}

// ArtifactMetadata describes a backup artifact's provenance and contents.
type ArtifactMetadata struct {
	// Version is the artifact format version, semantic MAJOR.MINOR.PATCH.
	Version string `json:"version"`

	// CreatedAt is the export time in RFC 3339.
	CreatedAt string `json:"createdAt"`

	// Type says which slice of the store the artifact carries.
	Type ExportType `json:"type"`

	// Month is the "YYYY-MM" window key, present only for windowed exports.
	Month string `json:"month,omitempty"`

	// CollectionsIncluded lists the collections present, in artifact order.
	CollectionsIncluded []string `json:"collectionsIncluded"`

	// DocumentCounts maps each included collection to its document count.
	DocumentCounts map[string]int `json:"documentCounts"`

	// TotalDocuments is the sum over DocumentCounts.
	TotalDocuments int `json:"totalDocuments"`

	// CreatedBy identifies the operator (or automated actor) that exported.
	CreatedBy string `json:"createdBy"`
}

// BackupArtifact is the portable unit of transport: metadata plus the raw
// collection contents.
type BackupArtifact struct {
	Metadata    ArtifactMetadata      `json:"metadata"`
	Collections map[string][]Document `json:"collections"`
}

// NewArtifact assembles an artifact from already-read collections, computing
// the count fields from what was actually collected so the metadata can never
// claim more than the payload holds. Order of included names follows the
// given name order.
func NewArtifact(exportType ExportType, month, actor string, names []string, collections map[string][]Document) *BackupArtifact {
	counts := make(map[string]int, len(names))
	total := 0
	included := make([]string, 0, len(names))
	for _, name := range names {
		docs := collections[name]
		included = append(included, name)
		counts[name] = len(docs)
		total += len(docs)
	}
	return &BackupArtifact{
		Metadata: ArtifactMetadata{
			Version:             FormatVersion,
			CreatedAt:           time.Now().UTC().Format(time.RFC3339),
			Type:                exportType,
			Month:               month,
			CollectionsIncluded: included,
			DocumentCounts:      counts,
			TotalDocuments:      total,
			CreatedBy:           actor,
		},
		Collections: collections,
	}
}
