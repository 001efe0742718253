package services

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/fabriqa-labs/fabriqa-cli/internal/core/domain"
)

// rawArtifact is the loose decoding target used to tell structural problems
// apart before committing to the typed artifact shape.
type rawArtifact struct {
	Metadata    json.RawMessage `json:"metadata"`
	Collections json.RawMessage `json:"collections"`
}

// ValidateArtifact structurally and semantically checks a candidate backup
// artifact. It is pure: no store access, no side effects. On success the
// decoded artifact is returned; on failure the error wraps one of the
// validation sentinels in domain.
//
// Checks, in order: the candidate deserializes into an object with a
// metadata field; the metadata carries a version; the version's major
// component matches the running format's; collections is a mapping; every
// collection name belongs to the Collection Registry.
func ValidateArtifact(raw []byte) (*domain.BackupArtifact, error) {
	var loose rawArtifact
	if err := json.Unmarshal(raw, &loose); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrMalformedArtifact, err)
	}
	if len(loose.Metadata) == 0 || string(loose.Metadata) == "null" {
		return nil, fmt.Errorf("%w: no metadata field", domain.ErrMalformedArtifact)
	}

	var meta domain.ArtifactMetadata
	if err := json.Unmarshal(loose.Metadata, &meta); err != nil {
		return nil, fmt.Errorf("%w: decoding metadata: %w", domain.ErrMalformedArtifact, err)
	}
	if meta.Version == "" {
		return nil, domain.ErrMissingVersion
	}

	if domain.MajorVersion(meta.Version) != domain.MajorVersion(domain.FormatVersion) {
		return nil, fmt.Errorf("%w: artifact version %s, running version %s",
			domain.ErrIncompatibleVersion, meta.Version, domain.FormatVersion)
	}

	if len(loose.Collections) == 0 || string(loose.Collections) == "null" ||
		loose.Collections[0] != '{' {
		return nil, fmt.Errorf("%w: collections is not a mapping", domain.ErrMissingCollections)
	}

	var collections map[string][]domain.Document
	if err := json.Unmarshal(loose.Collections, &collections); err != nil {
		return nil, fmt.Errorf("%w: decoding collections: %w", domain.ErrMalformedArtifact, err)
	}

	var unknown []string
	for name := range collections {
		if !domain.IsKnownCollection(name) {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownCollections, strings.Join(unknown, ", "))
	}

	return &domain.BackupArtifact{Metadata: meta, Collections: collections}, nil
}
