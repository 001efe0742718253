package driven

import (
	"context"

	"github.com/fabriqa-labs/fabriqa-cli/internal/core/domain"
)

// ArtifactStore packages backup artifacts for transport and reads them back.
// The file implementation writes JSON under the configured backup directory
// using the backup_<type>[_<period>]_<timestamp>.json naming convention.
type ArtifactStore interface {
	// Write serializes the artifact and returns the file name it was
	// packaged under.
	Write(ctx context.Context, artifact *domain.BackupArtifact) (string, error)

	// Read returns the raw bytes of a previously packaged artifact.
	Read(ctx context.Context, path string) ([]byte, error)
}
