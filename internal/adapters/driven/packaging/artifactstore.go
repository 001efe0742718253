package packaging

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fabriqa-labs/fabriqa-cli/internal/core/domain"
	"github.com/fabriqa-labs/fabriqa-cli/internal/core/ports/driven"
)

// timestampLayout gives file names a sortable timestamp component.
const timestampLayout = "20060102_150405"

// Ensure FileStore implements the interface.
var _ driven.ArtifactStore = (*FileStore)(nil)

// FileStore packages backup artifacts as JSON files under a backup
// directory, named backup_<type>[_<period>]_<timestamp>.json.
type FileStore struct {
	dir string
	now func() time.Time
}

// NewFileStore creates a file-based artifact store.
// If dir is empty, defaults to ~/.fabriqa/backups.
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dir = filepath.Join(home, ".fabriqa", "backups")
	}

	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("creating backup directory: %w", err)
	}

	return &FileStore{dir: dir, now: time.Now}, nil
}

// Dir returns the backup directory.
func (s *FileStore) Dir() string {
	return s.dir
}

// Write serializes the artifact and returns the file name it was written
// under.
func (s *FileStore) Write(_ context.Context, artifact *domain.BackupArtifact) (string, error) {
	if artifact == nil {
		return "", domain.ErrInvalidInput
	}

	data, err := json.MarshalIndent(artifact, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding artifact: %w", err)
	}

	name := fileName(artifact.Metadata, s.now().UTC())
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0600); err != nil {
		return "", fmt.Errorf("writing %s: %w", name, err)
	}
	return name, nil
}

// Read returns the raw bytes of an artifact file. A bare file name is
// resolved against the backup directory; paths are used as given.
func (s *FileStore) Read(_ context.Context, path string) ([]byte, error) {
	if filepath.Base(path) == path {
		path = filepath.Join(s.dir, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading artifact: %w", err)
	}
	return data, nil
}

// fileName builds backup_<type>[_<period>]_<timestamp>.json.
func fileName(meta domain.ArtifactMetadata, ts time.Time) string {
	name := "backup_" + string(meta.Type)
	if meta.Type == domain.ExportWindowed && meta.Month != "" {
		name += "_" + meta.Month
	}
	return name + "_" + ts.Format(timestampLayout) + ".json"
}
