// Package domain defines the core business entities for the fabriqa
// backup/restore engine.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Document: An untyped field map stored in a named collection
//   - BackupArtifact: The portable backup unit (metadata + collections)
//   - HistoryEntry: An immutable audit record of an export/import
//   - The Collection/Settings registries and the artifact format version
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
