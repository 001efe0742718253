// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - DocumentStore: The four collection primitives of the hosted store
//     (read-all, chunked delete, chunked write, key allocation)
//   - HistoryStore: Append-only audit ledger persistence
//   - ArtifactStore: Backup artifact packaging (file write/read)
//   - ConfigStore: Application configuration
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
