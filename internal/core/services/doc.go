// Package services implements the driving port interfaces: the collection
// accessor and batch writer over the document store primitives, artifact
// validation, the export and restore orchestrators, the usage estimator and
// the history ledger.
//
// Services contain the core business logic and orchestrate calls to driven
// ports (adapters). All operations are sequential request/response calls
// against the store; nothing runs in parallel across collections or chunks,
// so collection i's writes fully settle before collection i+1 starts.
//
// Services are pure Go with no CGO or external dependencies.
package services
