// Package sqlite provides SQLite-backed implementations of the document
// store and history ledger ports, using modernc.org/sqlite (pure Go, no
// CGO) with embedded SQL migrations.
//
// Collections are rows in a single schemaless table keyed by
// (collection, doc_id) with the field map stored as JSON, matching the
// hosted store's untyped document model.
package sqlite
