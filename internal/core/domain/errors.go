package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrStoreUnavailable indicates the document store is unreachable.
	// Surfaced immediately; nothing is retried.
	ErrStoreUnavailable = errors.New("document store unavailable")

	// Artifact validation errors. Always local; validation never touches
	// the store and is never partially applied.

	// ErrMalformedArtifact indicates the candidate does not deserialize
	// into an object carrying a metadata field.
	ErrMalformedArtifact = errors.New("malformed backup artifact")

	// ErrMissingVersion indicates the artifact metadata carries no version.
	ErrMissingVersion = errors.New("backup artifact missing format version")

	// ErrIncompatibleVersion indicates the artifact's major format version
	// differs from the running one.
	ErrIncompatibleVersion = errors.New("incompatible backup format version")

	// ErrMissingCollections indicates the artifact carries no collections
	// mapping.
	ErrMissingCollections = errors.New("backup artifact missing collections")

	// ErrUnknownCollections indicates the artifact names collections
	// outside the registry.
	ErrUnknownCollections = errors.New("backup artifact contains unknown collections")

	// ErrWriteFailure indicates a batch commit was rejected by the store.
	// The restore aborts at its current position; committed chunks stand.
	ErrWriteFailure = errors.New("batch write failed")

	// ErrEmptyConversion indicates a foreign export yielded no usable rows.
	ErrEmptyConversion = errors.New("foreign export contained no convertible rows")
)
