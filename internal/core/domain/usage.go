package domain

import "time"

// UsageReport summarises how much data the registry collections hold.
// Produced by sampling every known collection; read-only, never logged to
// the history ledger.
type UsageReport struct {
	// GeneratedAt is when the scan ran.
	GeneratedAt time.Time

	// CollectionsScanned is how many registry collections were read.
	CollectionsScanned int

	// TotalDocuments is the sum of all per-collection counts.
	TotalDocuments int

	// EstimatedBytes approximates the serialized payload size.
	EstimatedBytes int64

	// DocumentCounts maps each registry collection to its document count.
	DocumentCounts map[string]int
}
