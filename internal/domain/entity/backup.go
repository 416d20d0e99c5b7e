// Package entity defines the core business entities for the domain layer.
package entity

import "time"

// SnapshotVersion is the only backup format version this system reads or
// writes. Consumers must reject snapshots carrying any other version.
const SnapshotVersion = 1.0

// Snapshot is a versioned, self-contained copy of the whole FinanceState.
// It is the sole externally durable artifact with a compatibility contract.
type Snapshot struct {
	Version float64      `json:"version"`
	Date    time.Time    `json:"date"`
	Data    FinanceState `json:"data"`
}

// NewSnapshot wraps the given state in a current-version snapshot.
func NewSnapshot(state FinanceState) Snapshot {
	return Snapshot{
		Version: SnapshotVersion,
		Date:    time.Now().UTC(),
		Data:    state,
	}
}
