package adapter

import "github.com/budgetbook/backend/internal/domain/entity"

// PersistJob is one pending durable write of a single slice.
type PersistJob struct {
	Slice  entity.Slice
	Value  any
	Notify bool
}

// PersistQueue decouples the synchronous reduction from durable-storage I/O.
// Enqueue must never block: a slow or failing backend must not stall or fail
// an in-memory transition.
type PersistQueue interface {
	Enqueue(job PersistJob)
}
