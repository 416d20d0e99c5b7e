package store

import (
	"context"
	"log/slog"
	"sync"

	"github.com/budgetbook/backend/internal/application/adapter"
	"github.com/budgetbook/backend/internal/domain/action"
	"github.com/budgetbook/backend/internal/domain/entity"
)

// Store owns the process-wide FinanceState. It is the explicit context
// object handed to the composition root: the reducer stays a free pure
// function and persistence is an injected collaborator, with no ambient
// singletons.
//
// One reduction runs to completion before the next is admitted. Readers get
// consistent snapshots at any time because reductions swap in a wholly new
// state value instead of mutating in place.
type Store struct {
	mu    sync.RWMutex
	state entity.FinanceState
	queue adapter.PersistQueue
}

// New creates a Store around an initial state.
func New(initial entity.FinanceState, queue adapter.PersistQueue) *Store {
	return &Store{
		state: initial,
		queue: queue,
	}
}

// State returns a consistent snapshot of the current state. The snapshot
// shares backing arrays with the live state; both sides treat them as
// immutable.
func (s *Store) State() entity.FinanceState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Dispatch applies one action. The reduction itself is synchronous and
// ordered; the durable write of each changed slice is handed to the persist
// queue and never awaited, so a slow or failing backend cannot block or
// revert the in-memory transition. Dispatch reports the slices the action
// changed (empty for silent no-ops).
func (s *Store) Dispatch(ctx context.Context, a action.Action) []entity.Slice {
	s.mu.Lock()
	next, slices := Reduce(s.state, a)
	s.state = next

	// Enqueue while still holding the lock so jobs reach the queue in
	// reduction order. Two dispatches touching the same slice must not race
	// to the queue, or the worker could write the older value last. Enqueue
	// never blocks, so the lock stays short.
	notify := !action.Quiet(a)
	for _, slice := range slices {
		s.queue.Enqueue(adapter.PersistJob{
			Slice:  slice,
			Value:  next.SliceValue(slice),
			Notify: notify,
		})
	}
	s.mu.Unlock()

	slog.Debug("Action dispatched",
		"action", string(a.Kind()),
		"changed_slices", len(slices),
	)

	return slices
}
