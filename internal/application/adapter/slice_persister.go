package adapter

import (
	"context"

	"github.com/budgetbook/backend/internal/domain/entity"
)

// SlicePersister serializes state slices to and from the durable backend.
// One durable key per slice; composite slices are stored as JSON documents,
// the language and defaultCurrency slices as raw strings.
type SlicePersister interface {
	// Save writes the slice value under its key. With notify set, success or
	// failure is reported to the user through the Notifier; quiet saves never
	// report. The returned error is for callers that need sequencing (reset,
	// restore); the reducer path ignores it by design.
	Save(ctx context.Context, slice entity.Slice, value any, notify bool) error

	// LoadInto reads the slice's document into out. When the key is absent,
	// out is left untouched and found is false.
	LoadInto(ctx context.Context, slice entity.Slice, out any) (found bool, err error)

	// LoadString reads a raw string slice, returning def verbatim when the
	// key is absent.
	LoadString(ctx context.Context, slice entity.Slice, def string) string
}
