// Package persistence implements the durable-storage adapters of the
// finance store: slice serialization, key-value backends and the background
// persist worker.
package persistence

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/budgetbook/backend/internal/application/adapter"
	"github.com/budgetbook/backend/internal/domain/entity"
	domainerror "github.com/budgetbook/backend/internal/domain/error"
)

// slicePersister implements adapter.SlicePersister over a KeyValueBackend.
// Composite slices are stored as JSON documents; the language and
// defaultCurrency slices are stored as raw strings and returned verbatim.
type slicePersister struct {
	backend  adapter.KeyValueBackend
	notifier adapter.Notifier
}

// NewSlicePersister creates a persister writing through the given backend,
// reporting notifying saves through the notifier.
func NewSlicePersister(backend adapter.KeyValueBackend, notifier adapter.Notifier) adapter.SlicePersister {
	return &slicePersister{
		backend:  backend,
		notifier: notifier,
	}
}

// Save serializes value and writes it under the slice's key. With notify
// set, the outcome is reported to the user; the error return exists for
// callers that sequence durable writes themselves (reset, restore).
func (p *slicePersister) Save(ctx context.Context, slice entity.Slice, value any, notify bool) error {
	encoded, err := encodeSlice(slice, value)
	if err != nil {
		perr := domainerror.NewPersistError(
			domainerror.ErrCodeSerializeFailed,
			fmt.Sprintf("failed to serialize slice %q", slice),
			err,
		)
		if notify {
			p.notifier.Failure(fmt.Sprintf("Error saving %s", slice), perr)
		}
		return perr
	}

	if err := p.backend.Set(ctx, string(slice), encoded); err != nil {
		perr := domainerror.NewPersistError(
			domainerror.ErrCodeBackendWrite,
			fmt.Sprintf("failed to write slice %q", slice),
			err,
		)
		if notify {
			p.notifier.Failure(fmt.Sprintf("Error saving %s", slice), perr)
		}
		return perr
	}

	if notify {
		p.notifier.Success(fmt.Sprintf("%s saved successfully", slice))
	}
	return nil
}

// LoadInto reads the slice's JSON document into out. An absent key leaves
// out untouched: loading a slice that was never written yields exactly the
// caller's default.
func (p *slicePersister) LoadInto(ctx context.Context, slice entity.Slice, out any) (bool, error) {
	raw, found, err := p.backend.Get(ctx, string(slice))
	if err != nil {
		return false, domainerror.NewPersistError(
			domainerror.ErrCodeBackendRead,
			fmt.Sprintf("failed to read slice %q", slice),
			err,
		)
	}
	if !found {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return false, domainerror.NewPersistError(
			domainerror.ErrCodeDecodeFailed,
			fmt.Sprintf("failed to decode slice %q", slice),
			err,
		)
	}
	return true, nil
}

// LoadString reads a raw string slice; the stored value is returned
// verbatim with no document decoding.
func (p *slicePersister) LoadString(ctx context.Context, slice entity.Slice, def string) string {
	raw, found, err := p.backend.Get(ctx, string(slice))
	if err != nil {
		slog.Error("Failed to read string slice, using default",
			"slice", string(slice),
			"error", err,
		)
		return def
	}
	if !found {
		return def
	}
	return raw
}

// encodeSlice renders the value for storage: raw for string slices, a JSON
// document otherwise.
func encodeSlice(slice entity.Slice, value any) (string, error) {
	switch slice {
	case entity.SliceLanguage, entity.SliceDefaultCurrency:
		if s, ok := value.(string); ok {
			return s, nil
		}
	}
	encoded, err := json.Marshal(value)
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}
