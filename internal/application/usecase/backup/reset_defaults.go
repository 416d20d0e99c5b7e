package backup

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/budgetbook/backend/internal/application/adapter"
	"github.com/budgetbook/backend/internal/application/store"
	"github.com/budgetbook/backend/internal/domain/action"
	"github.com/budgetbook/backend/internal/domain/entity"
	domainerror "github.com/budgetbook/backend/internal/domain/error"
)

// ResetDefaultsUseCase wipes durable storage and reinstates the built-in
// default state. The sequence is clear first, then write the defaults, then
// swap the in-memory state; a failure part-way leaves storage as it is, with
// no compensating rollback.
type ResetDefaultsUseCase struct {
	store     *store.Store
	backend   adapter.KeyValueBackend
	persister adapter.SlicePersister
	notifier  adapter.Notifier
}

// NewResetDefaultsUseCase creates a new ResetDefaultsUseCase instance.
func NewResetDefaultsUseCase(
	s *store.Store,
	backend adapter.KeyValueBackend,
	persister adapter.SlicePersister,
	notifier adapter.Notifier,
) *ResetDefaultsUseCase {
	return &ResetDefaultsUseCase{
		store:     s,
		backend:   backend,
		persister: persister,
		notifier:  notifier,
	}
}

// Execute runs the reset protocol.
func (uc *ResetDefaultsUseCase) Execute(ctx context.Context) error {
	if err := uc.backend.Clear(ctx); err != nil {
		uc.notifier.Failure("Error resetting data", err)
		return domainerror.NewBackupError(
			domainerror.ErrCodeResetFailed,
			"failed to clear durable storage",
			fmt.Errorf("%w: %w", domainerror.ErrResetFailed, err),
		)
	}

	defaults := entity.DefaultState()

	// Each slice is written quietly; one summary notification covers the
	// whole reset.
	for _, slice := range entity.PersistedSlices() {
		if err := uc.persister.Save(ctx, slice, defaults.SliceValue(slice), false); err != nil {
			uc.notifier.Failure("Error resetting data", err)
			return domainerror.NewBackupError(
				domainerror.ErrCodeResetFailed,
				fmt.Sprintf("failed to write default %s", slice),
				fmt.Errorf("%w: %w", domainerror.ErrResetFailed, err),
			)
		}
	}

	uc.store.Dispatch(ctx, action.ResetToDefaults{State: defaults})

	slog.Info("State reset to defaults")
	uc.notifier.Success("All data reset to defaults")
	return nil
}
