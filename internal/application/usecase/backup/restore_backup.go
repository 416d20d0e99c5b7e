package backup

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/budgetbook/backend/internal/application/adapter"
	"github.com/budgetbook/backend/internal/application/store"
	"github.com/budgetbook/backend/internal/domain/action"
	"github.com/budgetbook/backend/internal/domain/entity"
	domainerror "github.com/budgetbook/backend/internal/domain/error"
)

// RestoreBackupInput represents the input for backup restoration.
type RestoreBackupInput struct {
	Payload []byte
}

// RestoreBackupOutput represents the output of backup restoration.
type RestoreBackupOutput struct {
	SnapshotDate string
}

// RestoreBackupUseCase replaces the whole state with a prior snapshot.
type RestoreBackupUseCase struct {
	store    *store.Store
	notifier adapter.Notifier
}

// NewRestoreBackupUseCase creates a new RestoreBackupUseCase instance.
func NewRestoreBackupUseCase(s *store.Store, notifier adapter.Notifier) *RestoreBackupUseCase {
	return &RestoreBackupUseCase{
		store:    s,
		notifier: notifier,
	}
}

// Execute validates the snapshot and dispatches the restore. A snapshot that
// fails validation leaves both the in-memory state and durable storage
// untouched.
func (uc *RestoreBackupUseCase) Execute(ctx context.Context, input RestoreBackupInput) (*RestoreBackupOutput, error) {
	var snapshot entity.Snapshot
	if err := json.Unmarshal(input.Payload, &snapshot); err != nil {
		return nil, domainerror.NewBackupError(
			domainerror.ErrCodeMalformedBackupFile,
			"backup file could not be decoded",
			fmt.Errorf("%w: %w", domainerror.ErrMalformedBackupFile, err),
		)
	}

	if snapshot.Version != entity.SnapshotVersion {
		return nil, domainerror.NewBackupError(
			domainerror.ErrCodeInvalidBackupVersion,
			fmt.Sprintf("unsupported backup version %g, expected %g", snapshot.Version, entity.SnapshotVersion),
			domainerror.ErrInvalidBackupVersion,
		)
	}

	restored := normalizeRestoredState(snapshot.Data)
	uc.store.Dispatch(ctx, action.RestoreBackup{State: restored})

	slog.Info("Backup restored", "snapshot_date", snapshot.Date)
	uc.notifier.Success("Backup restored successfully")

	return &RestoreBackupOutput{
		SnapshotDate: snapshot.Date.Format("2006-01-02"),
	}, nil
}

// normalizeRestoredState fills the fields a snapshot is allowed to omit.
// The currency table is configuration and always comes from the defaults.
func normalizeRestoredState(state entity.FinanceState) entity.FinanceState {
	defaults := entity.DefaultState()

	if state.Language == "" {
		state.Language = defaults.Language
	}
	if state.DefaultCurrency == "" {
		state.DefaultCurrency = defaults.DefaultCurrency
	}
	if state.Receipts == nil {
		state.Receipts = map[string]string{}
	}
	state.Currencies = entity.DefaultCurrencies()

	return state
}
