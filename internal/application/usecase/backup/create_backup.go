// Package backup contains backup, restore and reset use cases.
package backup

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/budgetbook/backend/internal/application/store"
	"github.com/budgetbook/backend/internal/domain/entity"
)

// CreateBackupOutput represents the output of backup creation.
type CreateBackupOutput struct {
	Snapshot entity.Snapshot
	Payload  []byte
	Filename string
}

// CreateBackupUseCase produces a downloadable snapshot of the whole state.
type CreateBackupUseCase struct {
	store *store.Store
}

// NewCreateBackupUseCase creates a new CreateBackupUseCase instance.
func NewCreateBackupUseCase(s *store.Store) *CreateBackupUseCase {
	return &CreateBackupUseCase{store: s}
}

// Execute captures the current state into a versioned snapshot.
func (uc *CreateBackupUseCase) Execute(ctx context.Context) (*CreateBackupOutput, error) {
	snapshot := entity.NewSnapshot(uc.store.State())

	payload, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}

	return &CreateBackupOutput{
		Snapshot: snapshot,
		Payload:  payload,
		Filename: fmt.Sprintf("finance-backup-%s.json", snapshot.Date.Format("2006-01-02")),
	}, nil
}
