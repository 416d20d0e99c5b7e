package backup

import (
	"context"
	"log/slog"

	"github.com/budgetbook/backend/internal/application/adapter"
	"github.com/budgetbook/backend/internal/application/store"
	domainerror "github.com/budgetbook/backend/internal/domain/error"
	"github.com/budgetbook/backend/internal/i18n"
)

// EmailBackupInput represents the input for emailing a backup.
type EmailBackupInput struct {
	Recipient string
}

// EmailBackupOutput represents the output of emailing a backup.
type EmailBackupOutput struct {
	ProviderID string
	Filename   string
}

// EmailBackupUseCase mails the current snapshot to the owner as a JSON
// attachment.
type EmailBackupUseCase struct {
	create *CreateBackupUseCase
	sender adapter.EmailSender
	store  *store.Store
}

// NewEmailBackupUseCase creates a new EmailBackupUseCase instance.
func NewEmailBackupUseCase(create *CreateBackupUseCase, sender adapter.EmailSender, s *store.Store) *EmailBackupUseCase {
	return &EmailBackupUseCase{
		create: create,
		sender: sender,
		store:  s,
	}
}

// Execute builds a snapshot and sends it to the recipient.
func (uc *EmailBackupUseCase) Execute(ctx context.Context, input EmailBackupInput) (*EmailBackupOutput, error) {
	if uc.sender == nil {
		return nil, domainerror.NewEmailError(
			domainerror.ErrCodeEmailNotConfigured,
			"email delivery is not configured",
			domainerror.ErrEmailNotConfigured,
		)
	}

	backup, err := uc.create.Execute(ctx)
	if err != nil {
		return nil, err
	}

	lang := uc.store.State().Language

	result, err := uc.sender.Send(ctx, adapter.SendEmailInput{
		To:      input.Recipient,
		Subject: i18n.T(lang, "backup.subject"),
		Text:    i18n.T(lang, "backup.body"),
		Attachments: []adapter.EmailAttachment{
			{Filename: backup.Filename, Content: backup.Payload},
		},
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Backup emailed",
		"recipient", input.Recipient,
		"provider_id", result.ProviderID,
	)

	return &EmailBackupOutput{
		ProviderID: result.ProviderID,
		Filename:   backup.Filename,
	}, nil
}
