package backup

import (
	"context"
	"errors"
	"testing"

	"github.com/budgetbook/backend/internal/application/store"
	"github.com/budgetbook/backend/internal/domain/entity"
	domainerror "github.com/budgetbook/backend/internal/domain/error"
	"github.com/budgetbook/backend/internal/integration/email"
)

func TestEmailBackup(t *testing.T) {
	s := store.New(entity.DefaultState(), noopQueue{})
	create := NewCreateBackupUseCase(s)
	sender := email.NewMockEmailSender()

	uc := NewEmailBackupUseCase(create, sender, s)
	output, err := uc.Execute(context.Background(), EmailBackupInput{Recipient: "owner@example.com"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(sender.SentEmails) != 1 {
		t.Fatalf("expected 1 sent email, got %d", len(sender.SentEmails))
	}
	sent := sender.SentEmails[0]
	if sent.To != "owner@example.com" {
		t.Errorf("unexpected recipient %q", sent.To)
	}
	if len(sent.Attachments) != 1 || sent.Attachments[0].Filename != output.Filename {
		t.Errorf("expected the snapshot attachment, got %+v", sent.Attachments)
	}
	if len(sent.Attachments[0].Content) == 0 {
		t.Error("expected a non-empty attachment")
	}
}

func TestEmailBackup_NotConfigured(t *testing.T) {
	s := store.New(entity.DefaultState(), noopQueue{})
	uc := NewEmailBackupUseCase(NewCreateBackupUseCase(s), nil, s)

	_, err := uc.Execute(context.Background(), EmailBackupInput{Recipient: "owner@example.com"})
	if err == nil {
		t.Fatal("expected an error without a configured sender")
	}
	if !errors.Is(err, domainerror.ErrEmailNotConfigured) {
		t.Errorf("expected ErrEmailNotConfigured, got %v", err)
	}
}
