package adapter

import "context"

// EmailAttachment is a file attached to an outgoing email.
type EmailAttachment struct {
	Filename string
	Content  []byte
}

// SendEmailInput describes one outgoing email.
type SendEmailInput struct {
	To          string
	Subject     string
	Text        string
	Attachments []EmailAttachment
}

// SendEmailResult holds provider metadata about a sent email.
type SendEmailResult struct {
	ProviderID string
}

// EmailSender delivers emails, e.g. snapshot backups mailed to the owner.
type EmailSender interface {
	Send(ctx context.Context, input SendEmailInput) (*SendEmailResult, error)
}
