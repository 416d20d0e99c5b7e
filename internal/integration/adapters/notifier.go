package adapters

import (
	"log/slog"
	"sync"

	"github.com/budgetbook/backend/internal/application/adapter"
)

// LogNotifier reports persistence outcomes through slog and keeps the most
// recent notification so the HTTP layer can surface it to clients.
type LogNotifier struct {
	mu   sync.Mutex
	last adapter.Notification
}

// NewLogNotifier creates a notifier backed by the default slog logger.
func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

// Success records a successful save.
func (n *LogNotifier) Success(message string) {
	slog.Info("Persistence notification", "message", message)
	n.record(adapter.Notification{Level: adapter.NotifySuccess, Message: message})
}

// Failure records a failed save.
func (n *LogNotifier) Failure(message string, err error) {
	slog.Error("Persistence notification", "message", message, "error", err)
	n.record(adapter.Notification{Level: adapter.NotifyFailure, Message: message})
}

// Last returns the most recent notification, if any.
func (n *LogNotifier) Last() (adapter.Notification, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.last, n.last.Message != ""
}

func (n *LogNotifier) record(note adapter.Notification) {
	n.mu.Lock()
	n.last = note
	n.mu.Unlock()
}

var _ adapter.Notifier = (*LogNotifier)(nil)
