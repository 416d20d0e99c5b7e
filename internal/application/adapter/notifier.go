package adapter

// Notifier reports store-side events to the user. It replaces the original
// UI's toast layer: persistence results, backup and reset outcomes all flow
// through here instead of being returned to the dispatching caller.
type Notifier interface {
	// Success reports a completed operation, e.g. a persisted slice.
	Success(message string)

	// Failure reports a failed operation. Failures never roll back the
	// in-memory state change that triggered them.
	Failure(message string, err error)
}

// NotifyLevel classifies a notification.
type NotifyLevel string

const (
	NotifySuccess NotifyLevel = "success"
	NotifyFailure NotifyLevel = "failure"
)

// Notification is a single user-facing message produced by the store.
type Notification struct {
	Level   NotifyLevel `json:"level"`
	Message string      `json:"message"`
}
