package notification

import "context"

// Notifier delivers alerts to a console user. Implementations must not block.
type Notifier interface {
	Notify(ctx context.Context, userID string, severity Severity, message string)
}

type Service interface {
	Notifier
	// Subscribe opens an alert stream for userID. The returned function closes it.
	Subscribe(ctx context.Context, userID string) (<-chan Alert, func())
}
