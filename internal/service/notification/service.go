package notification

import (
	"context"
	"log/slog"
	"time"

	"github.com/gymrepublic/gym-console/internal/domain/notification"
	"github.com/gymrepublic/gym-console/internal/pkg/sse"
)

type service struct {
	hub *sse.Hub
	now func() time.Time
}

// NewNotificationService publishes alerts to the user's open SSE streams.
// Alerts are transient: a user with no open stream misses them.
func NewNotificationService(hub *sse.Hub) notification.Service {
	return &service{hub: hub, now: time.Now}
}

// Notify implements notification.Notifier.
func (s *service) Notify(_ context.Context, userID string, severity notification.Severity, message string) {
	if userID == "" {
		return
	}
	alert := notification.Alert{
		Severity:  severity,
		Message:   message,
		CreatedAt: s.now(),
	}
	delivered := s.hub.Publish(userID, sse.Event{Name: notification.EventAlert, Data: alert})
	slog.Debug("alert published", "user_id", userID, "severity", severity, "streams", delivered)
}

// Subscribe implements notification.Service.
func (s *service) Subscribe(ctx context.Context, userID string) (<-chan notification.Alert, func()) {
	events, cleanup := s.hub.Subscribe(userID)
	alerts := make(chan notification.Alert)

	go func() {
		defer close(alerts)
		for {
			select {
			case <-ctx.Done():
				cleanup()
				return
			case ev, ok := <-events:
				if !ok {
					return
				}
				alert, ok := ev.Data.(notification.Alert)
				if !ok {
					continue
				}
				select {
				case alerts <- alert:
				case <-ctx.Done():
					cleanup()
					return
				}
			}
		}
	}()

	return alerts, cleanup
}
