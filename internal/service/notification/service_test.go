package notification

import (
	"context"
	"testing"
	"time"

	"github.com/gymrepublic/gym-console/internal/domain/notification"
	"github.com/gymrepublic/gym-console/internal/pkg/sse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationService(t *testing.T) {
	hub := sse.NewHub()
	svc := NewNotificationService(hub)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	alerts, cleanup := svc.Subscribe(ctx, "5")
	defer cleanup()
	require.Equal(t, 1, hub.SubscriberCount("5"))

	svc.Notify(ctx, "5", notification.SeverityWarning, "From date cannot be after To date")
	svc.Notify(ctx, "6", notification.SeverityInfo, "not for user 5")

	select {
	case alert := <-alerts:
		assert.Equal(t, notification.SeverityWarning, alert.Severity)
		assert.Equal(t, "From date cannot be after To date", alert.Message)
		assert.False(t, alert.CreatedAt.IsZero())
	case <-time.After(time.Second):
		t.Fatal("alert not delivered")
	}

	cancel()
	select {
	case _, ok := <-alerts:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("stream not closed after cancel")
	}
	assert.Eventually(t, func() bool { return hub.SubscriberCount("5") == 0 }, time.Second, 10*time.Millisecond)
}

func TestNotificationService_NoSubscribers(t *testing.T) {
	svc := NewNotificationService(sse.NewHub())
	assert.NotPanics(t, func() {
		svc.Notify(context.Background(), "5", notification.SeverityError, "nobody listening")
		svc.Notify(context.Background(), "", notification.SeverityError, "no user")
	})
}
