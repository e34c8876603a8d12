package sse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_PublishReachesOnlyTheUser(t *testing.T) {
	h := NewHub()
	a, cleanupA := h.Subscribe("1")
	defer cleanupA()
	b, cleanupB := h.Subscribe("2")
	defer cleanupB()

	assert.Equal(t, 1, h.Publish("1", Event{Name: "alert", Data: "hello"}))

	select {
	case ev := <-a:
		assert.Equal(t, "alert", ev.Name)
		assert.Equal(t, "hello", ev.Data)
	default:
		t.Fatal("expected event for user 1")
	}
	assert.Len(t, b, 0)
}

func TestHub_PublishReachesEveryStreamOfTheUser(t *testing.T) {
	h := NewHub()
	first, c1 := h.Subscribe("1")
	defer c1()
	second, c2 := h.Subscribe("1")
	defer c2()
	other, c3 := h.Subscribe("2")
	defer c3()

	assert.Equal(t, 2, h.SubscriberCount("1"))
	assert.Equal(t, 2, h.Publish("1", Event{Name: "alert"}))
	assert.Len(t, first, 1)
	assert.Len(t, second, 1)
	assert.Len(t, other, 0)
}

func TestHub_FullStreamIsSkipped(t *testing.T) {
	h := NewHub()
	_, cleanup := h.Subscribe("1")
	defer cleanup()

	for i := 0; i < subscriberBuffer; i++ {
		require.Equal(t, 1, h.Publish("1", Event{Name: "alert"}))
	}
	assert.Equal(t, 0, h.Publish("1", Event{Name: "alert"}))
}

func TestHub_CleanupIsIdempotent(t *testing.T) {
	h := NewHub()
	ch, cleanup := h.Subscribe("1")
	assert.Equal(t, 1, h.SubscriberCount("1"))

	cleanup()
	cleanup()

	_, open := <-ch
	assert.False(t, open)
	assert.Equal(t, 0, h.SubscriberCount("1"))
	assert.Equal(t, 0, h.Publish("1", Event{Name: "alert"}))
}
