package sse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishReachesOnlyTargetStudent(t *testing.T) {
	hub := NewHub()

	ch1, cleanup1 := hub.Subscribe(1)
	defer cleanup1()
	ch2, cleanup2 := hub.Subscribe(2)
	defer cleanup2()

	hub.Publish(1, Event{Event: "notification", Data: "hello"})

	select {
	case ev := <-ch1:
		assert.Equal(t, "notification", ev.Event)
	default:
		t.Fatal("subscriber 1 received nothing")
	}

	select {
	case <-ch2:
		t.Fatal("subscriber 2 should not receive student 1 events")
	default:
	}
}

func TestBroadcastReachesEveryone(t *testing.T) {
	hub := NewHub()

	ch1, cleanup1 := hub.Subscribe(1)
	defer cleanup1()
	ch2, cleanup2 := hub.Subscribe(2)
	defer cleanup2()

	hub.Broadcast(Event{Event: "sync"})

	require.Equal(t, "sync", (<-ch1).Event)
	require.Equal(t, "sync", (<-ch2).Event)
}

func TestCleanupRemovesSubscriber(t *testing.T) {
	hub := NewHub()

	_, cleanup := hub.Subscribe(7)
	assert.Equal(t, 1, hub.SubscriberCount(7))

	cleanup()
	assert.Equal(t, 0, hub.SubscriberCount(7))

	// Publishing after cleanup must not panic on the closed channel.
	hub.Publish(7, Event{Event: "notification"})
}

func TestPublishSkipsFullChannel(t *testing.T) {
	hub := NewHub()

	ch, cleanup := hub.Subscribe(1)
	defer cleanup()

	for i := 0; i < cap(ch)+5; i++ {
		hub.Publish(1, Event{Event: "newData"})
	}

	assert.Equal(t, cap(ch), len(ch))
}
