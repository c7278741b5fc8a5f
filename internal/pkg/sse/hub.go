package sse

import (
	"sync"
)

// Event is one server-sent event for a student's live feed.
type Event struct {
	StudentID int         `json:"studentId,omitempty"`
	Event     string      `json:"event"`
	Data      interface{} `json:"data"`
}

// Hub fans events out to per-student subscribers. The sync engine also
// broadcasts cycle results to every subscriber regardless of student.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[int]map[chan Event]struct{}
}

func NewHub() *Hub {
	return &Hub{subscribers: make(map[int]map[chan Event]struct{})}
}

// Subscribe registers a listener for one student and returns the event
// channel and its cleanup function.
func (h *Hub) Subscribe(studentID int) (chan Event, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch := make(chan Event, 10)
	if h.subscribers[studentID] == nil {
		h.subscribers[studentID] = make(map[chan Event]struct{})
	}
	h.subscribers[studentID][ch] = struct{}{}

	cleanup := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.subscribers[studentID], ch)
		close(ch)
		if len(h.subscribers[studentID]) == 0 {
			delete(h.subscribers, studentID)
		}
	}
	return ch, cleanup
}

// Publish sends an event to one student's subscribers. Full channels
// are skipped so a stalled client cannot block the publisher.
func (h *Hub) Publish(studentID int, event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for ch := range h.subscribers[studentID] {
		select {
		case ch <- event:
		default:
		}
	}
}

// Broadcast sends an event to every subscriber.
func (h *Hub) Broadcast(event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, subs := range h.subscribers {
		for ch := range subs {
			select {
			case ch <- event:
			default:
			}
		}
	}
}

// SubscriberCount reports active subscribers for one student.
func (h *Hub) SubscriberCount(studentID int) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers[studentID])
}
