package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	syncdomain "github.com/piket-xe8/piket-backend-go/internal/domain/sync"
	"github.com/piket-xe8/piket-backend-go/internal/pkg/localdb"
)

// Key is the KV key holding the pending-write queue.
const Key = "api_queue"

// SubmitFunc attempts one remote submission. A nil return means the
// write was submitted at the transport level, not that the remote side
// processed it.
type SubmitFunc func(ctx context.Context, w syncdomain.PendingWrite) error

// Queue is a durable FIFO of write-intents that could not be confirmed
// as delivered. Entries are persisted on every change and replayed by
// Drain until confirmed or removed. The queue owns its entries; nothing
// else holds references to them.
type Queue struct {
	kv      *localdb.KV
	mu      sync.Mutex
	entries []syncdomain.PendingWrite
}

func New(kv *localdb.KV) (*Queue, error) {
	q := &Queue{kv: kv}

	data, ok, err := kv.Get(Key)
	if err != nil {
		return nil, fmt.Errorf("failed to read pending queue: %w", err)
	}
	if ok {
		if err := json.Unmarshal(data, &q.entries); err != nil {
			// A corrupt queue is dropped rather than wedging startup;
			// the writes it held are already lost to us anyway.
			slog.Error("Pending queue unparsable, starting empty", "error", err)
			q.entries = nil
		}
	}
	return q, nil
}

// persist must be called with the mutex held.
func (q *Queue) persist() {
	data, err := json.Marshal(q.entries)
	if err != nil {
		slog.Error("Failed to marshal pending queue", "error", err)
		return
	}
	if err := q.kv.Set(Key, data); err != nil {
		slog.Error("Failed to persist pending queue", "error", err)
	}
}

// Enqueue appends a write-intent with a generated id and persists it.
func (q *Queue) Enqueue(action string, payload interface{}) (syncdomain.PendingWrite, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return syncdomain.PendingWrite{}, fmt.Errorf("failed to marshal payload: %w", err)
	}

	w := syncdomain.PendingWrite{
		ID:        uuid.NewString(),
		Action:    action,
		Payload:   raw,
		Timestamp: time.Now(),
	}

	q.mu.Lock()
	defer q.mu.Unlock()
	q.entries = append(q.entries, w)
	q.persist()
	return w, nil
}

// List returns a copy of the queue in FIFO order.
func (q *Queue) List() []syncdomain.PendingWrite {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := make([]syncdomain.PendingWrite, len(q.entries))
	copy(out, q.entries)
	return out
}

// Len reports the queue depth.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.entries)
}

// Remove deletes the entry with the given id.
func (q *Queue) Remove(id string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for i, e := range q.entries {
		if e.ID == id {
			q.entries = append(q.entries[:i], q.entries[i+1:]...)
			q.persist()
			return
		}
	}
}

// MarkDispatched flags an entry as submitted-but-unconfirmed and bumps
// its attempt count.
func (q *Queue) MarkDispatched(id string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for i := range q.entries {
		if q.entries[i].ID == id {
			q.entries[i].Dispatched = true
			q.entries[i].Attempts++
			q.persist()
			return
		}
	}
}

// Drain walks the queue in FIFO order and attempts each undispatched
// entry once. Entries already marked dispatched are waiting on
// confirmation, not on resubmission, and are skipped so a healthy
// remote never sees the same write twice. A failed submission keeps
// the entry for the next cycle; a successful one marks it dispatched
// but leaves removal to the caller, who is the only party able to
// confirm the write actually landed. Returns the number of successful
// submissions.
func (q *Queue) Drain(ctx context.Context, submit SubmitFunc) int {
	submitted := 0
	for _, w := range q.List() {
		if err := ctx.Err(); err != nil {
			break
		}
		if w.Dispatched {
			continue
		}
		if err := submit(ctx, w); err != nil {
			slog.Warn("Pending write submission failed, keeping for retry",
				"id", w.ID, "action", w.Action, "attempts", w.Attempts, "error", err)
			q.bumpAttempts(w.ID)
			continue
		}
		q.MarkDispatched(w.ID)
		submitted++
	}
	return submitted
}

func (q *Queue) bumpAttempts(id string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for i := range q.entries {
		if q.entries[i].ID == id {
			q.entries[i].Attempts++
			q.persist()
			return
		}
	}
}
