package dispatch

import (
	"context"
	"log/slog"

	"github.com/piket-xe8/piket-backend-go/internal/pkg/queue"
	"github.com/piket-xe8/piket-backend-go/internal/pkg/sheet"
)

// Status describes how far a write made it towards the sheet.
const (
	StatusLocal  = "local"  // sheet sync disabled, stored locally only
	StatusSynced = "synced" // submitted this request, awaiting confirmation
	StatusQueued = "queued" // submission failed, retained for replay
)

// Dispatcher performs the write path every mutating service shares:
// record the intent in the pending queue, attempt a blind POST, and
// leave confirmation to the sync engine's reconciling reads. The local
// store is always written before Send is called, so a dead network
// never loses a write.
type Dispatcher struct {
	api     sheet.API
	pending *queue.Queue
	enabled bool
}

func New(api sheet.API, pending *queue.Queue, enabled bool) *Dispatcher {
	return &Dispatcher{api: api, pending: pending, enabled: enabled}
}

// Send submits one write-intent. The returned status is advisory; the
// authoritative copy is already in the local store either way.
func (d *Dispatcher) Send(ctx context.Context, action string, fields map[string]string) string {
	if !d.enabled {
		return StatusLocal
	}

	w, err := d.pending.Enqueue(action, fields)
	if err != nil {
		slog.Error("Failed to enqueue write-intent", "action", action, "error", err)
		return StatusQueued
	}

	if err := d.api.Post(ctx, action, fields); err != nil {
		slog.Warn("Blind write failed, queued for replay", "action", action, "error", err)
		return StatusQueued
	}

	d.pending.MarkDispatched(w.ID)

	// The POST response is unreadable, so follow up with a best-effort
	// verification read off the request path.
	go d.api.Verify(context.WithoutCancel(ctx), action)

	return StatusSynced
}
