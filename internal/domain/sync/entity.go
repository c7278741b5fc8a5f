package sync

import (
	"context"
	"encoding/json"
	"time"

	"github.com/piket-xe8/piket-backend-go/internal/domain/absensi"
)

// PendingWrite is one write-intent that has not been confirmed by the
// remote sheet. It exists from the moment a write is attempted until a
// verification read proves the sheet has it, or the caller discards it.
type PendingWrite struct {
	ID         string          `json:"id"`
	Action     string          `json:"action"`
	Payload    json.RawMessage `json:"payload"`
	Timestamp  time.Time       `json:"timestamp"`
	Dispatched bool            `json:"dispatched"` // submitted without a transport error, not yet confirmed
	Attempts   int             `json:"attempts"`
}

// State is the consumable sync signal published to the UI layer.
type State struct {
	Synced     bool      `json:"synced"`
	LastSync   time.Time `json:"lastSync"`
	QueueDepth int       `json:"queueDepth"`
}

// Result is what one sync cycle hands back to callers.
type Result struct {
	NewData     []absensi.Absensi `json:"newData"`
	SyncedCount int               `json:"syncedCount"`
}

// Service drives the queue-drain / fetch / reconcile / publish cycle.
type Service interface {
	// FetchAndSync runs one sync cycle (debounced) and returns the merged
	// today snapshot plus the number of queue entries flushed. It never
	// fails on transport errors; those only flip the synced flag.
	FetchAndSync(ctx context.Context) (Result, error)

	// State returns the last published sync signal.
	State() State
}
