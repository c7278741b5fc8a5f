package queue

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	syncdomain "github.com/piket-xe8/piket-backend-go/internal/domain/sync"
	"github.com/piket-xe8/piket-backend-go/internal/pkg/localdb"
)

func newTestQueue(t *testing.T) *Queue {
	t.Helper()
	kv, err := localdb.NewKV(t.TempDir())
	require.NoError(t, err)
	q, err := New(kv)
	require.NoError(t, err)
	return q
}

func TestEnqueueFIFO(t *testing.T) {
	q := newTestQueue(t)

	first, err := q.Enqueue("absensi", map[string]string{"nama": "Gisella"})
	require.NoError(t, err)
	second, err := q.Enqueue("absensi", map[string]string{"nama": "Keiza"})
	require.NoError(t, err)

	entries := q.List()
	require.Len(t, entries, 2)
	assert.Equal(t, first.ID, entries[0].ID)
	assert.Equal(t, second.ID, entries[1].ID)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestQueueSurvivesReload(t *testing.T) {
	kv, err := localdb.NewKV(t.TempDir())
	require.NoError(t, err)

	q, err := New(kv)
	require.NoError(t, err)
	_, err = q.Enqueue("createLaporan", map[string]int{"id": 1})
	require.NoError(t, err)

	reloaded, err := New(kv)
	require.NoError(t, err)
	entries := reloaded.List()
	require.Len(t, entries, 1)
	assert.Equal(t, "createLaporan", entries[0].Action)
}

func TestDrainConvergence(t *testing.T) {
	q := newTestQueue(t)
	for i := 0; i < 3; i++ {
		_, err := q.Enqueue("absensi", map[string]int{"i": i})
		require.NoError(t, err)
	}

	// Remote starts failing: nothing is removed, nothing is dispatched.
	failing := func(ctx context.Context, w syncdomain.PendingWrite) error {
		return errors.New("network unreachable")
	}
	assert.Equal(t, 0, q.Drain(context.Background(), failing))
	require.Len(t, q.List(), 3)
	for _, e := range q.List() {
		assert.False(t, e.Dispatched)
		assert.Equal(t, 1, e.Attempts)
	}

	// Remote recovers: every entry is submitted once, in order.
	var order []string
	succeeding := func(ctx context.Context, w syncdomain.PendingWrite) error {
		order = append(order, w.ID)
		return nil
	}
	assert.Equal(t, 3, q.Drain(context.Background(), succeeding))

	entries := q.List()
	require.Len(t, entries, 3, "dispatched entries wait for confirmation, they are not dropped")
	for i, e := range entries {
		assert.True(t, e.Dispatched)
		assert.Equal(t, order[i], e.ID, "drain order must be FIFO")
	}

	// Confirmation removes them; the queue converges to empty.
	for _, e := range entries {
		q.Remove(e.ID)
	}
	assert.Equal(t, 0, q.Len())
}

func TestDrainNeverRemovesBeforeSubmission(t *testing.T) {
	q := newTestQueue(t)
	w, err := q.Enqueue("addPelanggaran", map[string]string{"nama": "Pandu"})
	require.NoError(t, err)

	attempts := 0
	flaky := func(ctx context.Context, pw syncdomain.PendingWrite) error {
		attempts++
		if attempts < 3 {
			return errors.New("timeout")
		}
		return nil
	}

	for i := 0; i < 3; i++ {
		q.Drain(context.Background(), flaky)
	}
	assert.Equal(t, 3, attempts)

	entries := q.List()
	require.Len(t, entries, 1)
	assert.True(t, entries[0].Dispatched)
	assert.Equal(t, w.ID, entries[0].ID)
}

func TestDrainSkipsDispatchedEntries(t *testing.T) {
	q := newTestQueue(t)
	w, err := q.Enqueue("createLaporan", map[string]int{"id": 7})
	require.NoError(t, err)
	q.MarkDispatched(w.ID)

	// A dispatched entry waits on confirmation; replaying it would hand
	// the remote a duplicate write.
	calls := 0
	submit := func(ctx context.Context, pw syncdomain.PendingWrite) error {
		calls++
		return nil
	}
	assert.Equal(t, 0, q.Drain(context.Background(), submit))
	assert.Equal(t, 0, calls)

	entries := q.List()
	require.Len(t, entries, 1)
	assert.True(t, entries[0].Dispatched)
}

func TestDrainStopsOnCancel(t *testing.T) {
	q := newTestQueue(t)
	for i := 0; i < 5; i++ {
		_, err := q.Enqueue("absensi", i)
		require.NoError(t, err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	submit := func(ctx context.Context, w syncdomain.PendingWrite) error {
		calls++
		cancel()
		return nil
	}
	q.Drain(ctx, submit)
	assert.Equal(t, 1, calls, "drain must stop at the cancellation point")
}
