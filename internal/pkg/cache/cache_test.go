package cache

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piket-xe8/piket-backend-go/internal/pkg/localdb"
)

func newTestCache(t *testing.T, ttl time.Duration) (*Cache, *time.Time) {
	t.Helper()
	kv, err := localdb.NewKV(t.TempDir())
	require.NoError(t, err)

	c := New(kv, ttl)
	now := time.Date(2026, 3, 2, 15, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }
	return c, &now
}

func TestKeyDeterministic(t *testing.T) {
	a := Key("getJadwal", map[string]string{"hari": "Senin", "kelas": "XE8"})
	b := Key("getJadwal", map[string]string{"kelas": "XE8", "hari": "Senin"})
	assert.Equal(t, a, b)

	assert.Equal(t, "getAbsensiToday", Key("getAbsensiToday", nil))
	assert.NotEqual(t, Key("getJadwal", map[string]string{"hari": "Senin"}), Key("getJadwal", map[string]string{"hari": "Selasa"}))
}

func TestFreshnessBoundary(t *testing.T) {
	c, now := newTestCache(t, 60*time.Second)
	payload := json.RawMessage(`[{"nama":"Gisella"}]`)
	c.Set("getAbsensiToday", payload)

	// Just inside the TTL window
	*now = now.Add(59 * time.Second)
	got, ok := c.Get("getAbsensiToday")
	require.True(t, ok)
	assert.Equal(t, payload, got)

	// At the boundary the entry is expired: a miss, not the value
	*now = now.Add(1 * time.Second)
	_, ok = c.Get("getAbsensiToday")
	assert.False(t, ok)

	// But stale reads still work until overwritten
	stale, ok := c.GetStale("getAbsensiToday")
	require.True(t, ok)
	assert.Equal(t, payload, stale)

	*now = now.Add(24 * time.Hour)
	stale, ok = c.GetStale("getAbsensiToday")
	require.True(t, ok)
	assert.Equal(t, payload, stale)
}

func TestMissVsExpired(t *testing.T) {
	c, _ := newTestCache(t, 60*time.Second)

	_, ok := c.Get("never_set")
	assert.False(t, ok)
	_, ok = c.GetStale("never_set")
	assert.False(t, ok, "GetStale on an absent key is still a miss")
}

func TestMirrorSurvivesRestart(t *testing.T) {
	dir := t.TempDir()
	kv, err := localdb.NewKV(dir)
	require.NoError(t, err)

	c := New(kv, 60*time.Second)
	payload := json.RawMessage(`{"hari":"Senin"}`)
	c.Set("getJadwal", payload)

	// A fresh cache over the same KV sees the mirrored entry.
	reopened := New(kv, 60*time.Second)
	got, ok := reopened.Get("getJadwal")
	require.True(t, ok)
	assert.Equal(t, payload, got)
}

func TestSetOverwrites(t *testing.T) {
	c, now := newTestCache(t, 60*time.Second)
	c.Set("k", json.RawMessage(`1`))

	*now = now.Add(2 * time.Minute)
	c.Set("k", json.RawMessage(`2`))

	got, ok := c.Get("k")
	require.True(t, ok)
	assert.Equal(t, json.RawMessage(`2`), got)

	stale, _ := c.GetStale("k")
	assert.Equal(t, json.RawMessage(`2`), stale, "overwrite replaces the stale copy too")
}
