package cache

import (
	"encoding/json"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/piket-xe8/piket-backend-go/internal/pkg/localdb"
)

// Entry is a cached remote payload with its write time. Expired entries
// are kept so they can serve as a degraded fallback when a live fetch
// fails outright.
type Entry struct {
	Data      json.RawMessage `json:"data"`
	Timestamp time.Time       `json:"timestamp"`
}

// Cache is a TTL cache over remote responses with an in-memory map and
// a persisted mirror, so entries survive process restarts.
type Cache struct {
	ttl     time.Duration
	kv      *localdb.KV
	mu      sync.RWMutex
	entries map[string]Entry
	now     func() time.Time
}

func New(kv *localdb.KV, ttl time.Duration) *Cache {
	return &Cache{
		ttl:     ttl,
		kv:      kv,
		entries: make(map[string]Entry),
		now:     time.Now,
	}
}

// Key derives the cache key for an action and its parameters. The
// serialization is deterministic: identical action+params always map to
// the same entry.
func Key(action string, params map[string]string) string {
	if len(params) == 0 {
		return action
	}
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(action)
	for _, k := range keys {
		b.WriteByte('_')
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(params[k])
	}
	return b.String()
}

func mirrorKey(key string) string {
	return "cache_" + key
}

// Get returns the payload if a fresh entry exists. An expired entry is
// a miss, indistinguishable from an absent one; use GetStale for the
// degraded path.
func (c *Cache) Get(key string) (json.RawMessage, bool) {
	entry, ok := c.lookup(key)
	if !ok {
		return nil, false
	}
	if c.now().Sub(entry.Timestamp) >= c.ttl {
		return nil, false
	}
	return entry.Data, true
}

// GetStale returns the payload regardless of age. Only call this after
// a live fetch has already failed.
func (c *Cache) GetStale(key string) (json.RawMessage, bool) {
	entry, ok := c.lookup(key)
	if !ok {
		return nil, false
	}
	return entry.Data, true
}

// Set stores the payload with the current timestamp in memory and in
// the persisted mirror. A mirror write failure is logged only.
func (c *Cache) Set(key string, data json.RawMessage) {
	entry := Entry{Data: data, Timestamp: c.now()}

	c.mu.Lock()
	c.entries[key] = entry
	c.mu.Unlock()

	raw, err := json.Marshal(entry)
	if err != nil {
		slog.Warn("Failed to marshal cache entry", "key", key, "error", err)
		return
	}
	if err := c.kv.Set(mirrorKey(key), raw); err != nil {
		slog.Warn("Failed to mirror cache entry", "key", key, "error", err)
	}
}

// lookup checks memory first, then the persisted mirror, restoring a
// mirror hit into memory.
func (c *Cache) lookup(key string) (Entry, bool) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()
	if ok {
		return entry, true
	}

	raw, found, err := c.kv.Get(mirrorKey(key))
	if err != nil || !found {
		if err != nil {
			slog.Warn("Failed to read cache mirror", "key", key, "error", err)
		}
		return Entry{}, false
	}

	if err := json.Unmarshal(raw, &entry); err != nil {
		slog.Warn("Corrupt cache mirror entry", "key", key, "error", err)
		return Entry{}, false
	}

	c.mu.Lock()
	c.entries[key] = entry
	c.mu.Unlock()
	return entry, true
}

// Age reports how old the entry for key is. Used by tests and the sync
// status endpoint.
func (c *Cache) Age(key string) (time.Duration, bool) {
	entry, ok := c.lookup(key)
	if !ok {
		return 0, false
	}
	return c.now().Sub(entry.Timestamp), true
}
