package localdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKVSetGet(t *testing.T) {
	kv, err := NewKV(t.TempDir())
	require.NoError(t, err)

	_, ok, err := kv.Get("missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, kv.Set("a", []byte(`{"x":1}`)))
	data, ok, err := kv.Get("a")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte(`{"x":1}`), data)

	// Overwrite
	require.NoError(t, kv.Set("a", []byte(`{"x":2}`)))
	data, _, _ = kv.Get("a")
	assert.Equal(t, []byte(`{"x":2}`), data)
}

func TestKVDelete(t *testing.T) {
	kv, err := NewKV(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, kv.Set("a", []byte("1")))
	require.NoError(t, kv.Delete("a"))
	_, ok, err := kv.Get("a")
	require.NoError(t, err)
	assert.False(t, ok)

	// Deleting again is fine
	require.NoError(t, kv.Delete("a"))
}

func TestKVKeysPrefix(t *testing.T) {
	kv, err := NewKV(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, kv.Set("cache_one", []byte("1")))
	require.NoError(t, kv.Set("cache_two", []byte("2")))
	require.NoError(t, kv.Set("queue", []byte("3")))

	keys, err := kv.Keys("cache_")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"cache_one", "cache_two"}, keys)
}

func TestKVRejectsTraversal(t *testing.T) {
	kv, err := NewKV(t.TempDir())
	require.NoError(t, err)

	for _, key := range []string{"../escape", "a/b", ".."} {
		err := kv.Set(key, []byte("x"))
		assert.Error(t, err, "key %q should be rejected", key)
	}
}

func TestKVSurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	kv, err := NewKV(dir)
	require.NoError(t, err)
	require.NoError(t, kv.Set("persist", []byte("v")))

	reopened, err := NewKV(dir)
	require.NoError(t, err)
	data, ok, err := reopened.Get("persist")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("v"), data)
}
