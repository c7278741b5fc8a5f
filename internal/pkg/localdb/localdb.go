package localdb

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// KV is a file-per-key store under one directory. Each key maps to a
// JSON document written atomically (temp file + rename). It plays the
// role browser local storage plays for the frontend: durable, small,
// and tolerant of a missing or corrupt entry.
type KV struct {
	basePath string
	mu       sync.RWMutex
}

func NewKV(basePath string) (*KV, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &KV{basePath: basePath}, nil
}

// path sanitizes the key to prevent directory traversal.
func (s *KV) path(key string) (string, error) {
	cleanKey := filepath.Clean(key)
	if cleanKey == "." || strings.Contains(cleanKey, "..") || strings.ContainsRune(cleanKey, os.PathSeparator) {
		return "", fmt.Errorf("invalid key: %s", key)
	}
	return filepath.Join(s.basePath, cleanKey+".json"), nil
}

// Get returns the stored bytes for key and whether the key exists.
func (s *KV) Get(key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	fullPath, err := s.path(key)
	if err != nil {
		return nil, false, err
	}

	data, err := os.ReadFile(fullPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read key %s: %w", key, err)
	}
	return data, true, nil
}

// Set writes the bytes for key atomically.
func (s *KV) Set(key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	fullPath, err := s.path(key)
	if err != nil {
		return err
	}

	tmp := fullPath + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write key %s: %w", key, err)
	}
	if err := os.Rename(tmp, fullPath); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to commit key %s: %w", key, err)
	}
	return nil
}

// Delete removes a key. Deleting an absent key is not an error.
func (s *KV) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	fullPath, err := s.path(key)
	if err != nil {
		return err
	}
	if err := os.Remove(fullPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to delete key %s: %w", key, err)
	}
	return nil
}

// Keys lists stored keys with the given prefix.
func (s *KV) Keys(prefix string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, err := os.ReadDir(s.basePath)
	if err != nil {
		return nil, fmt.Errorf("failed to list keys: %w", err)
	}

	var keys []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		key := strings.TrimSuffix(name, ".json")
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}
	return keys, nil
}
