package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gofrs/flock"
	"github.com/quotienthq/quotient/types"
)

const formatVersion = "1.0"

// JSONStorage implements Storage using a single JSON file, guarded by a
// sibling lock file so concurrent processes (e.g. two CLI invocations)
// cannot interleave writes.
type JSONStorage struct {
	filePath string
	fileLock *flock.Flock
	mu       sync.RWMutex
	timeFunc func() time.Time
}

// JSONOption configures a JSONStorage.
type JSONOption func(*JSONStorage)

// WithTimeFunc sets a custom time source for deterministic metadata
// timestamps in tests.
func WithTimeFunc(fn func() time.Time) JSONOption {
	return func(s *JSONStorage) {
		s.timeFunc = fn
	}
}

// NewJSONStorage creates a JSON file storage backed by filePath. The
// file is created on first Save; a ".lock" sibling guards access.
func NewJSONStorage(filePath string, opts ...JSONOption) *JSONStorage {
	s := &JSONStorage{
		filePath: filePath,
		fileLock: flock.New(filePath + ".lock"),
		timeFunc: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load reads the snapshot from disk. A missing or empty file yields
// empty StoreData, not an error.
func (s *JSONStorage) Load() (*StoreData, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	unlock, err := s.acquireLock()
	if err != nil {
		return nil, err
	}
	defer unlock()

	if _, err := os.Stat(s.filePath); os.IsNotExist(err) {
		return emptyData(), nil
	}

	raw, err := os.ReadFile(s.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if len(raw) == 0 {
		return emptyData(), nil
	}

	var data StoreData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	if data.Versions == nil {
		data.Versions = []types.Version{}
	}
	return &data, nil
}

// Save writes the snapshot to disk atomically (temp file + rename).
func (s *JSONStorage) Save(data *StoreData) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	unlock, err := s.acquireLock()
	if err != nil {
		return err
	}
	defer unlock()

	now := s.timeFunc()
	if data.Metadata.CreatedAt.IsZero() {
		data.Metadata.CreatedAt = now
	}
	data.Metadata.UpdatedAt = now
	data.Metadata.Version = formatVersion

	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal data: %w", err)
	}

	dir := filepath.Dir(s.filePath)
	tmp, err := os.CreateTemp(dir, ".quotient-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(raw); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmpName, s.filePath); err != nil {
		return fmt.Errorf("failed to replace file: %w", err)
	}
	return nil
}

// Close releases the lock file.
func (s *JSONStorage) Close() error {
	return s.fileLock.Unlock()
}

// acquireLock takes the inter-process file lock with a bounded wait.
func (s *JSONStorage) acquireLock() (func(), error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	locked, err := s.fileLock.TryLockContext(ctx, 100*time.Millisecond)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire lock: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("could not acquire file lock")
	}
	return func() { _ = s.fileLock.Unlock() }, nil
}
