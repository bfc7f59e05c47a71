package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
)

// JSONStore keeps every key in one JSON document. An empty path keeps the
// document in memory only, which is what tests and dry runs use.
type JSONStore struct {
	path  string
	mu    sync.Mutex
	blobs map[string]json.RawMessage
}

func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

// NewMemoryStore returns a JSONStore that never touches disk.
func NewMemoryStore() *JSONStore {
	s := &JSONStore{}
	_ = s.Init()
	return s
}

func (s *JSONStore) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.blobs == nil {
		s.blobs = make(map[string]json.RawMessage)
	}
	if s.path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(s.path); err == nil {
		return s.read()
	}
	return s.write()
}

func (s *JSONStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.path == "" {
		if s.blobs == nil {
			s.blobs = make(map[string]json.RawMessage)
		}
		return nil
	}
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return ErrNotInitialized
	}
	return s.read()
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) read() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return fmt.Errorf("failed to read storage: %w", err)
	}
	blobs := make(map[string]json.RawMessage)
	if len(data) > 0 {
		if err := json.Unmarshal(data, &blobs); err != nil {
			return fmt.Errorf("failed to parse storage: %w", err)
		}
	}
	s.blobs = blobs
	return nil
}

func (s *JSONStore) write() error {
	if s.path == "" {
		return nil
	}
	data, err := json.MarshalIndent(s.blobs, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}
	return nil
}

func (s *JSONStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	blob, ok := s.blobs[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), blob...), nil
}

// Put stores data verbatim. Data that is not valid JSON is kept as a JSON
// string so the document itself stays parseable.
func (s *JSONStore) Put(_ context.Context, key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.blobs == nil {
		return fmt.Errorf("storage not loaded")
	}
	if json.Valid(data) {
		s.blobs[key] = append(json.RawMessage(nil), data...)
	} else {
		quoted, err := json.Marshal(string(data))
		if err != nil {
			return err
		}
		s.blobs[key] = quoted
	}
	return s.write()
}

func (s *JSONStore) Keys(_ context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	keys := make([]string, 0, len(s.blobs))
	for k := range s.blobs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

// GetConfigPath returns the document path, or "memory" for in-memory stores.
//
// Running multiple enough processes against the same file is not supported
// and may lose writes.
func (s *JSONStore) GetConfigPath() string {
	if s.path == "" {
		return "memory"
	}
	return s.path
}
