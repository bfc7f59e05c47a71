// Package diskv stores each blob as its own file in a directory, the
// closest local analogue of a browser's key/value storage.
package diskv

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"

	"github.com/peterbourgon/diskv/v3"

	"github.com/julianstephens/enough/internal/storage"
)

type Store struct {
	basePath string
	d        *diskv.Diskv
}

func New(basePath string) *Store {
	return &Store{basePath: basePath}
}

func (s *Store) open() {
	s.d = diskv.New(diskv.Options{
		BasePath:     s.basePath,
		Transform:    func(string) []string { return []string{} },
		CacheSizeMax: 1024 * 1024, // 1MB
		FilePerm:     0600,
		PathPerm:     0700,
	})
}

func (s *Store) Init() error {
	if err := os.MkdirAll(s.basePath, 0700); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	s.open()
	return nil
}

func (s *Store) Load() error {
	if s.d != nil {
		return nil
	}
	info, err := os.Stat(s.basePath)
	if os.IsNotExist(err) {
		return storage.ErrNotInitialized
	}
	if err != nil {
		return fmt.Errorf("failed to stat data directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", s.basePath)
	}
	s.open()
	return nil
}

func (s *Store) Close() error {
	s.d = nil
	return nil
}

func (s *Store) Get(_ context.Context, key string) ([]byte, error) {
	if s.d == nil {
		return nil, fmt.Errorf("storage not loaded")
	}
	data, err := s.d.Read(key)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return data, nil
}

func (s *Store) Put(_ context.Context, key string, data []byte) error {
	if s.d == nil {
		return fmt.Errorf("storage not loaded")
	}
	return s.d.Write(key, data)
}

func (s *Store) Keys(ctx context.Context) ([]string, error) {
	if s.d == nil {
		return nil, fmt.Errorf("storage not loaded")
	}
	var keys []string
	for k := range s.d.Keys(ctx.Done()) {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

func (s *Store) GetConfigPath() string {
	return s.basePath
}
