package cart

import (
	"log"
	"os"
	"path/filepath"
	"sync"
)

// Storage is the client-local key-value store the cart persists into. In the
// web storefront this is the browser's localStorage; the desktop client uses
// the file-backed implementation below. Set and Delete notify subscribers so
// other parts of the client (the cart badge, the mini-cart) can refresh.
type Storage interface {
	Get(key string) (string, bool)
	Set(key, value string)
	Delete(key string)
	Subscribe(fn func(key string))
}

// MemoryStorage is an in-process Storage, used in tests and as a throwaway
// session store.
type MemoryStorage struct {
	mu          sync.Mutex
	values      map[string]string
	subscribers []func(key string)
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{values: map[string]string{}}
}

func (s *MemoryStorage) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	return v, ok
}

func (s *MemoryStorage) Set(key, value string) {
	s.mu.Lock()
	s.values[key] = value
	subscribers := append([]func(string){}, s.subscribers...)
	s.mu.Unlock()
	for _, fn := range subscribers {
		fn(key)
	}
}

func (s *MemoryStorage) Delete(key string) {
	s.mu.Lock()
	delete(s.values, key)
	subscribers := append([]func(string){}, s.subscribers...)
	s.mu.Unlock()
	for _, fn := range subscribers {
		fn(key)
	}
}

func (s *MemoryStorage) Subscribe(fn func(key string)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// FileStorage keeps one file per key under a directory. Two processes
// writing the same key race read-modify-write and the last writer wins,
// matching the browser behavior across tabs; subscribers are only notified
// of writes made through this process.
type FileStorage struct {
	dir string
	mem MemoryStorage
}

func NewFileStorage(dir string) (*FileStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileStorage{dir: dir, mem: MemoryStorage{values: map[string]string{}}}, nil
}

func (s *FileStorage) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *FileStorage) Get(key string) (string, bool) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		return "", false
	}
	return string(data), true
}

func (s *FileStorage) Set(key, value string) {
	if err := os.WriteFile(s.path(key), []byte(value), 0o644); err != nil {
		log.Printf("cart: failed to persist %s: %v", key, err)
	}
	s.mem.Set(key, value)
}

func (s *FileStorage) Delete(key string) {
	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		log.Printf("cart: failed to remove %s: %v", key, err)
	}
	s.mem.Delete(key)
}

func (s *FileStorage) Subscribe(fn func(key string)) {
	s.mem.Subscribe(fn)
}
