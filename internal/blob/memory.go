package blob

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

const memoryURLPrefix = "memory://attachments/"

// MemoryStore keeps objects in process memory. It backs tests and
// endpoint-less development runs; attachments stored here do not survive a
// restart.
type MemoryStore struct {
	mu      sync.Mutex
	objects map[string][]byte
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{objects: make(map[string][]byte)}
}

// Upload stores the object and returns its URL.
func (s *MemoryStore) Upload(_ context.Context, path string, content []byte, _ string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	buf := make([]byte, len(content))
	copy(buf, content)
	s.objects[path] = buf
	return s.PublicURL(path), nil
}

// Delete removes the object. Deleting a missing object is a no-op.
func (s *MemoryStore) Delete(_ context.Context, path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, path)
	return nil
}

// PublicURL returns the object's memory URL.
func (s *MemoryStore) PublicURL(path string) string {
	return memoryURLPrefix + path
}

// PathFromURL recovers the object path from a memory URL.
func (s *MemoryStore) PathFromURL(fileURL string) (string, error) {
	if !strings.HasPrefix(fileURL, memoryURLPrefix) {
		return "", fmt.Errorf("%w: %s", ErrInvalidURL, fileURL)
	}
	return strings.TrimPrefix(fileURL, memoryURLPrefix), nil
}

// Exists reports whether an object is present. Test helper.
func (s *MemoryStore) Exists(path string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.objects[path]
	return ok
}

// Len returns the number of stored objects. Test helper.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.objects)
}
