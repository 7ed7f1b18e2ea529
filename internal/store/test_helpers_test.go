package store

import (
	"context"
	"path/filepath"
	"testing"
)

// createTestStore creates a new store in a temp directory with the ltree
// and lquery codecs bound.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	if err := s.Register(context.Background()); err != nil {
		t.Fatalf("Register() failed: %v", err)
	}
	return s
}

func strPtr(s string) *string {
	return &s
}
