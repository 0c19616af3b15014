package client

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestFileTokenStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "auth", "token")
	store := NewFileTokenStore(path)

	if _, err := store.Token(); !errors.Is(err, ErrNoToken) {
		t.Fatalf("expected ErrNoToken before save, got %v", err)
	}

	if err := store.Save("tok-123\n"); err != nil {
		t.Fatalf("save: %v", err)
	}
	token, err := store.Token()
	if err != nil {
		t.Fatalf("token: %v", err)
	}
	if token != "tok-123" {
		t.Fatalf("expected trimmed token, got %q", token)
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, err := store.Token(); !errors.Is(err, ErrNoToken) {
		t.Fatalf("expected ErrNoToken after clear, got %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("clearing twice should be a no-op, got %v", err)
	}
}
