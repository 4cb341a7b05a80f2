package session

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/SIDDHI-1105/canteen-connect-now-09/models"
)

func TestStore_RoundTrip(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	saved := &models.Session{ID: "STU001", Name: "Rahul Sharma", Role: models.RoleStudent}
	if err := store.Save(saved); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := store.Current()
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	if *loaded != *saved {
		t.Errorf("loaded %+v, expected %+v", loaded, saved)
	}
}

func TestStore_CurrentWithoutSession(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	if _, err := store.Current(); !errors.Is(err, ErrNoSession) {
		t.Errorf("error = %v, expected ErrNoSession", err)
	}
}

func TestStore_Clear(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	if err := store.Save(&models.Session{ID: "STU001", Name: "Rahul Sharma", Role: models.RoleStudent}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, err := store.Current(); !errors.Is(err, ErrNoSession) {
		t.Errorf("error after clear = %v, expected ErrNoSession", err)
	}

	// Clearing twice is fine.
	if err := store.Clear(); err != nil {
		t.Errorf("second clear failed: %v", err)
	}
}

func TestStore_SaveCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "canteen")
	store, err := NewStore(dir)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	if err := store.Save(&models.Session{ID: "ADM001", Name: "Admin User", Role: models.RoleAdmin}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "session.yaml")); err != nil {
		t.Errorf("session file missing: %v", err)
	}
}

func TestStore_CorruptSessionIsNoSession(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	// A file with an unknown role should be treated as no session.
	if err := os.WriteFile(filepath.Join(dir, "session.yaml"), []byte("id: X\nname: Y\ntype: manager\n"), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if _, err := store.Current(); !errors.Is(err, ErrNoSession) {
		t.Errorf("error = %v, expected ErrNoSession", err)
	}
}
