package store

import (
	"testing"
)

// newTestStore returns a Store backed by an in-memory database with the full
// schema applied.
func newTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := New("")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

func TestStoreOpenOnDisk(t *testing.T) {
	dir := t.TempDir()
	st, err := New(dir)
	if err != nil {
		t.Fatalf("New(%q): %v", dir, err)
	}
	defer st.Close()

	if err := st.Ping(); err != nil {
		t.Errorf("Ping: %v", err)
	}
}

func TestMigrateIdempotent(t *testing.T) {
	st := newTestStore(t)
	// Running the migrations again over an initialized database must not
	// fail.
	if err := st.migrate(); err != nil {
		t.Fatalf("second migrate: %v", err)
	}
}
