package pref

import (
	"path/filepath"
	"testing"
)

func TestPrefDefault(t *testing.T) {
	p := New(NewMemoryStore(), "toast:mode", "light")
	if got := p.Get(); got != "light" {
		t.Errorf("expected default light, got %q", got)
	}
}

func TestPrefSetGet(t *testing.T) {
	store := NewMemoryStore()
	p := New(store, "toast:mode", "light")

	if err := p.Set("dark"); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if got := p.Get(); got != "dark" {
		t.Errorf("expected dark, got %q", got)
	}

	// A fresh Pref over the same store sees the persisted value.
	p2 := New(store, "toast:mode", "light")
	if got := p2.Get(); got != "dark" {
		t.Errorf("expected persisted dark, got %q", got)
	}
}

func TestPrefReset(t *testing.T) {
	p := New(NewMemoryStore(), "toast:mode", "light")
	if err := p.Set("dark"); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if err := p.Reset(); err != nil {
		t.Fatalf("reset failed: %v", err)
	}
	if got := p.Get(); got != "light" {
		t.Errorf("expected light after reset, got %q", got)
	}
}

func TestPrefCorruptValueFallsBack(t *testing.T) {
	store := NewMemoryStore()
	if err := store.Save("toast:mode", []byte("{not json")); err != nil {
		t.Fatal(err)
	}

	p := New(store, "toast:mode", "light")
	if got := p.Get(); got != "light" {
		t.Errorf("corrupt value should fall back to default, got %q", got)
	}
}

func TestPrefNilStore(t *testing.T) {
	p := New[string](nil, "toast:mode", "light")
	if err := p.Set("dark"); err != nil {
		t.Fatalf("nil store set must not fail: %v", err)
	}
	if got := p.Get(); got != "dark" {
		t.Errorf("expected in-memory dark, got %q", got)
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	store := NewFileStore(path)

	p := New(store, "toast:mode", "light")
	if err := p.Set("dark"); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	reopened := NewFileStore(path)
	p2 := New(reopened, "toast:mode", "light")
	if got := p2.Get(); got != "dark" {
		t.Errorf("expected dark from file, got %q", got)
	}
}

func TestFileStoreMissingFile(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "absent.json"))
	_, ok, err := store.Load("anything")
	if err != nil {
		t.Fatalf("missing file must not error: %v", err)
	}
	if ok {
		t.Error("missing file must report absent key")
	}
}
