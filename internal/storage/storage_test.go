package storage

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
)

func openTestStore(t *testing.T, quota int64) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "slots", "test.db"), quota)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStoreGetMissing(t *testing.T) {
	s := openTestStore(t, 0)
	v, ok, err := s.GetItem("todos")
	if err != nil {
		t.Fatalf("GetItem failed: %v", err)
	}
	if ok || v != "" {
		t.Errorf("GetItem on empty store: got (%q, %v), want (\"\", false)", v, ok)
	}
}

func TestStoreSetOverwrites(t *testing.T) {
	s := openTestStore(t, 0)
	if err := s.SetItem("todos", "[]"); err != nil {
		t.Fatalf("SetItem failed: %v", err)
	}
	if err := s.SetItem("todos", `[{"id":1}]`); err != nil {
		t.Fatalf("second SetItem failed: %v", err)
	}
	v, ok, err := s.GetItem("todos")
	if err != nil || !ok {
		t.Fatalf("GetItem: ok=%v err=%v", ok, err)
	}
	if v != `[{"id":1}]` {
		t.Errorf("GetItem: got %q", v)
	}
}

func TestStorePersistsAcrossOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path, 0)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.SetItem("todos", "[1]"); err != nil {
		t.Fatal(err)
	}
	s.Close()

	reopened, err := Open(path, 0)
	if err != nil {
		t.Fatal(err)
	}
	defer reopened.Close()
	v, ok, err := reopened.GetItem("todos")
	if err != nil || !ok || v != "[1]" {
		t.Errorf("after reopen: got (%q, %v, %v)", v, ok, err)
	}
}

func TestOpenRejectsEmptyPath(t *testing.T) {
	if _, err := Open("", 0); err == nil {
		t.Fatal("expected error for empty path")
	}
}

type slotStore interface {
	GetItem(key string) (string, bool, error)
	SetItem(key, value string) error
}

func TestQuota(t *testing.T) {
	backends := map[string]func(t *testing.T, quota int64) slotStore{
		"sqlite": func(t *testing.T, quota int64) slotStore { return openTestStore(t, quota) },
		"memory": func(t *testing.T, quota int64) slotStore { return NewMemory(quota) },
	}

	for name, open := range backends {
		t.Run(name, func(t *testing.T) {
			s := open(t, 20)
			if err := s.SetItem("a", strings.Repeat("x", 9)); err != nil {
				t.Fatalf("first write within quota failed: %v", err)
			}
			// Replacing a slot only counts the new value.
			if err := s.SetItem("a", strings.Repeat("y", 19)); err != nil {
				t.Fatalf("overwrite within quota failed: %v", err)
			}
			err := s.SetItem("b", "zz")
			if !errors.Is(err, ErrQuotaExceeded) {
				t.Fatalf("expected ErrQuotaExceeded, got %v", err)
			}
			if _, ok, _ := s.GetItem("b"); ok {
				t.Error("rejected write must not create the slot")
			}
			v, _, _ := s.GetItem("a")
			if v != strings.Repeat("y", 19) {
				t.Errorf("existing slot changed: %q", v)
			}
		})
	}
}

func TestMemoryFailureInjection(t *testing.T) {
	m := NewMemory(0)
	boom := errors.New("disk on fire")
	m.FailWrites = boom
	if err := m.SetItem("k", "v"); !errors.Is(err, boom) {
		t.Errorf("SetItem: got %v, want %v", err, boom)
	}
	m.FailWrites = nil
	m.FailReads = boom
	if _, _, err := m.GetItem("k"); !errors.Is(err, boom) {
		t.Errorf("GetItem: got %v, want %v", err, boom)
	}
}
