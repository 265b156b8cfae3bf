package todo

import (
	"testing"

	"taskmaster/internal/storage"
)

func TestEditSessionLifecycle(t *testing.T) {
	s := openTestStore(t, storage.NewMemory(0))
	a, _, _ := s.Add("A", "desc", "2024-05-02")

	var e EditSession
	if e.Active() {
		t.Fatal("zero session must be idle")
	}
	e.Start(a)
	if id, ok := e.ID(); !ok || id != a.ID {
		t.Fatalf("ID: got (%d, %v)", id, ok)
	}
	if d := e.Draft(); d.Text != "A" || d.Description != "desc" || d.DueDate != "2024-05-02" {
		t.Errorf("draft not copied from task: %+v", d)
	}

	e.SetDraft(Draft{Text: "A2", Description: "", DueDate: ""})
	outcome, err := e.Save(s)
	if err != nil || outcome != EditUpdated {
		t.Fatalf("Save: outcome=%v err=%v", outcome, err)
	}
	if e.Active() {
		t.Error("session must be idle after save")
	}
	got, _ := s.Get(a.ID)
	if got.Text != "A2" || got.Description != "" || got.DueDate != "" {
		t.Errorf("task not updated: %+v", got)
	}
}

func TestEditSessionCancelLeavesStore(t *testing.T) {
	s := openTestStore(t, storage.NewMemory(0))
	a, _, _ := s.Add("A", "", "")

	var e EditSession
	e.Start(a)
	e.SetDraft(Draft{Text: "changed"})
	e.Cancel()

	if e.Active() {
		t.Error("session must be idle after cancel")
	}
	if got, _ := s.Get(a.ID); got != a {
		t.Errorf("cancel mutated the store: %+v", got)
	}
	if outcome, _ := e.Save(s); outcome != EditMissing {
		t.Errorf("Save on idle session: got %v, want missing", outcome)
	}
}

func TestEditSessionStartReplacesPrevious(t *testing.T) {
	s := openTestStore(t, storage.NewMemory(0))
	a, _, _ := s.Add("A", "", "")
	b, _, _ := s.Add("B", "", "")

	var e EditSession
	e.Start(a)
	e.SetDraft(Draft{Text: "unsaved"})
	e.Start(b)

	if e.Editing(a.ID) || !e.Editing(b.ID) {
		t.Error("only the latest task should be in edit")
	}
	if e.Draft().Text != "B" {
		t.Errorf("draft: got %q, want B", e.Draft().Text)
	}
	if got, _ := s.Get(a.ID); got.Text != "A" {
		t.Error("abandoned draft must not be saved")
	}
}

func TestEditSessionSaveBlankDeletes(t *testing.T) {
	s := openTestStore(t, storage.NewMemory(0))
	a, _, _ := s.Add("A", "", "")

	var e EditSession
	e.Start(a)
	e.SetDraft(Draft{Text: ""})
	outcome, err := e.Save(s)
	if err != nil || outcome != EditDeleted {
		t.Fatalf("Save: outcome=%v err=%v", outcome, err)
	}
	if s.Len() != 0 {
		t.Errorf("Len: got %d, want 0", s.Len())
	}
}
