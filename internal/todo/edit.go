package todo

// Draft holds the uncommitted values of an edit.
type Draft struct {
	Text        string
	Description string
	DueDate     string
}

// EditSession tracks the one task being edited, if any. The zero value
// is idle.
type EditSession struct {
	active bool
	id     int64
	draft  Draft
}

// Start begins editing t, silently dropping any session in progress.
func (e *EditSession) Start(t Task) {
	e.active = true
	e.id = t.ID
	e.draft = Draft{
		Text:        t.Text,
		Description: t.Description,
		DueDate:     t.DueDate,
	}
}

func (e *EditSession) Active() bool {
	return e != nil && e.active
}

// ID returns the id of the task being edited.
func (e *EditSession) ID() (int64, bool) {
	if !e.Active() {
		return 0, false
	}
	return e.id, true
}

func (e *EditSession) Editing(id int64) bool {
	return e.Active() && e.id == id
}

func (e *EditSession) Draft() Draft {
	return e.draft
}

func (e *EditSession) SetDraft(d Draft) {
	if e.active {
		e.draft = d
	}
}

// Save commits the draft through s and ends the session, even when the
// write fails.
func (e *EditSession) Save(s *Store) (EditOutcome, error) {
	if !e.Active() {
		return EditMissing, nil
	}
	id, d := e.id, e.draft
	e.Cancel()
	return s.SaveEdit(id, d.Text, d.Description, d.DueDate)
}

// Cancel ends the session without touching the store.
func (e *EditSession) Cancel() {
	*e = EditSession{}
}
