package todo

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// Storage is a key/value slot store.
type Storage interface {
	GetItem(key string) (string, bool, error)
	SetItem(key, value string) error
}

// EditOutcome describes what SaveEdit did.
type EditOutcome int

const (
	EditMissing EditOutcome = iota
	EditUpdated
	EditDeleted
)

func (o EditOutcome) String() string {
	switch o {
	case EditUpdated:
		return "updated"
	case EditDeleted:
		return "deleted"
	default:
		return "missing"
	}
}

// Store is the ordered, persisted task list.
type Store struct {
	storage Storage
	key     string
	tasks   []Task
	lastID  int64
	now     func() time.Time
	logger  *log.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithClock replaces time.Now as the source of ids and creation times.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithLogger sets the logger used for resets and failed writes.
func WithLogger(l *log.Logger) Option {
	return func(s *Store) {
		s.logger = l
	}
}

// Open loads the task list from the slot named key. The returned store is
// always usable: when the slot cannot be read or decoded the store starts
// empty and the error is a *ResetError.
func Open(storage Storage, key string, opts ...Option) (*Store, error) {
	s := &Store{
		storage: storage,
		key:     key,
		tasks:   []Task{},
		now:     time.Now,
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, s.load()
}

func (s *Store) load() error {
	raw, ok, err := s.storage.GetItem(s.key)
	if err != nil {
		return s.reset("", fmt.Errorf("read: %w", err))
	}
	if !ok {
		s.logger.Debug("no saved tasks", "key", s.key)
		return nil
	}
	tasks, err := decodeTasks(raw)
	if err != nil {
		return s.reset(raw, err)
	}
	s.tasks = tasks
	for _, t := range tasks {
		if t.ID > s.lastID {
			s.lastID = t.ID
		}
	}
	s.logger.Debug("loaded tasks", "key", s.key, "count", len(tasks))
	return nil
}

func (s *Store) reset(raw string, cause error) error {
	s.tasks = []Task{}
	rerr := &ResetError{Key: s.key, Err: cause}
	if raw != "" {
		backup := fmt.Sprintf("%s.corrupt-%d", s.key, s.now().UnixMilli())
		if err := s.storage.SetItem(backup, raw); err != nil {
			s.logger.Warn("could not back up unreadable tasks", "key", backup, "err", err)
		} else {
			rerr.BackupKey = backup
		}
	}
	s.logger.Warn("saved tasks reset", "key", s.key, "backup", rerr.BackupKey, "err", cause)
	return rerr
}

// Tasks returns a copy of the list in insertion order.
func (s *Store) Tasks() []Task {
	out := make([]Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Get returns the task with the given id.
func (s *Store) Get(id int64) (Task, bool) {
	if i := s.index(id); i >= 0 {
		return s.tasks[i], true
	}
	return Task{}, false
}

// Len returns the number of tasks.
func (s *Store) Len() int {
	return len(s.tasks)
}

// Add appends a task. It is a no-op (ok is false) when the trimmed title
// is empty. A non-nil error is a *PersistError; the task was still added.
func (s *Store) Add(title, description, dueDate string) (Task, bool, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return Task{}, false, nil
	}
	now := s.now()
	t := Task{
		ID:          s.nextID(now),
		Text:        title,
		Description: strings.TrimSpace(description),
		DueDate:     strings.TrimSpace(dueDate),
		CreatedAt:   now.UTC().Truncate(time.Millisecond),
	}
	s.tasks = append(s.tasks, t)
	return t, true, s.Persist()
}

// Toggle flips the completion flag of the task with the given id and
// reports whether it exists. An unknown id is a no-op and writes nothing.
func (s *Store) Toggle(id int64) (bool, error) {
	i := s.index(id)
	if i < 0 {
		return false, nil
	}
	s.tasks[i].Completed = !s.tasks[i].Completed
	return true, s.Persist()
}

// Delete removes the task with the given id and reports whether it
// existed.
func (s *Store) Delete(id int64) (bool, error) {
	i := s.index(id)
	if i < 0 {
		return false, nil
	}
	s.tasks = append(s.tasks[:i:i], s.tasks[i+1:]...)
	return true, s.Persist()
}

// SaveEdit replaces the editable fields of a task. An empty trimmed title
// deletes the task instead.
func (s *Store) SaveEdit(id int64, text, description, dueDate string) (EditOutcome, error) {
	i := s.index(id)
	if i < 0 {
		return EditMissing, nil
	}
	if strings.TrimSpace(text) == "" {
		_, err := s.Delete(id)
		return EditDeleted, err
	}
	t := &s.tasks[i]
	t.Text = strings.TrimSpace(text)
	t.Description = strings.TrimSpace(description)
	t.DueDate = strings.TrimSpace(dueDate)
	return EditUpdated, s.Persist()
}

// Persist overwrites the slot with the full task list.
func (s *Store) Persist() error {
	blob, err := encodeTasks(s.tasks)
	if err == nil {
		err = s.storage.SetItem(s.key, blob)
	}
	if err != nil {
		s.logger.Warn("persist failed", "key", s.key, "count", len(s.tasks), "err", err)
		return &PersistError{Key: s.key, Err: err}
	}
	return nil
}

func (s *Store) nextID(now time.Time) int64 {
	id := now.UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

func (s *Store) index(id int64) int {
	for i, t := range s.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}
