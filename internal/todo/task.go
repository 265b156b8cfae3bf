package todo

import (
	"fmt"
	"time"
)

// Task is a single to-do item as persisted.
type Task struct {
	ID          int64     `json:"id"`
	Text        string    `json:"text"`
	Description string    `json:"description"`
	DueDate     string    `json:"dueDate"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ResetError reports that the persisted task list could not be used and
// the store started empty instead.
type ResetError struct {
	Key       string
	BackupKey string // empty when no backup could be written
	Err       error
}

func (e *ResetError) Error() string {
	if e.BackupKey != "" {
		return fmt.Sprintf("saved tasks in %q were unreadable, started empty (backup: %q): %v", e.Key, e.BackupKey, e.Err)
	}
	return fmt.Sprintf("saved tasks in %q were unreadable, started empty: %v", e.Key, e.Err)
}

func (e *ResetError) Unwrap() error {
	return e.Err
}

// PersistError reports a failed write of the task list. The in-memory
// change that triggered the write has already been applied.
type PersistError struct {
	Key string
	Err error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("tasks not saved to %q: %v", e.Key, e.Err)
}

func (e *PersistError) Unwrap() error {
	return e.Err
}
