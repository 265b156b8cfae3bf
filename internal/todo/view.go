package todo

import "time"

// Row is one visible task with its display flags.
type Row struct {
	Task     Task
	Editing  bool
	Overdue  bool
	DueLabel string
}

// View is everything the screen shows about the task list.
type View struct {
	Filter       Filter
	Rows         []Row
	Counts       Counts
	EmptyMessage string
}

// BuildView projects the list through the filter and edit session. It has
// no side effects; callers rebuild after every change.
func BuildView(tasks []Task, f Filter, session *EditSession, now time.Time) View {
	visible := VisibleTasks(tasks, f)
	v := View{
		Filter: f,
		Rows:   make([]Row, 0, len(visible)),
		Counts: CountTasks(tasks),
	}
	for _, t := range visible {
		v.Rows = append(v.Rows, Row{
			Task:     t,
			Editing:  session.Editing(t.ID),
			Overdue:  !t.Completed && IsOverdue(t.DueDate, now),
			DueLabel: FormatForDisplay(t.DueDate),
		})
	}
	if len(v.Rows) == 0 {
		v.EmptyMessage = EmptyMessage(f)
	}
	return v
}

func (v View) Progress() (float64, bool) {
	return v.Counts.Progress()
}

func EmptyMessage(f Filter) string {
	switch f {
	case FilterActive:
		return "No active tasks. Great job!"
	case FilterCompleted:
		return "No completed tasks yet. Complete some tasks!"
	default:
		return "You don't have any tasks yet. Add one above!"
	}
}
