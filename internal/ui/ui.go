package ui

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"

	"taskmaster/internal/config"
	"taskmaster/internal/todo"
)

type mode int

const (
	modeList mode = iota
	modeAdd
	modeEdit
)

type Model struct {
	store      *todo.Store
	cfg        config.Config
	logger     *log.Logger
	keys       keyMap
	help       help.Model
	theme      theme
	progress   progress.Model
	filter     todo.Filter
	session    todo.EditSession
	view       todo.View
	cursor     int
	mode       mode
	add        form
	edit       form
	status     string
	warning    bool
	confirmDel bool
	pendingDel *todo.Task
	now        func() time.Time
}

// New builds the model over an opened store. startup, when non-nil, is
// shown as a warning in the status line (for example a *todo.ResetError).
func New(store *todo.Store, cfg config.Config, logger *log.Logger, startup error) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	filter, err := todo.ParseFilter(cfg.DefaultFilter)
	if err != nil {
		logger.Warn("ignoring default filter", "err", err)
	}
	m := Model{
		store:    store,
		cfg:      cfg,
		logger:   logger,
		keys:     newKeyMap(cfg.Keys),
		help:     help.New(),
		theme:    themeFor(strings.EqualFold(cfg.Theme, "dark")),
		progress: newProgress(40),
		filter:   filter,
		mode:     modeList,
		add:      newForm("Task title..."),
		edit:     newForm("Task title"),
		status:   fmt.Sprintf("Press '%s' to add, %s to toggle, '%s' to delete.", cfg.Keys.Add, keyLabel(cfg.Keys.Toggle), cfg.Keys.Delete),
		now:      time.Now,
	}
	if startup != nil {
		m.warn(startup.Error())
	}
	m.rebuild()
	return m
}

func Run(store *todo.Store, cfg config.Config, logger *log.Logger, startup error) error {
	program := tea.NewProgram(New(store, cfg, logger, startup), tea.WithAltScreen())
	_, err := program.Run()
	return err
}

func newProgress(width int) progress.Model {
	p := progress.New(progress.WithGradient(colorPrimary, colorAccent), progress.WithoutPercentage())
	p.Width = width
	return p
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.confirmDel {
			return m.updateDeleteConfirm(msg.String())
		}
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		w := msg.Width - 10
		m.add.setWidth(w)
		m.edit.setWidth(w)
		m.help.Width = msg.Width
		m.progress.Width = clamp(msg.Width-20, 10, 80)
	default:
		// Cursor blinks and other widget messages go to the open form.
		switch m.mode {
		case modeAdd:
			cmd := m.add.update(msg)
			return m, cmd
		case modeEdit:
			cmd := m.edit.update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	switch m.mode {
	case modeAdd:
		return m.updateAddMode(msg)
	case modeEdit:
		return m.updateEditMode(msg)
	default:
		return m.updateListMode(msg)
	}
}

func (m Model) updateAddMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.add.close()
		m.mode = modeList
		m.info("Cancelled")
		return m, nil
	case key.Matches(msg, m.keys.NextField):
		cmd := m.add.next()
		return m, cmd
	case key.Matches(msg, m.keys.PrevField):
		cmd := m.add.prev()
		return m, cmd
	case key.Matches(msg, m.keys.Confirm):
		title, description, due := m.add.values()
		due, err := todo.ParseDueDate(due)
		if err != nil {
			m.warn(err.Error())
			cmd := m.add.focusField(fieldDue)
			return m, cmd
		}
		task, ok, err := m.store.Add(title, description, due)
		if !ok {
			m.info("Title cannot be empty")
			cmd := m.add.focusField(fieldTitle)
			return m, cmd
		}
		m.logger.Debug("added task", "id", task.ID)
		m.add.close()
		m.mode = modeList
		m.rebuild()
		m.selectTask(task.ID)
		m.reportWrite(err, "Added task")
		return m, nil
	default:
		cmd := m.add.update(msg)
		return m, cmd
	}
}

func (m Model) updateEditMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.session.Cancel()
		m.edit.close()
		m.mode = modeList
		m.rebuild()
		m.info("Edit cancelled")
		return m, nil
	case key.Matches(msg, m.keys.NextField):
		cmd := m.edit.next()
		return m, cmd
	case key.Matches(msg, m.keys.PrevField):
		cmd := m.edit.prev()
		return m, cmd
	case key.Matches(msg, m.keys.Confirm):
		title, description, due := m.edit.values()
		due, err := todo.ParseDueDate(due)
		if err != nil {
			m.warn(err.Error())
			cmd := m.edit.focusField(fieldDue)
			return m, cmd
		}
		id, _ := m.session.ID()
		m.session.SetDraft(todo.Draft{Text: title, Description: description, DueDate: due})
		outcome, err := m.session.Save(m.store)
		m.logger.Debug("saved edit", "id", id, "outcome", outcome)
		m.edit.close()
		m.mode = modeList
		m.rebuild()
		switch outcome {
		case todo.EditUpdated:
			m.selectTask(id)
			m.reportWrite(err, "Saved task")
		case todo.EditDeleted:
			m.reportWrite(err, "Deleted task (empty title)")
		default:
			m.reportWrite(err, "Task no longer exists")
		}
		return m, nil
	default:
		cmd := m.edit.update(msg)
		return m, cmd
	}
}

func (m Model) updateListMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Down):
		m.cursor = clampCursor(m.cursor+1, len(m.view.Rows))
	case key.Matches(msg, m.keys.Up):
		m.cursor = clampCursor(m.cursor-1, len(m.view.Rows))
	case key.Matches(msg, m.keys.Add):
		m.mode = modeAdd
		m.info("Add mode: type a title and press Enter")
		cmd := m.add.open()
		return m, cmd
	case key.Matches(msg, m.keys.Toggle):
		task, ok := m.selected()
		if !ok {
			return m, nil
		}
		_, err := m.store.Toggle(task.ID)
		m.logger.Debug("toggled task", "id", task.ID)
		m.rebuild()
		m.reportWrite(err, "Toggled task")
	case key.Matches(msg, m.keys.Delete):
		task, ok := m.selected()
		if !ok {
			return m, nil
		}
		if !m.cfg.ConfirmDelete {
			return m.deleteTask(task.ID), nil
		}
		m.confirmDel = true
		m.pendingDel = &task
		m.info(fmt.Sprintf("Delete \"%s\"? y/n", task.Text))
	case key.Matches(msg, m.keys.Detail):
		task, ok := m.selected()
		if !ok {
			m.info("No tasks")
			return m, nil
		}
		m.info(detailLine(task, m.now()))
	case key.Matches(msg, m.keys.Edit):
		task, ok := m.selected()
		if !ok {
			m.info("No tasks to edit")
			return m, nil
		}
		return m.startEdit(task)
	case key.Matches(msg, m.keys.FilterAll):
		m.setFilter(todo.FilterAll)
	case key.Matches(msg, m.keys.FilterActive):
		m.setFilter(todo.FilterActive)
	case key.Matches(msg, m.keys.FilterCompleted):
		m.setFilter(todo.FilterCompleted)
	case key.Matches(msg, m.keys.CycleFilter):
		m.setFilter(m.filter.Next())
	case key.Matches(msg, m.keys.Theme):
		m.theme = themeFor(!m.theme.dark)
		m.info("Theme: " + m.theme.name())
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m Model) startEdit(task todo.Task) (tea.Model, tea.Cmd) {
	m.session.Start(task)
	m.edit.setValues(task.Text, task.Description, task.DueDate)
	m.edit.expanded = true
	m.mode = modeEdit
	m.rebuild()
	m.info("Editing: enter to save, esc to cancel, tab to move between fields")
	cmd := m.edit.focusField(fieldTitle)
	return m, cmd
}

func (m Model) updateDeleteConfirm(pressed string) (tea.Model, tea.Cmd) {
	switch pressed {
	case "n", "N", "esc":
		m.info("Delete cancelled")
		m.confirmDel = false
		m.pendingDel = nil
		return m, nil
	case "y", "Y":
		if m.pendingDel == nil {
			m.info("Nothing to delete")
			m.confirmDel = false
			return m, nil
		}
		id := m.pendingDel.ID
		m.confirmDel = false
		m.pendingDel = nil
		return m.deleteTask(id), nil
	default:
		return m, nil
	}
}

func (m Model) deleteTask(id int64) Model {
	_, err := m.store.Delete(id)
	m.logger.Debug("deleted task", "id", id)
	m.rebuild()
	m.reportWrite(err, "Deleted task")
	return m
}

func (m *Model) setFilter(f todo.Filter) {
	m.filter = f
	m.cursor = 0
	m.rebuild()
	m.info("Showing " + f.String() + " tasks")
}

// rebuild recomputes the visible rows from store, filter and edit session.
// Every handler that changes any of the three calls it.
func (m *Model) rebuild() {
	m.view = todo.BuildView(m.store.Tasks(), m.filter, &m.session, m.now())
	m.cursor = clampCursor(m.cursor, len(m.view.Rows))
}

func (m *Model) selected() (todo.Task, bool) {
	if len(m.view.Rows) == 0 {
		return todo.Task{}, false
	}
	return m.view.Rows[clampCursor(m.cursor, len(m.view.Rows))].Task, true
}

// selectTask moves the cursor onto id when it is visible.
func (m *Model) selectTask(id int64) {
	for i, r := range m.view.Rows {
		if r.Task.ID == id {
			m.cursor = i
			return
		}
	}
}

// reportWrite shows msg, or a warning when the change could not be saved.
func (m *Model) reportWrite(err error, msg string) {
	var perr *todo.PersistError
	switch {
	case err == nil:
		m.info(msg)
	case errors.As(err, &perr):
		m.warn(fmt.Sprintf("%s, but it was not saved: %v", msg, perr.Err))
	default:
		m.warn(fmt.Sprintf("%s: %v", msg, err))
	}
}

func (m *Model) info(s string) {
	m.status = s
	m.warning = false
}

func (m *Model) warn(s string) {
	m.status = s
	m.warning = true
}

func detailLine(t todo.Task, now time.Time) string {
	info := fmt.Sprintf("Task #%d • %s • %s", t.ID, t.Text, humanDone(t.Completed))
	if t.DueDate != "" {
		info += " • due:" + todo.FormatForDisplay(t.DueDate)
		if !t.Completed && todo.IsOverdue(t.DueDate, now) {
			info += " (overdue)"
		}
	}
	if !t.CreatedAt.IsZero() {
		info += " • created " + humanize.RelTime(t.CreatedAt, now, "ago", "from now")
	}
	return info
}

func clampCursor(cur, n int) int {
	if n <= 0 {
		return 0
	}
	if cur < 0 {
		return 0
	}
	if cur >= n {
		return n - 1
	}
	return cur
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func humanDone(done bool) string {
	if done {
		return "done"
	}
	return "pending"
}
