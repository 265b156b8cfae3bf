package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type field int

const (
	fieldTitle field = iota
	fieldDescription
	fieldDue
	fieldCount
)

// form is the title/description/due date editor used both for adding a
// task and for editing one in place.
type form struct {
	title       textinput.Model
	description textarea.Model
	due         textinput.Model
	focus       field
	expanded    bool
}

func newForm(titlePlaceholder string) form {
	title := textinput.New()
	title.Placeholder = titlePlaceholder
	title.CharLimit = 256
	title.Width = 40

	desc := textarea.New()
	desc.Placeholder = "Add details about your task..."
	desc.ShowLineNumbers = false
	desc.CharLimit = 2000
	desc.SetWidth(42)
	desc.SetHeight(3)
	// Enter submits the form, so new lines need a modifier.
	desc.KeyMap.InsertNewline.SetKeys("alt+enter", "ctrl+j")

	due := textinput.New()
	due.Placeholder = "YYYY-MM-DD"
	due.CharLimit = 10
	due.Width = 12

	return form{title: title, description: desc, due: due}
}

func (f *form) values() (title, description, due string) {
	return f.title.Value(), f.description.Value(), f.due.Value()
}

func (f *form) setValues(title, description, due string) {
	f.title.SetValue(title)
	f.title.CursorEnd()
	f.description.SetValue(description)
	f.due.SetValue(due)
}

// open expands the form and focuses the title.
func (f *form) open() tea.Cmd {
	f.expanded = true
	return f.focusField(fieldTitle)
}

// close blurs and clears every field and collapses the form.
func (f *form) close() {
	f.setValues("", "", "")
	f.title.Blur()
	f.description.Blur()
	f.due.Blur()
	f.focus = fieldTitle
	f.expanded = false
}

func (f *form) focusField(target field) tea.Cmd {
	f.title.Blur()
	f.description.Blur()
	f.due.Blur()
	f.focus = target
	switch target {
	case fieldDescription:
		return f.description.Focus()
	case fieldDue:
		return f.due.Focus()
	default:
		return f.title.Focus()
	}
}

func (f *form) next() tea.Cmd {
	return f.focusField((f.focus + 1) % fieldCount)
}

func (f *form) prev() tea.Cmd {
	return f.focusField((f.focus + fieldCount - 1) % fieldCount)
}

// update forwards msg to the focused widget.
func (f *form) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch f.focus {
	case fieldDescription:
		f.description, cmd = f.description.Update(msg)
	case fieldDue:
		f.due, cmd = f.due.Update(msg)
	default:
		f.title, cmd = f.title.Update(msg)
	}
	return cmd
}

func (f *form) setWidth(w int) {
	if w < 20 {
		w = 20
	}
	f.title.Width = w - 2
	f.description.SetWidth(w)
}

func (f form) view(th theme) string {
	var b strings.Builder
	b.WriteString(f.title.View())
	if !f.expanded {
		return b.String()
	}
	b.WriteString("\n\n")
	b.WriteString(th.subtle.Render("Description"))
	b.WriteString("\n")
	b.WriteString(f.description.View())
	b.WriteString("\n\n")
	b.WriteString(th.subtle.Render("Due Date"))
	b.WriteString("\n")
	b.WriteString(f.due.View())
	return b.String()
}
