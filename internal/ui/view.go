package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"

	"taskmaster/internal/todo"
)

func (m Model) View() string {
	th := m.theme
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	if ratio, ok := m.view.Progress(); ok {
		b.WriteString(th.text.Render("Progress"))
		b.WriteString("  ")
		b.WriteString(th.subtle.Render(fmt.Sprintf("%d/%d completed", m.view.Counts.Completed, m.view.Counts.Total)))
		b.WriteString("\n")
		b.WriteString(m.progress.ViewAs(ratio))
		b.WriteString("\n\n")
	}

	if m.mode == modeAdd {
		b.WriteString(th.card.Render(m.add.view(th)))
	} else {
		b.WriteString(th.subtle.Render(fmt.Sprintf("Press '%s' to add a task", m.cfg.Keys.Add)))
	}
	b.WriteString("\n\n")

	b.WriteString(m.renderFilters())
	b.WriteString("\n\n")

	if len(m.view.Rows) == 0 {
		b.WriteString(th.title.Render("All Clear!"))
		b.WriteString("\n")
		b.WriteString(th.subtle.Render(m.view.EmptyMessage))
	} else {
		b.WriteString(m.renderTaskList())
	}

	b.WriteString("\n\n")
	if m.warning {
		b.WriteString(th.warn.Render(m.status))
	} else {
		b.WriteString(th.status.Render(m.status))
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.helpKeys()))

	return b.String()
}

func (m Model) helpKeys() help.KeyMap {
	if m.mode == modeList {
		return listKeys{m.keys}
	}
	return formKeys{m.keys}
}

func (m Model) renderHeader() string {
	icon := "☾"
	if m.theme.dark {
		icon = "☀"
	}
	return m.theme.title.Render("Task Master") + "  " + m.theme.subtle.Render(fmt.Sprintf("%s %s (%s)", icon, m.theme.name(), keyLabel(m.cfg.Keys.Theme)))
}

func (m Model) renderFilters() string {
	filters := []struct {
		f     todo.Filter
		label string
	}{
		{todo.FilterAll, "All"},
		{todo.FilterActive, "Active"},
		{todo.FilterCompleted, "Completed"},
	}
	parts := make([]string, 0, len(filters))
	for _, f := range filters {
		if f.f == m.filter {
			parts = append(parts, m.theme.filterOn.Render(f.label))
		} else {
			parts = append(parts, m.theme.filterOff.Render(f.label))
		}
	}
	return strings.Join(parts, " ")
}

func (m Model) renderTaskList() string {
	th := m.theme
	var b strings.Builder
	for i, row := range m.view.Rows {
		if row.Editing {
			b.WriteString(th.card.Render(m.edit.view(th)))
			b.WriteString("\n")
			continue
		}
		t := row.Task

		cursor := " "
		if m.cursor == i && m.mode == modeList {
			cursor = th.selected.Render(">")
		}

		checkbox := "[ ]"
		title := th.text.Render(t.Text)
		if t.Completed {
			checkbox = "[x]"
			title = th.done.Render(t.Text)
		}
		b.WriteString(fmt.Sprintf("%s %s %s\n", cursor, checkbox, title))

		if t.Description != "" {
			for _, line := range strings.Split(t.Description, "\n") {
				b.WriteString("      ")
				b.WriteString(th.subtle.Render(line))
				b.WriteString("\n")
			}
		}
		if row.DueLabel != "" {
			due := "Due: " + row.DueLabel
			b.WriteString("      ")
			if row.Overdue {
				b.WriteString(th.overdue.Render(due))
			} else {
				b.WriteString(th.subtle.Render(due))
			}
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
