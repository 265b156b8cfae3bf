package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"taskmaster/internal/config"
)

type keyMap struct {
	Quit            key.Binding
	Up              key.Binding
	Down            key.Binding
	Add             key.Binding
	Toggle          key.Binding
	Delete          key.Binding
	Detail          key.Binding
	Edit            key.Binding
	Confirm         key.Binding
	Cancel          key.Binding
	NextField       key.Binding
	PrevField       key.Binding
	FilterAll       key.Binding
	FilterActive    key.Binding
	FilterCompleted key.Binding
	CycleFilter     key.Binding
	Theme           key.Binding
	Help            key.Binding
}

func newKeyMap(k config.Keymap) keyMap {
	return keyMap{
		Quit:            binding("quit", k.Quit, "ctrl+c"),
		Up:              binding("up", k.Up, "up"),
		Down:            binding("down", k.Down, "down"),
		Add:             binding("add", k.Add),
		Toggle:          binding("toggle", k.Toggle),
		Delete:          binding("delete", k.Delete),
		Detail:          binding("detail", k.Detail),
		Edit:            binding("edit", k.Edit),
		Confirm:         binding("save", k.Confirm),
		Cancel:          binding("cancel", k.Cancel),
		NextField:       binding("next field", k.NextField),
		PrevField:       binding("prev field", k.PrevField),
		FilterAll:       binding("all", k.FilterAll),
		FilterActive:    binding("active", k.FilterActive),
		FilterCompleted: binding("completed", k.FilterCompleted),
		CycleFilter:     binding("cycle filter", k.CycleFilter),
		Theme:           binding("theme", k.Theme),
		Help:            binding("help", k.Help),
	}
}

// binding drops empty keys so an unset config entry never matches.
func binding(desc string, keys ...string) key.Binding {
	bound := make([]string, 0, len(keys))
	for _, k := range keys {
		if k != "" {
			bound = append(bound, k)
		}
	}
	if len(bound) == 0 {
		return key.NewBinding(key.WithDisabled())
	}
	return key.NewBinding(key.WithKeys(bound...), key.WithHelp(keyLabel(bound[0]), desc))
}

func keyLabel(k string) string {
	if k == " " {
		return "space"
	}
	return k
}

// listKeys is the help.KeyMap shown while browsing the list.
type listKeys struct{ keyMap }

func (k listKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Toggle, k.Edit, k.Delete, k.CycleFilter, k.Theme, k.Help, k.Quit}
}

func (k listKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Detail},
		{k.Add, k.Edit, k.Toggle, k.Delete},
		{k.FilterAll, k.FilterActive, k.FilterCompleted, k.CycleFilter},
		{k.Theme, k.Help, k.Quit},
	}
}

// formKeys is the help.KeyMap shown while a form has focus.
type formKeys struct{ keyMap }

func (k formKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Confirm, k.Cancel, k.NextField, k.PrevField}
}

func (k formKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
