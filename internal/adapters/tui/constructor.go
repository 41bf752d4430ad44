// Package tui provides the interactive terminal front-end of the planner.
package tui

import (
	"io"
	"os"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/planner/internal/core/domain"
	"go.trai.ch/planner/internal/engine/tasklist"
	"go.trai.ch/planner/internal/ui/output"
)

// NewModel creates a TUI model bound to store. Colors follow the terminal behind w.
func NewModel(store *tasklist.Store, settings domain.Settings, w io.Writer) *Model {
	if w == nil {
		w = os.Stderr
	}

	out := output.New(w)
	lipgloss.SetColorProfile(out.Profile)

	m := &Model{
		store:     store,
		settings:  settings,
		TextInput: newInput(settings.TextPlaceholder),
		TimeInput: newInput(settings.TimePlaceholder),
		Focus:     FocusText,
		fades:     make(map[int64]*Fade),
		dark:      lipgloss.HasDarkBackground(),
	}
	m.TextInput.Focus()
	store.Subscribe(m.onStoreEvent)

	return m
}

func newInput(placeholder string) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.Prompt = ""
	in.Width = defaultInputWidth
	return in
}
