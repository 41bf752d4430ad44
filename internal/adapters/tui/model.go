package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/planner/internal/core/domain"
	"go.trai.ch/planner/internal/engine/tasklist"
)

const (
	defaultInputWidth = 24
	// chromeHeight is the number of lines around the list: title, input row with borders, help.
	chromeHeight = 9
)

// Focus identifies which part of the screen receives keys.
type Focus int

const (
	// FocusText routes keys to the task text input.
	FocusText Focus = iota
	// FocusTime routes keys to the task time input.
	FocusTime
	// FocusList routes keys to the task list.
	FocusList
	focusCount
)

// Model is the Bubble Tea model of the planner screen.
type Model struct {
	store    *tasklist.Store
	settings domain.Settings

	TextInput   textinput.Model
	TimeInput   textinput.Model
	Focus       Focus
	SelectedIdx int
	ListOffset  int
	ListHeight  int
	Width       int

	fades     map[int64]*Fade
	animating bool
	dark      bool
}

// Init starts the cursor blink of the focused input.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.ListHeight = max(msg.Height-chromeHeight, 1)
		m.ensureVisible()
		return m, nil

	case fadeTickMsg:
		return m, m.stepFades()
	}

	return m, m.forwardToInput(msg)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c":
		return tea.Quit
	case "tab":
		return m.setFocus((m.Focus + 1) % focusCount)
	case "shift+tab":
		return m.setFocus((m.Focus + focusCount - 1) % focusCount)
	}

	if m.Focus == FocusList {
		return m.handleListKey(msg)
	}

	switch msg.String() {
	case "enter":
		return m.submit()
	case "esc":
		return m.setFocus(FocusList)
	}
	return m.forwardToInput(msg)
}

func (m *Model) handleListKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "q":
		return tea.Quit
	case "k", "up":
		if m.SelectedIdx > 0 {
			m.SelectedIdx--
			m.ensureVisible()
		}
	case "j", "down":
		if m.SelectedIdx < m.store.Len()-1 {
			m.SelectedIdx++
			m.ensureVisible()
		}
	case "d", "x", "delete", "backspace":
		if task, ok := m.selectedTask(); ok {
			m.store.Remove(task.ID)
		}
	case "enter", "esc", "i":
		return m.setFocus(FocusText)
	}
	return nil
}

// forwardToInput lets the focused input consume msg and mirrors its value into the draft.
func (m *Model) forwardToInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.Focus {
	case FocusText:
		m.TextInput, cmd = m.TextInput.Update(msg)
		m.store.UpdateDraftText(m.TextInput.Value())
	case FocusTime:
		m.TimeInput, cmd = m.TimeInput.Update(msg)
		m.store.UpdateDraftTime(m.TimeInput.Value())
	case FocusList, focusCount:
	}
	return cmd
}

func (m *Model) submit() tea.Cmd {
	if !m.store.CanSubmit() {
		return nil
	}
	m.store.Submit()

	draft := m.store.Draft()
	m.TextInput.SetValue(draft.Text)
	m.TimeInput.SetValue(draft.Time)

	return tea.Batch(m.setFocus(FocusText), m.startAnimation())
}

func (m *Model) setFocus(f Focus) tea.Cmd {
	m.Focus = f
	m.TextInput.Blur()
	m.TimeInput.Blur()

	switch f {
	case FocusText:
		return m.TextInput.Focus()
	case FocusTime:
		return m.TimeInput.Focus()
	case FocusList, focusCount:
	}
	return nil
}

func (m *Model) onStoreEvent(e tasklist.Event) {
	switch e.Kind {
	case tasklist.EventTaskAdded:
		m.fades[e.Task.ID] = NewFade(m.settings.FadeDuration)
	case tasklist.EventTaskRemoved:
		delete(m.fades, e.Task.ID)
		if m.SelectedIdx >= m.store.Len() {
			m.SelectedIdx = max(m.store.Len()-1, 0)
		}
		m.ensureVisible()
	case tasklist.EventDraftChanged:
	}
}

func (m *Model) startAnimation() tea.Cmd {
	if m.animating || len(m.fades) == 0 {
		return nil
	}
	m.animating = true
	return fadeTick()
}

func (m *Model) stepFades() tea.Cmd {
	for id, f := range m.fades {
		f.Step()
		if f.Done() {
			delete(m.fades, id)
		}
	}
	if len(m.fades) == 0 {
		m.animating = false
		return nil
	}
	return fadeTick()
}

// Opacity returns the current fade-in opacity of the task with id. Settled rows report 1.
func (m *Model) Opacity(id int64) float64 {
	if f, ok := m.fades[id]; ok {
		return f.Opacity()
	}
	return 1
}

// Tasks returns the tasks currently shown.
func (m *Model) Tasks() []domain.Task {
	return m.store.Tasks()
}

func (m *Model) selectedTask() (domain.Task, bool) {
	tasks := m.store.Tasks()
	if m.SelectedIdx < 0 || m.SelectedIdx >= len(tasks) {
		return domain.Task{}, false
	}
	return tasks[m.SelectedIdx], true
}

func (m *Model) ensureVisible() {
	if m.ListHeight <= 0 {
		return
	}
	if m.SelectedIdx < m.ListOffset {
		m.ListOffset = m.SelectedIdx
	} else if m.SelectedIdx >= m.ListOffset+m.ListHeight {
		m.ListOffset = m.SelectedIdx - m.ListHeight + 1
	}
	if maxOffset := max(m.store.Len()-m.ListHeight, 0); m.ListOffset > maxOffset {
		m.ListOffset = maxOffset
	}
}
