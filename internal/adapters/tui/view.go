package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/planner/internal/core/domain"
	"go.trai.ch/planner/internal/ui/style"
)

const (
	addButtonLabel = "Add Task"
	emptyListText  = "No tasks yet."
	inputHelp      = "tab: next field • enter: add • ctrl+c: quit"
	listHelp       = "↑/k ↓/j: move • d: delete • tab: next field • q: quit"
)

// View renders the UI.
func (m *Model) View() string {
	sections := []string{
		titleStyle.Render(m.settings.Title),
		m.inputRow(),
		m.taskList(),
		m.help(),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *Model) inputRow() string {
	text := inputStyle
	if m.Focus == FocusText {
		text = focusedInputStyle
	}
	tm := inputStyle
	if m.Focus == FocusTime {
		tm = focusedInputStyle
	}

	button := disabledButtonStyle
	if m.store.CanSubmit() {
		button = buttonStyle
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		text.Render(m.TextInput.View()),
		" ",
		tm.Render(m.TimeInput.View()),
		" ",
		button.Render(addButtonLabel),
	)
}

func (m *Model) taskList() string {
	tasks := m.store.Tasks()
	if len(tasks) == 0 {
		return emptyStyle.Render(emptyListText)
	}

	start, end := 0, len(tasks)
	if m.ListHeight > 0 {
		start = min(m.ListOffset, len(tasks))
		end = min(start+m.ListHeight, len(tasks))
	}

	var s strings.Builder
	for i := start; i < end; i++ {
		s.WriteString(m.renderTaskRow(i, tasks[i]))
		if i < end-1 {
			s.WriteString("\n")
		}
	}
	return s.String()
}

func (m *Model) renderTaskRow(index int, task domain.Task) string {
	cursor := "  "
	if m.Focus == FocusList && index == m.SelectedIdx {
		cursor = cursorStyle.Render(style.Cursor) + " "
	}

	opacity := m.Opacity(task.ID)
	ink := textColor.Light
	if m.dark {
		ink = textColor.Dark
	}

	return fmt.Sprintf("%s%s  %s  %s",
		cursor,
		lipgloss.NewStyle().Foreground(m.fadeColor(ink, opacity)).Render(task.Text),
		timeStyle.Foreground(m.fadeColor(string(style.Muted), opacity)).Render(task.Time),
		deleteStyle.Foreground(m.fadeColor(string(style.Danger), opacity)).Render(style.Cross),
	)
}

// fadeColor blends from the background toward to, so every part of a row fades in together.
func (m *Model) fadeColor(to string, opacity float64) lipgloss.Color {
	from := fadeFrom.Light
	if m.dark {
		from = fadeFrom.Dark
	}
	return blend(from, to, opacity)
}

func (m *Model) help() string {
	if m.Focus == FocusList {
		return helpStyle.Render(listHelp)
	}
	return helpStyle.Render(inputHelp)
}
