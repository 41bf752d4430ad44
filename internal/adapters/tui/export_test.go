package tui

import "go.trai.ch/planner/internal/core/domain"

// FadeTickMsg exposes the fade frame message for testing.
type FadeTickMsg = fadeTickMsg

// FadeFrame exposes the fade frame interval for testing.
var FadeFrame = fadeFrame

// Animating reports whether a fade tick loop is running.
func (m *Model) Animating() bool {
	return m.animating
}

// SetDark forces the background assumption used for row colors.
func (m *Model) SetDark(dark bool) {
	m.dark = dark
}

// RenderTaskRow exposes the row renderer for testing.
func (m *Model) RenderTaskRow(index int, task domain.Task) string {
	return m.renderTaskRow(index, task)
}
