package tui

import (
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
	"go.trai.ch/planner/internal/ui/style"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			MarginBottom(1)

	inputStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(style.Border).
			Padding(0, 1)

	focusedInputStyle = inputStyle.
				BorderForeground(style.Accent)

	buttonStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(style.Accent).
			Foreground(style.Accent)

	disabledButtonStyle = buttonStyle.
				BorderForeground(style.Border).
				Foreground(style.Muted)

	timeStyle = lipgloss.NewStyle().
			Foreground(style.Muted)

	deleteStyle = lipgloss.NewStyle().
			Foreground(style.Danger)

	cursorStyle = lipgloss.NewStyle().
			Foreground(style.Accent).
			Bold(true)

	emptyStyle = lipgloss.NewStyle().
			Foreground(style.Muted).
			Italic(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(style.Muted).
			MarginTop(1)
)

// Row text endpoints for the fade, per terminal background.
var (
	textColor = lipgloss.AdaptiveColor{Light: "#111827", Dark: "#F9FAFB"}
	fadeFrom  = lipgloss.AdaptiveColor{Light: "#F5F5F5", Dark: "#1F2937"}
)

// blend returns the color opacity of the way from `from` to `to`.
// Unparseable colors fall back to `to`.
func blend(from, to string, opacity float64) lipgloss.Color {
	if opacity >= 1 {
		return lipgloss.Color(to)
	}
	a, errA := colorful.Hex(from)
	b, errB := colorful.Hex(to)
	if errA != nil || errB != nil {
		return lipgloss.Color(to)
	}
	if opacity < 0 {
		opacity = 0
	}
	return lipgloss.Color(a.BlendRgb(b, opacity).Clamped().Hex())
}
