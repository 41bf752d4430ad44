// Package style provides the shared palette and glyphs of the planner screen.
package style

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	Accent     = lipgloss.Color("#1D4ED8")
	Danger     = lipgloss.Color("#DC2626")
	Muted      = lipgloss.Color("#6B7280")
	Border     = lipgloss.Color("#CCCCCC")
	Surface    = lipgloss.Color("#FFFFFF")
	Background = lipgloss.Color("#F5F5F5")
	Ink        = lipgloss.Color("#111827")
	Warning    = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Cross  = "✗"
	Plus   = "+"
	Minus  = "-"
	Bang   = "!"
	Cursor = "›"
	Bin    = "🗑"
)
