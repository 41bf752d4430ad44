package domain

import "time"

const (
	// ConfigFileName is the name of the configuration file searched for from the working directory upwards.
	ConfigFileName = "planner.yaml"

	// ConfigVersion is the only config schema version understood by this build.
	ConfigVersion = "1"

	// DefaultTitle is the heading shown above the input row.
	DefaultTitle = "Daily Task Planner"

	// DefaultTextPlaceholder is shown in the empty task text input.
	DefaultTextPlaceholder = "Enter task"

	// DefaultTimePlaceholder is shown in the empty task time input.
	DefaultTimePlaceholder = "Enter time (e.g., 10:00 AM)"

	// DefaultFadeDuration is how long a newly added task takes to fade in.
	DefaultFadeDuration = 500 * time.Millisecond
)

// OutputMode selects the presentation layer.
type OutputMode string

const (
	// OutputAuto picks the interactive front-end on a terminal and the line front-end otherwise.
	OutputAuto OutputMode = "auto"
	// OutputTUI forces the interactive front-end.
	OutputTUI OutputMode = "tui"
	// OutputLinear forces the line front-end.
	OutputLinear OutputMode = "linear"
)

// Settings configures the presentation of the planner.
type Settings struct {
	Title           string
	TextPlaceholder string
	TimePlaceholder string
	FadeDuration    time.Duration
	OutputMode      OutputMode
}

// DefaultSettings returns the settings used when no config file is present.
func DefaultSettings() Settings {
	return Settings{
		Title:           DefaultTitle,
		TextPlaceholder: DefaultTextPlaceholder,
		TimePlaceholder: DefaultTimePlaceholder,
		FadeDuration:    DefaultFadeDuration,
		OutputMode:      OutputAuto,
	}
}

// ParseOutputMode converts a user supplied mode. Empty means auto.
// The second return value is false for unknown modes.
func ParseOutputMode(s string) (OutputMode, bool) {
	switch OutputMode(s) {
	case "", OutputAuto:
		return OutputAuto, true
	case OutputTUI:
		return OutputTUI, true
	case OutputLinear, "ci":
		return OutputLinear, true
	default:
		return "", false
	}
}
