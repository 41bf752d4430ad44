package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
)

const (
	fadeFPS = 60
	// settleFactor is ω·t at which a critically damped spring is considered settled (about 98%).
	settleFactor = 6.0
)

var fadeFrame = time.Second / fadeFPS

// fadeTickMsg advances every running fade by one frame.
type fadeTickMsg struct{}

func fadeTick() tea.Cmd {
	return tea.Tick(fadeFrame, func(time.Time) tea.Msg {
		return fadeTickMsg{}
	})
}

// Fade drives the opacity of one task row from 0 to 1.
// Each task owns its own Fade, so rows added in quick succession animate independently.
type Fade struct {
	spring   harmonica.Spring
	opacity  float64
	velocity float64
	elapsed  time.Duration
	duration time.Duration
}

// NewFade creates a fade that completes after duration. A non-positive duration is already complete.
func NewFade(duration time.Duration) *Fade {
	if duration <= 0 {
		return &Fade{opacity: 1}
	}
	return &Fade{
		spring:   harmonica.NewSpring(harmonica.FPS(fadeFPS), settleFactor/duration.Seconds(), 1.0),
		duration: duration,
	}
}

// Step advances the fade by one frame.
func (f *Fade) Step() {
	if f.Done() {
		return
	}

	f.elapsed += fadeFrame
	f.opacity, f.velocity = f.spring.Update(f.opacity, f.velocity, 1)

	if f.elapsed >= f.duration || f.opacity >= 1 {
		f.opacity = 1
		f.velocity = 0
	}
	if f.opacity < 0 {
		f.opacity = 0
	}
}

// Opacity returns the current opacity in [0, 1].
func (f *Fade) Opacity() float64 {
	return f.opacity
}

// Done reports whether the fade reached full opacity.
func (f *Fade) Done() bool {
	return f.opacity >= 1
}
