package detector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/planner/internal/adapters/detector"
	"go.trai.ch/planner/internal/core/domain"
)

func TestResolveMode(t *testing.T) {
	t.Parallel()

	terminal := detector.Environment{Interactive: true}
	pipe := detector.Environment{}
	ci := detector.Environment{Interactive: true, CI: true}

	tests := []struct {
		name      string
		env       detector.Environment
		requested domain.OutputMode
		want      domain.OutputMode
	}{
		{name: "auto on terminal", env: terminal, requested: domain.OutputAuto, want: domain.OutputTUI},
		{name: "auto on pipe", env: pipe, requested: domain.OutputAuto, want: domain.OutputLinear},
		{name: "auto in ci", env: ci, requested: domain.OutputAuto, want: domain.OutputLinear},
		{name: "empty behaves as auto", env: terminal, requested: "", want: domain.OutputTUI},
		{name: "forced tui on pipe", env: pipe, requested: domain.OutputTUI, want: domain.OutputTUI},
		{name: "forced linear on terminal", env: terminal, requested: domain.OutputLinear, want: domain.OutputLinear},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, detector.ResolveMode(tt.env, tt.requested))
		})
	}
}

func TestDetectEnvironment_CI(t *testing.T) {
	t.Setenv("CI", "true")
	assert.True(t, detector.DetectEnvironment().CI)

	t.Setenv("CI", "1")
	assert.True(t, detector.DetectEnvironment().CI)

	t.Setenv("CI", "")
	assert.False(t, detector.DetectEnvironment().CI)
}
