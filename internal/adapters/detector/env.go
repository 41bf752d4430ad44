// Package detector chooses the front-end from the environment.
package detector

import (
	"os"

	"go.trai.ch/planner/internal/core/domain"
	"golang.org/x/term"
)

// Environment describes the parts of the process environment that affect the front-end choice.
type Environment struct {
	Interactive bool
	CI          bool
}

// DetectEnvironment inspects stdin, stdout and the CI variable.
// The interactive front-end needs a terminal on both ends.
func DetectEnvironment() Environment {
	ci := os.Getenv("CI")
	return Environment{
		Interactive: term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd())),
		CI:          ci == "true" || ci == "1",
	}
}

// ResolveMode turns an auto mode into a concrete one. Explicit modes win.
func ResolveMode(env Environment, requested domain.OutputMode) domain.OutputMode {
	switch requested {
	case domain.OutputTUI, domain.OutputLinear:
		return requested
	}
	if env.Interactive && !env.CI {
		return domain.OutputTUI
	}
	return domain.OutputLinear
}
