// Package app implements the application layer for planner.
package app

import (
	"context"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"
	"go.trai.ch/planner/internal/adapters/detector"
	"go.trai.ch/planner/internal/adapters/linear"
	"go.trai.ch/planner/internal/adapters/tui"
	"go.trai.ch/planner/internal/core/domain"
	"go.trai.ch/planner/internal/core/ports"
	"go.trai.ch/planner/internal/engine/tasklist"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	logger       ports.Logger
	clock        clockwork.Clock
	teaOptions   []tea.ProgramOption
	stdin        io.Reader
	stdout       io.Writer
	env          *detector.Environment
}

// New creates a new App instance.
func New(loader ports.ConfigLoader, log ports.Logger, clock clockwork.Clock) *App {
	return &App{
		configLoader: loader,
		logger:       log,
		clock:        clock,
	}
}

// WithTeaOptions adds bubbletea program options to the App.
// This is primarily used for testing to disable input/output.
func (a *App) WithTeaOptions(opts ...tea.ProgramOption) *App {
	a.teaOptions = append(a.teaOptions, opts...)
	return a
}

// WithIO replaces stdin and stdout for the line front-end.
func (a *App) WithIO(in io.Reader, out io.Writer) *App {
	a.stdin = in
	a.stdout = out
	return a
}

// WithEnvironment overrides terminal and CI detection.
func (a *App) WithEnvironment(env detector.Environment) *App {
	a.env = &env
	return a
}

// RunOptions configuration for the Run method.
type RunOptions struct {
	ConfigPath string
	OutputMode string
	JSONLogs   bool
}

type jsonSwitcher interface {
	SetJSON(enabled bool)
}

// Run loads the settings and drives a task list session until the user quits,
// input ends, or ctx is cancelled.
func (a *App) Run(ctx context.Context, opts RunOptions) error {
	if opts.JSONLogs {
		if l, ok := a.logger.(jsonSwitcher); ok {
			l.SetJSON(true)
		}
	}

	// 1. Load settings
	settings, err := a.loadSettings(opts.ConfigPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	// 2. Resolve the front-end
	requested := settings.OutputMode
	if opts.OutputMode != "" {
		mode, ok := domain.ParseOutputMode(opts.OutputMode)
		if !ok {
			return zerr.With(domain.ErrInvalidOutputMode, "mode", opts.OutputMode)
		}
		requested = mode
	}
	mode := detector.ResolveMode(a.environment(), requested)

	store := tasklist.New(a.clock)
	frontend := a.newFrontend(mode, store, settings)

	// 3. Run the front-end in one goroutine and stop it from a second one on cancellation
	g, gctx := errgroup.WithContext(ctx)
	done := make(chan struct{})

	g.Go(func() error {
		defer close(done)
		if err := frontend.Start(gctx); err != nil {
			return zerr.Wrap(err, domain.ErrFrontendFailed.Error())
		}
		if err := frontend.Wait(); err != nil {
			return zerr.Wrap(err, domain.ErrFrontendFailed.Error())
		}
		return nil
	})

	g.Go(func() error {
		select {
		case <-gctx.Done():
			_ = frontend.Stop()
		case <-done:
		}
		return nil
	})

	return g.Wait()
}

func (a *App) loadSettings(path string) (domain.Settings, error) {
	if path != "" {
		return a.configLoader.LoadFile(path)
	}
	return a.configLoader.Load(".")
}

func (a *App) environment() detector.Environment {
	if a.env != nil {
		return *a.env
	}
	return detector.DetectEnvironment()
}

func (a *App) newFrontend(mode domain.OutputMode, store *tasklist.Store, settings domain.Settings) ports.Frontend {
	if mode == domain.OutputTUI {
		model := tui.NewModel(store, settings, os.Stderr)
		opts := append([]tea.ProgramOption{tea.WithAltScreen()}, a.teaOptions...)
		return tui.NewRenderer(model, opts...)
	}
	return linear.NewFrontend(store, settings, a.logger, a.stdin, a.stdout)
}
