package app_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/planner/internal/adapters/detector"
	"go.trai.ch/planner/internal/app"
	"go.trai.ch/planner/internal/core/domain"
	"go.trai.ch/planner/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

var epoch = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

func newApp(t *testing.T) (*app.App, *mocks.MockConfigLoader, *mocks.MockLogger) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	ctrl := gomock.NewController(t)
	loader := mocks.NewMockConfigLoader(ctrl)
	logger := mocks.NewMockLogger(ctrl)

	return app.New(loader, logger, clockwork.NewFakeClockAt(epoch)), loader, logger
}

func TestApp_Run_Linear(t *testing.T) {
	a, loader, _ := newApp(t)
	loader.EXPECT().Load(".").Return(domain.DefaultSettings(), nil)

	var out bytes.Buffer
	in := strings.NewReader("add Buy milk | 10:00 AM\nlist\nrm 1\nlist\n")
	a.WithIO(in, &out).WithEnvironment(detector.Environment{Interactive: true, CI: true})

	err := a.Run(context.Background(), app.RunOptions{})
	require.NoError(t, err)

	assert.Equal(t, strings.Join([]string{
		"Daily Task Planner",
		"+ [1772442000000] Buy milk @ 10:00 AM",
		"1. [1772442000000] Buy milk @ 10:00 AM",
		"- [1772442000000] Buy milk",
		"(no tasks)",
		"",
	}, "\n"), out.String())
}

func TestApp_Run_ExplicitConfigFile(t *testing.T) {
	a, loader, _ := newApp(t)

	settings := domain.DefaultSettings()
	settings.Title = "Monday"
	loader.EXPECT().LoadFile("/tmp/planner.yaml").Return(settings, nil)

	var out bytes.Buffer
	a.WithIO(strings.NewReader(""), &out).WithEnvironment(detector.Environment{})

	err := a.Run(context.Background(), app.RunOptions{ConfigPath: "/tmp/planner.yaml"})
	require.NoError(t, err)
	assert.Equal(t, "Monday\n", out.String())
}

func TestApp_Run_ConfigError(t *testing.T) {
	a, loader, _ := newApp(t)
	loader.EXPECT().Load(".").Return(domain.Settings{}, errors.New("config load error"))

	err := a.Run(context.Background(), app.RunOptions{})
	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to load configuration")
}

func TestApp_Run_InvalidOutputMode(t *testing.T) {
	a, loader, _ := newApp(t)
	loader.EXPECT().Load(".").Return(domain.DefaultSettings(), nil)

	err := a.Run(context.Background(), app.RunOptions{OutputMode: "fancy"})
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrInvalidOutputMode.Error())
}

func TestApp_Run_JSONLogsWithMockLogger(t *testing.T) {
	a, loader, logger := newApp(t)
	loader.EXPECT().Load(".").Return(domain.DefaultSettings(), nil)
	logger.EXPECT().Warn(gomock.Any()).Times(1)

	a.WithIO(strings.NewReader("frobnicate\n"), io.Discard).WithEnvironment(detector.Environment{})

	err := a.Run(context.Background(), app.RunOptions{JSONLogs: true})
	require.NoError(t, err)
}

func TestApp_Run_TUIStopsOnCancel(t *testing.T) {
	a, loader, _ := newApp(t)
	loader.EXPECT().Load(".").Return(domain.DefaultSettings(), nil)

	a.WithTeaOptions(
		tea.WithInput(strings.NewReader("")),
		tea.WithOutput(io.Discard),
		tea.WithoutSignalHandler(),
		tea.WithoutRenderer(),
	).WithEnvironment(detector.Environment{Interactive: true})

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		errCh <- a.Run(ctx, app.RunOptions{})
	}()

	cancel()

	select {
	case err := <-errCh:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancellation")
	}
}

func TestApp_Run_ForcedTUIOverridesConfig(t *testing.T) {
	a, loader, _ := newApp(t)
	settings := domain.DefaultSettings()
	settings.OutputMode = domain.OutputLinear
	loader.EXPECT().Load(".").Return(settings, nil)

	var out bytes.Buffer
	a.WithTeaOptions(
		tea.WithInput(strings.NewReader("")),
		tea.WithOutput(io.Discard),
		tea.WithoutSignalHandler(),
		tea.WithoutRenderer(),
	).WithIO(strings.NewReader(""), &out).WithEnvironment(detector.Environment{})

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		errCh <- a.Run(ctx, app.RunOptions{OutputMode: "tui"})
	}()

	cancel()

	select {
	case err := <-errCh:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancellation")
	}
	assert.Empty(t, out.String(), "line front-end must not run in tui mode")
}
