// Package config provides the configuration loader for planner.
package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.trai.ch/planner/internal/core/domain"
	"go.trai.ch/planner/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load searches cwd and its parents for planner.yaml.
// Without a config file the default settings are returned.
func (l *Loader) Load(cwd string) (domain.Settings, error) {
	path, ok := findConfiguration(cwd)
	if !ok {
		return domain.DefaultSettings(), nil
	}
	return l.LoadFile(path)
}

// LoadFile reads the settings from path. The file must exist.
func (l *Loader) LoadFile(path string) (domain.Settings, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by the user
	if err != nil {
		return domain.Settings{}, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var file Plannerfile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return domain.Settings{}, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	settings, err := file.toSettings()
	if err != nil {
		return domain.Settings{}, zerr.With(err, "path", path)
	}

	if l.Logger != nil {
		l.Logger.Info("loaded settings from " + path)
	}
	return settings, nil
}

// toSettings applies the file's values on top of the defaults.
func (f *Plannerfile) toSettings() (domain.Settings, error) {
	if f.Version != "" && f.Version != domain.ConfigVersion {
		return domain.Settings{}, zerr.With(domain.ErrUnsupportedConfigVersion, "version", f.Version)
	}

	s := domain.DefaultSettings()
	override(&s.Title, f.Title)
	override(&s.TextPlaceholder, f.Placeholders.Text)
	override(&s.TimePlaceholder, f.Placeholders.Time)

	if raw := strings.TrimSpace(f.FadeDuration); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 {
			return domain.Settings{}, zerr.With(domain.ErrInvalidFadeDuration, "fadeDuration", f.FadeDuration)
		}
		s.FadeDuration = d
	}

	mode, ok := domain.ParseOutputMode(strings.TrimSpace(f.OutputMode))
	if !ok {
		return domain.Settings{}, zerr.With(domain.ErrInvalidOutputMode, "outputMode", f.OutputMode)
	}
	s.OutputMode = mode

	return s, nil
}

func override(dst *string, v string) {
	if strings.TrimSpace(v) != "" {
		*dst = v
	}
}

// findConfiguration walks up from cwd until it finds the config file or reaches the filesystem root.
func findConfiguration(cwd string) (string, bool) {
	dir := cwd
	for {
		candidate := filepath.Join(dir, domain.ConfigFileName)
		info, err := os.Stat(candidate)
		switch {
		case err == nil && !info.IsDir():
			return candidate, true
		case err != nil && !errors.Is(err, fs.ErrNotExist):
			// An unreadable directory ends the search like the root does.
			return "", false
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}
