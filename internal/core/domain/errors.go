package domain

import "go.trai.ch/zerr"

var (
	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file is not valid YAML.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrUnsupportedConfigVersion is returned when the config declares a version this build does not understand.
	ErrUnsupportedConfigVersion = zerr.New("unsupported config version")

	// ErrInvalidFadeDuration is returned when fadeDuration is not a positive duration.
	ErrInvalidFadeDuration = zerr.New("invalid fade duration, expected a positive duration such as '500ms'")

	// ErrInvalidOutputMode is returned when the output mode is not one of auto, tui or linear.
	ErrInvalidOutputMode = zerr.New("invalid output mode, expected 'auto', 'tui' or 'linear'")

	// ErrUnknownCommand is returned by the line front-end for an unrecognized command.
	ErrUnknownCommand = zerr.New("unknown command")

	// ErrMissingArgument is returned by the line front-end when a command needs an argument.
	ErrMissingArgument = zerr.New("missing argument")

	// ErrInvalidRow is returned by the line front-end when a row reference cannot be resolved.
	ErrInvalidRow = zerr.New("invalid row")

	// ErrFrontendFailed is returned when the presentation layer exits with an error.
	ErrFrontendFailed = zerr.New("front-end failed")
)
