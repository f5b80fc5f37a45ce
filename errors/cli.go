package errors

import (
	"errors"
	"fmt"
	"strings"
)

// CLIError wraps an error with user-friendly context and suggestions.
type CLIError struct {
	// Err is the underlying error
	Err error

	// Message is a user-friendly description of what went wrong
	Message string

	// Suggestion is an actionable hint for the user
	Suggestion string

	// Details provides additional context (optional)
	Details string
}

func (e *CLIError) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Message)

	if e.Details != "" {
		sb.WriteString("\n")
		sb.WriteString(e.Details)
	}

	if e.Suggestion != "" {
		sb.WriteString("\n\n")
		sb.WriteString(e.Suggestion)
	}

	return sb.String()
}

func (e *CLIError) Unwrap() error {
	return e.Err
}

// ErrorMessenger provides customizable error messages.
// Implement this interface to customize suggestions for your CLI.
type ErrorMessenger interface {
	// ParseErrorMessage returns the message and suggestion for a malformed file.
	ParseErrorMessage(path string, line int) (message, suggestion string)

	// LoadErrorMessage returns the message and suggestion for an unreadable file.
	LoadErrorMessage() (message, suggestion string)

	// MissingValueMessage returns the message and suggestion for unresolved keys.
	MissingValueMessage() (message, suggestion string)

	// EnvVarMessage returns the message and suggestion for missing environment variables.
	EnvVarMessage() (message, suggestion string)

	// TypeParseMessage returns the message and suggestion for badly typed values.
	TypeParseMessage() (message, suggestion string)
}

// DefaultMessenger provides default error messages.
type DefaultMessenger struct{}

func (m DefaultMessenger) ParseErrorMessage(path string, line int) (string, string) {
	where := "configuration"
	if path != "" {
		where = path
	}
	// Lines are reported 1-based to humans.
	return fmt.Sprintf("Cannot parse %s (line %d).", where, line+1),
		"Attribute lines must be indented and of the form key:value, below a record header."
}

func (m DefaultMessenger) LoadErrorMessage() (string, string) {
	return "Cannot read configuration file.",
		"Check that the path exists and is readable."
}

func (m DefaultMessenger) MissingValueMessage() (string, string) {
	return "A required setting has no value.",
		"Run with --help to see where each setting is looked up."
}

func (m DefaultMessenger) EnvVarMessage() (string, string) {
	return "A path refers to an environment variable that is not set.",
		"Set the variable, or escape the braces with a backslash."
}

func (m DefaultMessenger) TypeParseMessage() (string, string) {
	return "A setting has a value of the wrong type.",
		"Check the value against the expected type listed in --help."
}

// WrapConfig configures error wrapping behavior.
type WrapConfig struct {
	Messenger ErrorMessenger
}

// Option configures WrapConfig.
type Option func(*WrapConfig)

// WithMessenger sets a custom error messenger.
func WithMessenger(m ErrorMessenger) Option {
	return func(c *WrapConfig) {
		c.Messenger = m
	}
}

func getMessenger(opts []Option) ErrorMessenger {
	cfg := &WrapConfig{
		Messenger: DefaultMessenger{},
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg.Messenger
}

// Wrap converts a lazyconf error kind into a CLIError with guidance.
// Errors of unknown kinds, and errors that already are CLIErrors, are returned unchanged.
func Wrap(err error, opts ...Option) error {
	if err == nil {
		return nil
	}

	var cliErr *CLIError
	if errors.As(err, &cliErr) {
		return err
	}

	messenger := getMessenger(opts)

	var pe *ParseError
	switch {
	case errors.As(err, &pe):
		msg, suggestion := messenger.ParseErrorMessage(pe.Path, pe.Line)
		return &CLIError{
			Err:        err,
			Message:    msg,
			Details:    pe.Error(),
			Suggestion: suggestion,
		}
	case IsLoad(err):
		msg, suggestion := messenger.LoadErrorMessage()
		return &CLIError{
			Err:        err,
			Message:    msg,
			Details:    err.Error(),
			Suggestion: suggestion,
		}
	case IsEnvVar(err):
		msg, suggestion := messenger.EnvVarMessage()
		return &CLIError{
			Err:        err,
			Message:    msg,
			Details:    err.Error(),
			Suggestion: suggestion,
		}
	case IsTypeParse(err):
		msg, suggestion := messenger.TypeParseMessage()
		return &CLIError{
			Err:        err,
			Message:    msg,
			Details:    err.Error(),
			Suggestion: suggestion,
		}
	case IsNotFound(err):
		msg, suggestion := messenger.MissingValueMessage()
		return &CLIError{
			Err:        err,
			Message:    msg,
			Suggestion: suggestion,
		}
	}

	return err
}

// NewMissingValuesError creates an error listing the settings that could not be resolved.
func NewMissingValuesError(failures string, opts ...Option) error {
	messenger := getMessenger(opts)
	msg, suggestion := messenger.MissingValueMessage()
	return &CLIError{
		Err:        ErrNotFound,
		Message:    msg,
		Details:    strings.TrimRight(failures, "\n"),
		Suggestion: suggestion,
	}
}
