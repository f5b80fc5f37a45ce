package errors

import (
	"errors"
	"fmt"
)

// Error kinds returned by lazyconf operations.
var (
	// ErrParse indicates a configuration file is malformed.
	ErrParse = errors.New("parse error")

	// ErrNotFound indicates a key resolved to nothing across every candidate.
	ErrNotFound = errors.New("not found")

	// ErrLoad indicates a configuration file could not be opened or read.
	ErrLoad = errors.New("load error")

	// ErrEnvVar indicates a referenced environment variable does not exist.
	ErrEnvVar = errors.New("environment variable error")

	// ErrTypeParse indicates a value could not be converted to the requested type.
	ErrTypeParse = errors.New("type parse error")
)

// Brace expression errors. Both are ErrNotFound kinds.
var (
	// ErrUnterminatedEscape indicates a backslash was the last character.
	ErrUnterminatedEscape = fmt.Errorf("%w: unterminated escape", ErrNotFound)

	// ErrUnbalancedBrace indicates an unmatched '{' or '}'.
	ErrUnbalancedBrace = fmt.Errorf("%w: unbalanced brace", ErrNotFound)
)

// ParseError reports where a configuration file failed to parse.
type ParseError struct {
	Path    string // File path, empty when parsing in-memory text
	Line    int    // 0-based line index
	Message string // What was wrong with the line
	Err     error  // Underlying decoder error, if any
}

func (e *ParseError) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if msg == "" {
		msg = "malformed line"
	}
	if e.Path != "" {
		return fmt.Sprintf("parse error in %s at line %d: %s", e.Path, e.Line, msg)
	}
	return fmt.Sprintf("parse error at line %d: %s", e.Line, msg)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is reports ParseError as an ErrParse kind.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// NewParseError creates a ParseError for an in-memory parse.
func NewParseError(line int, msg string) *ParseError {
	return &ParseError{Line: line, Message: msg}
}

// WithPath returns err with the file path attached when it is a ParseError.
// Other errors are returned unchanged.
func WithPath(err error, path string) error {
	var pe *ParseError
	if errors.As(err, &pe) {
		cp := *pe
		cp.Path = path
		return &cp
	}
	return err
}

// LoadError wraps an I/O failure so it matches both ErrLoad and the
// underlying error (e.g. fs.ErrNotExist).
func LoadError(path string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrLoad, path, err)
}

// EnvVarError reports a missing environment variable.
func EnvVarError(name string) error {
	return fmt.Errorf("%w: %q is not set", ErrEnvVar, name)
}
