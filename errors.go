package lazyconf

import lzerrors "github.com/randalmurphal/lazyconf/errors"

// Error kinds, re-exported from the errors subpackage so callers can match
// with errors.Is without a second import.
var (
	// ErrParse indicates a configuration file is malformed.
	ErrParse = lzerrors.ErrParse

	// ErrNotFound indicates no candidate produced a value.
	ErrNotFound = lzerrors.ErrNotFound

	// ErrLoad indicates a configuration file could not be opened or read.
	ErrLoad = lzerrors.ErrLoad

	// ErrEnvVar indicates a referenced environment variable does not exist.
	ErrEnvVar = lzerrors.ErrEnvVar

	// ErrTypeParse indicates a value could not be converted to the requested type.
	ErrTypeParse = lzerrors.ErrTypeParse
)

// ParseError reports the file and 0-based line where parsing failed.
type ParseError = lzerrors.ParseError
