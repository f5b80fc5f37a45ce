// Package errors defines the error kinds shared by every lazyconf package and
// the CLI error patterns used to present them.
//
// Error kinds:
//   - ErrParse: a configuration file is malformed (see ParseError for the line)
//   - ErrNotFound: a key resolved to nothing, or a brace expression is malformed
//   - ErrLoad: a configuration file could not be opened or read
//   - ErrEnvVar: a referenced environment variable does not exist
//   - ErrTypeParse: a value could not be converted to the requested type
//
// Core types:
//   - ParseError: carries the file path and 0-based line of a parse failure
//   - CLIError: wraps errors with message, suggestion, and details
//   - ErrorMessenger: interface for customizing error messages
//
// Example usage:
//
//	if err := lazyconf.Load(path, &list); err != nil {
//	    return errors.Wrap(err)
//	}
//
//	// Check error kinds
//	if errors.IsParse(err) {
//	    // Point the user at the broken line
//	}
package errors
