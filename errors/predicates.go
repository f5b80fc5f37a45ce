package errors

import (
	"errors"
	"io/fs"
)

// IsNotFound checks if an error means a value or expression could not be resolved.
func IsNotFound(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, ErrNotFound)
}

// IsParse checks if an error is a configuration parse failure.
func IsParse(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, ErrParse)
}

// IsLoad checks if an error is a file load failure.
func IsLoad(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, ErrLoad)
}

// IsMissingFile checks if an error is a load failure for a file that does not exist.
func IsMissingFile(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, ErrLoad) && errors.Is(err, fs.ErrNotExist)
}

// IsEnvVar checks if an error is caused by a missing environment variable.
func IsEnvVar(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, ErrEnvVar)
}

// IsTypeParse checks if an error is a failed type conversion.
func IsTypeParse(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, ErrTypeParse)
}
