package lazyconf

import (
	"encoding"
	"fmt"
	"strconv"
	"time"
)

// parseAs converts s to T. Supported: string, bool, sized ints and uints,
// floats, time.Duration, and any T whose pointer is an encoding.TextUnmarshaler.
func parseAs[T any](s string) (T, error) {
	var zero T

	var (
		out any
		err error
	)
	switch any(zero).(type) {
	case string:
		out = s
	case bool:
		out, err = strconv.ParseBool(s)
	case int:
		var n int64
		n, err = strconv.ParseInt(s, 10, strconv.IntSize)
		out = int(n)
	case int8:
		var n int64
		n, err = strconv.ParseInt(s, 10, 8)
		out = int8(n)
	case int16:
		var n int64
		n, err = strconv.ParseInt(s, 10, 16)
		out = int16(n)
	case int32:
		var n int64
		n, err = strconv.ParseInt(s, 10, 32)
		out = int32(n)
	case int64:
		out, err = strconv.ParseInt(s, 10, 64)
	case uint:
		var n uint64
		n, err = strconv.ParseUint(s, 10, strconv.IntSize)
		out = uint(n)
	case uint8:
		var n uint64
		n, err = strconv.ParseUint(s, 10, 8)
		out = uint8(n)
	case uint16:
		var n uint64
		n, err = strconv.ParseUint(s, 10, 16)
		out = uint16(n)
	case uint32:
		var n uint64
		n, err = strconv.ParseUint(s, 10, 32)
		out = uint32(n)
	case uint64:
		out, err = strconv.ParseUint(s, 10, 64)
	case float32:
		var f float64
		f, err = strconv.ParseFloat(s, 32)
		out = float32(f)
	case float64:
		out, err = strconv.ParseFloat(s, 64)
	case time.Duration:
		out, err = time.ParseDuration(s)
	default:
		u, ok := any(&zero).(encoding.TextUnmarshaler)
		if !ok {
			return zero, fmt.Errorf("%w: unsupported type %T", ErrTypeParse, zero)
		}
		if err := u.UnmarshalText([]byte(s)); err != nil {
			return zero, fmt.Errorf("%w: %q as %T: %w", ErrTypeParse, s, zero, err)
		}
		return zero, nil
	}

	if err != nil {
		return zero, fmt.Errorf("%w: %q as %T: %w", ErrTypeParse, s, zero, err)
	}
	return out.(T), nil
}
