package query

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Text parses a value as text. It never fails and exists so parser
// tables read uniformly next to Integer, Boolean and friends.
func Text(value string) (string, bool) {
	return value, true
}

// Integer parses a value as a base-10 integer, tolerating surrounding
// whitespace.
func Integer(value string) (int64, bool) {
	v, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Float parses a value as a floating point number, tolerating
// surrounding whitespace.
func Float(value string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Boolean parses a value as a boolean. "yes", "1" and "true" parse as
// true, "no", "0" and "false" as false, ignoring case and surrounding
// whitespace. Anything else does not parse.
func Boolean(value string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "yes", "1", "true":
		return true, true
	case "no", "0", "false":
		return false, true
	}
	return false, false
}

// Delimited builds a parser that splits a value on the delimiter and
// applies parse to each piece, dropping pieces that fail to parse. An
// empty value parses to an empty list.
func Delimited[T any](parse func(string) (T, bool), delimiter string) func(string) ([]T, bool) {
	return func(value string) ([]T, bool) {
		if value == "" {
			return []T{}, true
		}
		pieces := strings.Split(value, delimiter)
		out := make([]T, 0, len(pieces))
		for _, piece := range pieces {
			if v, ok := parse(piece); ok {
				out = append(out, v)
			}
		}
		return out, true
	}
}

// Timestamp parses a value as a POSIX timestamp in seconds, keeping
// fractional seconds. The result is in UTC.
func Timestamp(value string) (time.Time, bool) {
	f, ok := Float(value)
	if !ok {
		return time.Time{}, false
	}
	sec, frac := math.Modf(f)
	return time.Unix(int64(sec), int64(frac*float64(time.Second))).UTC(), true
}

// TimestampMs parses a value as a POSIX timestamp in milliseconds.
// The result is in UTC.
func TimestampMs(value string) (time.Time, bool) {
	f, ok := Float(value)
	if !ok {
		return time.Time{}, false
	}
	return time.Unix(0, int64(f*float64(time.Millisecond))).UTC(), true
}
