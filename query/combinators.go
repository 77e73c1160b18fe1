package query

import "net/url"

// Parser processes the list of raw values supplied for one query
// argument. ok is false when no usable value was present.
type Parser func(values []string) (any, bool)

// One builds a Parser that applies parse to the first value of a query
// argument. Absent arguments and unparseable values yield no result.
func One[T any](parse func(string) (T, bool)) Parser {
	return func(values []string) (any, bool) {
		if len(values) == 0 {
			return nil, false
		}
		v, ok := parse(values[0])
		if !ok {
			return nil, false
		}
		return v, true
	}
}

// Many builds a Parser that applies parse to every value of a query
// argument, dropping values that fail to parse. An absent argument
// yields an empty list, never a missing result.
func Many[T any](parse func(string) (T, bool)) Parser {
	return func(values []string) (any, bool) {
		out := make([]T, 0, len(values))
		for _, value := range values {
			if v, ok := parse(value); ok {
				out = append(out, v)
			}
		}
		return out, true
	}
}

// Parse maps a parser table over query arguments. Every key in
// expected appears in the result; arguments that yielded no result map
// to nil so callers can distinguish "absent" from "parsed".
func Parse(args url.Values, expected map[string]Parser) map[string]any {
	out := make(map[string]any, len(expected))
	for key, parse := range expected {
		v, ok := parse(args[key])
		if !ok {
			out[key] = nil
			continue
		}
		out[key] = v
	}
	return out
}
