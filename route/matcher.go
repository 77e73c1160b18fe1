package route

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/dmitrymomot/webroute/query"
)

// Matcher tests and parses a single path segment. Matchers are pure
// and stateless; a single Matcher value may appear in any number of
// declarations and be evaluated concurrently.
type Matcher interface {
	// Name is the parameter name the parsed value is bound to.
	Name() string

	// Match parses one path segment. ok is false when the segment does
	// not apply, which makes the owning declaration fail and matching
	// move on to the next registered route.
	Match(r *http.Request, segment string) (value any, ok bool)
}

// MatcherFunc adapts a closure into a Matcher.
func MatcherFunc(name string, fn func(r *http.Request, segment string) (any, bool)) Matcher {
	return funcMatcher{name: name, fn: fn}
}

type funcMatcher struct {
	name string
	fn   func(r *http.Request, segment string) (any, bool)
}

func (m funcMatcher) Name() string { return m.name }

func (m funcMatcher) Match(r *http.Request, segment string) (any, bool) {
	return m.fn(r, segment)
}

// Text matches any non-empty segment and decodes it using the charset
// declared by the request's Content-Type header, UTF-8 when absent.
// Segments that cannot be decoded do not match.
func Text(name string) Matcher {
	return MatcherFunc(name, func(r *http.Request, segment string) (any, bool) {
		if segment == "" {
			return nil, false
		}
		v, ok := query.TextIn(query.ContentCharset(r.Header))(segment)
		if !ok {
			return nil, false
		}
		return v, true
	})
}

// Any matches any non-empty segment. It is a synonym for Text.
func Any(name string) Matcher {
	return Text(name)
}

// Integer matches a base-10 integer segment. Empty and non-numeric
// segments do not match.
func Integer(name string) Matcher {
	return MatcherFunc(name, func(r *http.Request, segment string) (any, bool) {
		v, err := strconv.ParseInt(segment, 10, 64)
		if err != nil {
			return nil, false
		}
		return v, true
	})
}

// UUID matches a segment containing a UUID in any form accepted by
// uuid.Parse and binds the parsed uuid.UUID.
func UUID(name string) Matcher {
	return MatcherFunc(name, func(r *http.Request, segment string) (any, bool) {
		id, err := uuid.Parse(segment)
		if err != nil {
			return nil, false
		}
		return id, true
	})
}
