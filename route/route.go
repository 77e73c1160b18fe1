package route

import (
	"fmt"
	"net/http"
	"strings"
)

// Params holds the values bound by a declaration's matchers, keyed by
// matcher name. Names are expected to be unique within a declaration;
// on collision the later matcher wins.
type Params map[string]any

// String returns the named parameter as text, or "" when it is absent
// or was bound by a non-text matcher.
func (p Params) String(key string) string {
	s, _ := p[key].(string)
	return s
}

// Int returns the named parameter as an integer. ok is false when the
// parameter is absent or was bound by a non-integer matcher.
func (p Params) Int(key string) (int64, bool) {
	v, ok := p[key].(int64)
	return v, ok
}

// Handler is invoked with the request and the parameters bound by the
// matched declaration.
type Handler func(r *http.Request, params Params) Result

// Result is what a route handler produces: either a terminal value for
// the caller to adapt into a response, or a delegation handing the
// unconsumed path segments to a nested router.
type Result struct {
	value    any
	delegate *Router
}

// Terminal wraps a final handler value.
func Terminal(v any) Result {
	return Result{value: v}
}

// Delegate hands the remaining path segments to a nested router. The
// caller is responsible for re-invoking Match on it.
func Delegate(next *Router) Result {
	return Result{delegate: next}
}

// Value returns the terminal value. It is nil when the result
// delegates to a nested router.
func (res Result) Value() any {
	return res.value
}

// Delegated returns the nested router to continue matching with, if
// the handler delegated.
func (res Result) Delegated() (*Router, bool) {
	return res.delegate, res.delegate != nil
}

// component is a tagged variant over a literal segment and a dynamic
// matcher. matcher != nil marks the dynamic case.
type component struct {
	literal string
	matcher Matcher
}

type declaration struct {
	components []component
	handler    Handler
	partial    bool
}

// match applies the declaration's components positionally against the
// path segments. It reports the bound parameters and the unconsumed
// trailing segments, always empty for exact declarations.
func (d declaration) match(r *http.Request, segments []string) (Params, []string, bool) {
	if d.partial {
		if len(segments) < len(d.components) {
			return nil, nil, false
		}
	} else if len(segments) != len(d.components) {
		return nil, nil, false
	}

	params := make(Params, len(d.components))
	for i, c := range d.components {
		if c.matcher != nil {
			v, ok := c.matcher.Match(r, segments[i])
			if !ok {
				return nil, nil, false
			}
			params[c.matcher.Name()] = v
			continue
		}
		if c.literal != segments[i] {
			return nil, nil, false
		}
	}

	return params, segments[len(d.components):], true
}

// pattern reconstructs a human-readable path for introspection.
func (d declaration) pattern() string {
	parts := make([]string, len(d.components))
	for i, c := range d.components {
		if c.matcher != nil {
			parts[i] = "{" + c.matcher.Name() + "}"
		} else {
			parts[i] = c.literal
		}
	}
	p := "/" + strings.Join(parts, "/")
	if d.partial {
		if !strings.HasSuffix(p, "/") {
			p += "/"
		}
		p += "*"
	}
	return p
}

// normalizeComponents converts registration arguments into components.
// As a convenience a single string argument is split on "/", so routes
// can be written as one path literal: "/" yields the empty route and
// an absent component list the null route.
func normalizeComponents(components []any) []component {
	if len(components) == 1 {
		if s, ok := components[0].(string); ok {
			return literalComponents(s)
		}
	}

	out := make([]component, 0, len(components))
	for _, c := range components {
		switch v := c.(type) {
		case string:
			out = append(out, component{literal: v})
		case Matcher:
			out = append(out, component{matcher: v})
		default:
			panic(fmt.Errorf("%w, got %T", ErrInvalidComponent, c))
		}
	}
	return out
}

func literalComponents(path string) []component {
	parts := strings.Split(strings.TrimPrefix(path, "/"), "/")
	out := make([]component, len(parts))
	for i, part := range parts {
		out[i] = component{literal: part}
	}
	return out
}
