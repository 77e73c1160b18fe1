package route

import "net/http"

// Router holds an ordered collection of route declarations. Routes are
// registered once at application setup; Match never mutates the
// router, so a single instance is safe to share across concurrent
// request evaluations without locking.
type Router struct {
	routes []declaration
}

// New creates an empty router.
func New() *Router {
	return &Router{}
}

// Route registers a handler matched against the request path exactly:
// the number of components must equal the number of path segments.
// Components are string literals or Matchers; a single string
// containing "/" is split into literal components. Registering with no
// components declares the null route, which matches only the empty
// path. Returns the router for chaining.
//
// Route panics on a nil handler or a component that is neither a
// string nor a Matcher; both are programmer errors.
func (ro *Router) Route(handler Handler, components ...any) *Router {
	return ro.add(handler, components, false)
}

// Subroute registers a handler matched against a request path prefix:
// the components must match the leading path segments and any trailing
// segments are reported back unconsumed, typically to be handed to a
// delegated router. A Subroute with no components matches every path.
//
// Subroute panics on the same programmer errors as Route.
func (ro *Router) Subroute(handler Handler, components ...any) *Router {
	return ro.add(handler, components, true)
}

func (ro *Router) add(handler Handler, components []any, partial bool) *Router {
	if handler == nil {
		panic(ErrNilHandler)
	}
	ro.routes = append(ro.routes, declaration{
		components: normalizeComponents(components),
		handler:    handler,
		partial:    partial,
	})
	return ro
}

// Match finds the first declaration, in registration order, whose
// components all succeed against the path segments and invokes its
// handler. It returns the handler result together with any unconsumed
// trailing segments. A declaration fails as soon as one component
// fails; matching then advances to the next declaration. When every
// declaration has failed Match returns ErrNoRoute and the original
// segments, leaving the final failure behavior to the caller.
func (ro *Router) Match(r *http.Request, segments []string) (Result, []string, error) {
	for _, d := range ro.routes {
		params, remaining, ok := d.match(r, segments)
		if !ok {
			continue
		}
		return d.handler(r, params), remaining, nil
	}
	return Result{}, segments, ErrNoRoute
}

// Routes returns a human-readable pattern for every registered
// declaration, in registration order. Matcher components render as
// "{name}" and subroutes carry a trailing "/*".
func (ro *Router) Routes() []string {
	out := make([]string, len(ro.routes))
	for i, d := range ro.routes {
		out[i] = d.pattern()
	}
	return out
}
