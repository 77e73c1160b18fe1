package route

import "errors"

// Error variables define the routing failures surfaced by this package.
var (
	// ErrNoRoute indicates that no registered declaration matched the
	// request path. Callers usually translate it into a 404 response.
	ErrNoRoute = errors.New("no route matched the request path")

	// ErrInvalidComponent indicates a route component that is neither
	// a string literal nor a Matcher. Surfaced as a panic during
	// registration since it is a programmer error.
	ErrInvalidComponent = errors.New("route component must be a string or route.Matcher")

	// ErrNilHandler indicates a route registered without a handler.
	// Surfaced as a panic during registration.
	ErrNilHandler = errors.New("route handler cannot be nil")
)
