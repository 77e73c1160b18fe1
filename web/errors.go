package web

import "errors"

// Error variables define adapter failures beyond the routing and
// negotiation errors re-surfaced from their own packages.
var (
	// ErrTooManyDelegations guards against delegation cycles between
	// routers: matching aborts once the delegation depth limit is
	// reached.
	ErrTooManyDelegations = errors.New("route delegation depth exceeded")

	// ErrUnsupportedResult indicates a terminal handler value the
	// adapter cannot convert into a response.
	ErrUnsupportedResult = errors.New("unsupported handler result")
)
