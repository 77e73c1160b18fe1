// Package negotiate selects a response representation from an ordered
// set of server-supported content types ranked against the client's
// Accept header preferences (RFC 7231 media ranges with quality
// weights).
//
// # Features
//
//   - Ordered content type offers with per-type render functions
//   - Quality weights, wildcard media ranges and specificity
//     tie-breaking (exact > type/* > */*)
//   - Optional default content type when nothing is acceptable
//   - Deterministic selection, immutable and concurrency-safe
//
// # Usage
//
//	import "github.com/dmitrymomot/webroute/negotiate"
//
//	n := negotiate.New(
//		negotiate.Offer("application/json", renderJSON),
//		negotiate.Offer("text/html", renderHTML),
//		negotiate.WithDefault("text/html"),
//	)
//
//	ct, rep, err := n.Negotiate(r.Header.Get("Accept"), r)
//	if errors.Is(err, negotiate.ErrNotAcceptable) {
//		// respond 406
//	}
//
// Selection walks the client's preferences from most to least
// preferred and picks the first one a registered offer satisfies; at
// equal weight an exact media type beats a wildcard. Renderer errors
// pass through Negotiate untouched, so rendering failures stay
// distinguishable from negotiation failures.
package negotiate
