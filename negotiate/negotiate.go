package negotiate

import (
	"fmt"
	"net/http"
	"strings"
)

// RenderFunc produces the representation for a negotiated content
// type. Errors are propagated to the caller unmodified; they are
// rendering failures, not negotiation failures.
type RenderFunc func(r *http.Request) (any, error)

type offer struct {
	contentType string
	render      RenderFunc
}

// Negotiator selects a response representation from an ordered set of
// server-supported content types ranked against the client's Accept
// preferences. It is immutable after New and safe to share across
// concurrent request evaluations.
type Negotiator struct {
	offers   []offer
	byType   map[string]int
	fallback string
}

// Option configures a Negotiator during creation.
type Option func(*Negotiator)

// Offer registers a renderer for a content type. Registration order is
// significant: wildcard preferences select the earliest registered
// offer. Content types are compared case-insensitively.
func Offer(contentType string, render RenderFunc) Option {
	return func(n *Negotiator) {
		ct := strings.ToLower(strings.TrimSpace(contentType))
		if render == nil {
			panic(fmt.Errorf("%w: %s", ErrNilRenderer, ct))
		}
		if _, exists := n.byType[ct]; exists {
			panic(fmt.Errorf("%w: %s", ErrDuplicateOffer, ct))
		}
		n.byType[ct] = len(n.offers)
		n.offers = append(n.offers, offer{contentType: ct, render: render})
	}
}

// WithDefault sets the content type selected when negotiation finds no
// acceptable offer. It must name a registered offer; New validates
// this and panics otherwise.
func WithDefault(contentType string) Option {
	return func(n *Negotiator) {
		n.fallback = strings.ToLower(strings.TrimSpace(contentType))
	}
}

// New creates a Negotiator from ordered offers and options. It panics
// on duplicate offers, nil renderers and a default without a matching
// offer; all are programmer errors at application setup.
func New(opts ...Option) *Negotiator {
	n := &Negotiator{byType: make(map[string]int)}
	for _, opt := range opts {
		opt(n)
	}
	if n.fallback != "" {
		if _, ok := n.byType[n.fallback]; !ok {
			panic(fmt.Errorf("%w: %s", ErrUnknownDefault, n.fallback))
		}
	}
	return n
}

// ContentTypes returns the registered content types in registration
// order.
func (n *Negotiator) ContentTypes() []string {
	out := make([]string, len(n.offers))
	for i, o := range n.offers {
		out[i] = o.contentType
	}
	return out
}

// Negotiate selects the best supported content type for the Accept
// header value and invokes its renderer with the request. An empty
// header accepts anything and falls through to the first registered
// offer. When nothing matches, the configured default is used if
// present, otherwise ErrNotAcceptable is returned. Renderer errors are
// returned unmodified alongside the selected content type.
func (n *Negotiator) Negotiate(acceptHeader string, r *http.Request) (string, any, error) {
	ct, ok := n.pick(acceptHeader)
	if !ok {
		return "", nil, ErrNotAcceptable
	}
	rep, err := n.offers[n.byType[ct]].render(r)
	if err != nil {
		return ct, nil, err
	}
	return ct, rep, nil
}

// pick walks the sorted preference list and returns the first
// registered content type satisfying a preference.
func (n *Negotiator) pick(acceptHeader string) (string, bool) {
	if len(n.offers) == 0 {
		return "", false
	}
	for _, pref := range parseAccept(acceptHeader) {
		for _, o := range n.offers {
			if matches(o.contentType, pref.mediaRange) {
				return o.contentType, true
			}
		}
	}
	if n.fallback != "" {
		return n.fallback, true
	}
	return "", false
}
