package negotiate

import "errors"

// Error variables define negotiation failures and construction errors.
var (
	// ErrNotAcceptable indicates that no server-supported content type
	// satisfied the client's Accept preferences and no default was
	// configured. Callers usually translate it into a 406 response.
	ErrNotAcceptable = errors.New("no acceptable content type")

	// ErrDuplicateOffer indicates two offers registered for the same
	// content type. Surfaced as a panic from New.
	ErrDuplicateOffer = errors.New("duplicate content type offer")

	// ErrNilRenderer indicates an offer registered without a renderer.
	// Surfaced as a panic from New.
	ErrNilRenderer = errors.New("content type renderer cannot be nil")

	// ErrUnknownDefault indicates a default content type that has no
	// registered offer. Surfaced as a panic from New.
	ErrUnknownDefault = errors.New("default content type has no registered offer")
)
