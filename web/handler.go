package web

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/webroute/negotiate"
	"github.com/dmitrymomot/webroute/route"
)

// ErrorHandler converts routing, negotiation and rendering errors into
// a response of last resort. It must write to the response writer
// itself.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

const defaultMaxDelegations = 32

// handler drives a route.Router over incoming requests.
type handler struct {
	router         *route.Router
	errorHandler   ErrorHandler
	log            *slog.Logger
	maxDelegations int
}

// Option configures the adapter during creation.
type Option func(*handler)

// WithErrorHandler sets a custom error handler for the adapter.
func WithErrorHandler(h ErrorHandler) Option {
	return func(a *handler) {
		if h != nil {
			a.errorHandler = h
		}
	}
}

// WithLogger sets the logger used for rendering and adaptation
// failures. Defaults to slog.Default.
func WithLogger(log *slog.Logger) Option {
	return func(a *handler) {
		if log != nil {
			a.log = log
		}
	}
}

// WithMaxDelegations overrides the delegation depth limit.
func WithMaxDelegations(n int) Option {
	return func(a *handler) {
		if n > 0 {
			a.maxDelegations = n
		}
	}
}

// Handler adapts a router into a standard http.Handler. It splits the
// request path into segments, matches against the router, follows
// handler delegations to nested routers and renders the terminal
// value. Routing exhaustion renders 404 and failed negotiation 406;
// other errors go through the error handler.
func Handler(ro *route.Router, opts ...Option) http.Handler {
	h := &handler{
		router:         ro,
		errorHandler:   defaultErrorHandler,
		log:            slog.Default(),
		maxDelegations: defaultMaxDelegations,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ww := &responseWriter{ResponseWriter: w}
	segments := splitPath(r.URL.Path)

	res, remaining, err := h.router.Match(r, segments)
	for depth := 0; err == nil; depth++ {
		next, ok := res.Delegated()
		if !ok {
			break
		}
		if depth >= h.maxDelegations {
			err = ErrTooManyDelegations
			break
		}
		res, remaining, err = next.Match(r, remaining)
	}
	if err != nil {
		h.fail(ww, r, err)
		return
	}

	resp, err := h.adapt(res.Value(), r)
	if err != nil {
		h.fail(ww, r, err)
		return
	}
	if err := resp(ww, r); err != nil {
		h.log.ErrorContext(r.Context(), "response rendering failed",
			slog.String("path", r.URL.Path),
			slog.Any("error", err))
		if !ww.Written() {
			h.errorHandler(ww, r, err)
		}
	}
}

// adapt converts a terminal handler value into a renderable response.
// Adaptions are tried in order: nil, Response, templ component,
// negotiator.
func (h *handler) adapt(v any, r *http.Request) (Response, error) {
	switch t := v.(type) {
	case nil:
		return NotFound(), nil
	case Response:
		return t, nil
	case templ.Component:
		if resp := Templ(t); resp != nil {
			return resp, nil
		}
		return NotFound(), nil
	case *negotiate.Negotiator:
		return h.negotiate(t, r)
	}
	return nil, fmt.Errorf("%w: %T", ErrUnsupportedResult, v)
}

// negotiate selects a representation for the request's Accept header.
// The negotiated content type is set before the representation
// renders, so representations that set their own Content-Type win.
func (h *handler) negotiate(n *negotiate.Negotiator, r *http.Request) (Response, error) {
	ct, rep, err := n.Negotiate(r.Header.Get("Accept"), r)
	if err != nil {
		return nil, err
	}
	inner, err := h.adapt(rep, r)
	if err != nil {
		return nil, err
	}
	return func(w http.ResponseWriter, r *http.Request) error {
		w.Header().Set("Content-Type", ct)
		return inner(w, r)
	}, nil
}

func (h *handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	// Routing exhaustion and failed negotiation are normal outcomes,
	// everything else is worth a log line.
	if !errors.Is(err, route.ErrNoRoute) && !errors.Is(err, negotiate.ErrNotAcceptable) {
		h.log.ErrorContext(r.Context(), "request handling failed",
			slog.String("path", r.URL.Path),
			slog.Any("error", err))
	}
	h.errorHandler(w, r, err)
}

// defaultErrorHandler maps the toolkit's structured failures onto
// plain status responses.
func defaultErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, route.ErrNoRoute):
		_ = NotFound()(w, r)
	case errors.Is(err, negotiate.ErrNotAcceptable):
		_ = NotAcceptable()(w, r)
	default:
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// splitPath breaks a URL path into segments. The root path yields no
// segments (the null route) while a trailing slash yields a trailing
// empty segment (the empty route).
func splitPath(path string) []string {
	if path == "" || path == "/" {
		return nil
	}
	return strings.Split(strings.TrimPrefix(path, "/"), "/")
}
