// Package web adapts the route and negotiate packages to net/http. It
// owns the request lifecycle glue the core packages deliberately avoid:
// splitting the URL path into segments, looping on router delegation,
// turning terminal handler values into rendered responses and mapping
// structured failures onto status codes.
//
// # Features
//
//   - http.Handler adapter driving a route.Router per request
//   - Response constructors: String, HTML, JSON, Bytes, Redirect,
//     Status, templ components
//   - Terminal value adaption: nil, Response, templ.Component and
//     *negotiate.Negotiator (negotiated against the Accept header)
//   - Bounded delegation depth to catch router cycles
//   - Configurable error handler and slog-based failure logging
//
// # Usage
//
//	import (
//		"github.com/dmitrymomot/webroute/route"
//		"github.com/dmitrymomot/webroute/web"
//	)
//
//	ro := route.New()
//	ro.Route(func(r *http.Request, params route.Params) route.Result {
//		id, _ := params.Int("id")
//		return route.Terminal(web.JSON(map[string]any{"id": id}))
//	}, "users", route.Integer("id"))
//
//	http.ListenAndServe(":8080", web.Handler(ro))
//
// A handler returning route.Delegate(nested) hands the unconsumed path
// segments to the nested router; the adapter loops until a terminal
// value is produced. Returning a *negotiate.Negotiator as the terminal
// value negotiates the representation against the request's Accept
// header, rendering 406 when negotiation fails.
package web
