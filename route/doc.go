// Package route matches request paths against ordered route
// declarations and extracts named parameters. A declaration is a
// sequence of path components, either string literals matched for
// structure or Matchers that parse a segment value and bind it by
// name. The first declaration whose components all match wins.
//
// # Features
//
//   - Ordered, first-match-wins route declarations
//   - Exact routes (Route) and prefix routes (Subroute)
//   - Built-in Text, Any, Integer and UUID segment matchers
//   - Custom matchers via the Matcher interface or MatcherFunc
//   - Delegation to nested routers for hierarchical routing
//   - Read-only after setup, safe for concurrent request evaluation
//
// # Basic Usage
//
//	import "github.com/dmitrymomot/webroute/route"
//
//	users := route.New()
//	users.Route(listUsers, "users")
//	users.Route(getUser, "users", route.Integer("id"))
//
//	func getUser(r *http.Request, params route.Params) route.Result {
//		id, _ := params.Int("id")
//		return route.Terminal(web.JSON(lookupUser(id)))
//	}
//
// Matching is driven by the caller, typically the web package's
// adapter, which splits the request path into segments and loops on
// delegation:
//
//	res, remaining, err := users.Match(r, []string{"users", "42"})
//
// # Exact and Prefix Routes
//
// Route requires the path length to equal the component count.
// Subroute matches a prefix and reports trailing segments unconsumed,
// which pairs with delegation to nested routers:
//
//	api := route.New()
//	api.Subroute(func(r *http.Request, _ route.Params) route.Result {
//		return route.Delegate(users)
//	}, "api", "v1")
//
// # Null and Empty Routes
//
// A Route with no components matches only the empty path (the request
// for the router's own location). A Route whose single component is
// the empty string literal matches a path of one empty segment, which
// is how trailing-slash requests present themselves.
package route
