// Package query parses query-argument and segment values into typed Go
// values. Parsing is deliberately forgiving: malformed input degrades
// to "no value" rather than an error, so a bad argument never aborts
// request processing.
//
// # Features
//
//   - Scalar parsers: Text, Integer, Float, Boolean, Timestamp
//   - Delimited list values with a per-piece parser
//   - One/Many combinators over multi-valued query arguments
//   - Parser tables applied to url.Values in one call
//   - Charset-aware text decoding driven by the Content-Type header
//
// # Usage
//
// Decide whether an argument carries one value or many, then compose
// with the expected scalar type:
//
//	import "github.com/dmitrymomot/webroute/query"
//
//	parsed := query.Parse(r.URL.Query(), map[string]query.Parser{
//		"page":  query.One(query.Integer),
//		"tags":  query.Many(query.Text),
//		"since": query.One(query.Timestamp),
//	})
//
// Scalar parsers can also be used directly:
//
//	limit, ok := query.Integer(r.URL.Query().Get("limit"))
package query
