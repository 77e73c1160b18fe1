package query

import (
	"mime"
	"net/http"
	"strings"

	"golang.org/x/text/encoding/htmlindex"
)

// ContentCharset extracts the charset parameter from a Content-Type
// header, defaulting to UTF-8 when the header, the parameter or a
// parseable media type is absent.
func ContentCharset(h http.Header) string {
	ct := h.Get("Content-Type")
	if ct == "" {
		return "utf-8"
	}
	_, params, err := mime.ParseMediaType(ct)
	if err != nil {
		return "utf-8"
	}
	if cs := params["charset"]; cs != "" {
		return cs
	}
	return "utf-8"
}

// TextIn builds a parser that decodes values from the given charset
// into UTF-8 text. Charset names are resolved through the WHATWG
// encoding index, so common aliases like "latin1" work. Unknown
// charsets and undecodable input do not parse.
func TextIn(charset string) func(string) (string, bool) {
	return func(value string) (string, bool) {
		switch strings.ToLower(strings.TrimSpace(charset)) {
		case "", "utf-8", "utf8", "us-ascii", "ascii":
			return value, true
		}
		enc, err := htmlindex.Get(charset)
		if err != nil {
			return "", false
		}
		decoded, err := enc.NewDecoder().String(value)
		if err != nil {
			return "", false
		}
		return decoded, true
	}
}
