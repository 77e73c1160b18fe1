package web

import (
	"encoding/json"
	"net/http"
)

// Response renders an HTTP response. It sets headers, status code and
// writes the body; rendering errors are handled by the adapter's error
// handler.
type Response func(w http.ResponseWriter, r *http.Request) error

// String creates a text/plain response with 200 OK status.
func String(content string) Response {
	return StringWithStatus(content, http.StatusOK)
}

// StringWithStatus creates a text/plain response with custom status code.
func StringWithStatus(content string, status int) Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		if status == 0 {
			status = http.StatusOK
		}
		w.WriteHeader(status)
		if content != "" {
			_, err := w.Write([]byte(content))
			return err
		}
		return nil
	}
}

// HTML creates a text/html response with 200 OK status.
func HTML(content string) Response {
	return HTMLWithStatus(content, http.StatusOK)
}

// HTMLWithStatus creates a text/html response with custom status code.
func HTMLWithStatus(content string, status int) Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if status == 0 {
			status = http.StatusOK
		}
		w.WriteHeader(status)
		if content != "" {
			_, err := w.Write([]byte(content))
			return err
		}
		return nil
	}
}

// JSON creates an application/json response with 200 OK status.
// Encoding is performed directly to the response writer.
func JSON(v any) Response {
	return JSONWithStatus(v, http.StatusOK)
}

// JSONWithStatus creates an application/json response with custom
// status code. No body is written for 204 and 304 per the HTTP spec.
func JSONWithStatus(v any, status int) Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		if status == 0 {
			status = http.StatusOK
		}
		w.WriteHeader(status)
		switch status {
		case http.StatusNoContent, http.StatusNotModified:
			return nil
		}
		return json.NewEncoder(w).Encode(v)
	}
}

// Bytes creates a response with custom content type and 200 OK status.
func Bytes(content []byte, contentType string) Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		if contentType != "" {
			w.Header().Set("Content-Type", contentType)
		}
		w.WriteHeader(http.StatusOK)
		if len(content) > 0 {
			_, err := w.Write(content)
			return err
		}
		return nil
	}
}

// Status creates an empty response with the specified status code.
func Status(code int) Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		w.WriteHeader(code)
		return nil
	}
}

// NoContent creates a 204 No Content response.
func NoContent() Response {
	return Status(http.StatusNoContent)
}

// Redirect creates a 302 Found redirect to the given URL.
func Redirect(url string) Response {
	return RedirectWithStatus(url, http.StatusFound)
}

// RedirectWithStatus creates a redirect with a custom 3xx status code.
func RedirectWithStatus(url string, status int) Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		http.Redirect(w, r, url, status)
		return nil
	}
}

// NotFound creates the response rendered when routing is exhausted.
func NotFound() Response {
	return StringWithStatus("Resource not found", http.StatusNotFound)
}

// NotAcceptable creates an empty 406 Not Acceptable response, rendered
// when content negotiation fails.
func NotAcceptable() Response {
	return Status(http.StatusNotAcceptable)
}
