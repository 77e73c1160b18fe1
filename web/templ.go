package web

import (
	"fmt"
	"net/http"

	"github.com/a-h/templ"
)

// Templ creates a text/html response from a templ component with 200
// OK status. The component is rendered with the request's context, so
// it can access request-scoped values.
func Templ(component templ.Component) Response {
	return TemplWithStatus(component, http.StatusOK)
}

// TemplWithStatus creates a text/html response from a templ component
// with a custom status code. Useful for error pages.
func TemplWithStatus(component templ.Component, status int) Response {
	if component == nil {
		return nil
	}
	return func(w http.ResponseWriter, r *http.Request) error {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if status == 0 {
			status = http.StatusOK
		}
		w.WriteHeader(status)
		if err := component.Render(r.Context(), w); err != nil {
			return fmt.Errorf("templ component render error: %w", err)
		}
		return nil
	}
}
