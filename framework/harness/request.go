package harness

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// Request describes a single call to the service under test.
type Request struct {
	Method string

	// Path is relative to the base URL and must begin with "/". It may not contain a query
	// string or fragment; use Query instead.
	Path string

	// Query is appended to the URL as a query string.
	Query url.Values

	// Form, if non-nil, is sent as an application/x-www-form-urlencoded body.
	Form url.Values
}

func (r Request) validate() error {
	switch r.Method {
	case http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
	default:
		return fmt.Errorf("unsupported request method %q", r.Method)
	}
	if !strings.HasPrefix(r.Path, "/") || strings.HasPrefix(r.Path, "//") {
		return fmt.Errorf("request path %q must begin with a single \"/\"", r.Path)
	}
	if strings.ContainsAny(r.Path, "?#") {
		return fmt.Errorf("request path %q may not contain a query string or fragment", r.Path)
	}
	if _, err := url.Parse(r.Path); err != nil {
		return fmt.Errorf("invalid request path %q: %w", r.Path, err)
	}
	return nil
}

func (r Request) String() string {
	s := r.Method + " " + r.Path
	if len(r.Query) > 0 {
		s += "?" + r.Query.Encode()
	}
	return s
}
