package harness

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/qa-contracts/reqres-contract-tests/framework"
)

const (
	formContentType = "application/x-www-form-urlencoded"
	requestIDHeader = "X-Request-Id"
	maxLoggedBody   = 2000
)

// Client sends requests to the service under test. It holds no per-test state, so a
// single Client can be shared by all tests; use WithLogger to get a copy that writes to a
// particular test's debug output.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	headers    http.Header
	logger     framework.Logger
}

// Option is a configuration option for New.
type Option func(*Client)

// WithHTTPClient specifies the underlying HTTP client. The default is http.DefaultClient.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithHeader adds a header to every request. This is how credentials such as an API key
// are passed through to the service.
func WithHeader(name, value string) Option {
	return func(c *Client) {
		c.headers.Add(name, value)
	}
}

// WithLogger specifies where request and response details are logged.
func WithLogger(logger framework.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates a Client for the service at the specified base URL, which must be an
// absolute http or https URL. It may include a path prefix.
func New(baseURL string, options ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", baseURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("base URL %q must be an absolute http or https URL", baseURL)
	}
	if u.RawQuery != "" || u.Fragment != "" {
		return nil, fmt.Errorf("base URL %q may not contain a query string or fragment", baseURL)
	}
	u.Path = strings.TrimSuffix(u.Path, "/")
	u.RawPath = ""

	c := &Client{
		baseURL:    u,
		httpClient: http.DefaultClient,
		headers:    make(http.Header),
		logger:     framework.NullLogger(),
	}
	for _, o := range options {
		o(c)
	}
	return c, nil
}

// BaseURL returns the base URL of the service, without a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// WithLogger returns a copy of the Client that logs to the specified logger.
func (c *Client) WithLogger(logger framework.Logger) *Client {
	c1 := *c
	if logger == nil {
		logger = framework.NullLogger()
	}
	c1.logger = logger
	return &c1
}

// Get sends a GET request with optional query parameters.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, Request{Method: http.MethodGet, Path: path, Query: query})
}

// Post sends a POST request with a form-encoded body.
func (c *Client) Post(ctx context.Context, path string, form url.Values) (*Response, error) {
	return c.Do(ctx, Request{Method: http.MethodPost, Path: path, Form: form})
}

// Put sends a PUT request with a form-encoded body.
func (c *Client) Put(ctx context.Context, path string, form url.Values) (*Response, error) {
	return c.Do(ctx, Request{Method: http.MethodPut, Path: path, Form: form})
}

// Patch sends a PATCH request with a form-encoded body.
func (c *Client) Patch(ctx context.Context, path string, form url.Values) (*Response, error) {
	return c.Do(ctx, Request{Method: http.MethodPatch, Path: path, Form: form})
}

// Delete sends a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, Request{Method: http.MethodDelete, Path: path})
}

// Do sends a request and reads the entire response.
//
// An error is returned without sending anything if the request is malformed. If the
// request cannot be completed, the error is a *TransportError. An HTTP error status is not
// an error.
func (c *Client) Do(ctx context.Context, r Request) (*Response, error) {
	if err := r.validate(); err != nil {
		return nil, err
	}
	target := c.resolve(r)

	var body io.Reader
	var encodedForm string
	if r.Form != nil {
		encodedForm = r.Form.Encode()
		body = strings.NewReader(encodedForm)
	}
	req, err := http.NewRequestWithContext(ctx, r.Method, target, body)
	if err != nil {
		return nil, err
	}
	for name, values := range c.headers {
		for _, v := range values {
			req.Header.Add(name, v)
		}
	}
	if r.Form != nil {
		req.Header.Set("Content-Type", formContentType)
	}
	req.Header.Set("Accept", "application/json")
	requestID := uuid.NewString()
	req.Header.Set(requestIDHeader, requestID)

	if encodedForm != "" {
		c.logger.Printf(">> %s %s [%s] form: %s", r.Method, target, requestID, encodedForm)
	} else {
		c.logger.Printf(">> %s %s [%s]", r.Method, target, requestID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Printf("<< [%s] transport error: %s", requestID, err)
		return nil, &TransportError{Method: r.Method, URL: target, Err: unwrapURLError(err)}
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Printf("<< [%s] error reading body: %s", requestID, err)
		return nil, &TransportError{Method: r.Method, URL: target, Err: fmt.Errorf("reading response body: %w", err)}
	}
	c.logger.Printf("<< [%s] %d %s", requestID, resp.StatusCode, truncate(string(raw)))

	return newResponse(resp, raw), nil
}

// Probe checks that the service is reachable by sending a GET request to the base URL.
// Any HTTP status counts as reachable.
func (c *Client) Probe(ctx context.Context) error {
	target := c.baseURL.String() + "/"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return err
	}
	for name, values := range c.headers {
		for _, v := range values {
			req.Header.Add(name, v)
		}
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &TransportError{Method: http.MethodGet, URL: target, Err: unwrapURLError(err)}
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
	c.logger.Printf("Service at %s responded with status %d", c.baseURL, resp.StatusCode)
	return nil
}

func (c *Client) resolve(r Request) string {
	u := *c.baseURL
	p, _ := url.Parse(r.Path) // already validated
	u.Path = c.baseURL.Path + p.Path
	u.RawPath = c.baseURL.EscapedPath() + p.EscapedPath()
	if len(r.Query) > 0 {
		u.RawQuery = r.Query.Encode()
	}
	return u.String()
}

// The http.Client wraps errors in a *url.Error that repeats the method and URL, which
// TransportError already reports.
func unwrapURLError(err error) error {
	var ue *url.Error
	if errors.As(err, &ue) {
		return ue.Err
	}
	return err
}

func truncate(s string) string {
	if len(s) <= maxLoggedBody {
		return s
	}
	return s[:maxLoggedBody] + "..."
}
