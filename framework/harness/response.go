package harness

import (
	"bytes"
	"encoding/json"
	"net/http"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// Response is the result of a completed HTTP exchange.
type Response struct {
	StatusCode int
	Header     http.Header

	// Raw is the response body exactly as received.
	Raw []byte

	// Body is the parsed JSON body. It is a null value if the body was empty or was not
	// valid JSON.
	Body ldvalue.Value
}

func newResponse(resp *http.Response, raw []byte) *Response {
	body := ldvalue.Null()
	if trimmed := bytes.TrimSpace(raw); len(trimmed) > 0 && json.Valid(trimmed) {
		body = ldvalue.Parse(trimmed)
	}
	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Raw:        raw,
		Body:       body,
	}
}

// IsJSON returns true if the response body was valid JSON.
func (r *Response) IsJSON() bool {
	trimmed := bytes.TrimSpace(r.Raw)
	return len(trimmed) > 0 && json.Valid(trimmed)
}
