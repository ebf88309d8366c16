package harness

import "fmt"

// TransportError means that a request could not be completed: the connection failed, or
// the response could not be read. It never represents an HTTP error status.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s failed: %s", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
