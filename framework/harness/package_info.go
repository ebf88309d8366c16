// Package harness contains the HTTP client adapter that the tests use to talk to the
// service under test.
//
// Every request is relative to a single base URL. Write requests carry a form-encoded
// body. Any HTTP status is returned to the caller as a normal Response; only failures to
// complete the exchange at all are reported as a TransportError.
package harness
