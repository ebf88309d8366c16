// Package framework contains the low-level implementation of test harness infrastructure
// that can be reused for different kinds of API contract tests. The base package contains
// shared types such as Logger; other components are in subpackages:
//
// 1. harness: an HTTP client adapter that sends requests to the service under test,
// relative to a configurable base URL, and returns structured responses.
//
// 2. ldtest: a general notion of a test scope which is similar to Go's testing.T,
// allowing pieces of test logic to be associated with a test identifier and to accumulate
// success/failure results, outside of the Go test runner.
//
// 3. expect and schema: checks that compare a response against literal expectations or
// against a named JSON Schema document, returning descriptive errors.
//
// The domain-specific code that knows what is being tested is responsible for building
// the requests and choosing which checks apply.
package framework
