// Package ldtest runs a tree of named tests outside of the Go test runner.
//
// A *T implements the same basic functionality as Go's *testing.T: it can be passed to the
// assert and require packages, and it has a Run method for subtests. Each test captures its
// own debug output, which is passed to the TestLogger when the test finishes so that it can
// be shown only for failed tests.
package ldtest
