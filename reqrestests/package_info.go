// Package reqrestests contains the contract tests for the users, resources, and auth
// endpoints of the service, and the API they use to talk to it.
//
// Infrastructure that is not specific to this service, such as the HTTP client adapter,
// the test runner, and the response checks, is in the lower-level framework packages.
package reqrestests
