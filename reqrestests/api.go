package reqrestests

import (
	"context"
	"net/http"
	"net/url"

	"github.com/tidwall/gjson"

	"github.com/qa-contracts/reqres-contract-tests/framework/expect"
	"github.com/qa-contracts/reqres-contract-tests/framework/harness"
	"github.com/qa-contracts/reqres-contract-tests/framework/ldtest"
	"github.com/qa-contracts/reqres-contract-tests/framework/schema"

	"github.com/stretchr/testify/require"
)

// SuiteContext is the configuration shared by every test in the suite. It is passed to
// ldtest.Run as the Context of the TestConfiguration.
type SuiteContext struct {
	// Context, if non-nil, cancels any request in progress when it is done.
	Context context.Context

	Client  *harness.Client
	Schemas *schema.Store
}

func requireContext(t *ldtest.T) SuiteContext {
	if c, ok := t.Context().(SuiteContext); ok {
		return c
	}
	panic("SuiteContext was not included in the global test configuration!" +
		" This is a basic mistake in the initialization logic.")
}

// ServiceAPI sends requests to the service on behalf of a single test, and makes
// assertions about the responses.
//
// Methods whose names begin with Require stop the test immediately if the check fails,
// because the rest of the test would be meaningless. Methods whose names begin with Assert
// record the failure and let the test continue, so that every wrong field is reported.
type ServiceAPI struct {
	t       *ldtest.T
	ctx     context.Context
	client  *harness.Client
	schemas *schema.Store
}

// NewServiceAPI creates a ServiceAPI whose request log goes to the test's debug output.
func NewServiceAPI(t *ldtest.T) *ServiceAPI {
	sc := requireContext(t)
	ctx := sc.Context
	if ctx == nil {
		ctx = context.Background()
	}
	return &ServiceAPI{
		t:       t,
		ctx:     ctx,
		client:  sc.Client.WithLogger(t.DebugLogger()),
		schemas: sc.Schemas,
	}
}

// Send sends a request. A transport error fails the test immediately.
func (a *ServiceAPI) Send(r harness.Request) *harness.Response {
	resp, err := a.client.Do(a.ctx, r)
	require.NoError(a.t, err)
	return resp
}

func (a *ServiceAPI) Get(path string, query url.Values) *harness.Response {
	return a.Send(harness.Request{Method: http.MethodGet, Path: path, Query: query})
}

func (a *ServiceAPI) Post(path string, form url.Values) *harness.Response {
	return a.Send(harness.Request{Method: http.MethodPost, Path: path, Form: form})
}

func (a *ServiceAPI) Put(path string, form url.Values) *harness.Response {
	return a.Send(harness.Request{Method: http.MethodPut, Path: path, Form: form})
}

func (a *ServiceAPI) Patch(path string, form url.Values) *harness.Response {
	return a.Send(harness.Request{Method: http.MethodPatch, Path: path, Form: form})
}

func (a *ServiceAPI) Delete(path string) *harness.Response {
	return a.Send(harness.Request{Method: http.MethodDelete, Path: path})
}

// RequireStatus checks the status code.
func (a *ServiceAPI) RequireStatus(resp *harness.Response, status int) {
	a.mustPass(expect.Status(resp, status))
}

// AssertField checks that the field at a path equals a literal value. See expect.Field.
func (a *ServiceAPI) AssertField(resp *harness.Response, path string, want interface{}) {
	a.check(expect.Field(resp, path, want))
}

// AssertFieldNotEmpty checks that the field at a path exists and is not empty.
func (a *ServiceAPI) AssertFieldNotEmpty(resp *harness.Response, path string) {
	a.check(expect.FieldNotEmpty(resp, path))
}

// AssertEmptyBody checks that the response has no content.
func (a *ServiceAPI) AssertEmptyBody(resp *harness.Response) {
	a.check(expect.EmptyBody(resp))
}

// AssertSchema checks that the whole response body conforms to the named schema.
func (a *ServiceAPI) AssertSchema(resp *harness.Response, schemaName string) {
	a.check(a.schemas.Validate(schemaName, resp.Raw))
}

// RequireID returns the non-empty value at a path as a string. Numeric ids are converted.
func (a *ServiceAPI) RequireID(resp *harness.Response, path string) string {
	a.mustPass(expect.FieldNotEmpty(resp, path))
	return gjson.GetBytes(resp.Raw, path).String()
}

func (a *ServiceAPI) check(err error) bool {
	if err != nil {
		a.t.Errorf("%s", err)
		return false
	}
	return true
}

func (a *ServiceAPI) mustPass(err error) {
	if !a.check(err) {
		a.t.FailNow()
	}
}
