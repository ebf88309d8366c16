package expect

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/qa-contracts/reqres-contract-tests/framework/harness"
)

const singleUserBody = `{
	"data": {
		"id": 2,
		"email": "janet.weaver@reqres.in",
		"first_name": "Janet",
		"last_name": "Weaver",
		"tags": []
	},
	"support": {"text": "", "verified": false}
}`

func makeResponse(status int, body string) *harness.Response {
	return &harness.Response{StatusCode: status, Raw: []byte(body), Body: ldvalue.Parse([]byte(body))}
}

func requireMismatch(t *testing.T, err error) *Mismatch {
	var m *Mismatch
	require.True(t, errors.As(err, &m), "expected a *Mismatch, got %v", err)
	return m
}

func TestStatus(t *testing.T) {
	resp := makeResponse(404, `{}`)
	assert.NoError(t, Status(resp, 404))

	m := requireMismatch(t, Status(resp, 200))
	assert.Equal(t, "status code", m.What)
	assert.Equal(t, "200", m.Expected)
	assert.Equal(t, "404", m.Actual)
	assert.Equal(t, "status code: expected 200, got 404\nresponse body: {}", m.Error())
}

func TestFieldMatchesLiterals(t *testing.T) {
	resp := makeResponse(200, singleUserBody)
	assert.NoError(t, Field(resp, "data.id", 2))
	assert.NoError(t, Field(resp, "data.id", 2.0))
	assert.NoError(t, Field(resp, "data.email", "janet.weaver@reqres.in"))
	assert.NoError(t, Field(resp, "support.verified", false))
}

func TestFieldMismatchNamesBothValues(t *testing.T) {
	resp := makeResponse(200, singleUserBody)

	m := requireMismatch(t, Field(resp, "data.first_name", "Emma"))
	assert.Equal(t, `field "data.first_name"`, m.What)
	assert.Equal(t, `"Emma"`, m.Expected)
	assert.Equal(t, `"Janet"`, m.Actual)
	assert.Empty(t, m.Detail)

	m = requireMismatch(t, Field(resp, "data.id", "2"))
	assert.Equal(t, `"2"`, m.Expected)
	assert.Equal(t, `2`, m.Actual)
}

func TestFieldComparesObjectsDeeply(t *testing.T) {
	resp := makeResponse(200, `{"data":{"id":2,"name":"fuchsia rose","year":2001}}`)

	assert.NoError(t, Field(resp, "data", map[string]interface{}{
		"year": 2001, "name": "fuchsia rose", "id": 2,
	}))

	m := requireMismatch(t, Field(resp, "data", map[string]interface{}{
		"id": 2, "name": "fuchsia rose", "year": 2002,
	}))
	assert.Contains(t, m.Detail, "replace /year: 2001")
}

func TestFieldMissing(t *testing.T) {
	resp := makeResponse(200, singleUserBody)
	m := requireMismatch(t, Field(resp, "data.avatar", "x"))
	assert.Equal(t, "no such field", m.Actual)
	assert.Contains(t, m.Detail, "janet.weaver@reqres.in")
}

func TestFieldOnNonJSONBody(t *testing.T) {
	resp := &harness.Response{StatusCode: 200, Raw: []byte("not json"), Body: ldvalue.Null()}
	m := requireMismatch(t, Field(resp, "data", 1))
	assert.Equal(t, "no such field", m.Actual)
}

func TestFieldPresent(t *testing.T) {
	resp := makeResponse(200, `{"token": null}`)
	assert.NoError(t, FieldPresent(resp, "token"))
	assert.Error(t, FieldPresent(resp, "id"))
}

func TestFieldNotEmpty(t *testing.T) {
	resp := makeResponse(200, `{"token":"QpwL5tke4Pnpja7X4","id":4,"data":[{"id":7}],"empty":"","zero":0,"none":[],"no":{}}`)
	assert.NoError(t, FieldNotEmpty(resp, "token"))
	assert.NoError(t, FieldNotEmpty(resp, "id"))
	assert.NoError(t, FieldNotEmpty(resp, "data"))

	for _, path := range []string{"empty", "zero", "none", "no"} {
		m := requireMismatch(t, FieldNotEmpty(resp, path))
		assert.Equal(t, "a non-empty value", m.Expected)
	}
	m := requireMismatch(t, FieldNotEmpty(resp, "missing"))
	assert.Equal(t, "no such field", m.Actual)
}

func TestEmptyBody(t *testing.T) {
	for _, body := range []string{"", "  ", "{}", "[]", "null"} {
		assert.NoError(t, EmptyBody(makeResponse(404, body)), "body: %q", body)
	}
	m := requireMismatch(t, EmptyBody(makeResponse(404, `{"error":"not found"}`)))
	assert.Equal(t, `{"error":"not found"}`, m.Actual)
	assert.Error(t, EmptyBody(&harness.Response{Raw: []byte("gone"), Body: ldvalue.Null()}))
	for _, body := range []string{"0", "false", `""`} {
		assert.Error(t, EmptyBody(makeResponse(404, body)), "body: %q", body)
	}
}
