// Package expect compares a harness.Response against expected literal values.
//
// Every check returns nil on success or a *Mismatch describing the expected and actual
// values, so the same checks can be used with the assert and require packages or on their
// own.
package expect

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/wI2L/jsondiff"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/qa-contracts/reqres-contract-tests/framework/harness"
)

const maxQuotedBody = 500

// Mismatch is the error returned when a response does not have an expected property.
type Mismatch struct {
	// What names the property that was checked, such as "status code" or `field "data.id"`.
	What string

	Expected string
	Actual   string

	// Detail is optional extra information, such as a diff.
	Detail string
}

func (m *Mismatch) Error() string {
	msg := fmt.Sprintf("%s: expected %s, got %s", m.What, m.Expected, m.Actual)
	if m.Detail != "" {
		msg += "\n" + m.Detail
	}
	return msg
}

// Status checks the response status code.
func Status(resp *harness.Response, want int) error {
	if resp.StatusCode == want {
		return nil
	}
	return &Mismatch{
		What:     "status code",
		Expected: strconv.Itoa(want),
		Actual:   strconv.Itoa(resp.StatusCode),
		Detail:   "response body: " + quoteBody(resp.Raw),
	}
}

// Field checks that the JSON value at a path in the response body equals want.
//
// The path uses gjson syntax: keys separated by dots, with array indexes as keys, for
// instance "data.email" or "data.0.id". want can be any value that can be represented in
// JSON. Numbers are compared by value, so 2 and 2.0 are equal; objects and arrays are
// compared deeply.
func Field(resp *harness.Response, path string, want interface{}) error {
	expected := ldvalue.CopyArbitraryValue(want)
	result := gjson.GetBytes(resp.Raw, path)
	if !result.Exists() {
		return missingField(resp, path, expected.JSONString())
	}
	actual := ldvalue.Parse([]byte(result.Raw))
	if actual.Equal(expected) {
		return nil
	}
	return &Mismatch{
		What:     fieldName(path),
		Expected: expected.JSONString(),
		Actual:   actual.JSONString(),
		Detail:   describeDiff(expected, actual),
	}
}

// FieldPresent checks that the response body has a value, possibly null, at a path.
func FieldPresent(resp *harness.Response, path string) error {
	if gjson.GetBytes(resp.Raw, path).Exists() {
		return nil
	}
	return missingField(resp, path, "a value")
}

// FieldNotEmpty checks that the response body has a non-empty value at a path: a non-empty
// string, array, or object, a non-zero number, or true.
func FieldNotEmpty(resp *harness.Response, path string) error {
	result := gjson.GetBytes(resp.Raw, path)
	if !result.Exists() {
		return missingField(resp, path, "a non-empty value")
	}
	if !isEmpty(ldvalue.Parse([]byte(result.Raw))) {
		return nil
	}
	return &Mismatch{
		What:     fieldName(path),
		Expected: "a non-empty value",
		Actual:   result.Raw,
	}
}

// EmptyBody checks that the response has no content: either no body at all, or a JSON
// null, empty object, or empty array.
func EmptyBody(resp *harness.Response) error {
	if len(bytes.TrimSpace(resp.Raw)) == 0 {
		return nil
	}
	if resp.IsJSON() {
		switch resp.Body.Type() {
		case ldvalue.NullType:
			return nil
		case ldvalue.ObjectType, ldvalue.ArrayType:
			if resp.Body.Count() == 0 {
				return nil
			}
		}
	}
	return &Mismatch{
		What:     "response body",
		Expected: "an empty body",
		Actual:   quoteBody(resp.Raw),
	}
}

func isEmpty(v ldvalue.Value) bool {
	switch v.Type() {
	case ldvalue.NullType:
		return true
	case ldvalue.BoolType:
		return !v.BoolValue()
	case ldvalue.NumberType:
		return v.Float64Value() == 0
	case ldvalue.StringType:
		return v.StringValue() == ""
	default:
		return v.Count() == 0
	}
}

func missingField(resp *harness.Response, path, expected string) error {
	return &Mismatch{
		What:     fieldName(path),
		Expected: expected,
		Actual:   "no such field",
		Detail:   "response body: " + quoteBody(resp.Raw),
	}
}

func fieldName(path string) string {
	return fmt.Sprintf("field %q", path)
}

// describeDiff lists the JSON Patch operations that would turn the expected value into the
// actual one. It is only useful for objects and arrays.
func describeDiff(expected, actual ldvalue.Value) string {
	if !isContainer(expected) || !isContainer(actual) {
		return ""
	}
	patch, err := jsondiff.Compare(expected.AsArbitraryValue(), actual.AsArbitraryValue())
	if err != nil || len(patch) == 0 {
		return ""
	}
	lines := []string{"differences (expected -> actual):"}
	for _, op := range patch {
		if op.Type == "remove" {
			lines = append(lines, fmt.Sprintf("  %s %s", op.Type, op.Path))
			continue
		}
		lines = append(lines, fmt.Sprintf("  %s %s: %s", op.Type, op.Path,
			ldvalue.CopyArbitraryValue(op.Value).JSONString()))
	}
	return strings.Join(lines, "\n")
}

func isContainer(v ldvalue.Value) bool {
	return v.Type() == ldvalue.ObjectType || v.Type() == ldvalue.ArrayType
}

func quoteBody(raw []byte) string {
	if len(raw) == 0 {
		return "(empty)"
	}
	s := string(raw)
	if len(s) > maxQuotedBody {
		s = s[:maxQuotedBody] + "..."
	}
	return s
}
