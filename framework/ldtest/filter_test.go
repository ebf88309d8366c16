package ldtest

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeID(path ...string) TestID {
	return TestID{Path: path}
}

func TestRegexFiltersWithNoPatternsSelectEverything(t *testing.T) {
	var f RegexFilters
	assert.False(t, f.IsDefined())
	assert.True(t, f.AsFilter(makeID("a", "b")))
}

func TestRegexFiltersMustMatch(t *testing.T) {
	var f RegexFilters
	require.NoError(t, f.MustMatch.Set("^auth"))

	assert.True(t, f.AsFilter(makeID("auth")))
	assert.True(t, f.AsFilter(makeID("auth", "login", "successful")))
	assert.False(t, f.AsFilter(makeID("users")))
	assert.False(t, f.AsFilter(makeID("users", "auth")))
}

func TestRegexFiltersMustNotMatch(t *testing.T) {
	var f RegexFilters
	require.NoError(t, f.MustNotMatch.Set("lifecycle"))

	assert.True(t, f.AsFilter(makeID("users")))
	assert.False(t, f.AsFilter(makeID("user lifecycle")))
	assert.False(t, f.AsFilter(makeID("user lifecycle", "create")))
}

func TestRegexListRejectsInvalidPattern(t *testing.T) {
	var r RegexList
	assert.Error(t, r.Set("("))
	assert.False(t, r.IsDefined())
}

func TestRegexListString(t *testing.T) {
	var r RegexList
	require.NoError(t, r.Set("a"))
	require.NoError(t, r.Set("b"))
	assert.Equal(t, `"a" or "b"`, r.String())
	assert.Equal(t, "regex", r.Type())
}

func TestPatternFor(t *testing.T) {
	pattern := PatternFor(makeID("users", "single user (id 2)", "fields"))
	assert.Equal(t, `^users(/single user \(id 2\)(/fields)?)?$`, pattern)

	rx := regexp.MustCompile(pattern)
	assert.True(t, rx.MatchString("users"))
	assert.True(t, rx.MatchString("users/single user (id 2)"))
	assert.True(t, rx.MatchString("users/single user (id 2)/fields"))
	assert.False(t, rx.MatchString("users/list users"))
	assert.False(t, rx.MatchString("auth"))
}
