package ldtest

import (
	"fmt"
	"regexp"
	"strings"
)

// Filter is a function that can determine whether to run a specific test or not.
type Filter func(TestID) bool

// RegexFilters selects tests by matching regular expressions against test names. A test
// name is the TestID path joined with "/".
//
// A test runs if MustMatch is empty or matches the test's name, and MustNotMatch does not.
// Since a test that is not run cannot run its subtests, a pattern for a nested test must
// also match the enclosing groups; an unanchored pattern such as "users" does this
// naturally, and PatternFor builds an anchored one.
type RegexFilters struct {
	MustMatch    RegexList
	MustNotMatch RegexList
}

func (r RegexFilters) AsFilter(id TestID) bool {
	name := id.String()
	return (!r.MustMatch.IsDefined() || r.MustMatch.AnyMatch(name)) &&
		!r.MustNotMatch.AnyMatch(name)
}

// IsDefined returns true if any patterns were specified.
func (r RegexFilters) IsDefined() bool {
	return r.MustMatch.IsDefined() || r.MustNotMatch.IsDefined()
}

// RegexList is a list of regular expressions. It implements the flag.Value and
// pflag.Value interfaces, so a flag can be repeated to add patterns.
type RegexList struct {
	patterns []*regexp.Regexp
}

func (r RegexList) String() string {
	var ss []string
	for _, p := range r.patterns {
		ss = append(ss, `"`+p.String()+`"`)
	}
	return strings.Join(ss, " or ")
}

// Set is called by the command line parser
func (r *RegexList) Set(value string) error {
	rx, err := regexp.Compile(value)
	if err != nil {
		return fmt.Errorf("invalid regex: %w", err)
	}
	r.patterns = append(r.patterns, rx)
	return nil
}

// Type is called by the command line parser to describe the flag's value.
func (r *RegexList) Type() string {
	return "regex"
}

func (r RegexList) IsDefined() bool {
	return len(r.patterns) != 0
}

func (r RegexList) AnyMatch(s string) bool {
	for _, p := range r.patterns {
		if p.MatchString(s) {
			return true
		}
	}
	return false
}

// PatternFor returns a regular expression that selects exactly the specified test and
// its enclosing groups, suitable for RegexFilters.MustMatch.
func PatternFor(id TestID) string {
	if len(id.Path) == 0 {
		return ".*"
	}
	var b strings.Builder
	b.WriteString("^")
	for i, name := range id.Path {
		if i > 0 {
			b.WriteString("(/")
		}
		b.WriteString(regexp.QuoteMeta(name))
	}
	b.WriteString(strings.Repeat(")?", len(id.Path)-1))
	b.WriteString("$")
	return b.String()
}
