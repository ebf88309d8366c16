package ldtest

import "strings"

type Results struct {
	Tests    []TestResult
	Failures []TestResult
}

type TestResult struct {
	TestID  TestID
	Errors  []error
	Skipped bool
}

func (r Results) OK() bool {
	return len(r.Failures) == 0
}

// Counts returns the number of tests that passed, failed, and were skipped. Groups that
// only contain other tests are counted like any other test.
func (r Results) Counts() (passed, failed, skipped int) {
	for _, t := range r.Tests {
		if t.Skipped {
			skipped++
		}
	}
	failed = len(r.Failures)
	passed = len(r.Tests) - failed - skipped
	return
}

type TestID struct {
	Path []string
}

// Plus returns a new TestID with an additional path component.
func (t TestID) Plus(name string) TestID {
	return TestID{Path: append(append([]string(nil), t.Path...), name)}
}

func (t TestID) String() string {
	return strings.Join(t.Path, "/")
}
