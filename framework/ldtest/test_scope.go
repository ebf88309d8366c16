package ldtest

import (
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/qa-contracts/reqres-contract-tests/framework"
)

// TestConfiguration contains options for the entire test run.
type TestConfiguration struct {
	// Filter, if non-nil, decides whether a test should run. See RegexFilters.
	Filter Filter

	// TestLogger receives notifications of test progress. If nil, nothing is reported.
	TestLogger TestLogger

	// Context is an arbitrary value that domain-specific test code can retrieve with
	// T.Context, for instance to find the client for the service under test.
	Context interface{}
}

type environment struct {
	config  TestConfiguration
	results Results
}

// T represents a test or subtest.
type T struct {
	env         *environment
	id          TestID
	debugLogger framework.CapturingLogger
	failed      bool
	skipped     bool
	skipReason  string
	errors      []error
	cleanups    []func()
}

// Run starts a test run. The action is the root of the test tree; it normally consists of
// calls to T.Run for each group of tests.
func Run(config TestConfiguration, action func(*T)) Results {
	if config.TestLogger == nil {
		config.TestLogger = nullTestLogger{}
	}
	env := &environment{config: config}
	t := &T{env: env}
	t.run(action)
	return env.results
}

func (t *T) run(action func(*T)) {
	defer func() {
		if r := recover(); r != nil {
			if !t.skipped {
				t.failed = true
				var addError error
				if r == t {
					if len(t.errors) == 0 {
						addError = errors.New("test failed with no failure message")
					}
				} else {
					addError = fmt.Errorf("unexpected panic in test: %+v\n%s", r, string(debug.Stack()))
				}
				if addError != nil {
					t.errors = append(t.errors, addError)
					t.env.config.TestLogger.TestError(t.id, addError)
				}
			}
		}
		t.runCleanups()
		if len(t.id.Path) == 0 {
			return
		}
		// A test that failed before skipping counts as failed.
		result := TestResult{TestID: t.id, Errors: t.errors, Skipped: t.skipped && !t.failed}
		t.env.results.Tests = append(t.env.results.Tests, result)
		if t.failed {
			t.env.results.Failures = append(t.env.results.Failures, result)
		}
	}()

	action(t)
}

func (t *T) runCleanups() {
	for i := len(t.cleanups) - 1; i >= 0; i-- {
		func() {
			defer func() {
				if r := recover(); r != nil {
					t.failed = true
					err := fmt.Errorf("unexpected panic in cleanup: %+v", r)
					t.errors = append(t.errors, err)
					t.env.config.TestLogger.TestError(t.id, err)
				}
			}()
			t.cleanups[i]()
		}()
	}
	t.cleanups = nil
}

// ID returns the unique identifier of this test.
func (t *T) ID() TestID {
	return t.id
}

// Context returns the Context value from the TestConfiguration.
func (t *T) Context() interface{} {
	return t.env.config.Context
}

// Run runs a subtest. This is equivalent to the Run method of testing.T.
func (t *T) Run(name string, action func(*T)) {
	id := t.id.Plus(name)

	if filter := t.env.config.Filter; filter != nil && !filter(id) {
		t.env.config.TestLogger.TestSkipped(id, "excluded by filter parameters")
		t.env.results.Tests = append(t.env.results.Tests, TestResult{TestID: id, Skipped: true})
		return
	}

	t.env.config.TestLogger.TestStarted(id)
	t1 := &T{
		env: t.env,
		id:  id,
	}
	t1.run(action)
	if t1.skipped && !t1.failed {
		t.env.config.TestLogger.TestSkipped(id, t1.skipReason)
	} else {
		t.env.config.TestLogger.TestFinished(id, t1.failed, t1.debugLogger.Output())
	}
}

// Errorf is called by assertions to log a test failure. It does not cause an immediate exit.
func (t *T) Errorf(format string, args ...interface{}) {
	t.failed = true
	err := fmt.Errorf(format, args...)
	t.errors = append(t.errors, err)
	t.env.config.TestLogger.TestError(t.id, err)
}

// FailNow is called by assertions when a test should fail and immediately exit. The methods
// in the require package call FailNow.
func (t *T) FailNow() {
	panic(t)
}

// Failed returns true if the test has failed so far.
func (t *T) Failed() bool {
	return t.failed
}

// Skip marks the test as skipped and immediately exits.
func (t *T) Skip() {
	t.skipped = true
	panic(t)
}

// SkipWithReason is the same as Skip, but the reason is passed to the TestLogger.
func (t *T) SkipWithReason(reason string) {
	t.skipReason = reason
	t.Skip()
}

// Debug writes a message to the test's debug output.
func (t *T) Debug(message string, args ...interface{}) {
	t.debugLogger.Printf(message, args...)
}

// DebugLogger returns a Logger that writes to the test's debug output.
func (t *T) DebugLogger() framework.Logger {
	return &t.debugLogger
}

// Defer schedules a function to run when the test ends, whether it passes or fails.
// Deferred functions run in reverse order.
func (t *T) Defer(cleanup func()) {
	t.cleanups = append(t.cleanups, cleanup)
}
