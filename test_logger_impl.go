package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/qa-contracts/reqres-contract-tests/framework"
	"github.com/qa-contracts/reqres-contract-tests/framework/ldtest"
)

var (
	failedColor  = color.New(color.FgHiRed)
	skippedColor = color.New(color.FgYellow)
	debugColor   = color.New(color.Faint)
)

type ConsoleTestLogger struct {
	Out                  io.Writer
	DebugOutputOnFailure bool
	DebugOutputOnSuccess bool
}

func (c *ConsoleTestLogger) TestStarted(id ldtest.TestID) {
	fmt.Fprintf(c.Out, "[%s]\n", id)
}

func (c *ConsoleTestLogger) TestError(id ldtest.TestID, err error) {
	for _, line := range strings.Split(err.Error(), "\n") {
		fmt.Fprintf(c.Out, "  %s\n", failedColor.Sprint(line))
	}
}

func (c *ConsoleTestLogger) TestFinished(id ldtest.TestID, failed bool, debugOutput framework.CapturedOutput) {
	if failed {
		fmt.Fprintf(c.Out, "  %s\n", failedColor.Sprintf("FAILED: %s", id))
	}
	if len(debugOutput) > 0 &&
		((failed && c.DebugOutputOnFailure) || (!failed && c.DebugOutputOnSuccess)) {
		debugOutput.Dump(c.Out, debugColor.Sprint("    DEBUG "))
	}
}

func (c *ConsoleTestLogger) TestSkipped(id ldtest.TestID, reason string) {
	if reason == "" {
		fmt.Fprintf(c.Out, "  %s\n", skippedColor.Sprintf("SKIPPED: %s", id))
	} else {
		fmt.Fprintf(c.Out, "  %s\n", skippedColor.Sprintf("SKIPPED: %s (%s)", id, reason))
	}
}
