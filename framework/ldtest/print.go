package ldtest

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
)

// PrintFilterDescription describes the effect of any filters for this test run.
func PrintFilterDescription(w io.Writer, filters RegexFilters) {
	if !filters.IsDefined() {
		return
	}
	fmt.Fprintln(w, "Some tests will be skipped based on the filter criteria for this test run:")
	if filters.MustMatch.IsDefined() {
		fmt.Fprintf(w, "  skip any not matching %s\n", filters.MustMatch)
	}
	if filters.MustNotMatch.IsDefined() {
		fmt.Fprintf(w, "  skip any matching %s\n", filters.MustNotMatch)
	}
	fmt.Fprintln(w)
}

// PrintResults writes a summary of the test run: a table of failed tests with their first
// error, followed by the totals.
func PrintResults(w io.Writer, results Results) {
	passed, failed, skipped := results.Counts()

	if failed > 0 {
		fmt.Fprintln(w, color.New(color.FgHiRed).Sprint("FAILED TESTS"))
		table := tablewriter.NewWriter(w)
		table.Header("Test", "Errors", "First error")
		for _, f := range results.Failures {
			firstError := ""
			if len(f.Errors) > 0 {
				firstError = strings.SplitN(f.Errors[0].Error(), "\n", 2)[0]
			}
			_ = table.Append([]string{f.TestID.String(), strconv.Itoa(len(f.Errors)), firstError})
		}
		_ = table.Render()
		fmt.Fprintln(w)
	}

	summary := fmt.Sprintf("%d passed, %d failed, %d skipped", passed, failed, skipped)
	if results.OK() {
		fmt.Fprintln(w, color.New(color.FgGreen).Sprint("All tests passed: "+summary))
	} else {
		fmt.Fprintln(w, color.New(color.FgHiRed).Sprint("Test run failed: "+summary))
	}
}
