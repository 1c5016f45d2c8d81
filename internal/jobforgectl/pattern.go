package jobforgectl

import (
	"fmt"
	"text/tabwriter"

	"github.com/jobforgeproject/jobforge/pkg/patterntest"
)

// TestPattern compiles pattern against sample and prints a match report to
// the app output. A pattern that fails to compile is reported, not returned
// as an error: an invalid pattern is a normal outcome during rule authoring.
func (a *App) TestPattern(pattern string, aliases []string, sample string) error {
	result := patterntest.Test(pattern, aliases, sample)
	if !result.Valid {
		fmt.Fprintf(a.Out, "invalid pattern: %s\n", result.Message)
		return nil
	}
	if !result.Matched {
		fmt.Fprintln(a.Out, "no matches")
		return nil
	}

	w := tabwriter.NewWriter(a.Out, 1, 1, 1, ' ', 0)
	defer w.Flush()
	fmt.Fprintf(w, "matches:\t%d\n", result.TotalMatches)
	fmt.Fprintf(w, "first match:\t%s\n", result.FullMatch)
	for i, capture := range result.Captures {
		label := capture.Alias
		if label == "" {
			label = fmt.Sprintf("group %d", i+1)
		}
		if capture.Participated {
			fmt.Fprintf(w, "%s:\t%q\n", label, capture.Text)
		} else {
			fmt.Fprintf(w, "%s:\t(did not participate)\n", label)
		}
	}
	for _, match := range result.Preview {
		fmt.Fprintf(w, "also:\t%s\n", match)
	}
	if result.Overflow > 0 {
		fmt.Fprintf(w, "\t... and %d more\n", result.Overflow)
	}
	return nil
}
