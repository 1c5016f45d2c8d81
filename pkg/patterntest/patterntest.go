// Package patterntest compiles a regular expression against a sample text
// and reports match and capture diagnostics. It backs interactive rule
// authoring: every input, including an invalid pattern, yields a structured
// Result rather than an error.
package patterntest

import "regexp"

// PreviewCap bounds the number of full-match strings reported beyond the
// first match.
const PreviewCap = 5

// Capture is one capture group of the first match. Text is only meaningful
// when Participated is true; an empty Text with Participated set records a
// group that matched the empty string.
type Capture struct {
	// Alias is the user-supplied label zipped positionally with this group;
	// empty when no alias covers this position.
	Alias        string
	Text         string
	Participated bool
}

// Result is the outcome of testing a pattern against a sample.
type Result struct {
	// Valid is false when the pattern does not compile; Message then holds
	// the compile error.
	Valid   bool
	Message string
	// Matched is true when the pattern matched the sample at least once.
	// FullMatch, Captures, TotalMatches and Preview are only populated when
	// Matched is true.
	Matched      bool
	FullMatch    string
	Captures     []Capture
	TotalMatches int
	// Preview holds up to PreviewCap full-match strings beyond the first.
	Preview []string
	// Overflow counts matches not shown in FullMatch or Preview.
	Overflow int
}

// Test compiles pattern with multiline semantics and matches it against
// sample. Aliases label capture groups positionally; a mismatched alias
// count is tolerated, leaving uncovered positions unaliased.
func Test(pattern string, aliases []string, sample string) Result {
	re, err := regexp.Compile("(?m)" + pattern)
	if err != nil {
		return Result{Message: err.Error()}
	}

	matches := re.FindAllStringSubmatchIndex(sample, -1)
	if len(matches) == 0 {
		return Result{Valid: true}
	}

	first := matches[0]
	result := Result{
		Valid:        true,
		Matched:      true,
		FullMatch:    sample[first[0]:first[1]],
		TotalMatches: len(matches),
	}
	for i := 1; i <= re.NumSubexp(); i++ {
		capture := Capture{}
		if i-1 < len(aliases) {
			capture.Alias = aliases[i-1]
		}
		if first[2*i] >= 0 {
			capture.Participated = true
			capture.Text = sample[first[2*i]:first[2*i+1]]
		}
		result.Captures = append(result.Captures, capture)
	}
	for _, m := range matches[1:] {
		if len(result.Preview) == PreviewCap {
			result.Overflow = len(matches) - 1 - PreviewCap
			break
		}
		result.Preview = append(result.Preview, sample[m[0]:m[1]])
	}
	return result
}
