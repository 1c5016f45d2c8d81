package jobscript

import (
	"fmt"
	"strings"
)

// Synthesize regenerates script text from the original script and the
// current ParameterSet. The original provides layout: unknown and malformed
// directive lines keep their relative positions, body lines are preserved
// byte-for-byte, and the shebang survives (a default interpreter line is
// emitted when the original has none).
//
// Each canonical field is processed at most once per pass, consistent with
// the extractor's first-wins policy: the first original line keyed to a
// field is replaced by a freshly encoded line when the field is set, or
// dropped when it is unset; later lines for the same field pass through
// verbatim. Set fields with no original line are appended after the block in
// canonical order. The output is deterministic and reaches a fixed point
// after one pass: synthesizing the output again yields identical text.
func Synthesize(text string, params ParameterSet) string {
	buf := parseScript(text)

	var out []string
	if buf.hasShebang {
		out = append(out, buf.shebang)
	} else {
		out = append(out, DefaultShebang)
	}

	blockLen := 0
	var processed [numFields]bool
	for _, line := range buf.directives {
		if line.hasKey && !processed[line.field] {
			processed[line.field] = true
			if value, ok := params.encodeField(line.field); ok {
				out = append(out, formatDirective(line.field, value))
				blockLen++
			}
			continue
		}
		out = append(out, line.raw)
		blockLen++
	}
	for _, f := range Fields() {
		if processed[f] {
			continue
		}
		if value, ok := params.encodeField(f); ok {
			out = append(out, formatDirective(f, value))
			blockLen++
		}
	}

	body := trimLeadingBlankLines(buf.body)
	if len(body) > 0 {
		if blockLen > 0 {
			out = append(out, "")
		}
		out = append(out, body...)
	}
	return strings.Join(out, "\n") + "\n"
}

// formatDirective renders a directive line for field f, always in long form
// with the field's primary key.
func formatDirective(f Field, value string) string {
	return fmt.Sprintf("%s --%s=%s", DirectiveMarker, fieldSpecs[f].longKeys[0], value)
}

func trimLeadingBlankLines(lines []string) []string {
	for i, line := range lines {
		if strings.TrimSpace(line) != "" {
			return lines[i:]
		}
	}
	return nil
}
