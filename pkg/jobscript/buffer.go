package jobscript

import "strings"

// DirectiveMarker prefixes every resource-request line in a job script.
const DirectiveMarker = "#SBATCH"

// DefaultShebang is emitted when the original script has no interpreter line.
const DefaultShebang = "#!/bin/bash"

// directiveLine is one raw line of the directive block with its key
// classification. Value decoding is left to the caller: the extractor and
// the synthesizer apply different rules to the same classified line.
type directiveLine struct {
	raw string
	// field and value are meaningful only when hasKey is true.
	field  Field
	value  string
	hasKey bool
	// malformed marks a line that carries the marker but no parseable key.
	malformed bool
}

// scriptBuffer is the layout of a script: an optional shebang, the
// contiguous directive block, and the body. Body lines are kept verbatim and
// are never inspected again.
type scriptBuffer struct {
	shebang    string
	hasShebang bool
	directives []directiveLine
	body       []string
}

// parseScript splits text into a scriptBuffer. The directive block extends
// from the (optional) shebang to the first non-blank line that does not
// carry the directive marker; blank lines inside the block are layout and
// are not retained. Everything from the first body line onward is body,
// including any later marker-carrying lines.
func parseScript(text string) scriptBuffer {
	lines := strings.Split(text, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}

	var buf scriptBuffer
	i := 0
	if len(lines) > 0 && strings.HasPrefix(lines[0], "#!") {
		buf.shebang = lines[0]
		buf.hasShebang = true
		i = 1
	}
	for ; i < len(lines); i++ {
		trimmed := strings.TrimSpace(lines[i])
		if trimmed == "" {
			continue
		}
		if !isDirective(trimmed) {
			break
		}
		buf.directives = append(buf.directives, parseDirective(lines[i], trimmed))
	}
	if i < len(lines) {
		buf.body = lines[i:]
	}
	return buf
}

func isDirective(trimmed string) bool {
	if !strings.HasPrefix(trimmed, DirectiveMarker) {
		return false
	}
	rest := trimmed[len(DirectiveMarker):]
	return rest == "" || rest[0] == ' ' || rest[0] == '\t'
}

// parseDirective classifies one marker-carrying line. raw is the original
// line, preserved for verbatim passthrough; trimmed is raw with surrounding
// whitespace removed.
func parseDirective(raw, trimmed string) directiveLine {
	line := directiveLine{raw: raw}
	rest := strings.TrimSpace(trimmed[len(DirectiveMarker):])
	switch {
	case rest == "":
		line.malformed = true
	case strings.HasPrefix(rest, "--"):
		key, value := splitKeyValue(rest[2:])
		if key == "" {
			line.malformed = true
			break
		}
		if f, ok := longKeyToField[strings.ToLower(key)]; ok {
			line.field = f
			line.value = value
			line.hasKey = true
		}
	case strings.HasPrefix(rest, "-") && len(rest) > 1:
		key, value := splitKeyValue(rest[1:])
		if f, ok := shortKeyToField[key]; ok {
			line.field = f
			line.value = value
			line.hasKey = true
		}
	default:
		line.malformed = true
	}
	return line
}

// splitKeyValue splits "key=value" or "key value" at the first separator.
// A key with no separator yields an empty value.
func splitKeyValue(s string) (string, string) {
	sep := strings.IndexAny(s, "= \t")
	if sep < 0 {
		return s, ""
	}
	return s[:sep], strings.TrimSpace(s[sep+1:])
}
