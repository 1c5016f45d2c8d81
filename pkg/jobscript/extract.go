package jobscript

// PassthroughLine is a directive-block line that did not parse into the
// ParameterSet: an unrecognized key, a duplicate of an already-resolved
// field, an undecodable value, or a malformed line. It is preserved verbatim.
type PassthroughLine struct {
	Raw string
	// Malformed is true when the line carries the directive marker but no
	// parseable key.
	Malformed bool
}

// ExtractResult is the structured view of a script produced by Extract.
type ExtractResult struct {
	Params ParameterSet
	// Passthrough holds unknown and malformed directive lines in their
	// original relative order.
	Passthrough []PassthroughLine
	// Shebang is the interpreter line, without trailing newline; empty when
	// HasShebang is false.
	Shebang    string
	HasShebang bool
	// Body holds everything after the directive block, byte-for-byte.
	Body []string
}

// Extract parses the directive block of a script into a ParameterSet.
// It is a pure function over the input text: any input, including empty
// text, yields a well-defined result.
//
// Duplicate directives resolve first-wins: the first block line that both
// resolves a canonical field (under any alias, long or short form alike) and
// decodes successfully sets the field; every later line for that field
// passes through verbatim. A known-key line whose value fails to decode
// leaves the field unset and also passes through.
func Extract(text string) ExtractResult {
	buf := parseScript(text)
	result := ExtractResult{
		Shebang:    buf.shebang,
		HasShebang: buf.hasShebang,
		Body:       buf.body,
	}

	var resolved [numFields]bool
	for _, line := range buf.directives {
		if line.malformed {
			result.Passthrough = append(result.Passthrough, PassthroughLine{Raw: line.raw, Malformed: true})
			continue
		}
		if line.hasKey && !resolved[line.field] && result.Params.setDecoded(line.field, line.value) {
			resolved[line.field] = true
			continue
		}
		result.Passthrough = append(result.Passthrough, PassthroughLine{Raw: line.raw})
	}
	return result
}
