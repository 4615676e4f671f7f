package jsregexp

import "unicode/utf16"

// Split splits input around every match of the pattern and returns the
// pieces. If capturing parentheses are used in the expression, the
// captured text is included in the result between the surrounding
// pieces: a pattern of "-" splits "a-b" into ["a", "b"], while "(-)"
// splits it into ["a", "-", "b"].
//
// Split always scans the whole input from position 0, regardless of
// the Global flag, and leaves lastIndex untouched. A zero-length match
// advances the scan by one code unit. If the pattern never matches (or
// the Regexp is inert) the whole input is returned as a single piece.
func (re *Regexp) Split(input []uint16) [][]uint16 {
	if re.prog == nil {
		return [][]uint16{append([]uint16(nil), input...)}
	}

	in := newInputText(input, re.ignoreCase())

	matches := re.findAll(in)
	if len(matches) == 0 {
		return [][]uint16{append([]uint16(nil), input...)}
	}

	var parts [][]uint16
	prev := 0
	for _, m := range matches {
		parts = append(parts, append([]uint16(nil), input[prev:m.Index()]...))
		for i := 1; i < m.GroupCount(); i++ {
			g := m.Group(i)
			if g.Position == NotFound {
				parts = append(parts, nil)
				continue
			}
			parts = append(parts, append([]uint16(nil), input[g.Position:g.Position+g.Length]...))
		}
		prev = m.Index() + m.Length()
	}
	parts = append(parts, append([]uint16(nil), input[prev:]...))

	return parts
}

// SplitString is Split over the UTF-16 encoding of input.
func (re *Regexp) SplitString(input string) []string {
	parts := re.Split(utf16.Encode([]rune(input)))
	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = string(utf16.Decode(p))
	}
	return out
}

// findAll iterates matches with a local cursor, leaving the lastIndex
// protocol out of it.
func (re *Regexp) findAll(in *inputText) []*Match {
	var matches []*Match

	pos := 0
	for pos < in.length {
		captures := newCaptures(1 + re.storage)

		found := false
		for start := pos; start < in.length; start++ {
			if re.execute(in, start, captures) {
				found = true
				break
			}
		}
		if !found {
			break
		}

		m := &Match{input: in, captures: captures}
		matches = append(matches, m)

		pos = m.Index() + m.Length()
		if m.Length() == 0 {
			pos++
		}
	}

	return matches
}
