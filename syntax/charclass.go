package syntax

// CharRange is an inclusive range of 16-bit code units.
type CharRange struct {
	Lo, Hi uint16
}

var lineTerminators = []CharRange{
	{'\r', '\r'},
	{'\n', '\n'},
	{0x2028, 0x2028},
	{0x2029, 0x2029},
}

// NewUnspecifiedChar returns the class compiled from the "." atom: any
// single code unit that is not a line terminator. The empty inverted
// class [^] produces the same node.
func NewUnspecifiedChar() *CharacterClassExpr {
	return &CharacterClassExpr{Ranges: lineTerminators, Inverse: true}
}

func newSingleChar(ch uint16) *CharacterClassExpr {
	return &CharacterClassExpr{Ranges: []CharRange{{ch, ch}}}
}

// newPredefinedClass builds \d \D \s \S \w \W as a standalone atom,
// keeping the complement as an inverse flag rather than materialized
// ranges.
func newPredefinedClass(ch uint16) *CharacterClassExpr {
	ranges, inverse := predefinedRanges(ch)
	return &CharacterClassExpr{Ranges: ranges, Inverse: inverse}
}

func predefinedRanges(ch uint16) ([]CharRange, bool) {
	switch ch {
	case 'd', 'D':
		return []CharRange{{'0', '9'}}, ch == 'D'
	case 's', 'S':
		return []CharRange{{' ', ' '}, {'\t', '\t'}, {'\r', '\r'}, {'\n', '\n'}}, ch == 'S'
	case 'w', 'W':
		return []CharRange{{'A', 'Z'}, {'a', 'z'}, {'0', '9'}, {'_', '_'}}, ch == 'W'
	}
	return nil, false
}

// appendPredefinedClass flattens \d-style escapes into an enclosing
// class's range set. Complements materialize as the two ranges around
// each base range so they compose with sibling ranges; NUL stays
// excluded since it can never match.
func appendPredefinedClass(ranges []CharRange, ch uint16) []CharRange {
	base, inverse := predefinedRanges(ch)
	if !inverse {
		return append(ranges, base...)
	}
	for _, r := range base {
		if r.Lo > 1 {
			ranges = append(ranges, CharRange{1, r.Lo - 1})
		}
		if r.Hi < 0xFFFF {
			ranges = append(ranges, CharRange{r.Hi + 1, 0xFFFF})
		}
	}
	return ranges
}

// Match reports whether ch satisfies the class. NUL never matches: the
// executor's input buffer is NUL-terminated and the sentinel must fail
// every character test. Under ignoreCase the input has already been
// lowercased, and an ASCII lowercase ch is additionally tested in its
// uppercase form against the raw pattern ranges. The pattern's own
// ranges are never folded, so the overall folding is asymmetric.
func (c *CharacterClassExpr) Match(ch uint16, ignoreCase bool) bool {
	if ch == 0 {
		return false
	}

	var folded uint16
	if ignoreCase && ch >= 'a' && ch <= 'z' {
		folded = ch - 'a' + 'A'
	}

	for _, r := range c.Ranges {
		if r.Lo <= ch && ch <= r.Hi {
			return !c.Inverse
		}
		if folded != 0 && r.Lo <= folded && folded <= r.Hi {
			return !c.Inverse
		}
	}
	return c.Inverse
}
