package jsregexp

import (
	"math"
	"unicode/utf16"

	"github.com/lembacon/jsregexp/helpers"
)

// NotFound is the Position of a capture slot that never participated
// in the match.
const NotFound = math.MaxInt

// Range locates a capture inside the input buffer.
type Range struct {
	Position int
	Length   int
}

func newCaptures(n int) []Range {
	captures := make([]Range, n)
	for i := range captures {
		captures[i].Position = NotFound
	}
	return captures
}

// inputText is the engine-owned copy of a caller's input: the caller's
// code units plus a NUL sentinel, lowercased in place when the pattern
// ignores case. The executor bounds its cursor by length, so character
// tests never read the sentinel; a NUL would fail them in any case.
type inputText struct {
	text   []uint16
	length int
}

func newInputText(text []uint16, ignoreCase bool) *inputText {
	buf := make([]uint16, len(text)+1)
	copy(buf, text)
	if ignoreCase {
		helpers.ToLower(buf[:len(text)])
	}
	return &inputText{text: buf, length: len(text)}
}

// Match is one successful match. It references the engine-owned input
// buffer, so its accessors stay valid for as long as the Match lives,
// independent of the caller's original slice. Under IgnoreCase the
// referenced input is the lowercased copy.
type Match struct {
	input    *inputText
	captures []Range
}

// Input returns the engine-owned input the match was found in.
func (m *Match) Input() []uint16 {
	return m.input.text[:m.input.length]
}

// Index returns the position of the overall match.
func (m *Match) Index() int {
	return m.captures[0].Position
}

// Length returns the length of the overall match.
func (m *Match) Length() int {
	return m.captures[0].Length
}

// Text returns the matched code units.
func (m *Match) Text() []uint16 {
	return m.input.text[m.Index() : m.Index()+m.Length()]
}

// String returns the matched text decoded from UTF-16.
func (m *Match) String() string {
	return string(utf16.Decode(m.Text()))
}

// GroupCount returns the number of capture slots including slot 0,
// the overall match.
func (m *Match) GroupCount() int {
	return len(m.captures)
}

// Group returns capture slot i. An optional group that did not
// participate reports Position == NotFound and Length == 0.
func (m *Match) Group(i int) Range {
	return m.captures[i]
}

// GroupText returns the code units captured by slot i, or nil for a
// group that did not participate.
func (m *Match) GroupText(i int) []uint16 {
	r := m.captures[i]
	if r.Position == NotFound {
		return nil
	}
	return m.input.text[r.Position : r.Position+r.Length]
}

// GroupString returns the captured text of slot i decoded from UTF-16.
func (m *Match) GroupString(i int) string {
	return string(utf16.Decode(m.GroupText(i)))
}
