/*
Package jsregexp is a JavaScript-style regular expression engine over
16-bit code units. It accepts ECMAScript-flavored patterns, compiles
them to a backtracking NFA and provides matching, global iteration and
template-based replacement on UTF-16 code-unit strings.

The engine is meant for embedding in a host that speaks UTF-16
internally: every string it touches (pattern, input, template, output)
is a []uint16 of code units, and surrogate pairs are treated as two
independent units. String convenience wrappers convert through
unicode/utf16.

Matching selects the longest candidate from a given start position,
not the leftmost-first path ECMAScript mandates. That is intentional;
(a+)(b+) against "aaabb" still yields the greedy maximal split, but
patterns relying on alternation order for shorter matches behave
differently than in a JavaScript host.
*/
package jsregexp

import (
	"strconv"
	"sync"
	"unicode/utf16"

	"github.com/lembacon/jsregexp/syntax"
)

// RegexOptions is the flag bitmask accepted by the constructors.
type RegexOptions int32

const (
	None       RegexOptions = 0x0
	IgnoreCase RegexOptions = 0x0001 // "i": ASCII-only case-insensitive matching
	Multiline  RegexOptions = 0x0002 // "m": ^ and $ match at line terminators
	Global     RegexOptions = 0x0004 // "g": exec resumes from lastIndex
)

// Regexp is a compiled pattern. All state except the lastIndex cursor
// is immutable after construction; the cursor is mutex-guarded, so a
// Regexp is safe for concurrent use by multiple goroutines.
type Regexp struct {
	pattern []uint16
	options RegexOptions

	expr    syntax.Expr
	prog    *syntax.Program
	err     *syntax.Error
	storage int

	mu        sync.Mutex
	lastIndex int
}

// New compiles a pattern and never fails: an invalid pattern yields an
// inert Regexp whose Err reports the parse diagnostic. Test returns
// false, Exec and ExecAll return nothing and Replace returns its input
// unchanged on an inert Regexp.
func New(pattern []uint16, opt RegexOptions) *Regexp {
	re := &Regexp{
		pattern: append([]uint16(nil), pattern...),
		options: opt,
	}

	expr, storage, err := syntax.Parse(re.pattern)
	re.storage = storage
	if err != nil {
		re.err = err
		return re
	}

	re.expr = expr
	re.prog = syntax.Compile(expr, storage)
	return re
}

// Compile parses a regular expression over the UTF-16 encoding of expr
// and returns, if successful, a Regexp that can be used to match
// against text.
func Compile(expr string, opt RegexOptions) (*Regexp, error) {
	re := New(utf16.Encode([]rune(expr)), opt)
	if re.err != nil {
		return nil, re.err
	}
	return re, nil
}

// MustCompile is like Compile but panics if the expression cannot be
// parsed. It simplifies safe initialization of global variables
// holding compiled regular expressions.
func MustCompile(expr string, opt RegexOptions) *Regexp {
	re, err := Compile(expr, opt)
	if err != nil {
		panic(`jsregexp: Compile(` + quote(expr) + `): ` + err.Error())
	}
	return re
}

func quote(s string) string {
	if strconv.CanBackquote(s) {
		return "`" + s + "`"
	}
	return strconv.Quote(s)
}

// Pattern returns the source pattern as code units.
func (re *Regexp) Pattern() []uint16 {
	return re.pattern
}

// String returns the source text used to compile the regular expression.
func (re *Regexp) String() string {
	return string(utf16.Decode(re.pattern))
}

// Options returns the flags the Regexp was constructed with.
func (re *Regexp) Options() RegexOptions {
	return re.options
}

// Err returns the parse diagnostic for an inert Regexp, or nil.
func (re *Regexp) Err() *syntax.Error {
	return re.err
}

// StorageCount returns the number of capturing groups in the pattern.
func (re *Regexp) StorageCount() int {
	return re.storage
}

// LastIndex returns the global-iteration cursor. It is only consulted
// and updated when the Global flag is set.
func (re *Regexp) LastIndex() int {
	re.mu.Lock()
	defer re.mu.Unlock()
	return re.lastIndex
}

// SetLastIndex moves the global-iteration cursor.
func (re *Regexp) SetLastIndex(i int) {
	re.mu.Lock()
	re.lastIndex = i
	re.mu.Unlock()
}

// Dump renders the parsed tree and the compiled automaton in their
// pretty-printed diagnostic forms.
func (re *Regexp) Dump() string {
	var s string
	if re.expr != nil {
		s += syntax.DumpExpr(re.expr)
		s += "\n"
	}
	if re.prog != nil {
		s += re.prog.Dump()
	}
	return s
}

func (re *Regexp) global() bool {
	return re.options&Global != 0
}

func (re *Regexp) multiline() bool {
	return re.options&Multiline != 0
}

func (re *Regexp) ignoreCase() bool {
	return re.options&IgnoreCase != 0
}

// Test reports whether the pattern matches anywhere in text.
func (re *Regexp) Test(text []uint16) bool {
	return re.Exec(text) != nil
}

// TestString is Test over the UTF-16 encoding of text.
func (re *Regexp) TestString(text string) bool {
	return re.Test(utf16.Encode([]rune(text)))
}

// Exec searches text for the next match. Without the Global flag the
// search always begins at position 0; with it, at lastIndex, and a
// successful match moves lastIndex to the end of the match while a
// failed search resets it to 0.
func (re *Regexp) Exec(text []uint16) *Match {
	re.mu.Lock()
	defer re.mu.Unlock()
	return re.exec(newInputText(text, re.ignoreCase()))
}

// ExecString is Exec over the UTF-16 encoding of text.
func (re *Regexp) ExecString(text string) *Match {
	return re.Exec(utf16.Encode([]rune(text)))
}

// ExecAll collects every match. With the Global flag it resets
// lastIndex to 0 and iterates the whole input, advancing one code unit
// past each zero-length match; without it, at most the first match is
// returned. All returned matches share one engine-owned input buffer.
func (re *Regexp) ExecAll(text []uint16) []*Match {
	re.mu.Lock()
	defer re.mu.Unlock()

	if re.prog == nil {
		return nil
	}
	if re.global() {
		re.lastIndex = 0
	}

	in := newInputText(text, re.ignoreCase())

	var matches []*Match
	for {
		m := re.exec(in)
		if m == nil {
			break
		}
		matches = append(matches, m)

		if !re.global() {
			break
		}
		if m.Length() == 0 {
			re.lastIndex++
		}
		if re.lastIndex >= in.length {
			break
		}
	}
	return matches
}

// ExecAllString is ExecAll over the UTF-16 encoding of text.
func (re *Regexp) ExecAllString(text string) []*Match {
	return re.ExecAll(utf16.Encode([]rune(text)))
}

// exec implements the lastIndex protocol around a single scan. The
// caller holds re.mu.
func (re *Regexp) exec(in *inputText) *Match {
	if re.prog == nil {
		return nil
	}

	start := 0
	if re.global() {
		if re.lastIndex >= in.length {
			re.lastIndex = 0
			return nil
		}
		start = re.lastIndex
	}

	captures := newCaptures(1 + re.storage)
	for ; start < in.length; start++ {
		if re.execute(in, start, captures) {
			if re.global() {
				re.lastIndex = captures[0].Position + captures[0].Length
			}
			return &Match{input: in, captures: captures}
		}
	}

	if re.global() {
		re.lastIndex = 0
	}
	return nil
}
