package jsregexp

import "unicode/utf16"

// Escape returns text with every pattern metacharacter preceded by a
// backslash, so the result compiles to a pattern matching text
// literally. The quoted characters are exactly the ones the grammar
// excludes from literal pattern characters, plus '-' so the result is
// also safe inside a character class.
func Escape(text []uint16) []uint16 {
	out := make([]uint16, 0, len(text))
	for _, ch := range text {
		switch ch {
		case '^', '$', '\\', '.', '*', '+', '?', '(', ')', '[', ']', '{', '}', '|', '-':
			out = append(out, '\\')
		}
		out = append(out, ch)
	}
	return out
}

// EscapeString is Escape over the UTF-16 encoding of text.
func EscapeString(text string) string {
	return string(utf16.Decode(Escape(utf16.Encode([]rune(text)))))
}
