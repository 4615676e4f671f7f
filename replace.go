package jsregexp

import "unicode/utf16"

// Replacement runs the match loop once (or over the whole input with
// the Global flag), produces a substitution per match and splices the
// substitutions into the original input. The unmatched stretches are
// copied from the caller's input, so they keep their original case
// even when matching ignored it.

type replaceRecord struct {
	text   []uint16
	index  int
	length int
}

// Replace returns input with every match (the first match without the
// Global flag) replaced by the expansion of template. On an inert
// Regexp the input is returned unchanged.
//
// Template expansion scans for '$':
//
//	$$  literal '$'
//	$&  the matched text
//	$`  the input before the match
//	$'  the input after the match
//	$n  the capture named by the longest digit prefix that is a valid
//	    slot index; an invalid first digit drops the whole run
//
// Any other '$' sequence, and a trailing '$', are copied literally.
func (re *Regexp) Replace(input, template []uint16) []uint16 {
	return re.ReplaceFunc(input, func(m *Match) []uint16 {
		return expandTemplate(template, m)
	})
}

// ReplaceString is Replace over the UTF-16 encodings of its arguments.
func (re *Regexp) ReplaceString(input, template string) string {
	out := re.Replace(utf16.Encode([]rune(input)), utf16.Encode([]rune(template)))
	return string(utf16.Decode(out))
}

// ReplaceFunc is Replace with the substitution for each match produced
// by fn. The returned buffer is newly allocated and owned by the
// caller.
func (re *Regexp) ReplaceFunc(input []uint16, fn func(*Match) []uint16) []uint16 {
	re.mu.Lock()
	defer re.mu.Unlock()

	if re.prog == nil {
		return append([]uint16(nil), input...)
	}
	if re.global() {
		re.lastIndex = 0
	}

	in := newInputText(input, re.ignoreCase())

	var records []replaceRecord
	for {
		m := re.exec(in)
		if m == nil {
			break
		}
		records = append(records, replaceRecord{
			text:   fn(m),
			index:  m.Index(),
			length: m.Length(),
		})

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

	outLen := len(input)
	for _, rec := range records {
		outLen += len(rec.text) - rec.length
	}

	out := make([]uint16, 0, outLen)
	prev := 0
	for _, rec := range records {
		out = append(out, input[prev:rec.index]...)
		out = append(out, rec.text...)
		prev = rec.index + rec.length
	}
	out = append(out, input[prev:]...)
	return out
}

// ReplaceStringFunc is ReplaceFunc over UTF-16 encodings, with fn
// producing Go strings.
func (re *Regexp) ReplaceStringFunc(input string, fn func(*Match) string) string {
	out := re.ReplaceFunc(utf16.Encode([]rune(input)), func(m *Match) []uint16 {
		return utf16.Encode([]rune(fn(m)))
	})
	return string(utf16.Decode(out))
}

func isDigit(ch uint16) bool {
	return ch >= '0' && ch <= '9'
}

func expandTemplate(template []uint16, m *Match) []uint16 {
	var out []uint16

	for i := 0; i < len(template); i++ {
		ch := template[i]
		if ch != '$' {
			out = append(out, ch)
			continue
		}

		if i == len(template)-1 {
			out = append(out, '$')
			break
		}

		i++
		switch c := template[i]; {
		case c == '$':
			out = append(out, '$')

		case c == '&':
			out = append(out, m.Text()...)

		case c == '`':
			out = append(out, m.Input()[:m.Index()]...)

		case c == '\'':
			out = append(out, m.Input()[m.Index()+m.Length():]...)

		case isDigit(c):
			// Longest digit prefix naming a valid slot. The value only
			// grows while scanning, so the first out-of-range prefix
			// ends the search.
			idx, used := -1, 0
			v := 0
			for j := i; j < len(template) && isDigit(template[j]); j++ {
				v = v*10 + int(template[j]-'0')
				if v >= m.GroupCount() {
					break
				}
				idx, used = v, j-i+1
			}

			if idx >= 0 {
				out = append(out, m.GroupText(idx)...)
				i += used - 1
			} else {
				for i < len(template) && isDigit(template[i]) {
					i++
				}
				i--
			}

		default:
			out = append(out, '$', c)
		}
	}

	return out
}
