package jsregexp

import (
	"strings"
	"testing"
	"unicode/utf16"
)

func BenchmarkExec_Literal(b *testing.B) {
	re := MustCompile(`needle`, None)
	text := utf16.Encode([]rune(strings.Repeat("haystack ", 64) + "needle"))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if re.Exec(text) == nil {
			b.Fatal("no match")
		}
	}
}

func BenchmarkExec_Alternation(b *testing.B) {
	re := MustCompile(`foo|bar|baz|qux`, None)
	text := utf16.Encode([]rune(strings.Repeat("xyzzy ", 50) + "qux"))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if re.Exec(text) == nil {
			b.Fatal("no match")
		}
	}
}

func BenchmarkExecAll_Digits(b *testing.B) {
	re := MustCompile(`\d+`, Global)
	text := utf16.Encode([]rune(strings.Repeat("ab12 cd345 ", 32)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if len(re.ExecAll(text)) == 0 {
			b.Fatal("no matches")
		}
	}
}

func BenchmarkReplace_Template(b *testing.B) {
	re := MustCompile(`(\w+)@(\w+)`, Global)
	input := utf16.Encode([]rune(strings.Repeat("user@host ", 32)))
	template := utf16.Encode([]rune("$2:$1"))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		re.Replace(input, template)
	}
}

func BenchmarkCompile(b *testing.B) {
	pattern := utf16.Encode([]rune(`^(\w+)\s+(\d{2,4})(?:;|,)\s*(?=[a-f])`))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if re := New(pattern, Multiline); re.Err() != nil {
			b.Fatal(re.Err())
		}
	}
}
