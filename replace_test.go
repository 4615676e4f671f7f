package jsregexp

import "testing"

func TestReplace_Basic(t *testing.T) {
	re := MustCompile(`test`, None)
	if want, got := "this is a unit", re.ReplaceString("this is a test", "unit"); want != got {
		t.Fatalf("wanted %q, got %q", want, got)
	}
}

func TestReplace_SwapGroups(t *testing.T) {
	re := MustCompile(`(\w+)\s(\w+)`, None)
	if want, got := "world hello", re.ReplaceString("hello world", "$2 $1"); want != got {
		t.Fatalf("wanted %q, got %q", want, got)
	}
}

func TestReplace_NonGlobalReplacesFirst(t *testing.T) {
	re := MustCompile(`a`, None)
	if want, got := "xbcabc", re.ReplaceString("abcabc", "x"); want != got {
		t.Fatalf("wanted %q, got %q", want, got)
	}
}

func TestReplace_GlobalReplacesAll(t *testing.T) {
	re := MustCompile(`a`, Global)
	if want, got := "xbcxbc", re.ReplaceString("abcabc", "x"); want != got {
		t.Fatalf("wanted %q, got %q", want, got)
	}
}

func TestReplace_NoMatchReturnsInput(t *testing.T) {
	re := MustCompile(`z`, Global)
	if want, got := "abc", re.ReplaceString("abc", "x"); want != got {
		t.Fatalf("wanted %q, got %q", want, got)
	}
}

func TestReplace_TemplateSpecials(t *testing.T) {
	tests := []struct {
		name     string
		pattern  string
		input    string
		template string
		want     string
	}{
		{"dollar-dollar", `b`, "abc", "$$", "a$c"},
		{"whole-match", `b+`, "abbc", "[$&]", "a[bb]c"},
		{"before-match", `c`, "abc", "$`", "abab"},
		{"after-match", `a`, "abc", "$'", "bcbc"},
		{"trailing-dollar", `b`, "abc", "x$", "ax$c"},
		{"unknown-escape", `b`, "abc", "$z", "a$zc"},
		{"group-zero", `b+`, "abbc", "<$0>", "a<bb>c"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			re := MustCompile(test.pattern, None)
			if got := re.ReplaceString(test.input, test.template); got != test.want {
				t.Fatalf("wanted %q, got %q", test.want, got)
			}
		})
	}
}

func TestReplace_TemplateDigits(t *testing.T) {
	// Two capture slots plus the overall match: indexes 0..2 valid.
	re := MustCompile(`(a)(b)`, None)

	tests := []struct {
		name     string
		template string
		want     string
	}{
		{"both-groups", "$1$2", "_ab_"},
		// $12: longest valid prefix is 1; '2' stays literal.
		{"longest-prefix", "$12", "_a2_"},
		// $3 is out of range: the whole run is dropped.
		{"invalid-single", "$3x", "_x_"},
		{"invalid-run", "$34", "__"},
		// Leading zero names slot 0, then '5' is out of range.
		{"leading-zero", "$05", "_ab5_"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := re.ReplaceString("_ab_", test.template); got != test.want {
				t.Fatalf("wanted %q, got %q", test.want, got)
			}
		})
	}
}

func TestReplace_UnmatchedGroupExpandsEmpty(t *testing.T) {
	re := MustCompile(`(x)?(b)`, None)
	if want, got := "a[-b]c", re.ReplaceString("abc", "[$1-$2]"); want != got {
		t.Fatalf("wanted %q, got %q", want, got)
	}
}

func TestReplace_ZeroLengthGlobal(t *testing.T) {
	re := MustCompile(`q*`, Global)
	// A zero-length match at every scanned position splices the
	// substitution between the code units.
	if want, got := "-a-b", re.ReplaceString("ab", "-"); want != got {
		t.Fatalf("wanted %q, got %q", want, got)
	}
}

func TestReplace_IgnoreCaseKeepsUnmatchedCase(t *testing.T) {
	re := MustCompile(`dog`, IgnoreCase|Global)
	// Unmatched stretches come from the caller's input, not the
	// lowercased working copy.
	if want, got := "my CAT has Fleas", re.ReplaceString("my DOG has Fleas", "CAT"); want != got {
		t.Fatalf("wanted %q, got %q", want, got)
	}
}

func TestReplaceFunc_Callback(t *testing.T) {
	re := MustCompile(`\d+`, Global)
	got := re.ReplaceStringFunc("a1b22", func(m *Match) string {
		return "<" + m.String() + ">"
	})
	if want := "a<1>b<22>"; want != got {
		t.Fatalf("wanted %q, got %q", want, got)
	}
}

func TestReplace_GlobalResetsCursor(t *testing.T) {
	re := MustCompile(`a`, Global)
	re.SetLastIndex(2)
	if want, got := "xbcxbc", re.ReplaceString("abcabc", "x"); want != got {
		t.Fatalf("wanted %q, got %q", want, got)
	}
}
