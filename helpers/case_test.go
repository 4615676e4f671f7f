package helpers

import "testing"

func refToLower(text []uint16) {
	for i, ch := range text {
		if ch >= 'A' && ch <= 'Z' {
			text[i] = ch + 0x20
		}
	}
}

func refToUpper(text []uint16) {
	for i, ch := range text {
		if ch >= 'a' && ch <= 'z' {
			text[i] = ch - 0x20
		}
	}
}

// Every code unit, exercised through the wide path by repeating it
// across a whole chunk: ToLower and ToUpper must be bit-identical to
// the scalar reference over the full 16-bit range.
func TestCase_ExhaustiveEquivalence(t *testing.T) {
	for ch := 0; ch <= 0xFFFF; ch++ {
		buf := []uint16{uint16(ch), uint16(ch), uint16(ch), uint16(ch), uint16(ch)}
		want := append([]uint16(nil), buf...)

		ToLower(buf)
		refToLower(want)
		for i := range buf {
			if buf[i] != want[i] {
				t.Fatalf("ToLower(%#04x): wanted %#04x, got %#04x", ch, want[i], buf[i])
			}
		}

		buf = []uint16{uint16(ch), uint16(ch), uint16(ch), uint16(ch), uint16(ch)}
		want = append([]uint16(nil), buf...)

		ToUpper(buf)
		refToUpper(want)
		for i := range buf {
			if buf[i] != want[i] {
				t.Fatalf("ToUpper(%#04x): wanted %#04x, got %#04x", ch, want[i], buf[i])
			}
		}
	}
}

// Mixed chunks force the per-chunk scalar fallback next to folded SWAR
// chunks.
func TestCase_MixedASCIIAndWide(t *testing.T) {
	input := []uint16{'A', 0x2028, 'Z', 'a', 'M', 'N', 'O', 'P', 0xFFFF, 'Q', 'z', '0'}
	want := []uint16{'a', 0x2028, 'z', 'a', 'm', 'n', 'o', 'p', 0xFFFF, 'q', 'z', '0'}

	got := append([]uint16(nil), input...)
	ToLower(got)
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("index %d: wanted %#04x, got %#04x", i, want[i], got[i])
		}
	}
}

func TestCase_ShortAndEmpty(t *testing.T) {
	var empty []uint16
	ToLower(empty)
	ToUpper(empty)

	buf := []uint16{'G'}
	ToLower(buf)
	if buf[0] != 'g' {
		t.Fatalf("wanted 'g', got %#04x", buf[0])
	}
	ToUpper(buf)
	if buf[0] != 'G' {
		t.Fatalf("wanted 'G', got %#04x", buf[0])
	}
}

func TestCase_FoldIsIdempotent(t *testing.T) {
	buf := []uint16{'A', 'b', 'C', 'd', 'E', 'f', 'G', 'h'}
	ToLower(buf)
	once := append([]uint16(nil), buf...)
	ToLower(buf)
	for i := range buf {
		if buf[i] != once[i] {
			t.Fatalf("index %d changed on second fold", i)
		}
	}
}
