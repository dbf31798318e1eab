package obfuscate

import (
	"testing"
	"unicode/utf16"
)

func TestWideRoundTrip(t *testing.T) {
	t.Run("Encode and decode", func(t *testing.T) {
		w := EncodeWide(`C:\Windows\System32\ntdll.dll`, 31)
		if w.String() != `C:\Windows\System32\ntdll.dll` {
			t.Fatalf("got %q", w.String())
		}
	})

	t.Run("units are terminated", func(t *testing.T) {
		w := EncodeWide("abc", 31)
		u := w.Units()
		if len(u) != 4 || u[3] != 0 {
			t.Fatalf("expected 4 units with zero terminator, got %v", u)
		}
	})

	t.Run("non-BMP runes use surrogate pairs", func(t *testing.T) {
		const lit = "lock \U0001f512"
		w := EncodeWide(lit, 8)
		u := w.Units()
		want := utf16.Encode([]rune(lit))
		if len(u) != len(want)+1 {
			t.Fatalf("expected %d units, got %d", len(want)+1, len(u))
		}
		if w.String() != lit {
			t.Fatalf("got %q, want %q", w.String(), lit)
		}
	})

	t.Run("ciphertext differs from plaintext units", func(t *testing.T) {
		ct := SealWide("wide secret", 45)
		plain := utf16.Encode([]rune("wide secret"))
		same := true
		for i := range plain {
			if ct[i] != plain[i] {
				same = false
				break
			}
		}
		if same {
			t.Fatal("SealWide returned the plaintext units unchanged")
		}
	})

	t.Run("StaticWide decodes generator output", func(t *testing.T) {
		w := StaticWide(77, SealWide("generated wide", 77))
		if w.String() != "generated wide" {
			t.Fatalf("got %q", w.String())
		}
	})

	t.Run("empty literal", func(t *testing.T) {
		w := EncodeWide("", 2)
		u := w.Units()
		if len(u) != 1 || u[0] != 0 {
			t.Fatalf("expected single zero unit, got %v", u)
		}
	})
}

func TestWideIdempotence(t *testing.T) {
	t.Run("repeated Units calls do not re-encrypt", func(t *testing.T) {
		w := EncodeWide("idempotent wide", 9)
		first := w.Units()
		snapshot := make([]uint16, len(first))
		copy(snapshot, first)

		second := w.Units()
		for i := range second {
			if second[i] != snapshot[i] {
				t.Fatalf("unit %d changed on second call", i)
			}
		}
		if &first[0] != &second[0] {
			t.Fatal("Units returned different backing arrays")
		}
	})
}

func TestWideZeroize(t *testing.T) {
	t.Run("every unit reads zero", func(t *testing.T) {
		w := EncodeWide("wipe wide", 13)
		u := w.Units()
		w.Zeroize()
		if !allZero16(u) {
			t.Fatal("wide buffer not fully zeroed")
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		w := EncodeWide("wipe wide twice", 13)
		w.Units()
		w.Zeroize()
		w.Zeroize()
		if !allZero16(w.data) {
			t.Fatal("buffer changed after second zeroize")
		}
	})
}
