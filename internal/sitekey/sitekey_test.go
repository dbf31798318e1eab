package sitekey

import "testing"

func TestDerive(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		a := Derive("pkg/c2/https.go", "userAgent", "0")
		b := Derive("pkg/c2/https.go", "userAgent", "0")
		if a != b {
			t.Fatalf("same parts produced %#x and %#x", a, b)
		}
	})

	t.Run("distinct parts produce distinct seeds", func(t *testing.T) {
		a := Derive("main.go", "banner", "0")
		b := Derive("main.go", "banner", "1")
		if a == b {
			t.Fatal("occurrence index did not change the seed")
		}
	})

	t.Run("part boundaries matter", func(t *testing.T) {
		a := Derive("ab", "c")
		b := Derive("a", "bc")
		if a == b {
			t.Fatal("shifting a byte across a part boundary kept the seed")
		}
	})

	t.Run("no parts", func(t *testing.T) {
		// Degenerate but defined: hash of the empty input.
		a := Derive()
		b := Derive()
		if a != b {
			t.Fatal("empty derivation is not stable")
		}
	})
}
