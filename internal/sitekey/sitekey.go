// Package sitekey derives stable per-call-site seeds for obfuscated string
// instances. Seeding from a bare source line number collides as soon as two
// files place literals on the same line; hashing the full site identity
// (file path, symbol, occurrence index) keeps distinct sites on distinct
// key streams while staying deterministic across builds.
package sitekey

import (
	"encoding/binary"

	"golang.org/x/crypto/blake2b"
)

// separator keeps ("ab","c") and ("a","bc") from hashing identically.
const separator = "\x1f"

// Derive hashes the joined parts and returns the first 8 bytes as a seed.
// The same parts always yield the same seed, in every build and every run.
func Derive(parts ...string) uint64 {
	h, err := blake2b.New(8, nil)
	if err != nil {
		// Only reachable with an invalid digest size or oversized key;
		// both are fixed at compile time here.
		panic(err)
	}
	for i, p := range parts {
		if i > 0 {
			h.Write([]byte(separator))
		}
		h.Write([]byte(p))
	}
	return binary.LittleEndian.Uint64(h.Sum(nil))
}
