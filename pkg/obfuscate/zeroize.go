package obfuscate

import (
	"runtime"

	"github.com/awnumar/memguard"
)

// Wipe overwrites b with zeroes using memguard's wipe primitive, which
// is guaranteed not to be dropped by dead-store elimination. Without
// that guarantee the optimizer may skip the writes entirely and leave
// plaintext resident until the allocation is reused.
func Wipe(b []byte) {
	memguard.WipeBytes(b)
}

// wipe16 zeroes a wide-unit buffer. The noinline directive keeps the
// compiler from inlining and then eliding the loop as a dead store;
// runtime.KeepAlive pins the slice until the writes land.
//
//go:noinline
func wipe16(u []uint16) {
	for i := range u {
		u[i] = 0
	}
	runtime.KeepAlive(u)
}
