package obfuscate

import (
	"sync"
	"unicode/utf16"

	"github.com/Real-Fruit-Snacks/Shroud/pkg/keystream"
)

// WideString is the UTF-16 counterpart of String for talking to APIs
// that take wide, zero-terminated code-unit sequences. The logic is the
// String state machine over 16-bit units: each unit is XORed against
// the byte of the rolling key at the same cycled index.
type WideString struct {
	mu        sync.Mutex
	seed      uint64
	data      []uint16 // ciphertext until first decode, then plaintext
	decrypted bool
}

// applyWide XORs units in place against the rolling key for seed,
// cycled modulo the key size. Self-inverse, like the narrow transform.
func applyWide(seed uint64, units []uint16) {
	key := keystream.Derive(seed, keystream.KeySize)
	for i := range units {
		units[i] ^= uint16(key[i%keystream.KeySize])
	}
}

// SealWide returns the wide ciphertext for plaintext under seed: the
// UTF-16 encoding of the literal plus a zero terminator, key-mixed.
func SealWide(plaintext string, seed uint64) []uint16 {
	units := utf16.Encode([]rune(plaintext))
	buf := make([]uint16, len(units)+1)
	copy(buf, units)
	applyWide(seed, buf)
	return buf
}

// StaticWide wraps generator-produced wide ciphertext and takes
// ownership of the slice.
func StaticWide(seed uint64, ciphertext []uint16) *WideString {
	return &WideString{seed: seed, data: ciphertext}
}

// EncodeWide builds a WideString from plaintext at runtime.
func EncodeWide(plaintext string, seed uint64) *WideString {
	return StaticWide(seed, SealWide(plaintext, seed))
}

// Units decodes the buffer in place on first call and returns the
// plaintext code units including the zero terminator. Idempotent and
// safe for concurrent first use. The slice aliases the instance buffer
// and is invalidated by Zeroize.
func (w *WideString) Units() []uint16 {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.decrypted {
		applyWide(w.seed, w.data)
		w.decrypted = true
	}
	return w.data
}

// String returns the decoded value without the terminator, converted
// back from UTF-16. Same immutability caveat as String.String.
func (w *WideString) String() string {
	u := w.Units()
	return string(utf16.Decode(u[:len(u)-1]))
}

// Len returns the number of code units including the terminator.
func (w *WideString) Len() int {
	return len(w.data)
}

// Zeroize overwrites every unit with zero. Idempotent; the decrypted
// flag is undefined afterwards, as for String.Zeroize.
func (w *WideString) Zeroize() {
	w.mu.Lock()
	defer w.mu.Unlock()
	wipe16(w.data)
}
