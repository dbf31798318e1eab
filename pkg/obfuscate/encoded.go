package obfuscate

import (
	"sync"

	"github.com/Real-Fruit-Snacks/Shroud/pkg/keystream"
)

// String holds one obfuscated narrow literal. The buffer starts out as
// ciphertext and is decoded in place, exactly once, on first access.
// Buffer and flag are unexported so no caller can run the raw XOR
// transform against a buffer that is already plaintext -- a second
// unguarded pass would silently re-encrypt it.
//
// A memory dump taken before first use captures only ciphertext. The
// seed itself is not secret: it only selects which key stream the
// ciphertext was mixed with.
type String struct {
	mu        sync.Mutex
	seed      uint64
	data      []byte // ciphertext until first decode, then plaintext
	decrypted bool
}

// Seal returns the ciphertext for plaintext under seed, including the
// trailing NUL terminator. The shroudgen generator calls this ahead of
// the main build; the emitted byte array is all the binary ever carries.
func Seal(plaintext string, seed uint64) []byte {
	buf := make([]byte, len(plaintext)+1)
	copy(buf, plaintext)
	keystream.Apply(seed, buf)
	return buf
}

// Static wraps generator-produced ciphertext. The ciphertext must have
// been produced by Seal with the same seed; Static takes ownership of
// the slice.
func Static(seed uint64, ciphertext []byte) *String {
	return &String{seed: seed, data: ciphertext}
}

// Encode builds a String from plaintext at runtime. Unlike the
// generator path this cannot remove the literal from the binary's
// static data; it only keeps the working copy encoded at rest until
// first use.
func Encode(plaintext string, seed uint64) *String {
	return Static(seed, Seal(plaintext, seed))
}

// Bytes decodes the buffer in place on first call and returns the
// plaintext including the trailing NUL. Repeated calls return the same
// slice without touching the buffer again. Safe for concurrent first
// use: the flag check and the XOR pass run under the instance lock.
//
// The returned slice aliases the instance buffer and stays valid until
// Zeroize. Calling Bytes after Zeroize is out of contract: the buffer
// reads as zeroes or, if the flag was never set, as key-stream garbage.
func (s *String) Bytes() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.decrypted {
		keystream.Apply(s.seed, s.data)
		s.decrypted = true
	}
	return s.data
}

// String returns the decoded value without the terminator. The returned
// Go string is immutable and backed by a separate allocation that cannot
// be wiped — callers who need the exposure window bounded should stay on
// Bytes or Use instead.
func (s *String) String() string {
	b := s.Bytes()
	return string(b[:len(b)-1])
}

// Len returns the number of code units including the terminator.
func (s *String) Len() int {
	return len(s.data)
}

// Zeroize overwrites every unit of the buffer with zero using a wipe the
// compiler cannot eliminate. Idempotent. The decrypted flag is left as
// is: its value after zeroization is undefined and must not be relied
// upon.
func (s *String) Zeroize() {
	s.mu.Lock()
	defer s.mu.Unlock()
	Wipe(s.data)
}
