// Package obfuscate keeps string literals out of a binary's readable
// static data. Each literal is stored as ciphertext XORed against a
// rolling key derived from a per-site seed, decoded in place on first
// use, and optionally wiped again when a bounded exposure window closes.
// Narrow (byte) and wide (UTF-16 code unit) literals share the same
// state machine.
//
// The ciphertext for truly static protection is produced ahead of the
// main build by the shroudgen tool, which emits Static/StaticWide
// declarations; a `strings` pass over the resulting binary sees only
// key-mixed bytes. The Decode entry points additionally cover literals
// that only need at-rest protection in process memory.
package obfuscate
