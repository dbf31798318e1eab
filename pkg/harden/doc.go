// Package harden reduces the ways decoded string plaintext can leak out
// of process memory: core dumps written to disk, and pages swapped or
// hibernated while a literal is decoded. It complements the obfuscate
// package -- the XOR layer protects the binary image and memory at
// rest, harden protects the decoded window.
package harden
