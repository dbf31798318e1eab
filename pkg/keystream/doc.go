// Package keystream derives deterministic pseudorandom key material from
// integer seeds. The mixing function provides statistical diffusion only --
// it is not a cryptographic PRF. Identical seeds produce byte-identical
// streams in every build and every run, which is what lets the shroudgen
// generator compute ciphertext ahead of the main build and the runtime
// recover the same key from nothing but the seed.
package keystream
