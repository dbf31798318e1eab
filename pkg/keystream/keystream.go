package keystream

// KeySize is the fixed length of a rolling key. Payloads longer than
// KeySize cycle the key by index modulo KeySize.
const KeySize = 32

// gamma is the splitmix64 increment. Adding it before each mixing round
// keeps the state sequence from sticking at zero for seed 0.
const gamma = 0x9e3779b97f4a7c15

// Mix applies one xor-shift/multiply diffusion round to v. The shift
// distances and the final multiply spread single-bit input differences
// across the full 64-bit output.
func Mix(v uint64) uint64 {
	v ^= v >> 12
	v ^= v << 25
	v ^= v >> 27
	return v * 0x2545f4914f6cdd1d
}

// Derive returns length bytes of deterministic pseudorandom key material
// for seed. Each output byte comes from a fresh mixing round, so the
// stream has no short internal cycle. Derive(s, n) is a prefix of
// Derive(s, m) for n < m.
func Derive(seed uint64, length int) []byte {
	key := make([]byte, length)
	state := seed
	for i := range key {
		state += gamma
		key[i] = byte(Mix(state))
	}
	return key
}

// Apply XORs buf in place against the rolling key for seed, cycling the
// key by index modulo KeySize. XOR is self-inverse: applying the same
// seed twice restores buf.
func Apply(seed uint64, buf []byte) {
	key := Derive(seed, KeySize)
	for i := range buf {
		buf[i] ^= key[i%KeySize]
	}
}
