package obfuscate

import "sync"

// Guard binds one String to a bounded plaintext exposure window:
// decode on acquire, wipe on release. Release fires exactly once no
// matter how many exit paths run it, so a deferred Release plus an
// explicit early Release cannot double-wipe or skip the wipe.
//
// The guard wipes the underlying instance buffer itself, not a copy.
// After Release the instance is spent; decoding it again is out of
// contract (the buffer holds zeroes, not ciphertext).
type Guard struct {
	s        *String
	mu       sync.Mutex
	released bool
}

// Acquire decodes the string immediately and returns a guard that will
// wipe it on Release. The caller must not retain the plaintext slice
// past Release.
func (s *String) Acquire() *Guard {
	s.Bytes()
	return &Guard{s: s}
}

// Bytes returns the decoded buffer, including the terminator. Only
// valid between Acquire and Release.
func (g *Guard) Bytes() []byte {
	return g.s.Bytes()
}

// Release wipes the underlying buffer. Idempotent.
func (g *Guard) Release() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.released {
		return
	}
	g.s.Zeroize()
	g.released = true
}

// Use decodes the string, passes the plaintext to fn, and guarantees
// the buffer is wiped afterward -- even if fn panics.
// Defer order (LIFO): Release runs first, then recover catches and
// re-panics.
func (s *String) Use(fn func(plaintext []byte)) {
	g := s.Acquire()
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		}
	}()
	defer g.Release()
	fn(g.Bytes())
}

// WideGuard is the Guard counterpart for wide strings.
type WideGuard struct {
	w        *WideString
	mu       sync.Mutex
	released bool
}

// Acquire decodes the wide string immediately and returns a guard that
// will wipe it on Release.
func (w *WideString) Acquire() *WideGuard {
	w.Units()
	return &WideGuard{w: w}
}

// Units returns the decoded code units, including the terminator. Only
// valid between Acquire and Release.
func (g *WideGuard) Units() []uint16 {
	return g.w.Units()
}

// Release wipes the underlying buffer. Idempotent.
func (g *WideGuard) Release() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.released {
		return
	}
	g.w.Zeroize()
	g.released = true
}

// Use decodes the wide string, passes the code units to fn, and wipes
// the buffer afterward even if fn panics.
func (w *WideString) Use(fn func(units []uint16)) {
	g := w.Acquire()
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		}
	}()
	defer g.Release()
	fn(g.Units())
}
