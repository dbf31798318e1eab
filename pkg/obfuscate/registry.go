package obfuscate

import (
	"runtime"
	"strconv"
	"sync"

	"github.com/Real-Fruit-Snacks/Shroud/internal/sitekey"
)

// Each Decode call site owns exactly one persistent instance, created
// lazily the first time the site is reached and kept for the lifetime
// of the process. Sites are identified by caller source position, so
// the literal passed at a given call site must be constant -- a site
// that passes varying values keeps returning its first literal.
//
// The default seed is a hash of the site identity rather than the bare
// line number: two files sharing a line number must not share a key
// stream. DecodeSeed overrides the derived seed for callers that need
// explicit control over collisions.
var (
	siteMu    sync.Mutex
	sites     = make(map[string]*String)
	wideSites = make(map[string]*WideString)
)

// callerSite returns a stable identifier and derived seed for the call
// site two frames up (the caller of the exported entry point).
func callerSite() (id string, seed uint64) {
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		file, line = "unknown", 0
	}
	id = file + ":" + strconv.Itoa(line)
	return id, sitekey.Derive(file, strconv.Itoa(line))
}

func siteString(id string, seed uint64, lit string) *String {
	siteMu.Lock()
	defer siteMu.Unlock()
	s, ok := sites[id]
	if !ok {
		s = Encode(lit, seed)
		sites[id] = s
	}
	return s
}

func siteWide(id string, seed uint64, lit string) *WideString {
	siteMu.Lock()
	defer siteMu.Unlock()
	w, ok := wideSites[id]
	if !ok {
		w = EncodeWide(lit, seed)
		wideSites[id] = w
	}
	return w
}

// Decode returns the persistent decoded bytes for lit, including the
// trailing NUL. The instance decodes once on first reach and the
// returned slice stays valid and stable for the rest of the process.
// It is never wiped automatically; pair with ShredAll at teardown.
func Decode(lit string) []byte {
	id, seed := callerSite()
	return siteString(id, seed, lit).Bytes()
}

// DecodeSeed is Decode with a caller-supplied seed, for sites that need
// to rule out derived-seed collisions between distinct literals.
func DecodeSeed(lit string, seed uint64) []byte {
	id, _ := callerSite()
	return siteString(id, seed, lit).Bytes()
}

// DecodeWide returns the persistent decoded UTF-16 units for lit,
// including the zero terminator.
func DecodeWide(lit string) []uint16 {
	id, seed := callerSite()
	return siteWide(id, seed, lit).Units()
}

// DecodeWideSeed is DecodeWide with a caller-supplied seed.
func DecodeWideSeed(lit string, seed uint64) []uint16 {
	id, _ := callerSite()
	return siteWide(id, seed, lit).Units()
}

// DecodeScoped hands fn the decoded bytes of lit and guarantees the
// buffer is wiped when fn returns, on every exit path. The instance is
// ephemeral -- nothing persists past the call -- so repeated executions
// of the same site each get a fresh bounded exposure window.
func DecodeScoped(lit string, fn func(plaintext []byte)) {
	_, seed := callerSite()
	Encode(lit, seed).Use(fn)
}

// DecodeWideScoped is the wide counterpart of DecodeScoped.
func DecodeWideScoped(lit string, fn func(units []uint16)) {
	_, seed := callerSite()
	EncodeWide(lit, seed).Use(fn)
}

// ShredAll wipes every persistent site instance and drops the registry.
// Call at process teardown so decoded literals do not outlive their
// usefulness in a core file or swapped page. Sites reached after
// ShredAll re-create their instances from the literal.
func ShredAll() {
	siteMu.Lock()
	defer siteMu.Unlock()
	for id, s := range sites {
		s.Zeroize()
		delete(sites, id)
	}
	for id, w := range wideSites {
		w.Zeroize()
		delete(wideSites, id)
	}
}
