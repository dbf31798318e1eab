// Package gen turns a literal manifest into generated Go source whose
// static data holds only ciphertext. Running it ahead of the main build
// is the stand-in for compile-time constant evaluation: the plaintext
// exists in the manifest and nowhere in the compiled binary.
package gen

import (
	"bytes"
	"encoding/json"
	"fmt"
	"go/format"
	"go/token"
	"strconv"

	"github.com/Real-Fruit-Snacks/Shroud/internal/sitekey"
	"github.com/Real-Fruit-Snacks/Shroud/pkg/obfuscate"
)

// Entry describes one literal to obfuscate. A nil Seed means the seed
// is derived from the package, name, and position in the manifest --
// stable across builds, distinct across entries.
type Entry struct {
	Name  string  `json:"name"`
	Value string  `json:"value"`
	Wide  bool    `json:"wide,omitempty"`
	Seed  *uint64 `json:"seed,omitempty"`
}

// Manifest is the generator input: a target package and its literals.
type Manifest struct {
	Package string  `json:"package"`
	Entries []Entry `json:"entries"`
}

// Parse decodes and validates a JSON manifest.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("gen: invalid manifest: %w", err)
	}
	if err := m.validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

func (m *Manifest) validate() error {
	if !token.IsIdentifier(m.Package) {
		return fmt.Errorf("gen: package %q is not a valid Go identifier", m.Package)
	}
	if len(m.Entries) == 0 {
		return fmt.Errorf("gen: manifest has no entries")
	}
	seen := make(map[string]bool, len(m.Entries))
	for i, e := range m.Entries {
		if !token.IsIdentifier(e.Name) {
			return fmt.Errorf("gen: entry %d: name %q is not a valid Go identifier", i, e.Name)
		}
		if seen[e.Name] {
			return fmt.Errorf("gen: duplicate entry name %q", e.Name)
		}
		seen[e.Name] = true
	}
	return nil
}

// SeedFor returns the seed for entry i: the explicit seed when given,
// otherwise a hash of the site identity (package, name, index).
func (m *Manifest) SeedFor(i int) uint64 {
	e := m.Entries[i]
	if e.Seed != nil {
		return *e.Seed
	}
	return sitekey.Derive(m.Package, e.Name, strconv.Itoa(i))
}

// Generate emits the gofmt'd Go source for the manifest. The output
// contains no plaintext: only seeds and ciphertext units.
func Generate(m *Manifest) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "// Code generated by shroudgen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", m.Package)
	fmt.Fprintf(&buf, "import \"github.com/Real-Fruit-Snacks/Shroud/pkg/obfuscate\"\n\n")

	for i, e := range m.Entries {
		seed := m.SeedFor(i)
		if e.Wide {
			writeWideVar(&buf, e.Name, seed, obfuscate.SealWide(e.Value, seed))
		} else {
			writeVar(&buf, e.Name, seed, obfuscate.Seal(e.Value, seed))
		}
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("gen: formatting generated source: %w", err)
	}
	return src, nil
}

func writeVar(buf *bytes.Buffer, name string, seed uint64, ct []byte) {
	fmt.Fprintf(buf, "var %s = obfuscate.Static(%#x, []byte{", name, seed)
	for i, b := range ct {
		if i > 0 {
			buf.WriteString(", ")
		}
		fmt.Fprintf(buf, "%#02x", b)
	}
	buf.WriteString("})\n\n")
}

func writeWideVar(buf *bytes.Buffer, name string, seed uint64, ct []uint16) {
	fmt.Fprintf(buf, "var %s = obfuscate.StaticWide(%#x, []uint16{", name, seed)
	for i, u := range ct {
		if i > 0 {
			buf.WriteString(", ")
		}
		fmt.Fprintf(buf, "%#04x", u)
	}
	buf.WriteString("})\n\n")
}
