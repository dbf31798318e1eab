// Command shroudgen computes ciphertext for string literals ahead of the
// main build and emits them as Go source. The compiled binary then
// carries only key-mixed bytes; the plaintext lives solely in the
// manifest, which never ships.
//
// Typical use from a go:generate directive:
//
//	//go:generate shroudgen -manifest literals.json -out literals_gen.go
package main

import (
	"flag"
	"fmt"
	"go/token"
	"log"
	"os"

	"github.com/Real-Fruit-Snacks/Shroud/internal/gen"
)

// version
const (
	major = "1"
	minor = "0"
	patch = "0"
)

// Command line flags.
var (
	manifestPath = flag.String("manifest", "", "path to the JSON literal manifest (required)")
	outPath      = flag.String("out", "", "output Go source file (default: stdout)")
	pkgOverride  = flag.String("pkg", "", "override the package name from the manifest")
	version      = flag.Bool("version", false, "print version")
)

func usage() {
	fmt.Fprint(os.Stderr, "Shroudgen emits obfuscated string-literal declarations as Go source.\n\n")
	fmt.Fprint(os.Stderr, "Usage:\n\n\tshroudgen -manifest FILE [-out FILE] [-pkg NAME]\n\n")
	fmt.Fprint(os.Stderr, `The manifest is a JSON document:

    {
      "package": "payload",
      "entries": [
        {"name": "Endpoint", "value": "/beacon"},
        {"name": "RegPath", "value": "SOFTWARE\\Vendor", "wide": true},
        {"name": "Pinned", "value": "fixed stream", "seed": 12345}
      ]
    }

Entries without an explicit seed get one derived from the package, entry
name, and position, so seeds stay stable across builds and distinct
across entries.

The global flags are:`)
	fmt.Fprint(os.Stderr, "\n\n")
	flag.PrintDefaults()
	os.Exit(1)
}

func printVersion() {
	fmt.Printf("shroudgen v%s.%s.%s\n", major, minor, patch)
	os.Exit(0)
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("shroudgen: ")

	flag.Usage = usage
	flag.Parse()

	if *version {
		printVersion()
	}
	if *manifestPath == "" {
		usage()
	}

	data, err := os.ReadFile(*manifestPath)
	if err != nil {
		log.Fatalf("cannot read manifest: %v", err)
	}

	m, err := gen.Parse(data)
	if err != nil {
		log.Fatal(err)
	}
	if *pkgOverride != "" {
		if !token.IsIdentifier(*pkgOverride) {
			log.Fatalf("package %q is not a valid Go identifier", *pkgOverride)
		}
		m.Package = *pkgOverride
	}

	src, err := gen.Generate(m)
	if err != nil {
		log.Fatal(err)
	}

	if *outPath == "" {
		os.Stdout.Write(src)
		return
	}
	if err := os.WriteFile(*outPath, src, 0o644); err != nil {
		log.Fatalf("cannot write %s: %v", *outPath, err)
	}
}
