// Package qr generates the scannable code artifact for a catalogued book.
package qr

import (
	"fmt"
	"os"
	"path/filepath"

	qrcode "github.com/skip2/go-qrcode"
)

// payloadPrefix namespaces the encoded identifier so a scanner can tell
// catalogue codes apart from arbitrary QR content.
const payloadPrefix = "book:"

// Generator writes QR code images into a directory served statically.
type Generator struct {
	dir  string
	size int
}

// NewGenerator builds a generator writing 256px PNGs into dir.
func NewGenerator(dir string) *Generator {
	return &Generator{dir: dir, size: 256}
}

// Payload is the exact string encoded for an ISBN. Exposed so callers and
// scanners agree on the format.
func Payload(isbn string) string {
	return payloadPrefix + isbn
}

// ArtifactName is the stable file name for an ISBN's code image.
func ArtifactName(isbn string) string {
	return fmt.Sprintf("qr_code_%s.png", isbn)
}

// Generate encodes the namespaced ISBN payload at medium error correction
// and writes it under the artifact directory. Regenerating for the same
// ISBN encodes the same payload into the same file name.
func (g *Generator) Generate(isbn string) (string, error) {
	if err := os.MkdirAll(g.dir, 0o755); err != nil {
		return "", fmt.Errorf("creating artifact dir: %w", err)
	}

	name := ArtifactName(isbn)
	path := filepath.Join(g.dir, name)
	if err := qrcode.WriteFile(Payload(isbn), qrcode.Medium, g.size, path); err != nil {
		return "", fmt.Errorf("writing qr code for %s: %w", isbn, err)
	}
	return name, nil
}
