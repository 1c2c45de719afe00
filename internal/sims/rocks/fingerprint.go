package rocks

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2s"
)

// Fingerprint is a BLAKE2s-256 digest of a grid's tiles.
type Fingerprint [blake2s.Size]byte

// Short returns the first n hex digits, for display.
func (f Fingerprint) Short(n int) string {
	s := f.String()
	if n <= 0 || n >= len(s) {
		return s
	}
	return s[:n]
}

func (f Fingerprint) String() string { return hex.EncodeToString(f[:]) }

// Fingerprint hashes the canonical encoding of every tile, rows concatenated
// top to bottom with no separator.
func (g *Grid) Fingerprint() Fingerprint {
	h, _ := blake2s.New256(nil) // only fails for keys over 32 bytes
	buf := make([]byte, g.Width())
	for y := 0; y < g.Height(); y++ {
		for x := range buf {
			buf[x] = g.At(x, y).Byte()
		}
		h.Write(buf)
	}
	var out Fingerprint
	h.Sum(out[:0])
	return out
}
