// Package fluxcodec implements the fluxbase block codec: turning a
// fixed-size byte block into a fixed-width symbol string over an
// arbitrary-radix alphabet, and back.
package fluxcodec

import (
	"math"
	"math/bits"

	"github.com/fluxbase/fluxbase/internal/errs"
)

// invalidIndex marks a byte that is not a member of a Charset's symbols
// in its decode lookup table.
const invalidIndex = 0xFFFF

// Charset is an immutable, deduplicated alphabet plus the derived
// parameters the block codec needs to encode or decode against it.
type Charset struct {
	symbols        []byte
	radix          int
	effectiveRadix int
	bitsPerSymbol  int
	pow2           bool
	decodeTable    [256]uint16
}

// Symbols returns the effective symbol sequence (post-dedup, post-pow2
// truncation) in encode order. The returned slice must not be mutated.
func (c *Charset) Symbols() []byte { return c.symbols }

// Radix returns the number of unique bytes in the raw alphabet supplied
// to BuildCharset, before any pow2 truncation.
func (c *Charset) Radix() int { return c.radix }

// EffectiveRadix returns the radix actually used for arithmetic.
func (c *Charset) EffectiveRadix() int { return c.effectiveRadix }

// BitsPerSymbol returns the number of bits packed per symbol in pow2
// mode, or 0 in general mode.
func (c *Charset) BitsPerSymbol() int { return c.bitsPerSymbol }

// Pow2 reports whether this charset uses bitstream packing.
func (c *Charset) Pow2() bool { return c.pow2 }

// BuildCharset normalizes raw into a canonical Charset: it deduplicates
// raw preserving first-occurrence order and, in pow2 mode, truncates to
// the largest 2^k prefix. It fails with a ConfigError if fewer than two
// unique symbols remain.
func BuildCharset(raw []byte, pow2 bool) (*Charset, error) {
	var seen [256]bool
	unique := make([]byte, 0, len(raw))
	for _, b := range raw {
		if !seen[b] {
			seen[b] = true
			unique = append(unique, b)
		}
	}
	if len(unique) < 2 {
		return nil, errs.Config("charset must contain at least 2 unique symbols, got %d", len(unique))
	}

	c := &Charset{pow2: pow2, radix: len(unique)}
	if pow2 {
		k := bits.Len(uint(len(unique))) - 1
		c.effectiveRadix = 1 << k
		c.bitsPerSymbol = k
		c.symbols = unique[:c.effectiveRadix]
	} else {
		c.effectiveRadix = len(unique)
		c.symbols = unique
	}

	for i := range c.decodeTable {
		c.decodeTable[i] = invalidIndex
	}
	for i, b := range c.symbols {
		c.decodeTable[b] = uint16(i)
	}
	return c, nil
}

// indexOf returns the position of b in the charset's symbols, or a
// FormatError if b is not a member.
func (c *Charset) indexOf(b byte) (int, error) {
	idx := c.decodeTable[b]
	if idx == invalidIndex {
		return 0, errs.Format("invalid symbol %q in encoded stream", b)
	}
	return int(idx), nil
}

// OutputLength computes L, the canonical symbol width of one encoded
// block of blockSize bytes over this charset's effective radix. L is
// the smallest integer such that effectiveRadix^L >= 256^blockSize;
// the candidate from the ceiling is re-checked with coversBlock, a
// second floating-point comparison with a small tolerance, and nudged
// down or up until it is the smallest value that check accepts.
func (c *Charset) OutputLength(blockSize int) int {
	return OutputLength(blockSize, c.effectiveRadix)
}

// OutputLength computes L for a given block size and effective radix,
// per spec: ceil(8*blockSize / log2(effectiveRadix)), guarded against
// floating-point underestimation.
func OutputLength(blockSizeBytes, effectiveRadix int) int {
	bitsNeeded := float64(blockSizeBytes) * 8
	logv := math.Log2(float64(effectiveRadix))
	l := int(math.Ceil(bitsNeeded / logv))
	if l < 1 {
		l = 1
	}
	// Floating-point log2 can be off by an ULP right at a power-of-two
	// boundary; verify against the true requirement and nudge in
	// whichever direction is needed so L never undershoots (and is
	// still minimal).
	for l > 1 && coversBlock(l-1, effectiveRadix, blockSizeBytes) {
		l--
	}
	for !coversBlock(l, effectiveRadix, blockSizeBytes) {
		l++
	}
	return l
}

// coversBlock reports whether effectiveRadix^l >= 256^blockSizeBytes,
// compared in the log2 domain with float64 so large blocks cannot
// overflow.
func coversBlock(l, effectiveRadix, blockSizeBytes int) bool {
	if l <= 0 {
		return blockSizeBytes == 0
	}
	// log2(effectiveRadix^l) >= log2(256^blockSizeBytes) == 8*blockSizeBytes
	needed := float64(blockSizeBytes) * 8
	got := float64(l) * math.Log2(float64(effectiveRadix))
	// Guard the boundary with a tiny epsilon so exact powers of two
	// (e.g. radix 16, block 1 -> L=2) don't get bumped by float noise.
	const eps = 1e-9
	return got+eps >= needed
}
