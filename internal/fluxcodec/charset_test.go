package fluxcodec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fluxbase/fluxbase/internal/errs"
)

func TestBuildCharsetDeduplicates(t *testing.T) {
	c, err := BuildCharset([]byte("aabbccdd"), false)
	require.NoError(t, err)
	assert.Equal(t, []byte("abcd"), c.Symbols())
	assert.Equal(t, 4, c.Radix())
	assert.Equal(t, 4, c.EffectiveRadix())
	assert.False(t, c.Pow2())
}

func TestBuildCharsetRejectsTooFewSymbols(t *testing.T) {
	_, err := BuildCharset([]byte("aaaa"), false)
	require.Error(t, err)
	assert.Equal(t, errs.CodeConfig, errs.Code(err))
}

func TestBuildCharsetPow2Truncates(t *testing.T) {
	// 10 unique symbols -> largest power of two prefix is 8 (k=3).
	c, err := BuildCharset([]byte("ABCDEFGHIJ"), true)
	require.NoError(t, err)
	assert.Equal(t, []byte("ABCDEFGH"), c.Symbols())
	assert.Equal(t, 10, c.Radix())
	assert.Equal(t, 8, c.EffectiveRadix())
	assert.Equal(t, 3, c.BitsPerSymbol())
}

func TestBuildCharsetIdempotent(t *testing.T) {
	raw := []byte("ABCDEFGHIJ")
	first, err := BuildCharset(raw, true)
	require.NoError(t, err)
	second, err := BuildCharset(first.Symbols(), true)
	require.NoError(t, err)
	assert.Equal(t, first.Symbols(), second.Symbols())
	assert.Equal(t, first.EffectiveRadix(), second.EffectiveRadix())
}

func TestOutputLengthMonotonicity(t *testing.T) {
	// non-decreasing in block size
	assert.LessOrEqual(t, OutputLength(1, 16), OutputLength(2, 16))
	assert.LessOrEqual(t, OutputLength(2, 16), OutputLength(3, 16))

	// non-increasing in radix
	assert.GreaterOrEqual(t, OutputLength(8, 2), OutputLength(8, 16))
	assert.GreaterOrEqual(t, OutputLength(8, 16), OutputLength(8, 256))
}

func TestOutputLengthKnownValues(t *testing.T) {
	assert.Equal(t, 2, OutputLength(1, 16))   // hex, 1 byte -> 2 symbols
	assert.Equal(t, 8, OutputLength(1, 2))    // binary, 1 byte -> 8 bits
	assert.Equal(t, 1, OutputLength(1, 256))  // full byte radix
	assert.Equal(t, 11, OutputLength(8, 58))  // base58-like, 8 zero bytes
}
