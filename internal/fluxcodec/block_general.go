package fluxcodec

import (
	"github.com/fluxbase/fluxbase/internal/fluxcodec/bigdigits"
)

// encodeBlockGeneral interprets data as a big-endian non-negative
// integer and repeatedly divides by the charset's effective radix,
// collecting remainders as symbols least-significant first, then
// zero-pads and reverses to produce outputLength symbols
// most-significant first.
func encodeBlockGeneral(data []byte, charset *Charset, outputLength int) []byte {
	num := bigdigits.FromBytes(data)
	radix := charset.effectiveRadix

	digits := make([]byte, 0, outputLength)
	if num.IsZero() {
		digits = append(digits, charset.symbols[0])
	} else {
		for !num.IsZero() {
			rem := num.DivModSmall(radix)
			digits = append(digits, charset.symbols[rem])
		}
	}
	for len(digits) < outputLength {
		digits = append(digits, charset.symbols[0])
	}
	reverseBytes(digits)
	return digits
}

// decodeBlockGeneral reverses encodeBlockGeneral: it folds each symbol
// into a running big integer (N = N*radix + index) and serializes the
// result into exactly blockBytes big-endian bytes.
func decodeBlockGeneral(chunk []byte, blockBytes int, charset *Charset) ([]byte, error) {
	radix := charset.effectiveRadix
	num := bigdigits.Digits{0}
	for _, c := range chunk {
		idx, err := charset.indexOf(c)
		if err != nil {
			return nil, err
		}
		num.MulAddSmall(radix, idx)
	}
	return num.ToBytes(blockBytes), nil
}

func reverseBytes(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}
