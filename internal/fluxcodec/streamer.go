package fluxcodec

import (
	"context"
	"io"

	"golang.org/x/time/rate"

	"github.com/fluxbase/fluxbase/internal/errs"
	"github.com/fluxbase/fluxbase/internal/xlog"
)

// Encode reads r in fixed-size blocks and writes the FLXB-encoded
// stream to w. When opts.Header is set, the container header is
// written first. bytesTotal (0 if unknown) is forwarded verbatim on
// opts.Progress updates.
func Encode(r io.Reader, w io.Writer, opts Options, bytesTotal int64) error {
	if opts.BlockSize <= 0 {
		return errs.Config("block size must be positive")
	}
	if opts.Charset == nil {
		return errs.Config("charset is required to encode")
	}

	log := xlog.Get().WithFields(map[string]interface{}{
		"block_size": opts.BlockSize,
		"pow2":       opts.Charset.Pow2(),
	})

	outputLength := opts.Charset.OutputLength(opts.BlockSize)
	if opts.Header {
		meta := Metadata{
			BlockSize:    uint32(opts.BlockSize),
			OutputLength: uint32(outputLength),
			Pow2:         opts.Charset.Pow2(),
			Charset:      opts.Charset.Symbols(),
		}
		if err := WriteHeader(w, meta); err != nil {
			return err
		}
	}

	limiter := newLimiter(opts.MaxRateBytesPerSec)
	buf := make([]byte, opts.BlockSize)
	var bytesDone int64
	var blockIndex int

	for {
		n, readErr := io.ReadFull(r, buf)
		if n > 0 {
			if err := waitLimiter(limiter, n); err != nil {
				return err
			}
			encoded := EncodeBlock(buf[:n], opts.Charset, opts.BlockSize)
			if _, err := w.Write(encoded); err != nil {
				return errs.WrapIO(err, "failed to write encoded block %d", blockIndex)
			}
			bytesDone += int64(n)
			log.WithFields(map[string]interface{}{"block_index": blockIndex, "bytes_in": n, "symbols_out": len(encoded)}).Debug("encoded block")
			reportProgress(opts.Progress, bytesDone, bytesTotal)
			blockIndex++
		}
		if readErr == io.EOF || readErr == io.ErrUnexpectedEOF {
			break
		}
		if readErr != nil {
			return errs.WrapIO(readErr, "failed to read input")
		}
	}
	return nil
}

// Decode reads a stream of L-byte symbol chunks from r (with an FLXB
// header first if opts.Header is set) and writes the decoded bytes to
// w, blockSize bytes per chunk.
func Decode(r io.Reader, w io.Writer, opts Options, bytesTotal int64) error {
	charset := opts.Charset
	blockSize := opts.BlockSize

	if opts.Header {
		meta, err := ReadHeader(r)
		if err != nil {
			return err
		}
		charset, err = BuildCharset(meta.Charset, meta.Pow2)
		if err != nil {
			return err
		}
		blockSize = int(meta.BlockSize)
		// Re-derive L rather than trusting the header value blindly;
		// a mismatch means the header was tampered with or corrupted.
		if got := charset.OutputLength(blockSize); got != int(meta.OutputLength) {
			return errs.Format("header output_length %d does not match derived length %d", meta.OutputLength, got)
		}
	} else if charset == nil {
		return errs.Config("charset is required to decode when no header is present")
	} else if blockSize <= 0 {
		return errs.Config("block size is required to decode when no header is present")
	}

	log := xlog.Get().WithFields(map[string]interface{}{
		"block_size": blockSize,
		"pow2":       charset.Pow2(),
	})

	outputLength := charset.OutputLength(blockSize)
	limiter := newLimiter(opts.MaxRateBytesPerSec)
	chunk := make([]byte, outputLength)
	var bytesDone int64
	var blockIndex int

	for {
		n, readErr := io.ReadFull(r, chunk)
		if n == 0 && (readErr == io.EOF) {
			break
		}
		if readErr != nil && readErr != io.EOF && readErr != io.ErrUnexpectedEOF {
			return errs.WrapIO(readErr, "failed to read encoded stream")
		}
		if n != outputLength {
			return errs.Format("partial block encountered during decode: got %d of %d bytes", n, outputLength)
		}

		if err := waitLimiter(limiter, n); err != nil {
			return err
		}
		decoded, err := DecodeBlock(chunk, charset, blockSize)
		if err != nil {
			return err
		}
		if _, err := w.Write(decoded); err != nil {
			return errs.WrapIO(err, "failed to write decoded block %d", blockIndex)
		}
		bytesDone += int64(n)
		log.WithFields(map[string]interface{}{"block_index": blockIndex, "symbols_in": n, "bytes_out": len(decoded)}).Debug("decoded block")
		reportProgress(opts.Progress, bytesDone, bytesTotal)
		blockIndex++
	}
	return nil
}

func newLimiter(bytesPerSec int) *rate.Limiter {
	if bytesPerSec <= 0 {
		return nil
	}
	return rate.NewLimiter(rate.Limit(bytesPerSec), bytesPerSec)
}

func waitLimiter(limiter *rate.Limiter, n int) error {
	if limiter == nil {
		return nil
	}
	// WaitN rejects requests larger than the burst, so wait in
	// burst-sized steps.
	for n > 0 {
		step := n
		if burst := limiter.Burst(); step > burst {
			step = burst
		}
		if err := limiter.WaitN(context.Background(), step); err != nil {
			return errs.IO("rate limiter wait failed: %v", err)
		}
		n -= step
	}
	return nil
}

func reportProgress(ch chan<- Progress, done, total int64) {
	if ch == nil {
		return
	}
	ch <- Progress{BytesDone: done, BytesTotal: total}
}
