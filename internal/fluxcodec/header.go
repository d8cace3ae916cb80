package fluxcodec

import (
	"encoding/binary"
	"io"

	"github.com/fluxbase/fluxbase/internal/errs"
)

// Magic is the 4-byte FLXB container magic.
var Magic = [4]byte{'F', 'L', 'X', 'B'}

// Version is the only supported container version.
const Version uint32 = 1

// headerFixedSize is the byte length of the fixed-layout portion of the
// header, before the variable-length charset bytes: magic(4) +
// version(4) + pow2(1) + block_size(4) + output_length(4) +
// charset_length(4) = 21.
const headerFixedSize = 4 + 4 + 1 + 4 + 4 + 4

// Metadata is the fixed-layout header prefix, plus the alphabet bytes
// it carries. All multi-byte integers are little-endian.
type Metadata struct {
	Version       uint32
	Pow2          bool
	BlockSize     uint32
	OutputLength  uint32
	CharsetLength uint32
	Charset       []byte
}

// WriteHeader serializes meta to w in FLXB v1 wire format.
func WriteHeader(w io.Writer, meta Metadata) error {
	buf := make([]byte, headerFixedSize)
	copy(buf[0:4], Magic[:])
	binary.LittleEndian.PutUint32(buf[4:8], Version)
	if meta.Pow2 {
		buf[8] = 1
	}
	binary.LittleEndian.PutUint32(buf[9:13], meta.BlockSize)
	binary.LittleEndian.PutUint32(buf[13:17], meta.OutputLength)
	binary.LittleEndian.PutUint32(buf[17:21], uint32(len(meta.Charset)))

	if _, err := w.Write(buf); err != nil {
		return errs.WrapIO(err, "failed to write header")
	}
	if _, err := w.Write(meta.Charset); err != nil {
		return errs.WrapIO(err, "failed to write header charset")
	}
	return nil
}

// ReadHeader parses a FLXB v1 header from r.
func ReadHeader(r io.Reader) (Metadata, error) {
	buf := make([]byte, headerFixedSize)
	if _, err := io.ReadFull(r, buf); err != nil {
		return Metadata{}, errs.WrapFormat(err, "failed to read header")
	}
	if string(buf[0:4]) != string(Magic[:]) {
		return Metadata{}, errs.Format("invalid header magic")
	}
	version := binary.LittleEndian.Uint32(buf[4:8])
	if version != Version {
		return Metadata{}, errs.Format("unsupported version %d", version)
	}

	meta := Metadata{
		Version:       version,
		Pow2:          buf[8] != 0,
		BlockSize:     binary.LittleEndian.Uint32(buf[9:13]),
		OutputLength:  binary.LittleEndian.Uint32(buf[13:17]),
		CharsetLength: binary.LittleEndian.Uint32(buf[17:21]),
	}

	meta.Charset = make([]byte, meta.CharsetLength)
	if _, err := io.ReadFull(r, meta.Charset); err != nil {
		return Metadata{}, errs.WrapFormat(err, "incomplete charset in header")
	}
	return meta, nil
}
