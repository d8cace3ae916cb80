package fluxcodec

// Options is the opaque configuration the File Streamer is driven
// with. It is populated by callers (library or CLI) and treated as a
// plain data bag by the codec core.
type Options struct {
	// Charset is required for Encode, and for Decode when Header is
	// false.
	Charset *Charset

	// BlockSize is the number of input bytes per block on encode, and
	// the number of output bytes per block on decode. Required unless
	// Header is true on decode, in which case it comes from the file.
	BlockSize int

	// Header controls whether Encode writes a FLXB header, and whether
	// Decode expects to read one.
	Header bool

	// MaxRateBytesPerSec throttles streaming I/O when > 0. Zero means
	// unlimited.
	MaxRateBytesPerSec int

	// Progress, when non-nil, receives (bytesDone, bytesTotal) updates
	// as the streamer works. bytesTotal is 0 if the input size is
	// unknown. The channel is never closed by the streamer beyond its
	// final send; callers own draining and stopping.
	Progress chan<- Progress
}

// Progress is one streaming progress update.
type Progress struct {
	BytesDone  int64
	BytesTotal int64
}
