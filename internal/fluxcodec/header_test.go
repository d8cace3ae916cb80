package fluxcodec

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeaderRoundTrip(t *testing.T) {
	meta := Metadata{
		BlockSize:    2,
		OutputLength: 4,
		Pow2:         false,
		Charset:      []byte("0123"),
	}
	var buf bytes.Buffer
	require.NoError(t, WriteHeader(&buf, meta))

	got, err := ReadHeader(&buf)
	require.NoError(t, err)
	assert.Equal(t, Version, got.Version)
	assert.Equal(t, meta.BlockSize, got.BlockSize)
	assert.Equal(t, meta.OutputLength, got.OutputLength)
	assert.Equal(t, meta.Pow2, got.Pow2)
	assert.Equal(t, meta.Charset, got.Charset)
	assert.Equal(t, uint32(len(meta.Charset)), got.CharsetLength)
}

func TestHeaderIsLittleEndian(t *testing.T) {
	meta := Metadata{BlockSize: 1, OutputLength: 1, Charset: []byte("ab")}
	var buf bytes.Buffer
	require.NoError(t, WriteHeader(&buf, meta))

	raw := buf.Bytes()
	// version field starts at offset 4; little-endian encoding of 1
	// puts the 0x01 byte first.
	assert.Equal(t, byte(0x01), raw[4])
	assert.Equal(t, byte(0x00), raw[5])
	assert.Equal(t, byte(0x00), raw[6])
	assert.Equal(t, byte(0x00), raw[7])
}

func TestReadHeaderRejectsBadMagic(t *testing.T) {
	buf := bytes.NewBuffer(make([]byte, headerFixedSize))
	_, err := ReadHeader(buf)
	require.Error(t, err)
}

func TestReadHeaderRejectsTruncatedInput(t *testing.T) {
	buf := bytes.NewBuffer([]byte{'F', 'L', 'X', 'B'})
	_, err := ReadHeader(buf)
	require.Error(t, err)
}

func TestReadHeaderRejectsUnsupportedVersion(t *testing.T) {
	meta := Metadata{BlockSize: 1, OutputLength: 1, Charset: []byte("ab")}
	var buf bytes.Buffer
	require.NoError(t, WriteHeader(&buf, meta))
	raw := buf.Bytes()
	raw[4] = 2 // bump version

	_, err := ReadHeader(bytes.NewReader(raw))
	require.Error(t, err)
}
