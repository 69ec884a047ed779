package format

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// encodeIFDEntry builds one 14-byte IFD0 entry matching ParseEXIF's stride:
// a 2-byte tag, 6 skipped bytes, a 2-byte value, and 4 trailing skipped bytes.
func encodeIFDEntry(order binary.ByteOrder, tag, value uint16) []byte {
	buf := make([]byte, ifdEntryLen)
	order.PutUint16(buf[0:2], tag)
	order.PutUint16(buf[8:10], value)
	return buf
}

func tiffHeader(order binary.ByteOrder, mark string, entries ...[]byte) []byte {
	buf := make([]byte, 8)
	copy(buf[0:2], mark)
	order.PutUint16(buf[2:4], 42)
	order.PutUint32(buf[4:8], 8) // IFD0 offset, right after the header

	count := make([]byte, 2)
	order.PutUint16(count, uint16(len(entries)))
	buf = append(buf, count...)

	for _, e := range entries {
		buf = append(buf, e...)
	}
	return buf
}

func TestParseEXIFLittleEndian(t *testing.T) {
	entries := [][]byte{
		encodeIFDEntry(binary.LittleEndian, tagImageWidth, 1024),
		encodeIFDEntry(binary.LittleEndian, tagImageHeight, 768),
		encodeIFDEntry(binary.LittleEndian, tagOrientation, 1),
	}
	data := tiffHeader(binary.LittleEndian, "II", entries...)

	result, err := ParseEXIF(newStream(data))
	require.NoError(t, err)
	assert.Equal(t, 1024, result.Width)
	assert.Equal(t, 768, result.Height)
	assert.Equal(t, 1, result.Orientation)
	assert.False(t, result.Rotated())
}

func TestParseEXIFBigEndian(t *testing.T) {
	entries := [][]byte{
		encodeIFDEntry(binary.BigEndian, tagImageWidth, 640),
		encodeIFDEntry(binary.BigEndian, tagImageHeight, 480),
	}
	data := tiffHeader(binary.BigEndian, "MM", entries...)

	result, err := ParseEXIF(newStream(data))
	require.NoError(t, err)
	assert.Equal(t, 640, result.Width)
	assert.Equal(t, 480, result.Height)
	// Orientation defaults to 1 when the tag is absent.
	assert.Equal(t, 1, result.Orientation)
}

func TestParseEXIFRotatedOrientation(t *testing.T) {
	entries := [][]byte{
		encodeIFDEntry(binary.LittleEndian, tagImageWidth, 100),
		encodeIFDEntry(binary.LittleEndian, tagImageHeight, 200),
		encodeIFDEntry(binary.LittleEndian, tagOrientation, 6),
	}
	data := tiffHeader(binary.LittleEndian, "II", entries...)

	result, err := ParseEXIF(newStream(data))
	require.NoError(t, err)
	assert.True(t, result.Rotated())
}

func TestParseEXIFRejectsUnknownByteOrder(t *testing.T) {
	data := tiffHeader(binary.LittleEndian, "XX")
	_, err := ParseEXIF(newStream(data))
	assert.ErrorIs(t, err, ErrInvalidData)
}
