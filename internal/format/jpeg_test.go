package format

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sofSegment(width, height uint16) []byte {
	buf := []byte{0xFF, 0xC0, 0x00, 0x11, 0x08, 0, 0, 0, 0}
	binary.BigEndian.PutUint16(buf[5:7], height)
	binary.BigEndian.PutUint16(buf[7:9], width)
	return buf
}

func app1ExifSegment(tiffData []byte) []byte {
	payload := append([]byte("Exif\x00\x00"), tiffData...)
	length := uint16(2 + len(payload))
	buf := []byte{0xFF, 0xE1, 0, 0}
	binary.BigEndian.PutUint16(buf[2:4], length)
	return append(buf, payload...)
}

func TestParseJPEGWithoutEXIF(t *testing.T) {
	data := append([]byte{0xFF, 0xD8}, sofSegment(800, 600)...)

	w, h, orientation, err := ParseJPEG(newStream(data))
	require.NoError(t, err)
	assert.Equal(t, 800, w)
	assert.Equal(t, 600, h)
	assert.Equal(t, 1, orientation)
}

func TestParseJPEGAppliesEXIFOrientation(t *testing.T) {
	tiffData := tiffHeader(binary.LittleEndian, "II",
		encodeIFDEntry(binary.LittleEndian, tagOrientation, 6),
	)

	data := []byte{0xFF, 0xD8}
	data = append(data, app1ExifSegment(tiffData)...)
	data = append(data, sofSegment(800, 600)...)

	w, h, orientation, err := ParseJPEG(newStream(data))
	require.NoError(t, err)
	assert.Equal(t, 600, w)
	assert.Equal(t, 800, h)
	assert.Equal(t, 6, orientation)
}

func TestParseJPEGSkipsOtherAPPSegments(t *testing.T) {
	app0 := []byte{0xFF, 0xE0, 0x00, 0x08, 'J', 'F', 'I', 'F', 0, 0}
	data := append([]byte{0xFF, 0xD8}, app0...)
	data = append(data, sofSegment(320, 240)...)

	w, h, orientation, err := ParseJPEG(newStream(data))
	require.NoError(t, err)
	assert.Equal(t, 320, w)
	assert.Equal(t, 240, h)
	assert.Equal(t, 1, orientation)
}
