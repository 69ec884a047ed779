package format

import (
	"encoding/binary"
	"testing"
)

func pngHeader(width, height uint32) []byte {
	buf := make([]byte, 25)
	copy(buf[0:8], []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A})
	binary.BigEndian.PutUint32(buf[8:12], 13) // IHDR length
	copy(buf[12:16], "IHDR")
	binary.BigEndian.PutUint32(buf[16:20], width)
	binary.BigEndian.PutUint32(buf[20:24], height)
	return buf
}

func TestParsePNG(t *testing.T) {
	w, h, orientation, err := ParsePNG(newStream(pngHeader(1920, 1080)))
	if err != nil {
		t.Fatalf("ParsePNG() error = %v", err)
	}
	if w != 1920 || h != 1080 {
		t.Errorf("ParsePNG() = (%d, %d), want (1920, 1080)", w, h)
	}
	if orientation != 1 {
		t.Errorf("ParsePNG() orientation = %d, want 1", orientation)
	}
}
