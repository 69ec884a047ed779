package format

import (
	"encoding/binary"
	"testing"
)

func gifHeader(width, height uint16) []byte {
	buf := make([]byte, 11)
	copy(buf[0:6], "GIF89a")
	binary.LittleEndian.PutUint16(buf[6:8], width)
	binary.LittleEndian.PutUint16(buf[8:10], height)
	return buf
}

func TestParseGIF(t *testing.T) {
	w, h, orientation, err := ParseGIF(newStream(gifHeader(320, 240)))
	if err != nil {
		t.Fatalf("ParseGIF() error = %v", err)
	}
	if w != 320 || h != 240 {
		t.Errorf("ParseGIF() = (%d, %d), want (320, 240)", w, h)
	}
	if orientation != 1 {
		t.Errorf("ParseGIF() orientation = %d, want 1", orientation)
	}
}
