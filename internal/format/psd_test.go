package format

import (
	"encoding/binary"
	"testing"
)

func psdHeader(width, height uint32) []byte {
	buf := make([]byte, 26)
	copy(buf[0:4], "8BPS")
	binary.BigEndian.PutUint32(buf[14:18], height)
	binary.BigEndian.PutUint32(buf[18:22], width)
	return buf
}

func TestParsePSD(t *testing.T) {
	w, h, orientation, err := ParsePSD(newStream(psdHeader(800, 600)))
	if err != nil {
		t.Fatalf("ParsePSD() error = %v", err)
	}
	if w != 800 || h != 600 {
		t.Errorf("ParsePSD() = (%d, %d), want (800, 600)", w, h)
	}
	if orientation != 1 {
		t.Errorf("ParsePSD() orientation = %d, want 1", orientation)
	}
}
