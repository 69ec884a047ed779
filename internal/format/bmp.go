package format

import (
	"encoding/binary"
	"fmt"

	"github.com/gomantics/imgsize/internal/stream"
)

// ParseBMP reads a BMP file header and DIB header, returning pixel
// dimensions. Orientation is always 1 (BMP carries no orientation tag).
func ParseBMP(p *stream.PullStream) (width, height, orientation int, err error) {
	header, err := p.Read(32)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("%w: reading BMP header: %v", ErrInvalidData, err)
	}

	dibLen := binary.LittleEndian.Uint32(header[14:18])

	if dibLen == 40 {
		w := int32(binary.LittleEndian.Uint32(header[18:22]))
		h := int32(binary.LittleEndian.Uint32(header[22:26]))
		if h < 0 {
			h = -h
		}
		return int(w), int(h), 1, nil
	}

	// BITMAPCOREHEADER: unsigned 16-bit width/height.
	w := binary.LittleEndian.Uint16(header[18:20])
	h := binary.LittleEndian.Uint16(header[20:22])
	return int(w), int(h), 1, nil
}
