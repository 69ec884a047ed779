package format

import (
	"encoding/binary"
	"fmt"

	"github.com/gomantics/imgsize/internal/stream"
)

// ParsePNG reads the PNG signature and IHDR chunk. Orientation is always 1
// (PNG's eXIf chunk is out of scope for this parser).
func ParsePNG(p *stream.PullStream) (width, height, orientation int, err error) {
	header, err := p.Read(25)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("%w: reading PNG header: %v", ErrInvalidData, err)
	}

	width = int(binary.BigEndian.Uint32(header[16:20]))
	height = int(binary.BigEndian.Uint32(header[20:24]))
	return width, height, 1, nil
}
