package format

import (
	"encoding/binary"
	"fmt"

	"github.com/gomantics/imgsize/internal/stream"
)

// ParseGIF reads the GIF signature and logical screen descriptor.
// Orientation is always 1 (GIF carries no orientation tag).
func ParseGIF(p *stream.PullStream) (width, height, orientation int, err error) {
	header, err := p.Read(11)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("%w: reading GIF header: %v", ErrInvalidData, err)
	}

	width = int(binary.LittleEndian.Uint16(header[6:8]))
	height = int(binary.LittleEndian.Uint16(header[8:10]))
	return width, height, 1, nil
}
