package format

import (
	"encoding/binary"
	"fmt"

	"github.com/gomantics/imgsize/internal/stream"
)

// ParsePSD reads the 26-byte PSD file header. The header stores height
// before width; ParsePSD returns them in the conventional (width, height)
// order. Orientation is always 1.
func ParsePSD(p *stream.PullStream) (width, height, orientation int, err error) {
	header, err := p.Read(26)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("%w: reading PSD header: %v", ErrInvalidData, err)
	}

	height = int(binary.BigEndian.Uint32(header[14:18]))
	width = int(binary.BigEndian.Uint32(header[18:22]))
	return width, height, 1, nil
}
