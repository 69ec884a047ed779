package format

import (
	"encoding/binary"
	"fmt"

	"github.com/gomantics/imgsize/internal/stream"
)

// icoDirEntryLen is the size in bytes of one ICONDIRENTRY / CURSORDIRENTRY.
const icoDirEntryLen = 16

// ParseICO reads an ICO directory and returns the dimensions of the entry
// with the largest pixel area, ties broken in favor of the later entry.
// Orientation is always 1.
func ParseICO(p *stream.PullStream) (width, height, orientation int, err error) {
	return parseIconDirectory(p)
}

// ParseCUR reads a CUR directory identically to ICO: the directory layout
// and entry-selection rule are the same, only the type discriminant at
// byte 2 differs (already examined, but not consumed, by dispatch).
// Orientation is always 1.
func ParseCUR(p *stream.PullStream) (width, height, orientation int, err error) {
	return parseIconDirectory(p)
}

func parseIconDirectory(p *stream.PullStream) (width, height, orientation int, err error) {
	header, err := p.Read(6)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("%w: reading icon directory header: %v", ErrInvalidData, err)
	}

	count := int(binary.LittleEndian.Uint16(header[4:6]))

	var bestW, bestH int
	bestArea := -1

	for i := 0; i < count; i++ {
		entry, err := p.Read(icoDirEntryLen)
		if err != nil {
			return 0, 0, 0, fmt.Errorf("%w: reading icon directory entry %d: %v", ErrInvalidData, i, err)
		}

		w := dimensionOrFullCircle(entry[0])
		h := dimensionOrFullCircle(entry[1])
		area := w * h

		if area >= bestArea {
			bestArea = area
			bestW = w
			bestH = h
		}
	}

	return bestW, bestH, 1, nil
}

// dimensionOrFullCircle applies the ICO convention that a stored dimension
// byte of 0 means 256.
func dimensionOrFullCircle(b byte) int {
	if b == 0 {
		return 256
	}
	return int(b)
}
