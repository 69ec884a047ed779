package format

import (
	"bytes"
	"fmt"

	"github.com/gomantics/imgsize/internal/stream"
)

// ParseWebP reads the RIFF/WEBP container header and dispatches to the
// sub-format (VP8, VP8L, or VP8X) named at bytes 12-15. Orientation is
// always 1 -- WEBP-EXIF orientation is explicitly out of scope.
func ParseWebP(p *stream.PullStream) (width, height, orientation int, err error) {
	header, err := p.Read(16)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("%w: reading WEBP header: %v", ErrInvalidData, err)
	}

	subFormat := header[12:16]

	if _, err := p.Read(4); err != nil { // chunk length, unused
		return 0, 0, 0, fmt.Errorf("%w: reading WEBP chunk length: %v", ErrInvalidData, err)
	}

	switch {
	case bytes.Equal(subFormat, []byte("VP8 ")):
		w, h, err := parseVP8(p)
		return w, h, 1, err
	case bytes.Equal(subFormat, []byte("VP8L")):
		w, h, err := parseVP8L(p)
		return w, h, 1, err
	case bytes.Equal(subFormat, []byte("VP8X")):
		w, h, err := parseVP8X(p)
		return w, h, 1, err
	default:
		return 0, 0, 0, fmt.Errorf("%w: unrecognized WEBP sub-format %q", ErrInvalidData, subFormat)
	}
}

func parseVP8(p *stream.PullStream) (width, height int, err error) {
	b, err := p.Read(10)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: reading VP8 frame tag: %v", ErrInvalidData, err)
	}
	width = (int(b[6]) | int(b[7])<<8) & 0x3FFF
	height = (int(b[8]) | int(b[9])<<8) & 0x3FFF
	return width, height, nil
}

func parseVP8L(p *stream.PullStream) (width, height int, err error) {
	if _, err := p.Read(1); err != nil { // signature byte, 0x2F, unchecked
		return 0, 0, fmt.Errorf("%w: reading VP8L signature: %v", ErrInvalidData, err)
	}
	b, err := p.Read(4)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: reading VP8L dimensions: %v", ErrInvalidData, err)
	}
	b1, b2, b3, b4 := int(b[0]), int(b[1]), int(b[2]), int(b[3])

	width = 1 + (((b2 & 0x3F) << 8) | b1)
	height = 1 + (((b4 & 0x0F) << 10) | (b3 << 2) | ((b2 & 0xC0) >> 6))
	return width, height, nil
}

func parseVP8X(p *stream.PullStream) (width, height int, err error) {
	if _, err := p.Read(4); err != nil { // flags + 3 reserved bytes
		return 0, 0, fmt.Errorf("%w: reading VP8X flags: %v", ErrInvalidData, err)
	}
	b, err := p.Read(6)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: reading VP8X dimensions: %v", ErrInvalidData, err)
	}
	b1, b2, b3 := int(b[0]), int(b[1]), int(b[2])
	b4, b5, b6 := int(b[3]), int(b[4]), int(b[5])

	width = 1 + b1 + (b2 << 8) + (b3 << 16)
	height = 1 + b4 + (b5 << 8) + (b6 << 16)
	return width, height, nil
}
