package format

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/gomantics/imgsize/internal/stream"
)

// jpegState names the states of the segment-chain walk in ParseJPEG.
type jpegState int

const (
	jpegStarted jpegState = iota
	jpegSOF
	jpegSkipFrame
	jpegReadSize
)

// ParseJPEG walks a JPEG's marker chain to find the SOF segment carrying
// its dimensions, and (from the first APP1/EXIF segment, if any) the
// orientation that rotates them.
func ParseJPEG(p *stream.PullStream) (width, height, orientation int, err error) {
	if err := p.Skip(2); err != nil { // SOI
		return 0, 0, 0, fmt.Errorf("%w: skipping SOI: %v", ErrInvalidData, err)
	}

	var exif *EXIFResult
	state := jpegStarted

	for {
		switch state {
		case jpegStarted:
			b, err := p.Read(1)
			if err != nil {
				return 0, 0, 0, fmt.Errorf("%w: reading marker byte: %v", ErrInvalidData, err)
			}
			if b[0] == 0xFF {
				state = jpegSOF
			}

		case jpegSOF:
			marker, err := p.Read(1)
			if err != nil {
				return 0, 0, 0, fmt.Errorf("%w: reading marker: %v", ErrInvalidData, err)
			}
			m := marker[0]

			switch {
			case m == 0xE1: // APP1
				length, err := readSegmentLength(p)
				if err != nil {
					return 0, 0, 0, err
				}
				data, err := p.Read(length - 2)
				if err != nil {
					return 0, 0, 0, fmt.Errorf("%w: reading APP1 segment: %v", ErrInvalidData, err)
				}
				if exif == nil && len(data) >= 6 && bytes.Equal(data[0:4], []byte("Exif")) {
					sub := stream.NewPullStream(stream.NewOffsetChunkSource(bytes.NewReader(data[6:]), stream.DefaultChunkSize))
					if result, err := ParseEXIF(sub); err == nil {
						exif = &result
					}
				}
				state = jpegStarted

			case m >= 0xE0 && m <= 0xEF: // other APPn
				state = jpegSkipFrame

			case isSOFMarker(m):
				state = jpegReadSize

			case m == 0xFF: // fill byte
				state = jpegSOF

			default:
				state = jpegSkipFrame
			}

		case jpegSkipFrame:
			length, err := readSegmentLength(p)
			if err != nil {
				return 0, 0, 0, err
			}
			if err := p.Skip(int64(length - 2)); err != nil {
				return 0, 0, 0, fmt.Errorf("%w: skipping segment: %v", ErrInvalidData, err)
			}
			state = jpegStarted

		case jpegReadSize:
			if err := p.Skip(3); err != nil { // length + precision
				return 0, 0, 0, fmt.Errorf("%w: skipping SOF header: %v", ErrInvalidData, err)
			}
			dims, err := p.Read(4)
			if err != nil {
				return 0, 0, 0, fmt.Errorf("%w: reading SOF dimensions: %v", ErrInvalidData, err)
			}
			h := int(binary.BigEndian.Uint16(dims[0:2]))
			w := int(binary.BigEndian.Uint16(dims[2:4]))

			orientation = 1
			if exif != nil {
				orientation = exif.Orientation
				if exif.Rotated() {
					w, h = h, w
				}
			}
			return w, h, orientation, nil
		}
	}
}

// isSOFMarker reports whether m is one of the SOF segment markers carrying
// dimensions: 0xC0-0xC3, 0xC5-0xC7, 0xC9-0xCB, 0xCD-0xCF (excluding the
// DHT/JPG/DAC markers 0xC4, 0xC8, 0xCC).
func isSOFMarker(m byte) bool {
	switch m {
	case 0xC4, 0xC8, 0xCC:
		return false
	}
	return m >= 0xC0 && m <= 0xCF
}

func readSegmentLength(p *stream.PullStream) (int, error) {
	b, err := p.Read(2)
	if err != nil {
		return 0, fmt.Errorf("%w: reading segment length: %v", ErrInvalidData, err)
	}
	return int(binary.BigEndian.Uint16(b)), nil
}
