package format

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/gomantics/imgsize/internal/stream"
)

// svgProbeRounds and svgProbeWindow bound the SVG heuristic: Detect peeks
// 10*n bytes for n = 1..svgProbeRounds, looking for the literal "<svg"
// within the first svgProbeRounds*svgProbeWindow bytes.
const (
	svgProbeRounds = 25
	svgProbeWindow = 10
)

// Detect inspects the first few bytes of p via Peek (never consuming them)
// and reports which format parser should run next. A failure of the prefix
// peeks (2 bytes, or 3 and 12 bytes for ICO/CUR and WEBP) is propagated
// wrapped but not folded into ErrUnknownType: it means the source was
// truncated or failed before any format decision could be made
// (stream.ErrEndOfInput, or a raw I/O error such as reading a directory),
// which the caller must tell apart from a genuinely unrecognized signature.
// The SVG probe is the exception: a peek failure while searching for "<svg"
// is reported as ErrUnknownType.
func Detect(p *stream.PullStream) (Format, error) {
	prefix, err := p.Peek(2)
	if err != nil {
		return Unknown, fmt.Errorf("detecting format: %w", err)
	}

	switch {
	case bytes.Equal(prefix, []byte("BM")):
		return BMP, nil
	case bytes.Equal(prefix, []byte("GI")):
		return GIF, nil
	case prefix[0] == 0xFF && prefix[1] == 0xD8:
		return JPEG, nil
	case prefix[0] == 0x89 && prefix[1] == 'P':
		return PNG, nil
	case bytes.Equal(prefix, []byte("II")), bytes.Equal(prefix, []byte("MM")):
		return TIFF, nil
	case bytes.Equal(prefix, []byte("8B")):
		return PSD, nil
	case prefix[0] == 0x00 && prefix[1] == 0x00:
		return detectIcoOrCur(p)
	case bytes.Equal(prefix, []byte("RI")):
		return detectWebP(p)
	case prefix[0] == '<' && (prefix[1] == 's' || prefix[1] == '?' || prefix[1] == '!'):
		return detectSVG(p)
	default:
		return Unknown, ErrUnknownType
	}
}

func detectIcoOrCur(p *stream.PullStream) (Format, error) {
	head, err := p.Peek(3)
	if err != nil {
		return Unknown, fmt.Errorf("detecting ico/cur: %w", err)
	}
	switch head[2] {
	case 1:
		return ICO, nil
	case 2:
		return CUR, nil
	default:
		return Unknown, ErrUnknownType
	}
}

func detectWebP(p *stream.PullStream) (Format, error) {
	head, err := p.Peek(12)
	if err != nil {
		return Unknown, fmt.Errorf("detecting webp: %w", err)
	}
	if !bytes.Equal(head[0:4], []byte("RIFF")) || !bytes.Equal(head[8:12], []byte("WEBP")) {
		return Unknown, ErrUnknownType
	}
	return WEBP, nil
}

func detectSVG(p *stream.PullStream) (Format, error) {
	for n := 1; n <= svgProbeRounds; n++ {
		window, err := p.Peek(n * svgProbeWindow)
		if err != nil {
			if errors.Is(err, stream.ErrEndOfInput) {
				return Unknown, ErrUnknownType
			}
			return Unknown, fmt.Errorf("%w: %v", ErrUnknownType, err)
		}
		if bytes.Contains(window, []byte("<svg")) {
			return SVG, nil
		}
	}
	return Unknown, ErrUnknownType
}
