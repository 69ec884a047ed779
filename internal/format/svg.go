package format

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gomantics/imgsize/internal/stream"
)

// svgState names the states of the byte-by-byte attribute scanner.
type svgState int

const (
	svgNone svgState = iota
	svgStarted
	svgStop
)

// ParseSVG scans an SVG document byte by byte for the root element's
// width, height, and viewBox attributes, resolving pixel dimensions from
// whichever combination is present. Orientation is always 1.
func ParseSVG(p *stream.PullStream) (width, height, orientation int, err error) {
	var attrName []byte
	state := svgNone

	var gotWidth, gotHeight bool
	var widthVal, heightVal int
	var ratio float64
	var gotRatio bool
	var vbWidth, vbHeight int
	var gotViewBox bool

	for state != svgStop {
		b, rerr := p.Read(1)
		if rerr != nil {
			if errors.Is(rerr, stream.ErrEndOfInput) {
				break
			}
			return 0, 0, 0, fmt.Errorf("%w: scanning SVG: %v", ErrInvalidData, rerr)
		}
		c := b[0]

		switch {
		case c == '<':
			attrName = []byte{'<'}

		case c == '>':
			if state == svgStarted {
				state = svgStop
			}

		case isWordByte(c):
			attrName = append(attrName, c)

		case c == '=':
			name := strings.ToLower(string(attrName))
			switch {
			case strings.Contains(name, "width"):
				val, err := readQuotedInt(p)
				if err == nil {
					widthVal = val
					gotWidth = true
				}
				if gotHeight {
					return resolveSVGDimensions(gotWidth, gotHeight, widthVal, heightVal, gotRatio, ratio, gotViewBox, vbWidth, vbHeight)
				}

			case strings.Contains(name, "height"):
				val, err := readQuotedInt(p)
				if err == nil {
					heightVal = val
					gotHeight = true
				}
				if gotWidth {
					return resolveSVGDimensions(gotWidth, gotHeight, widthVal, heightVal, gotRatio, ratio, gotViewBox, vbWidth, vbHeight)
				}

			case strings.Contains(name, "viewbox"):
				value, err := readQuotedValue(p)
				if err == nil {
					tokens := strings.Fields(value)
					if len(tokens) >= 4 {
						wf, werr := strconv.ParseFloat(tokens[2], 64)
						hf, herr := strconv.ParseFloat(tokens[3], 64)
						if werr == nil && herr == nil && wf > 0 && hf > 0 {
							ratio = wf / hf
							gotRatio = true
							vbWidth = int(wf)
							vbHeight = int(hf)
							gotViewBox = true
						}
					}
				}
			}
			attrName = nil

		default:
			if string(attrName) == "<svg" {
				state = svgStarted
			}
			attrName = nil
		}
	}

	return resolveSVGDimensions(gotWidth, gotHeight, widthVal, heightVal, gotRatio, ratio, gotViewBox, vbWidth, vbHeight)
}

func resolveSVGDimensions(gotWidth, gotHeight bool, width, height int, gotRatio bool, ratio float64, gotViewBox bool, vbWidth, vbHeight int) (int, int, int, error) {
	switch {
	case gotWidth && gotHeight:
		return width, height, 1, nil
	case gotWidth && gotRatio:
		return width, int(float64(width) / ratio), 1, nil
	case gotHeight && gotRatio:
		return int(float64(height) * ratio), height, 1, nil
	case gotViewBox:
		return vbWidth, vbHeight, 1, nil
	default:
		return 0, 0, 0, fmt.Errorf("%w: no usable SVG dimensions found", ErrInvalidData)
	}
}

func isWordByte(c byte) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}

// readQuotedInt reads an opening quote followed by decimal digits, stopping
// at the first non-digit, and parses the digits as an integer.
func readQuotedInt(p *stream.PullStream) (int, error) {
	if _, err := p.Read(1); err != nil { // opening quote
		return 0, err
	}

	var digits []byte
	for {
		b, err := p.Read(1)
		if err != nil {
			break
		}
		if b[0] < '0' || b[0] > '9' {
			break
		}
		digits = append(digits, b[0])
	}

	if len(digits) == 0 {
		return 0, fmt.Errorf("%w: no digits found", ErrInvalidData)
	}
	return strconv.Atoi(string(digits))
}

// readQuotedValue reads an opening quote, then accumulates bytes until the
// next quote character, returning the accumulated string.
func readQuotedValue(p *stream.PullStream) (string, error) {
	if _, err := p.Read(1); err != nil { // opening quote
		return "", err
	}

	var buf bytes.Buffer
	for {
		b, err := p.Read(1)
		if err != nil {
			return "", err
		}
		if b[0] == '"' || b[0] == '\'' {
			break
		}
		buf.WriteByte(b[0])
	}
	return buf.String(), nil
}
