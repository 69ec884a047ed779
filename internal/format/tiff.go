package format

import (
	"github.com/gomantics/imgsize/internal/stream"
)

// ParseTIFF delegates entirely to ParseEXIF: a TIFF file's header is the
// EXIF/TIFF structure itself, not a container wrapping one.
//
// CR2 and CRW raw formats also begin with "II"/"MM" and will dispatch here;
// this parser does not distinguish them from plain TIFF. Their IFD0 layout
// diverges enough that ParseEXIF typically fails outright, surfacing as
// SizeNotFound to the caller -- reproduced deliberately rather than adding
// vendor sniffing this spec does not ask for.
func ParseTIFF(p *stream.PullStream) (width, height, orientation int, err error) {
	exif, err := ParseEXIF(p)
	if err != nil {
		return 0, 0, 0, err
	}

	if exif.Rotated() {
		return exif.Height, exif.Width, exif.Orientation, nil
	}
	return exif.Width, exif.Height, exif.Orientation, nil
}
