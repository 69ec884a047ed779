package imgsize

import "github.com/gomantics/imgsize/internal/format"

// Format identifies one of the ten image formats this module recognizes.
type Format = format.Format

const (
	FormatUnknown Format = format.Unknown
	FormatBMP     Format = format.BMP
	FormatGIF     Format = format.GIF
	FormatJPEG    Format = format.JPEG
	FormatPNG     Format = format.PNG
	FormatTIFF    Format = format.TIFF
	FormatPSD     Format = format.PSD
	FormatICO     Format = format.ICO
	FormatCUR     Format = format.CUR
	FormatWEBP    Format = format.WEBP
	FormatSVG     Format = format.SVG
)

// ParseFormat maps a lowercase format tag (e.g. "jpeg") back to a Format,
// reporting false for anything outside the closed set of ten.
func ParseFormat(s string) (Format, bool) {
	return format.ParseFormat(s)
}

// Dimensions is the result of Size: an image's pixel width and height,
// already adjusted for EXIF orientation.
type Dimensions struct {
	Width  int
	Height int
}

// ImageFacts is the result of a successful Parse: the detected format, its
// display dimensions (swapped when Orientation >= 5), and the orientation
// tag itself (1..8, defaulting to 1 when the format carries none).
type ImageFacts struct {
	Format      Format
	Width       int
	Height      int
	Orientation int
}

// Rotated reports whether Width and Height were swapped from the format's
// natural sensor axes because Orientation is 5 or greater.
func (f ImageFacts) Rotated() bool {
	return f.Orientation >= 5
}
