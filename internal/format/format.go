package format

// Format is one of the ten image format tags this module recognizes.
type Format string

const (
	Unknown Format = ""
	BMP     Format = "bmp"
	GIF     Format = "gif"
	JPEG    Format = "jpeg"
	PNG     Format = "png"
	TIFF    Format = "tiff"
	PSD     Format = "psd"
	ICO     Format = "ico"
	CUR     Format = "cur"
	WEBP    Format = "webp"
	SVG     Format = "svg"
)

// String returns the format's lowercase tag, matching the wire names used
// throughout this package and its tests.
func (f Format) String() string {
	return string(f)
}

// ParseFormat maps a lowercase tag back to a Format, reporting false for
// anything not in the closed set of ten supported formats.
func ParseFormat(s string) (Format, bool) {
	switch Format(s) {
	case BMP, GIF, JPEG, PNG, TIFF, PSD, ICO, CUR, WEBP, SVG:
		return Format(s), true
	default:
		return Unknown, false
	}
}
