// Package imgsize identifies the format and pixel dimensions of an image by
// reading as few bytes as possible from its beginning, applying any EXIF or
// TIFF orientation tag to the reported dimensions along the way.
package imgsize

import (
	"errors"
	"fmt"
	"os"

	"github.com/gomantics/imgsize/internal/format"
	"github.com/gomantics/imgsize/internal/stream"
)

// Size returns an image's display dimensions. With Options.RaiseOnFailure
// false (the default), a failure reports as (nil, nil); with it true, a
// failure reports as (nil, err) with err wrapping ErrImageFetchFailure,
// ErrUnknownImageType, or ErrSizeNotFound from errors.go.
func Size(src Source, opts Options) (*Dimensions, error) {
	facts, err := parse(src, opts)
	if err != nil {
		if opts.RaiseOnFailure {
			return nil, err
		}
		return nil, nil
	}
	return &Dimensions{Width: facts.Width, Height: facts.Height}, nil
}

// Type returns an image's format tag without parsing its dimensions. With
// Options.RaiseOnFailure false, a failure reports as (FormatUnknown, nil);
// with it true, as (FormatUnknown, err).
func Type(src Source, opts Options) (Format, error) {
	opts.TypeOnly = true
	facts, err := parse(src, opts)
	if err != nil {
		if opts.RaiseOnFailure {
			return FormatUnknown, err
		}
		return FormatUnknown, nil
	}
	return facts.Format, nil
}

// Parse returns an image's full set of facts: format, display dimensions,
// and orientation. With Options.RaiseOnFailure false, a failure reports as
// (nil, nil); with it true, as (nil, err).
func Parse(src Source, opts Options) (*ImageFacts, error) {
	facts, err := parse(src, opts)
	if err != nil {
		if opts.RaiseOnFailure {
			return nil, err
		}
		return nil, nil
	}
	return facts, nil
}

// parse runs the full pipeline from spec.md §4.5: resolve the source into a
// chunk stream, dispatch on its leading bytes, and (unless TypeOnly) hand
// off to the matched parser. It always rewinds or closes src on the way out
// and always returns one of the three sentinel kinds that ever reach a
// caller (ImageFetchFailure, UnknownImageType, SizeNotFound).
func parse(src Source, opts Options) (*ImageFacts, error) {
	chunkSrc, closeSrc, err := openChunkSource(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrImageFetchFailure, err)
	}
	defer closeSrc()
	defer src.rewind()

	ps := stream.NewPullStream(chunkSrc)

	fmtTag, err := format.Detect(ps)
	if err != nil {
		// Detect wraps a content mismatch in format.ErrUnknownType; anything
		// else (stream.ErrEndOfInput, or a raw I/O error propagated from the
		// ChunkSource, e.g. reading a directory) means the source failed or
		// was truncated before any format decision was reached.
		if !errors.Is(err, format.ErrUnknownType) {
			return nil, fmt.Errorf("%w: %v", ErrImageFetchFailure, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrUnknownImageType, err)
	}

	facts := &ImageFacts{Format: fmtTag, Orientation: 1}
	if opts.TypeOnly {
		return facts, nil
	}

	w, h, orientation, err := runParser(fmtTag, ps)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSizeNotFound, err)
	}
	facts.Width = w
	facts.Height = h
	facts.Orientation = orientation
	return facts, nil
}

// openChunkSource resolves src into a ChunkSource, picking the offset
// variant when the underlying source supports positional reads and the
// sequential variant otherwise. For a path Source, it opens the file itself
// and returns a closer; for a caller-supplied Source, the returned closer is
// a no-op since the caller owns that lifetime.
func openChunkSource(src Source) (stream.ChunkSource, func(), error) {
	switch {
	case src.path != "":
		f, err := os.Open(src.path)
		if err != nil {
			return nil, nil, err
		}
		return stream.NewOffsetChunkSource(f, stream.DefaultChunkSize), func() { f.Close() }, nil

	case src.readerAt != nil:
		return stream.NewOffsetChunkSource(src.readerAt, stream.DefaultChunkSize), func() {}, nil

	case src.reader != nil:
		return stream.NewSequentialChunkSource(src.reader, stream.DefaultChunkSize), func() {}, nil

	default:
		return nil, nil, errors.New("imgsize: empty source")
	}
}

func runParser(f format.Format, p *stream.PullStream) (width, height, orientation int, err error) {
	switch f {
	case format.BMP:
		return format.ParseBMP(p)
	case format.GIF:
		return format.ParseGIF(p)
	case format.JPEG:
		return format.ParseJPEG(p)
	case format.PNG:
		return format.ParsePNG(p)
	case format.TIFF:
		return format.ParseTIFF(p)
	case format.PSD:
		return format.ParsePSD(p)
	case format.ICO:
		return format.ParseICO(p)
	case format.CUR:
		return format.ParseCUR(p)
	case format.WEBP:
		return format.ParseWebP(p)
	case format.SVG:
		return format.ParseSVG(p)
	default:
		return 0, 0, 0, fmt.Errorf("%w: no parser for format %q", format.ErrUnknownType, f)
	}
}
