package imgsize

import "errors"

// The four failure kinds a parse can end in. Only the first three are ever
// returned to a caller with Options.RaiseOnFailure set: CannotParseImage
// names the internal parser-exhausted-its-input failure, which the
// orchestrator always remaps to SizeNotFound (or, for failures before a
// format was even identified, to ImageFetchFailure) before it reaches a
// caller.
var (
	// ErrImageFetchFailure means the underlying byte source could not be
	// read: a missing path, a directory, an I/O error, or truncation before
	// any format decision was reached.
	ErrImageFetchFailure = errors.New("imgsize: image fetch failure")

	// ErrUnknownImageType means the dispatcher could not match a known
	// format signature against the source's leading bytes.
	ErrUnknownImageType = errors.New("imgsize: unknown image type")

	// ErrSizeNotFound means the format was identified but its dimensions
	// could not be recovered from the header.
	ErrSizeNotFound = errors.New("imgsize: size not found")

	// ErrCannotParseImage means an internal parser exhausted its input or
	// hit structural corruption partway through a header.
	ErrCannotParseImage = errors.New("imgsize: cannot parse image")
)
