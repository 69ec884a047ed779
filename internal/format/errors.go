package format

import "errors"

var (
	// ErrUnknownType is returned when the dispatcher cannot match a format
	// signature.
	ErrUnknownType = errors.New("format: unknown image type")

	// ErrInvalidData indicates malformed or incomplete header data once a
	// format has already been identified.
	ErrInvalidData = errors.New("format: invalid data")
)
