package imgsize

// Options controls how Size, Type, and Parse behave. The zero value is the
// default: full parsing, failures reported as an absent result rather than
// an error.
type Options struct {
	// TypeOnly skips dimension parsing, stopping once the format dispatcher
	// has identified the format.
	TypeOnly bool

	// RaiseOnFailure converts an absent result (nil, nil) into a typed
	// error from errors.go instead.
	RaiseOnFailure bool
}
