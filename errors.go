package bramble

import "errors"

var (
	// ErrSizeFormat is wrapped by ParseSize and ParseEdges for malformed input.
	ErrSizeFormat = errors.New("bramble: invalid size")

	// ErrColorFormat is wrapped by ParseColor for malformed input.
	ErrColorFormat = errors.New("bramble: invalid color")

	// ErrLayoutKind is wrapped by ParseLayoutKind for unknown kind names.
	ErrLayoutKind = errors.New("bramble: unknown layout kind")

	// ErrUnknown reports a failure with no more specific cause.
	ErrUnknown = errors.New("bramble: unknown error")
)
