package tracekv

import "errors"

var (
	// ErrNilProvider is returned by New when no Provider is given.
	ErrNilProvider = errors.New("tracekv: provider is required")

	// ErrUnsupportedType is returned by Store for values outside the
	// supported set (string, []byte, integers, floats).
	ErrUnsupportedType = errors.New("tracekv: unsupported value type")
)
