package targets

import "errors"

var (
	// ErrNotSupported indicates a Base without a log-density attached.
	ErrNotSupported = errors.New("targets: value is not implemented for this target")

	// ErrInvalidParameter indicates a construction parameter outside its valid range.
	ErrInvalidParameter = errors.New("targets: invalid parameter")

	// ErrUnknownTarget indicates a registry lookup for an unregistered name.
	ErrUnknownTarget = errors.New("targets: unknown target")
)
