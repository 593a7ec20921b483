package mcdatagen

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is wrapped by every error returned when a descriptor is
// constructed or validated with arguments it cannot represent. Use
// [errors.Is] to test for it.
var ErrInvalidArgument = errors.New("invalid argument")

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}
