package countz

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is reported when a sequence factory or mutator is
// given an argument that can never describe a valid sequence, such as a
// non-positive element count. It is returned synchronously from the call
// that received the argument; materialization never re-validates.
//
// Use errors.Is to test for it:
//
//	if _, err := countz.UpTo(0); errors.Is(err, countz.ErrInvalidArgument) {
//		// caller supplied a bad count
//	}
var ErrInvalidArgument = errors.New("invalid argument")

// invalidArgumentf wraps ErrInvalidArgument with argument detail.
func invalidArgumentf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}
