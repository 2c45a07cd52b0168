package pathcalc

import "errors"

// ErrInvalidInput reports a path computation that cannot succeed for the
// given input or environment: no home directory, a relative home or
// working directory, or two paths without a common root. It is permanent;
// retrying with the same input fails the same way.
var ErrInvalidInput = errors.New("invalid input")

// ErrUnknownStyle reports a style name that ParseStyle does not recognise.
// It is a configuration mistake, not a path input, and does not match
// ErrInvalidInput.
var ErrUnknownStyle = errors.New("unknown path style")
