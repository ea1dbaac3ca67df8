package timewheel

import "errors"

// ErrInvalidRange is returned by StartRange when min > max.
var ErrInvalidRange = errors.New("timewheel: min > max")
