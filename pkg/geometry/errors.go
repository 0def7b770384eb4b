package geometry

import "errors"

// ErrInvalidGeometry is returned when a geometric construction violates
// its own invariants, e.g. a Polar with a negative radius.
var ErrInvalidGeometry = errors.New("geometry: invalid geometry")
