package world

import "errors"

// ErrEmptyWorld names the empty-belief condition. No operation returns
// it: an empty belief is reported as ok=false by GetWorldBorders,
// PredictWorld and GetRandomPoint.
var ErrEmptyWorld = errors.New("world: empty world")

// ErrOutOfBounds names the out-of-borders query condition. No operation
// returns it: callers are expected to check PointInBounds first, and an
// out-of-bounds GetStateOnCoordinate indexes past the grid and panics.
var ErrOutOfBounds = errors.New("world: point out of bounds")
