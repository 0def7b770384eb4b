package world

import "github.com/itohio/slam/pkg/geometry"

// ObservationType tags an Observation as ranging to an obstacle or to
// free space.
type ObservationType int

const (
	Obstacle ObservationType = iota
	Free
)

func (t ObservationType) String() string {
	if t == Obstacle {
		return "OBSTACLE"
	}
	return "FREE"
}

// Observation is a single ranged measurement, already transformed into
// world coordinates.
type Observation struct {
	Location geometry.Point
	Type     ObservationType
}

// observationBucket groups every Observation recorded from the same pose
// location. Buckets are append-only; usedInPrediction tracks whether
// this bucket has already been baked into the raw grid.
type observationBucket struct {
	observations     []Observation
	usedInPrediction bool
}

// Prediction is a snapshot of the occupancy belief, anchored at Origin
// (the world-coordinate of grid cell [0][0]).
type Prediction struct {
	Origin geometry.Point
	Grid   [][]float64
}

// Frontier is a set of candidate free cells near unknown space, radiating
// from Origin.
type Frontier struct {
	Origin     geometry.Point
	Candidates []geometry.Point
}
