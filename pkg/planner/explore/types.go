package explore

import "github.com/itohio/slam/pkg/geometry"

// PrimitiveKind tags which motion a Primitive carries.
type PrimitiveKind int

const (
	Rotate PrimitiveKind = iota
	Move
	RotateThenMove
)

// Primitive is the single motion command the exploration planner hands
// back to the agent each step.
type Primitive struct {
	Kind         PrimitiveKind
	RotateBy     geometry.Angle
	MoveDistance float64
}
