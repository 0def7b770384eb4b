package agent

import (
	"context"

	"github.com/itohio/slam/pkg/geometry"
	"github.com/itohio/slam/pkg/wire"
)

// Actuator executes motion commands on the physical or simulated
// robot. The agent is the sole owner of the pose; Actuator only needs
// to carry out the already-decided motion (writing it to the wire for
// a Lego robot, or doing nothing for a simulated one).
type Actuator interface {
	MoveForward(ctx context.Context, distance float64) error
	Rotate(ctx context.Context, delta geometry.Angle) error
}

// SimulatedActuator performs no physical action: the agent's own pose
// update is the entire effect of a simulated move.
type SimulatedActuator struct{}

func (SimulatedActuator) MoveForward(context.Context, float64) error   { return nil }
func (SimulatedActuator) Rotate(context.Context, geometry.Angle) error { return nil }

// LegoActuator writes MOVE/ROTATE commands to a physical actuator host
// over the wire protocol.
type LegoActuator struct {
	Conn *wire.Conn
}

func (a LegoActuator) MoveForward(ctx context.Context, distance float64) error {
	return a.Conn.Send(wire.EncodeMove(distance))
}

func (a LegoActuator) Rotate(ctx context.Context, delta geometry.Angle) error {
	return a.Conn.Send(wire.EncodeRotate(delta.InDegrees()))
}
