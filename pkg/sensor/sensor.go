package sensor

import (
	"context"

	"github.com/itohio/slam/pkg/geometry"
	"github.com/itohio/slam/pkg/world"
)

// Measurement is a single ranged reading, reported at an angle relative
// to the robot's current heading (0 = straight ahead). The agent
// transforms it into world coordinates using its own pose.
type Measurement struct {
	Polar geometry.Polar
	Type  world.ObservationType
}

// Driver is a rangefinder producer: given the robot's current pose, it
// emits a fan of Measurements over [-viewAngle/2, +viewAngle/2) in
// steps of precision (the upper end itself is not measured), then
// closes the returned channel. Closing the
// channel is this driver's scan-complete sentinel.
type Driver interface {
	Scan(ctx context.Context, pose geometry.Pose, viewAngle, precision float64) <-chan Measurement
	RotateSensor(ctx context.Context, angle geometry.Angle) error
}
