package sensor

import (
	"context"

	"github.com/itohio/slam/pkg/geometry"
	"github.com/itohio/slam/pkg/logging"
	"github.com/itohio/slam/pkg/world"
	"github.com/itohio/slam/pkg/worldsim"
)

var log = logging.Named("sensor")

// Simulated is a Driver backed by a ground-truth worldsim.World: it
// ray-casts instead of reading a physical rangefinder.
type Simulated struct {
	world *worldsim.World
	// MaxDistance caps the sensor's range; nil means unlimited. Beyond
	// it, a ray is reported FREE at MaxDistance-SafetyDistance rather
	// than as a ranged obstacle hit.
	MaxDistance *float64
	// SafetyDistance is subtracted from MaxDistance when a ray is
	// capped, so planned paths don't graze the unseen edge of range.
	SafetyDistance float64
}

// NewSimulated builds a Simulated driver over w.
func NewSimulated(w *worldsim.World, maxDistance *float64, safetyDistance float64) *Simulated {
	return &Simulated{world: w, MaxDistance: maxDistance, SafetyDistance: safetyDistance}
}

// Scan ray-casts a fan of measurements from pose across viewAngle.
func (s *Simulated) Scan(ctx context.Context, pose geometry.Pose, viewAngle, precision float64) <-chan Measurement {
	ch := make(chan Measurement)

	go func() {
		defer close(ch)

		start := -viewAngle / 2
		for a := start; a < viewAngle+start; a += precision {
			select {
			case <-ctx.Done():
				return
			default:
			}

			worldAngle := pose.Orientation.AddDegrees(a)
			rayMax := s.rayBudget()
			distance, hit := s.world.RayCast(pose.Position, worldAngle, rayMax)

			m := Measurement{Polar: geometry.Polar{Angle: geometry.NewAngle(a), Radius: distance}}
			if hit && (s.MaxDistance == nil || distance < *s.MaxDistance) {
				m.Type = world.Obstacle
			} else {
				m.Type = world.Free
				if s.MaxDistance != nil {
					m.Polar.Radius = *s.MaxDistance - s.SafetyDistance
				}
			}

			select {
			case ch <- m:
			case <-ctx.Done():
				return
			}
		}
	}()

	return ch
}

func (s *Simulated) rayBudget() float64 {
	if s.MaxDistance == nil {
		return s.world.Width + s.world.Height
	}
	return *s.MaxDistance
}

// RotateSensor is a no-op for the simulated driver: ray casting always
// sweeps the requested fan directly, there is no physical head to turn.
func (s *Simulated) RotateSensor(ctx context.Context, angle geometry.Angle) error {
	log.Debug().Float64("angle", angle.InDegrees()).Msg("simulated sensor head rotate (no-op)")
	return nil
}
