package agent

import (
	"context"

	"github.com/google/uuid"
	"github.com/itohio/slam/pkg/geometry"
	"github.com/itohio/slam/pkg/logging"
	"github.com/itohio/slam/pkg/planner/explore"
	"github.com/itohio/slam/pkg/sensor"
	"github.com/itohio/slam/pkg/viz"
	"github.com/itohio/slam/pkg/world"
)

var log = logging.Named("agent")

// Config bundles the per-tick scan parameters.
type Config struct {
	ViewAngle         float64
	ScanningPrecision float64
}

// ExplorationPlanner selects the next motion primitive given the
// agent's current pose; satisfied by *explore.Planner.
type ExplorationPlanner interface {
	Next(ctx context.Context, pose geometry.Pose) (explore.Primitive, bool)
}

// Agent owns the robot's pose and drives the sensor/planner/actuator
// loop described by the exploration protocol: scan, plan, drain, act,
// emit.
type Agent struct {
	pose     geometry.Pose
	belief   *world.ObservedWorld
	driver   sensor.Driver
	planner  ExplorationPlanner
	actuator Actuator
	sink     viz.Sink
	cfg      Config
}

// New builds an Agent starting at pose.
func New(pose geometry.Pose, belief *world.ObservedWorld, driver sensor.Driver, planner ExplorationPlanner, actuator Actuator, sink viz.Sink, cfg Config) *Agent {
	return &Agent{
		pose:     pose,
		belief:   belief,
		driver:   driver,
		planner:  planner,
		actuator: actuator,
		sink:     sink,
		cfg:      cfg,
	}
}

// Pose returns the agent's current pose estimate.
func (a *Agent) Pose() geometry.Pose {
	return a.pose
}

// Run executes ticks until the exploration planner reports it is done,
// or ctx is cancelled.
func (a *Agent) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		cycle := log.With().Str("cycle", uuid.NewString()).Logger()

		a.scan(ctx)

		primitive, ok := a.planner.Next(ctx, a.pose)
		if !ok {
			cycle.Info().Msg("exploration complete")
			return nil
		}
		cycle.Debug().Interface("primitive", primitive).Msg("executing primitive")

		if drainer, ok := a.sink.(interface{ Drain(context.Context) }); ok {
			drainer.Drain(ctx)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err := a.execute(ctx, primitive); err != nil {
			return err
		}

		a.emitPoseAndClearTemporary()
	}
}

// scan drains one full fan of sensor measurements, transforming each
// into a world-coordinate Observation and folding it into the belief.
func (a *Agent) scan(ctx context.Context) {
	for m := range a.driver.Scan(ctx, a.pose, a.cfg.ViewAngle, a.cfg.ScanningPrecision) {
		worldAngle := a.pose.Orientation.Add(m.Polar.Angle)
		offset, _ := geometry.NewPolar(worldAngle, m.Polar.Radius)
		location := a.pose.Position.PlusPolar(offset)

		obs := world.Observation{Location: location, Type: m.Type}
		a.belief.AddObservation(a.pose, obs)

		color := viz.ColorObservation
		a.sink.Emit(viz.NewDataPoint(location, color))
	}
}

// execute carries out primitive, updating the pose and instructing the
// actuator.
func (a *Agent) execute(ctx context.Context, primitive explore.Primitive) error {
	switch primitive.Kind {
	case explore.Rotate:
		if err := a.actuator.Rotate(ctx, primitive.RotateBy); err != nil {
			return err
		}
		a.pose.Rotate(primitive.RotateBy)

	case explore.Move:
		if err := a.actuator.MoveForward(ctx, primitive.MoveDistance); err != nil {
			return err
		}
		a.pose.MoveForward(primitive.MoveDistance)

	case explore.RotateThenMove:
		if err := a.actuator.Rotate(ctx, primitive.RotateBy); err != nil {
			return err
		}
		a.pose.Rotate(primitive.RotateBy)
		if err := a.actuator.MoveForward(ctx, primitive.MoveDistance); err != nil {
			return err
		}
		a.pose.MoveForward(primitive.MoveDistance)
	}
	return nil
}

// emitPoseAndClearTemporary emits the post-motion pose as a permanent
// history point and clears every temporary scatter/path point, so the
// previous cycle's frontier and path-plan visuals don't pile up.
func (a *Agent) emitPoseAndClearTemporary() {
	a.sink.Emit(viz.DataPoint{
		Location:  a.pose.Position,
		Color:     viz.ColorPosition,
		GraphType: viz.Scatter,
		PathID:    viz.RobotHistory,
		Existence: viz.Permanent,
	})
	a.sink.Control(viz.ControlMessage{Kind: viz.DeleteTemporaryData})
}
