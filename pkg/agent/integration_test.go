package agent

import (
	"context"
	"testing"

	"github.com/itohio/slam/pkg/geometry"
	"github.com/itohio/slam/pkg/planner/explore"
	"github.com/itohio/slam/pkg/planner/rrt"
	"github.com/itohio/slam/pkg/sensor"
	"github.com/itohio/slam/pkg/viz"
	"github.com/itohio/slam/pkg/world"
	"github.com/itohio/slam/pkg/worldsim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// markMapCorners records FREE observations at the four corners of
// [minX,maxX]x[minY,maxY], so GetWorldBorders (and therefore
// PointInBounds) spans the full map even though only a small obstacle
// region was otherwise observed.
func markMapCorners(belief *world.ObservedWorld, pose geometry.Pose, minX, maxX, minY, maxY float64) {
	corners := []geometry.Point{
		geometry.NewPoint(minX, minY),
		geometry.NewPoint(maxX, minY),
		geometry.NewPoint(minX, maxY),
		geometry.NewPoint(maxX, maxY),
	}
	for _, c := range corners {
		belief.AddObservation(pose, world.Observation{Location: c, Type: world.Free})
	}
}

// newTestAgent wires a real belief, simulated sensor, RRT hop planner
// and exploration planner over w, the way cmd/slam does for a
// simulated run.
func newTestAgent(w *worldsim.World, pose geometry.Pose, sink viz.Sink) (*Agent, *explore.Planner) {
	belief := world.NewObservedWorld()
	driver := sensor.NewSimulated(w, nil, 1.0)
	hop := rrt.New(belief, sink, rrt.DefaultConfig())
	explorePlanner := explore.New(belief, hop, sink, explore.DefaultConfig())
	a := New(pose, belief, driver, explorePlanner, SimulatedActuator{}, sink, Config{ViewAngle: 360, ScanningPrecision: 20})
	return a, explorePlanner
}

// TestScenarioEmptyWorldOneCycleStaysInBounds covers the empty 50x50
// world walkthrough: one scan and one planning cycle yields a
// primitive, and executing it leaves the pose strictly inside [0,50]^2.
func TestScenarioEmptyWorldOneCycleStaysInBounds(t *testing.T) {
	sink := viz.NewRecorder()
	w := worldsim.New(50, 50)
	a, explorePlanner := newTestAgent(w, geometry.NewPose(5, 5, 90), sink)

	a.scan(context.Background())
	prim, ok := explorePlanner.Next(context.Background(), a.Pose())
	require.True(t, ok)

	require.NoError(t, a.execute(context.Background(), prim))

	assert.Greater(t, a.Pose().Position.X, 0.0)
	assert.Less(t, a.Pose().Position.X, 50.0)
	assert.Greater(t, a.Pose().Position.Y, 0.0)
	assert.Less(t, a.Pose().Position.Y, 50.0)
}

// TestScenarioCorridorWorldAvoidsObstacleAndFindsFrontier covers the
// corridor walkthrough: the robot never steps into the obstacle
// rectangle, and frontier extraction surfaces candidates within three
// cycles.
func TestScenarioCorridorWorldAvoidsObstacleAndFindsFrontier(t *testing.T) {
	obstacle := worldsim.Rectangle{MinX: 0, MaxX: 10, MinY: 20, MaxY: 39}
	sink := viz.NewRecorder()
	w := worldsim.New(40, 40, obstacle)
	a, explorePlanner := newTestAgent(w, geometry.NewPose(5, 5, 0), sink)

	for cycle := 0; cycle < 3; cycle++ {
		a.scan(context.Background())
		prim, ok := explorePlanner.Next(context.Background(), a.Pose())
		if !ok {
			break
		}
		require.NoError(t, a.execute(context.Background(), prim))
		assert.False(t, obstacle.Contains(a.Pose().Position))
		a.emitPoseAndClearTemporary()
	}

	sawFrontier := false
	for _, p := range sink.Points {
		if p.Color == viz.ColorFrontier {
			sawFrontier = true
			break
		}
	}
	assert.True(t, sawFrontier, "expected at least one frontier candidate within 3 cycles")
}

// TestScenarioEnclosedRoomBoundedExplorationStaysValid covers the
// enclosed-room walkthrough over a bounded number of cycles: every
// pose the robot visits stays in bounds and out of the obstacle, and
// the belief accumulates observations.
func TestScenarioEnclosedRoomBoundedExplorationStaysValid(t *testing.T) {
	obstacle := worldsim.Rectangle{MinX: 20, MaxX: 30, MinY: 20, MaxY: 30}
	sink := viz.NewRecorder()
	w := worldsim.New(50, 50, obstacle)
	a, explorePlanner := newTestAgent(w, geometry.NewPose(40, 40, 180), sink)

	const maxCycles = 30
	for cycle := 0; cycle < maxCycles; cycle++ {
		a.scan(context.Background())
		prim, ok := explorePlanner.Next(context.Background(), a.Pose())
		if !ok {
			break
		}
		require.NoError(t, a.execute(context.Background(), prim))

		assert.True(t, w.InBounds(a.Pose().Position))
		assert.False(t, obstacle.Contains(a.Pose().Position))
		a.emitPoseAndClearTemporary()
	}

	assert.NotEmpty(t, sink.Points, "expected accumulated observations after exploring")
}

// TestScenarioTwoBoxWorldFindsPathThroughGap covers the two-box
// walkthrough: once the belief has observed both obstacles, the RRT
// hop planner can find a path from (5,5) to (45,40) through the gap
// between them. The node budget per hop is enforced structurally by
// the rrt package's maxNodes cap, not asserted here.
func TestScenarioTwoBoxWorldFindsPathThroughGap(t *testing.T) {
	belief := world.NewObservedWorld()
	boxA := worldsim.Rectangle{MinX: 0, MaxX: 20, MinY: 20, MaxY: 35}
	boxB := worldsim.Rectangle{MinX: 40, MaxX: 49, MinY: 0, MaxY: 15}
	observePose := geometry.NewPose(0, 0, 0)

	markMapCorners(belief, observePose, 0, 50, 0, 50)

	for x := boxA.MinX; x <= boxA.MaxX; x++ {
		for y := boxA.MinY; y <= boxA.MaxY; y++ {
			belief.AddObservation(observePose, world.Observation{Location: geometry.NewPoint(x, y), Type: world.Obstacle})
		}
	}
	for x := boxB.MinX; x <= boxB.MaxX; x++ {
		for y := boxB.MinY; y <= boxB.MaxY; y++ {
			belief.AddObservation(observePose, world.Observation{Location: geometry.NewPoint(x, y), Type: world.Obstacle})
		}
	}
	_, ok := belief.PredictWorld(1.0)
	require.True(t, ok)

	hop := rrt.New(belief, viz.Null{}, rrt.DefaultConfig())
	start := geometry.NewPoint(5, 5)
	goal := geometry.NewPoint(45, 40)

	found := false
	for attempt := 0; attempt < 5 && !found; attempt++ {
		_, found = hop.Plan(context.Background(), start, goal)
	}
	assert.True(t, found, "expected the hop planner to find a path through the gap within a few attempts")
}

// TestScenarioTightGapRefusesClippingCandidates covers the tight-gap
// walkthrough: every hop the planner returns clears the obstacle's
// inflated footprint and stays within the map bounds.
func TestScenarioTightGapRefusesClippingCandidates(t *testing.T) {
	belief := world.NewObservedWorld()
	obstacle := worldsim.Rectangle{MinX: 20, MaxX: 30, MinY: 0, MaxY: 5}
	observePose := geometry.NewPose(0, 0, 0)

	markMapCorners(belief, observePose, 0, 60, 0, 20)

	for x := obstacle.MinX; x <= obstacle.MaxX; x++ {
		for y := obstacle.MinY; y <= obstacle.MaxY; y++ {
			belief.AddObservation(observePose, world.Observation{Location: geometry.NewPoint(x, y), Type: world.Obstacle})
		}
	}
	_, ok := belief.PredictWorld(1.0)
	require.True(t, ok)

	cfg := rrt.DefaultConfig()
	hop := rrt.New(belief, viz.Null{}, cfg)
	start := geometry.NewPoint(5, 10)
	goal := geometry.NewPoint(55, 10)

	for attempt := 0; attempt < 5; attempt++ {
		waypoint, ok := hop.Plan(context.Background(), start, goal)
		if !ok {
			continue
		}
		assert.True(t, waypoint.X >= 0 && waypoint.X <= 60 && waypoint.Y >= 0 && waypoint.Y <= 20)
		assert.False(t, obstacle.Contains(waypoint))
		assert.True(t, belief.IsSurroundingFree(waypoint, cfg.CollisionRadius(), 1.0))
	}
}
