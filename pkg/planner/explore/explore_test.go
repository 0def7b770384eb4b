package explore

import (
	"context"
	"testing"

	"github.com/itohio/slam/pkg/geometry"
	"github.com/itohio/slam/pkg/viz"
	"github.com/itohio/slam/pkg/world"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBelief struct {
	prediction world.Prediction
	hasWorld   bool
	free       bool
	// pathBlocked makes IsPathFree fail while cells stay individually
	// free, so frontier candidates exist but none is directly reachable.
	pathBlocked bool
	unknownPct  float64
}

func (f fakeBelief) PredictWorld(float64) (world.Prediction, bool) { return f.prediction, f.hasWorld }
func (f fakeBelief) IsSurroundingFree(geometry.Point, int, float64) bool { return f.free }
func (f fakeBelief) IsPathFree(geometry.Point, geometry.Point, int, float64) bool { return f.free && !f.pathBlocked }
func (f fakeBelief) PercUnknownSurround(geometry.Point, int) float64 { return f.unknownPct }

type fakeHopPlanner struct {
	hop geometry.Point
	ok  bool
}

func (f fakeHopPlanner) Plan(context.Context, geometry.Point, geometry.Point) (geometry.Point, bool) {
	return f.hop, f.ok
}

func frontierGrid() world.Prediction {
	// A grid where every cell is -5, which lies below the obstacle
	// ceiling (0) and above the known-free floor (-10), so
	// computeFrontier has candidates to find.
	grid := make([][]float64, 10)
	for y := range grid {
		grid[y] = make([]float64, 10)
		for x := range grid[y] {
			grid[y][x] = -5
		}
	}
	return world.Prediction{Origin: geometry.NewPoint(0, 0), Grid: grid}
}

func TestNextReturnsNoneOnEmptyBelief(t *testing.T) {
	belief := fakeBelief{hasWorld: false}
	planner := New(belief, fakeHopPlanner{}, nil, DefaultConfig())

	_, ok := planner.Next(context.Background(), geometry.NewPose(0, 0, 0))
	assert.False(t, ok)
}

func TestNextReturnsNoneWhenNoFrontierClusters(t *testing.T) {
	belief := fakeBelief{hasWorld: true, prediction: frontierGrid(), free: true, unknownPct: 0.0}
	planner := New(belief, fakeHopPlanner{}, nil, DefaultConfig())

	_, ok := planner.Next(context.Background(), geometry.NewPose(5, 5, 0))
	assert.False(t, ok)
}

func TestNextComposesMoveWhenDirectlyReachable(t *testing.T) {
	belief := fakeBelief{hasWorld: true, prediction: frontierGrid(), free: true, unknownPct: 1.0}
	planner := New(belief, fakeHopPlanner{}, nil, DefaultConfig())

	prim, ok := planner.Next(context.Background(), geometry.NewPose(-5, -5, 0))
	require.True(t, ok)
	assert.Contains(t, []PrimitiveKind{Move, RotateThenMove}, prim.Kind)
	assert.Greater(t, prim.MoveDistance, 0.0)
}

func TestNextFallsBackToHopPlannerWhenBlocked(t *testing.T) {
	hop := geometry.NewPoint(3, 3)
	belief := fakeBelief{hasWorld: true, prediction: frontierGrid(), free: true, pathBlocked: true, unknownPct: 1.0}
	planner := New(belief, fakeHopPlanner{hop: hop, ok: true}, viz.NewRecorder(), DefaultConfig())

	prim, ok := planner.Next(context.Background(), geometry.NewPose(0, 0, 0))
	require.True(t, ok)
	assert.Greater(t, prim.MoveDistance, 0.0)
}

func TestNextGivesUpWhenHopPlannerFails(t *testing.T) {
	belief := fakeBelief{hasWorld: true, prediction: frontierGrid(), free: true, pathBlocked: true, unknownPct: 1.0}
	planner := New(belief, fakeHopPlanner{ok: false}, nil, DefaultConfig())

	_, ok := planner.Next(context.Background(), geometry.NewPose(0, 0, 0))
	assert.False(t, ok)
}

func TestClusteredCandidatesRequiresMinimumNeighbors(t *testing.T) {
	isolated := []geometry.Point{geometry.NewPoint(0, 0), geometry.NewPoint(100, 100)}
	assert.Empty(t, clusteredCandidates(isolated, 5))

	cluster := []geometry.Point{
		geometry.NewPoint(0, 0),
		geometry.NewPoint(1, 0),
		geometry.NewPoint(0, 1),
		geometry.NewPoint(1, 1),
	}
	assert.Len(t, clusteredCandidates(cluster, 5), 4)
}
