package explore

import (
	"context"
	"math/rand"

	"github.com/itohio/slam/pkg/geometry"
	"github.com/itohio/slam/pkg/logging"
	"github.com/itohio/slam/pkg/viz"
	"github.com/itohio/slam/pkg/world"
)

var log = logging.Named("explore")

// HopPlanner finds the next collision-free hop toward a goal; satisfied
// by *rrt.Planner.
type HopPlanner interface {
	Plan(ctx context.Context, start, goal geometry.Point) (geometry.Point, bool)
}

// Planner turns the current occupancy belief into one motion primitive
// per call, falling back to an RRT hop planner when the direct line to
// a frontier candidate is blocked.
type Planner struct {
	cfg    Config
	belief Belief
	hops   HopPlanner
	sink   viz.Sink
}

// New builds an exploration Planner over belief, consulting hops for
// hops that aren't directly reachable and emitting to sink.
func New(belief Belief, hops HopPlanner, sink viz.Sink, cfg Config) *Planner {
	return &Planner{cfg: cfg, belief: belief, hops: hops, sink: sink}
}

// Next computes the next motion primitive from pose, or (Primitive{},
// false) once exploration is complete (no belief, or no reachable
// frontier left).
func (p *Planner) Next(ctx context.Context, pose geometry.Pose) (Primitive, bool) {
	predicted, ok := p.belief.PredictWorld(p.cfg.BlurSigma)
	if !ok {
		return Primitive{}, false
	}
	p.emitPrediction(predicted)

	radius := p.cfg.collisionRadius()
	frontier := computeFrontier(p.belief, predicted, radius)
	p.emitFrontier(predicted.Origin, frontier)

	goal, found := p.selectGoal(ctx, pose.Position, frontier, radius)
	if !found {
		return Primitive{}, false
	}

	return p.compose(pose, goal), true
}

// selectGoal runs up to candidateAttempts tries to find a goal that is
// either directly reachable or reachable via one RRT hop.
func (p *Planner) selectGoal(ctx context.Context, current geometry.Point, frontier []geometry.Point, radius int) (geometry.Point, bool) {
	clustered := clusteredCandidates(frontier, p.cfg.DistanceTolerance)
	if len(clustered) == 0 {
		return geometry.Point{}, false
	}

	for attempt := 1; attempt <= candidateAttempts; attempt++ {
		var candidate geometry.Point
		if attempt == 1 {
			candidate = nearestTo(current, clustered)
		} else {
			candidate = clustered[rand.Intn(len(clustered))]
		}

		if p.belief.IsPathFree(current, candidate, radius, obstacleThreshold) {
			return candidate, true
		}

		if hop, ok := p.hops.Plan(ctx, current, candidate); ok {
			return hop, true
		}
	}

	return geometry.Point{}, false
}

func nearestTo(from geometry.Point, points []geometry.Point) geometry.Point {
	best := points[0]
	bestDist := from.DistanceTo(best)
	for _, p := range points[1:] {
		if d := from.DistanceTo(p); d < bestDist {
			bestDist = d
			best = p
		}
	}
	return best
}

// compose converts a chosen goal into a rotate/move/rotate-then-move
// primitive, skipping the rotate phase when the heading error is
// already within tolerance.
func (p *Planner) compose(pose geometry.Pose, goal geometry.Point) Primitive {
	delta := pose.AngleToPoint(goal)
	distance := pose.Position.DistanceTo(goal)

	if abs(delta.InDegrees()) > p.cfg.AngleTolerance {
		return Primitive{Kind: RotateThenMove, RotateBy: delta, MoveDistance: distance}
	}
	return Primitive{Kind: Move, MoveDistance: distance}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func (p *Planner) emitPrediction(pred world.Prediction) {
	if p.sink == nil {
		return
	}
	p.sink.EmitPrediction(viz.HeatmapPoint{Origin: pred.Origin, Grid: pred.Grid})
}

func (p *Planner) emitFrontier(origin geometry.Point, frontier []geometry.Point) {
	if p.sink == nil {
		return
	}
	for _, c := range frontier {
		p.sink.Emit(viz.DataPoint{
			Location:  c,
			Color:     viz.ColorFrontier,
			GraphType: viz.Scatter,
			Existence: viz.Temporary,
		})
	}
	if len(frontier) == 0 {
		log.Debug().Msg("frontier empty this cycle")
	}
}
