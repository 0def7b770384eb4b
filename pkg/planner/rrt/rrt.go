package rrt

import (
	"context"
	"math"
	"math/rand"

	"github.com/itohio/slam/pkg/geometry"
	"github.com/itohio/slam/pkg/logging"
	"github.com/itohio/slam/pkg/viz"
	"gonum.org/v1/gonum/stat/distuv"
)

var log = logging.Named("rrt")

// Belief is the subset of the occupancy belief the planner queries.
// Accepting an interface rather than *world.ObservedWorld keeps the
// search independent of the belief's storage and lets tests supply a
// synthetic world.
type Belief interface {
	PointInBounds(p geometry.Point) bool
	IsSurroundingFree(p geometry.Point, radius int, threshold float64) bool
	IsPathFree(a, b geometry.Point, radius int, threshold float64) bool
	GetRandomPoint(minValue, maxValue float64, blurred bool) (geometry.Point, bool)
}

// Planner searches a belief for a single collision-free hop from start
// toward goal.
type Planner struct {
	cfg    Config
	belief Belief
	sink   viz.Sink
}

// New builds a Planner over belief, emitting the walked chain to sink.
func New(belief Belief, sink viz.Sink, cfg Config) *Planner {
	return &Planner{cfg: cfg, belief: belief, sink: sink}
}

// Plan grows a tree rooted at start until it reaches within cfg.Tolerance
// of goal or exhausts its node budget, then returns the first hop: the
// child of the root along the path that was found. It returns
// (Point{}, false) on shutdown or exhaustion.
func (p *Planner) Plan(ctx context.Context, start, goal geometry.Point) (geometry.Point, bool) {
	if start.DistanceTo(goal) < p.cfg.Tolerance {
		log.Warn().Msg("path planner returned starting point: start and goal coincide")
		return start, true
	}

	t := newTree(start)
	minStep := p.cfg.MinStep
	jitter := distuv.Normal{Mu: 0, Sigma: p.cfg.Tolerance}

	for {
		select {
		case <-ctx.Done():
			return geometry.Point{}, false
		default:
		}

		var target geometry.Point
		if rand.Float64() < p.cfg.TiltTowardsGoal {
			d := math.Abs(jitter.Rand())
			a := geometry.NewAngle(rand.Float64() * 360)
			offset, _ := geometry.NewPolar(a, d)
			target = goal.PlusPolar(offset)
		} else {
			random, ok := p.belief.GetRandomPoint(math.Inf(-1), math.Inf(1), true)
			if !ok {
				return geometry.Point{}, false
			}
			target = random
		}

		parentIdx := t.nearest(target)
		parent := t.nodes[parentIdx].location

		distance := parent.DistanceTo(target)
		if distance < minStep {
			minStep *= 0.99
			if minStep < p.cfg.MinStep/4 {
				log.Warn().Float64("min_step", minStep).Msg("min_step_size reduced to a quarter")
			}
			continue
		}

		step := math.Min(p.cfg.MaxStep, distance)
		angle := parent.AngleTo(target)
		offset, _ := geometry.NewPolar(angle, step)
		candidate := parent.PlusPolar(offset)

		if !p.belief.PointInBounds(candidate) {
			continue
		}
		radius := p.cfg.CollisionRadius()
		if !p.belief.IsSurroundingFree(candidate, radius, obstacleThreshold) {
			continue
		}
		if !p.belief.IsPathFree(parent, candidate, radius, obstacleThreshold) {
			continue
		}

		childIdx := t.add(candidate, parentIdx)
		minStep = p.cfg.MinStep

		if candidate.DistanceTo(goal) < p.cfg.Tolerance {
			return p.emitAndReturnFirstHop(t, childIdx, start, goal), true
		}

		if t.len() > maxNodes {
			log.Warn().Msg("couldn't find a path within the node budget")
			return geometry.Point{}, false
		}
	}
}

// emitAndReturnFirstHop walks the parent chain from the goal-reaching
// node back to the root, emitting a dashed TEMPORARY path point per
// node, and returns the child of the root (the first hop to take now).
func (p *Planner) emitAndReturnFirstHop(t *tree, leafIdx int, start, goal geometry.Point) geometry.Point {
	addPathPoint := func(loc geometry.Point, color viz.Color) {
		if p.sink == nil {
			return
		}
		p.sink.Emit(viz.DataPoint{
			Location:  loc,
			Color:     color,
			GraphType: viz.Scatter,
			PathID:    viz.RobotPathPlan,
			PathStyle: "--",
			Existence: viz.Temporary,
		})
	}

	addPathPoint(goal, viz.ColorPathGoal)

	// chain runs leaf -> ... -> child-of-root -> root. The root itself is
	// never emitted as a path point (the source re-emits start for it).
	chain := t.chainToRoot(leafIdx)
	firstHop := chain[len(chain)-2].location
	for _, node := range chain[:len(chain)-1] {
		addPathPoint(node.location, viz.ColorPathPlan)
	}
	addPathPoint(start, viz.ColorPathPlan)

	return firstHop
}
