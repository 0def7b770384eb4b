package explore

import (
	"github.com/itohio/slam/pkg/geometry"
	"github.com/itohio/slam/pkg/world"
)

// Belief is the subset of the occupancy belief the exploration planner
// queries, accepted as an interface so the planner does not depend on
// the belief's storage.
type Belief interface {
	PredictWorld(sigma float64) (world.Prediction, bool)
	IsSurroundingFree(p geometry.Point, radius int, threshold float64) bool
	IsPathFree(a, b geometry.Point, radius int, threshold float64) bool
	PercUnknownSurround(p geometry.Point, radius int) float64
}

// computeFrontier scans every cell of predicted, keeping the ones that
// look like reachable, mostly-unknown free space: the free-space
// boundary the robot should push into next.
func computeFrontier(belief Belief, predicted world.Prediction, radius int) []geometry.Point {
	var candidates []geometry.Point

	for y, row := range predicted.Grid {
		for x, value := range row {
			if value >= frontierObstacleCeiling {
				continue
			}
			if value < frontierKnownFreeFloor {
				continue
			}

			cell := geometry.NewPoint(predicted.Origin.X+float64(x), predicted.Origin.Y+float64(y))

			if !belief.IsSurroundingFree(cell, radius, obstacleThreshold) {
				continue
			}
			if belief.PercUnknownSurround(cell, radius) < frontierMinUnknownFraction {
				continue
			}
			candidates = append(candidates, cell)
		}
	}

	return candidates
}

// obstacleThreshold is the occupancy value collision checks compare
// against, matching the RRT planner's convention.
const obstacleThreshold = 1.0

// clusteredCandidates filters frontier points down to those with at
// least minFrontierNeighbors other frontier points within tolerance,
// the source's way of rejecting isolated, noisy frontier cells.
func clusteredCandidates(frontier []geometry.Point, tolerance float64) []geometry.Point {
	var clustered []geometry.Point
	for i, p := range frontier {
		neighbors := 0
		for j, q := range frontier {
			if i == j {
				continue
			}
			if p.DistanceTo(q) <= tolerance {
				neighbors++
				if neighbors >= minFrontierNeighbors {
					break
				}
			}
		}
		if neighbors >= minFrontierNeighbors {
			clustered = append(clustered, p)
		}
	}
	return clustered
}
