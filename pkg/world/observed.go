package world

import (
	"math"
	"math/rand"

	"github.com/itohio/slam/pkg/geometry"
)

// bucketKey rounds a pose location to the same tolerance Point.Equal
// uses, so that two poses considered equal by the geometry package also
// collide onto the same observation bucket.
type bucketKey struct {
	x, y float64
}

func keyFor(p geometry.Point) bucketKey {
	const scale = 1 / geometry.Tolerance
	return bucketKey{
		x: math.Round(p.X*scale) / scale,
		y: math.Round(p.Y*scale) / scale,
	}
}

// ObservedWorld is the robot's incremental occupancy belief: a set of
// per-pose observation buckets, baked on demand into a raw accumulator
// grid and a Gaussian-blurred snapshot of it.
type ObservedWorld struct {
	buckets    map[bucketKey]*observationBucket
	locations  map[bucketKey]geometry.Point
	lastRaw    [][]float64
	lastBlur   [][]float64
	lastOrigin geometry.Point
}

// NewObservedWorld returns an empty belief.
func NewObservedWorld() *ObservedWorld {
	return &ObservedWorld{
		buckets:   make(map[bucketKey]*observationBucket),
		locations: make(map[bucketKey]geometry.Point),
	}
}

// AddObservation appends obs into the bucket keyed by pose's location,
// creating the bucket on first insert. It clears no flags: a bucket that
// has already been baked stays marked baked until the raw grid is
// reallocated (at which point every bucket is re-baked from scratch).
func (w *ObservedWorld) AddObservation(pose geometry.Pose, obs Observation) {
	key := keyFor(pose.Position)
	bucket, ok := w.buckets[key]
	if !ok {
		// Two Equal positions can still round onto neighboring keys.
		for k, loc := range w.locations {
			if loc.Equal(pose.Position) {
				key, bucket, ok = k, w.buckets[k], true
				break
			}
		}
	}
	if !ok {
		bucket = &observationBucket{}
		w.buckets[key] = bucket
		w.locations[key] = pose.Position
	}
	bucket.observations = append(bucket.observations, obs)
}

// GetWorldBorders returns the component-wise min/max over every
// observation location and every bucket (pose) location. ok is false if
// the belief is still empty.
func (w *ObservedWorld) GetWorldBorders() (min, max geometry.Point, ok bool) {
	if len(w.buckets) == 0 {
		return geometry.Point{}, geometry.Point{}, false
	}

	min = geometry.Point{X: math.Inf(1), Y: math.Inf(1)}
	max = geometry.Point{X: math.Inf(-1), Y: math.Inf(-1)}

	for key, bucket := range w.buckets {
		loc := w.locations[key]
		min = min.Min(loc)
		max = max.Max(loc)
		for _, o := range bucket.observations {
			min = min.Min(o.Location)
			max = max.Max(o.Location)
		}
	}
	return min, max, true
}

// PointInBounds reports whether point lies within the current borders.
func (w *ObservedWorld) PointInBounds(point geometry.Point) bool {
	min, max, ok := w.GetWorldBorders()
	if !ok {
		return false
	}
	return point.X >= min.X && point.X <= max.X && point.Y >= min.Y && point.Y <= max.Y
}

// PredictWorld bakes every unbaked observation bucket into the raw grid,
// then returns a freshly Gaussian-blurred snapshot along with the world
// origin (the min border, i.e. the world coordinate of grid cell
// [0][0]). It returns ok=false on an empty belief.
func (w *ObservedWorld) PredictWorld(sigma float64) (pred Prediction, ok bool) {
	min, max, hasBorders := w.GetWorldBorders()
	if !hasBorders {
		return Prediction{}, false
	}

	width := int(math.Round(max.X-min.X)) + 1
	height := int(math.Round(max.Y-min.Y)) + 1

	reallocated := w.lastRaw == nil || len(w.lastRaw) != height || len(w.lastRaw[0]) != width
	var raw [][]float64
	if reallocated {
		raw = newGrid(height, width)
	} else {
		raw = w.lastRaw
	}

	kernel := obstacleKernel()

	for key, bucket := range w.buckets {
		if !reallocated && bucket.usedInPrediction {
			continue
		}
		poseLoc := w.locations[key]
		px := int(math.Round(poseLoc.X - min.X))
		py := int(math.Round(poseLoc.Y - min.Y))
		bucket.usedInPrediction = true

		for _, o := range bucket.observations {
			x := int(math.Round(o.Location.X - min.X))
			y := int(math.Round(o.Location.Y - min.Y))
			if o.Type == Obstacle {
				applyKernel(raw, x, y, kernel)
			}
			carveFreePath(raw, px, py, x, y)
		}
	}

	w.lastRaw = raw
	w.lastOrigin = min
	w.lastBlur = gaussianBlur(raw, sigma)

	return Prediction{Origin: min, Grid: w.lastBlur}, true
}

// applyKernel adds kernel, elementwise, into grid centered at (xc,yc),
// skipping any kernel cell that falls outside grid.
func applyKernel(grid [][]float64, xc, yc int, kernel [][]float64) {
	size := len(kernel)
	half := size / 2
	for ky := 0; ky < size; ky++ {
		for kx := 0; kx < size; kx++ {
			x := xc - half + kx
			y := yc - half + ky
			if y >= 0 && y < len(grid) && x >= 0 && x < len(grid[y]) {
				grid[y][x] += kernel[ky][kx]
			}
		}
	}
}

// carveFreePath subtracts 6 from every grid cell visited while walking
// unit forward steps from (xStart,yStart) toward (xEnd,yEnd), the
// inverse-sensor-model free-space carve along the ray.
func carveFreePath(grid [][]float64, xStart, yStart, xEnd, yEnd int) {
	pose := geometry.NewPose(float64(xStart), float64(yStart), 0)
	end := geometry.NewPoint(float64(xEnd), float64(yEnd))
	pose.TurnTowards(end)

	xOld, yOld := xStart, yStart
	for pose.Position.DistanceTo(end) > 0.5 {
		x := int(math.Round(pose.Position.X))
		y := int(math.Round(pose.Position.Y))
		pose.MoveForward(1)

		if x == xOld && y == yOld {
			continue
		}
		if y >= 0 && y < len(grid) && x >= 0 && x < len(grid[y]) {
			grid[y][x] -= 6
		}
		xOld, yOld = x, y
	}
}

// GetStateOnCoordinate looks up the grid value at location, from the
// blurred snapshot by default. Callers must ensure location is in
// bounds first.
func (w *ObservedWorld) GetStateOnCoordinate(location geometry.Point, blurred bool) float64 {
	grid := w.lastBlur
	if !blurred {
		grid = w.lastRaw
	}
	x := int(math.Round(location.X - w.lastOrigin.X))
	y := int(math.Round(location.Y - w.lastOrigin.Y))
	return grid[y][x]
}

// getAreaAroundPoint returns the square window of side 2*radius+1
// centered on location, clipped to the world borders, from the blurred
// or raw snapshot.
func (w *ObservedWorld) getAreaAroundPoint(location geometry.Point, radius int, blurred bool) [][]float64 {
	min, max, ok := w.GetWorldBorders()
	if !ok {
		return nil
	}
	grid := w.lastBlur
	if !blurred {
		grid = w.lastRaw
	}

	xMin := int(math.Round(math.Max(min.X, location.X-float64(radius)) - min.X))
	xMax := int(math.Round(math.Min(max.X, location.X+float64(radius)) - min.X))
	yMin := int(math.Round(math.Max(min.Y, location.Y-float64(radius)) - min.Y))
	yMax := int(math.Round(math.Min(max.Y, location.Y+float64(radius)) - min.Y))

	area := make([][]float64, 0, yMax-yMin+1)
	for y := yMin; y <= yMax; y++ {
		row := make([]float64, 0, xMax-xMin+1)
		row = append(row, grid[y][xMin:xMax+1]...)
		area = append(area, row)
	}
	return area
}

// IsSurroundingFree reports whether every in-bounds cell of the
// (2*radius+1)^2 window around p is at most threshold in the blurred
// grid.
func (w *ObservedWorld) IsSurroundingFree(p geometry.Point, radius int, threshold float64) bool {
	area := w.getAreaAroundPoint(p, radius, true)
	for _, row := range area {
		for _, v := range row {
			if v > threshold {
				return false
			}
		}
	}
	return true
}

// IsPathFree steps along the segment a->b in increments of 1.5*radius,
// checking IsSurroundingFree at each waypoint, stopping once within
// radius of b.
func (w *ObservedWorld) IsPathFree(a, b geometry.Point, radius int, threshold float64) bool {
	pose := geometry.NewPose(a.X, a.Y, 0)
	pose.TurnTowards(b)
	for pose.Position.DistanceTo(b) > float64(radius) {
		pose.MoveForward(1.5 * float64(radius))
		if !w.IsSurroundingFree(pose.Position, radius, threshold) {
			return false
		}
	}
	return true
}

// PercUnknownSurround returns the fraction of cells in the
// (2*radius+1)^2 window around p whose absolute blurred value is below
// 1; cells outside the world borders count as unknown.
func (w *ObservedWorld) PercUnknownSurround(p geometry.Point, radius int) float64 {
	totalSize := float64((2*radius + 1) * (2*radius + 1))
	area := w.getAreaAroundPoint(p, radius, true)

	unknown := 0.0
	inMap := 0
	for _, row := range area {
		inMap += len(row)
		for _, v := range row {
			if math.Abs(v) < 1 {
				unknown++
			}
		}
	}
	unknown += totalSize - float64(inMap)
	return unknown / totalSize
}

// GetRandomPoint uniformly samples among cells whose value lies in
// [minValue, maxValue], returning false if no cell qualifies.
func (w *ObservedWorld) GetRandomPoint(minValue, maxValue float64, blurred bool) (geometry.Point, bool) {
	min, max, ok := w.GetWorldBorders()
	if !ok {
		return geometry.Point{}, false
	}
	grid := w.lastBlur
	if !blurred {
		grid = w.lastRaw
	}

	type cell struct{ x, y int }
	var candidates []cell
	for y, row := range grid {
		for x, v := range row {
			if v >= minValue && v <= maxValue {
				candidates = append(candidates, cell{x, y})
			}
		}
	}
	if len(candidates) == 0 {
		return geometry.Point{}, false
	}

	pick := candidates[rand.Intn(len(candidates))]
	newX := math.Min(min.X+float64(pick.x), max.X)
	newY := math.Min(min.Y+float64(pick.y), max.Y)
	return geometry.NewPoint(newX, newY), true
}
