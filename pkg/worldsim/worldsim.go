package worldsim

import "github.com/itohio/slam/pkg/geometry"

// Rectangle is an axis-aligned obstacle, given as (x_min, x_max, y_min,
// y_max), matching the end-to-end test scenarios' obstacle notation.
type Rectangle struct {
	MinX, MaxX, MinY, MaxY float64
}

// Contains reports whether p lies within the rectangle, inclusive of
// its boundary.
func (r Rectangle) Contains(p geometry.Point) bool {
	return p.X >= r.MinX && p.X <= r.MaxX && p.Y >= r.MinY && p.Y <= r.MaxY
}

// World is a ground-truth simulated world: a bounded arena with
// rectangular obstacles, used to back the simulated sensor driver and
// to drive end-to-end tests without a physical robot.
type World struct {
	Width, Height float64
	Obstacles     []Rectangle
}

// New builds a World of the given size with the given obstacles.
func New(width, height float64, obstacles ...Rectangle) *World {
	return &World{Width: width, Height: height, Obstacles: obstacles}
}

// InBounds reports whether p lies within [0,Width]x[0,Height].
func (w *World) InBounds(p geometry.Point) bool {
	return p.X >= 0 && p.X <= w.Width && p.Y >= 0 && p.Y <= w.Height
}

// occupied reports whether p lies inside any obstacle or outside the
// arena.
func (w *World) occupied(p geometry.Point) bool {
	if !w.InBounds(p) {
		return true
	}
	for _, r := range w.Obstacles {
		if r.Contains(p) {
			return true
		}
	}
	return false
}

// rayStep is the marching increment used by RayCast.
const rayStep = 0.25

// RayCast marches from origin along angle, in increments of rayStep,
// until it either leaves the arena or enters an obstacle, or travels
// maxDistance. It returns the travelled distance and whether something
// was hit: leaving the arena counts as a hit, just like entering an
// obstacle; only reaching maxDistance reports false.
func (w *World) RayCast(origin geometry.Point, angle geometry.Angle, maxDistance float64) (distance float64, hit bool) {
	pose := geometry.Pose{Position: origin, Orientation: angle}
	for travelled := 0.0; travelled < maxDistance; travelled += rayStep {
		if w.occupied(pose.Position) {
			return travelled, true
		}
		pose.MoveForward(rayStep)
	}
	return maxDistance, false
}
