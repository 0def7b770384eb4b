package worldsim

import "github.com/itohio/slam/pkg/geometry"

// Scenario bundles a predefined ground-truth World with the starting
// pose the end-to-end walkthroughs launch the robot from.
type Scenario struct {
	World *World
	Start geometry.Pose
}

// Predefined returns one of the five ground-truth worlds used to drive
// the simulated robot, selected by number (1-5, matching
// config.WorldNumber). Numbers outside that range fall back to world 1.
func Predefined(number int) Scenario {
	switch number {
	case 2:
		return Scenario{
			World: New(40, 40, Rectangle{MinX: 0, MaxX: 10, MinY: 20, MaxY: 39}),
			Start: geometry.NewPose(5, 5, 0),
		}
	case 3:
		return Scenario{
			World: New(50, 50, Rectangle{MinX: 20, MaxX: 30, MinY: 20, MaxY: 30}),
			Start: geometry.NewPose(40, 40, 180),
		}
	case 4:
		return Scenario{
			World: New(50, 50,
				Rectangle{MinX: 0, MaxX: 20, MinY: 20, MaxY: 35},
				Rectangle{MinX: 40, MaxX: 49, MinY: 0, MaxY: 15},
			),
			Start: geometry.NewPose(5, 5, 0),
		}
	case 5:
		return Scenario{
			World: New(60, 20, Rectangle{MinX: 20, MaxX: 30, MinY: 0, MaxY: 5}),
			Start: geometry.NewPose(5, 10, 0),
		}
	default:
		return Scenario{
			World: New(50, 50),
			Start: geometry.NewPose(5, 5, 90),
		}
	}
}
