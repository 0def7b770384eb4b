package rrt

// Config bundles the tuning knobs of a single RRT hop search.
type Config struct {
	// MaxStep caps the length of a single tree edge.
	MaxStep float64
	// MinStep is the floor a candidate step must clear before it is
	// accepted; it decays multiplicatively on repeated too-short draws
	// and is reset to this value on every accepted node.
	MinStep float64
	// TiltTowardsGoal is the probability, per sample, of drawing the
	// target near the goal instead of uniformly from the belief.
	TiltTowardsGoal float64
	// Tolerance is both the goal-reached radius and the standard
	// deviation of the Gaussian jitter applied to goal-tilted samples.
	Tolerance float64
	// RobotSize is the robot's diameter in world units; collision
	// checks use a radius of RobotSize/2.
	RobotSize float64
}

// CollisionRadius returns floor(RobotSize/2) as an int grid radius, the
// unit the occupancy queries operate in.
func (c Config) CollisionRadius() int {
	return int(c.RobotSize / 2)
}

// maxNodes bounds the tree search per hop.
const maxNodes = 200

// obstacleThreshold is the occupancy value collision checks compare
// against.
const obstacleThreshold = 1.0

// DefaultConfig returns the tuning the source ships with.
func DefaultConfig() Config {
	return Config{
		MaxStep:         10,
		MinStep:         0,
		TiltTowardsGoal: 0.5,
		Tolerance:       5.0,
		RobotSize:       10.0,
	}
}
