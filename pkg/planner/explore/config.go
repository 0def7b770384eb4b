package explore

// Config bundles the tuning knobs of the exploration planner.
type Config struct {
	// RobotSize is the robot's diameter in world units.
	RobotSize float64
	// DistanceTolerance is the neighbor radius used both to cluster
	// frontier points and to decide when RRT has reached a goal.
	DistanceTolerance float64
	// AngleTolerance is the heading error, in degrees, below which the
	// planner skips the rotate phase of a hop.
	AngleTolerance float64
	// BlurSigma is the Gaussian blur applied when predicting the world.
	BlurSigma float64
}

// candidateAttempts is the number of candidate-selection tries per step.
const candidateAttempts = 5

// minFrontierNeighbors is the minimum number of other frontier points
// within DistanceTolerance a frontier point must have to be considered a
// viable candidate.
const minFrontierNeighbors = 3

// frontierObstacleCeiling: cells at or above this value are treated as
// likely obstacles and excluded from the frontier.
const frontierObstacleCeiling = 0.0

// frontierKnownFreeFloor: cells below this value are already well inside
// known free space and excluded from the frontier.
const frontierKnownFreeFloor = -10.0

// frontierMinUnknownFraction is the minimum fraction of unknown
// neighboring cells a frontier candidate must have.
const frontierMinUnknownFraction = 0.3

// DefaultConfig returns the tuning the source ships with.
func DefaultConfig() Config {
	return Config{
		RobotSize:         10.0,
		DistanceTolerance: 5.0,
		AngleTolerance:    3.0,
		BlurSigma:         1.0,
	}
}

// collisionRadius returns floor(RobotSize/2), the unit occupancy
// queries operate in.
func (c Config) collisionRadius() int {
	return int(c.RobotSize / 2)
}
