package geometry

// Pose is a robot position plus orientation.
type Pose struct {
	Position    Point
	Orientation Angle
}

// NewPose builds a Pose from cartesian coordinates and a heading in degrees.
func NewPose(x, y, headingDeg float64) Pose {
	return Pose{Position: NewPoint(x, y), Orientation: NewAngle(headingDeg)}
}

// Rotate turns the pose in place by delta degrees.
func (p *Pose) Rotate(delta Angle) {
	p.Orientation = p.Orientation.Add(delta)
}

// MoveForward translates the pose by distance along its current
// orientation. distance may be negative (reverse).
func (p *Pose) MoveForward(distance float64) {
	pol := Polar{Angle: p.Orientation, Radius: distance}
	if distance < 0 {
		pol = Polar{Angle: p.Orientation.AddDegrees(180), Radius: -distance}
	}
	p.Position = p.Position.Add(pol.ToCartesian())
}

// AngleToPoint returns the heading change (in (-180,180]) needed to
// face target from the pose's current position and orientation.
func (p Pose) AngleToPoint(target Point) Angle {
	return p.Position.AngleTo(target).Sub(p.Orientation)
}

// TurnTowards rotates the pose in place to face target exactly.
func (p *Pose) TurnTowards(target Point) {
	p.Orientation = p.Position.AngleTo(target)
}
