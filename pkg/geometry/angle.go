package geometry

import "math"

// Angle is a scalar in degrees, always kept normalized to (-180, 180]
// on construction and after every arithmetic operation.
type Angle struct {
	degrees float64
}

// NewAngle builds an Angle, normalizing deg into (-180, 180].
func NewAngle(deg float64) Angle {
	return Angle{degrees: normalize(deg)}
}

func normalize(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg <= -180 {
		deg += 360
	} else if deg > 180 {
		deg -= 360
	}
	return deg
}

// InDegrees returns the angle in (-180, 180] degrees.
func (a Angle) InDegrees() float64 {
	return a.degrees
}

// InRadians returns the angle in radians.
func (a Angle) InRadians() float64 {
	return a.degrees * math.Pi / 180
}

// Add returns a+b, renormalized.
func (a Angle) Add(b Angle) Angle {
	return NewAngle(a.degrees + b.degrees)
}

// Sub returns a-b, renormalized.
func (a Angle) Sub(b Angle) Angle {
	return NewAngle(a.degrees - b.degrees)
}

// AddDegrees returns a shifted by deg degrees, renormalized.
func (a Angle) AddDegrees(deg float64) Angle {
	return NewAngle(a.degrees + deg)
}
