package arm

import (
	"math"

	"github.com/devanshvpurohit/robotic-arm-3d/pkg/kinematics"
)

// Default joint limits (radians). These are safety limits to prevent sending
// impossible commands to the servos; the solver itself is unbounded.
const (
	MaxShoulderPitch = 1.9  // ~109°
	MinShoulderPitch = -1.9
	MaxElbowPitch    = math.Pi
	MinElbowPitch    = 0
)

// Range is an inclusive joint angle interval.
type Range struct {
	Min, Max float64
}

// Limits holds per-joint ranges applied before actuation. The base yaw has
// no range: it wraps instead of clamping.
type Limits struct {
	Shoulder Range
	Elbow    Range
}

// DefaultLimits returns the stock servo limits.
func DefaultLimits() Limits {
	return Limits{
		Shoulder: Range{Min: MinShoulderPitch, Max: MaxShoulderPitch},
		Elbow:    Range{Min: MinElbowPitch, Max: MaxElbowPitch},
	}
}

// Apply returns j with the pitch joints clamped into range and the base yaw
// normalized into (-π, π].
func (l Limits) Apply(j kinematics.Joints) kinematics.Joints {
	return kinematics.Joints{
		Base:     normalizeYaw(j.Base),
		Shoulder: clamp(j.Shoulder, l.Shoulder.Min, l.Shoulder.Max),
		Elbow:    clamp(j.Elbow, l.Elbow.Min, l.Elbow.Max),
	}
}

// normalizeYaw wraps an unbounded yaw into (-π, π]. The solver never
// normalizes its atan2 output, so this is the one place wrapping happens.
func normalizeYaw(yaw float64) float64 {
	wrapped := math.Mod(yaw, 2*math.Pi)
	if wrapped > math.Pi {
		wrapped -= 2 * math.Pi
	} else if wrapped <= -math.Pi {
		wrapped += 2 * math.Pi
	}
	return wrapped
}

// clamp restricts v to the range [min, max].
func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
