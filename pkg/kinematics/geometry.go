package kinematics

import "fmt"

// Default link dimensions, in scene units.
const (
	DefaultBaseHeight     = 4.0
	DefaultLowerArmLength = 12.0
	DefaultUpperArmLength = 10.0
)

// Config holds the physical dimensions used to build a Geometry.
// A zero field means "use the default"; negative lengths are rejected.
type Config struct {
	BaseHeight     float64 `json:"base_height"`
	LowerArmLength float64 `json:"lower_arm_length"`
	UpperArmLength float64 `json:"upper_arm_length"`
}

// Geometry is the immutable physical description of the arm. MaxReach and
// MinReach bound the reachable shell around the shoulder pivot and are
// derived once at construction; they never change for the lifetime of one
// Geometry value.
type Geometry struct {
	BaseHeight     float64 `json:"base_height"`
	LowerArmLength float64 `json:"lower_arm_length"`
	UpperArmLength float64 `json:"upper_arm_length"`
	MaxReach       float64 `json:"max_reach"`
	MinReach       float64 `json:"min_reach"`
}

// NewGeometry builds a Geometry from cfg, filling zero fields with the
// defaults. Negative lengths are rejected here so a degenerate configuration
// cannot propagate as NaN through the trigonometric chain later.
func NewGeometry(cfg Config) (Geometry, error) {
	base := cfg.BaseHeight
	if base == 0 {
		base = DefaultBaseHeight
	}
	lower := cfg.LowerArmLength
	if lower == 0 {
		lower = DefaultLowerArmLength
	}
	upper := cfg.UpperArmLength
	if upper == 0 {
		upper = DefaultUpperArmLength
	}

	if base < 0 {
		return Geometry{}, fmt.Errorf("kinematics: base height must be positive, got %v", base)
	}
	if lower < 0 {
		return Geometry{}, fmt.Errorf("kinematics: lower arm length must be positive, got %v", lower)
	}
	if upper < 0 {
		return Geometry{}, fmt.Errorf("kinematics: upper arm length must be positive, got %v", upper)
	}

	g := Geometry{
		BaseHeight:     base,
		LowerArmLength: lower,
		UpperArmLength: upper,
		MaxReach:       lower + upper,
		MinReach:       abs(lower - upper),
	}
	return g, nil
}

// DefaultGeometry returns the geometry built from all defaults.
func DefaultGeometry() Geometry {
	g, err := NewGeometry(Config{})
	if err != nil {
		// Defaults are constants and always valid.
		panic(err)
	}
	return g
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
