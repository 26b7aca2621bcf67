package kinematics

import "math"

// Safety margins keeping the law-of-cosines triangle away from exact
// degeneracy (collinear links) at the workspace boundary. The inner margin is
// an absolute offset above MinReach, the outer a relative factor below
// MaxReach.
const (
	innerReachMargin = 0.01
	outerReachMargin = 0.001
)

// Solver converts end-effector targets into joint angles and back for one
// fixed arm geometry. It holds no mutable state: every method is pure and
// safe for concurrent use.
type Solver struct {
	geo Geometry
}

// NewSolver builds a solver for the geometry described by cfg.
func NewSolver(cfg Config) (*Solver, error) {
	g, err := NewGeometry(cfg)
	if err != nil {
		return nil, err
	}
	return &Solver{geo: g}, nil
}

// NewSolverFor builds a solver around an already-constructed Geometry.
func NewSolverFor(g Geometry) *Solver {
	return &Solver{geo: g}
}

// Geometry returns the immutable geometry bound at construction.
func (s *Solver) Geometry() Geometry {
	return s.geo
}

// Solve computes the joint angles placing the end effector at t.
//
// The base yaw absorbs all out-of-plane rotation, collapsing the solve into
// a 2-link planar problem handled with the law of cosines. Targets outside
// the reachable shell are clamped to the nearest valid distance rather than
// rejected; Result.AtLimit records when the outer boundary was hit. The
// elbow-forward configuration is always selected; there is no branch for the
// mirrored solution.
func (s *Solver) Solve(t Target) Result {
	g := s.geo

	// atan2(0, 0) is 0 by convention, so a target on the base axis leaves
	// the arm facing the reference azimuth instead of producing NaN.
	base := math.Atan2(t.X, t.Z)

	horizontal := math.Hypot(t.X, t.Z)
	vertical := t.Y - g.BaseHeight
	planar := math.Hypot(horizontal, vertical)

	maxUsable := g.MaxReach * (1 - outerReachMargin)
	reach := clamp(planar, g.MinReach+innerReachMargin, maxUsable)

	lower, upper := g.LowerArmLength, g.UpperArmLength

	// Interior elbow angle between the two links; the reported joint angle
	// is its deviation from fully extended, so elbow = 0 means straight.
	cosInternal := (reach*reach - lower*lower - upper*upper) / (-2 * lower * upper)
	elbow := math.Pi - math.Acos(clamp(cosInternal, -1, 1))

	// Elevation of the target from the shoulder pivot, plus the triangle
	// angle between the lower link and the shoulder-target line.
	targetAngle := math.Atan2(vertical, horizontal)
	cosOffset := (lower*lower + reach*reach - upper*upper) / (2 * lower * reach)
	shoulderOffset := math.Acos(clamp(cosOffset, -1, 1))
	shoulder := math.Pi/2 - (targetAngle + shoulderOffset)

	return Result{
		Joints:        Joints{Base: base, Shoulder: shoulder, Elbow: elbow},
		ReachDistance: reach,
		// Judged against the unclamped request so it reflects what the
		// caller asked for, not what was solved.
		AtLimit: planar > maxUsable,
	}
}

// Forward computes the end-effector position for j. It is the exact
// algebraic inverse of Solve's geometry, so solving a reachable target and
// feeding the joints back through Forward reproduces the target.
func (s *Solver) Forward(j Joints) Target {
	g := s.geo

	// Shoulder is measured from straight-up and elbow from full extension,
	// so the upper link's absolute planar angle is their sum.
	upperAngle := j.Shoulder + j.Elbow

	planarX := g.LowerArmLength*math.Sin(j.Shoulder) + g.UpperArmLength*math.Sin(upperAngle)
	planarY := g.LowerArmLength*math.Cos(j.Shoulder) + g.UpperArmLength*math.Cos(upperAngle)

	return Target{
		X: planarX * math.Sin(j.Base),
		Y: planarY + g.BaseHeight,
		Z: planarX * math.Cos(j.Base),
	}
}

// Reachable reports whether t lies inside the physical workspace shell,
// without margins or clamping. Unlike Result.AtLimit this also catches
// targets inside the inner shell.
func (s *Solver) Reachable(t Target) bool {
	g := s.geo
	horizontal := math.Hypot(t.X, t.Z)
	vertical := t.Y - g.BaseHeight
	planar := math.Hypot(horizontal, vertical)
	return planar >= g.MinReach && planar <= g.MaxReach
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
