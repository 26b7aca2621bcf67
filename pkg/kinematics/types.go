// Package kinematics implements closed-form kinematics for a 3-DOF serial
// arm: a yaw joint at the base, pitch joints at the shoulder and elbow, and
// two rigid links mounted on a fixed base column.
//
// All operations are pure functions over an immutable Geometry, so a single
// Solver is safe to share across goroutines without locking. Out-of-workspace
// targets are never an error: the solver clamps them to the nearest reachable
// distance and reports the clamp through Result diagnostics.
package kinematics

// Target is an end-effector position in the world frame. The frame is
// centered on the base's vertical axis with Y measured from the ground,
// not from the shoulder pivot. Any point is a valid Target, reachable or not.
type Target struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Joints holds the three joint angles in radians.
//
// Base is the yaw of the arm's vertical plane and follows the atan2 branch
// cut: it is not normalized into [-π, π]. Shoulder is pitch measured from
// straight-up. Elbow is the deviation from a fully extended arm, so 0 means
// straight and π means fully folded. No hardware limits are enforced here;
// that belongs to whatever actuates the arm.
type Joints struct {
	Base     float64 `json:"base"`
	Shoulder float64 `json:"shoulder"`
	Elbow    float64 `json:"elbow"`
}

// Result is the outcome of one inverse solve.
type Result struct {
	Joints Joints `json:"joints"`

	// ReachDistance is the shoulder-to-target distance actually used after
	// clamping into the workspace shell.
	ReachDistance float64 `json:"reach_distance"`

	// AtLimit reports whether the requested (unclamped) distance exceeded
	// the outer reach threshold. It lets callers distinguish "solved
	// exactly" from "solved at the edge of the workspace". Under-reach
	// inside the inner shell is clamped too but not flagged; use
	// Solver.Reachable for the symmetric test.
	AtLimit bool `json:"at_limit"`
}
