// Package arm provides interfaces and drivers for sending solved joint
// angles to an arm actuation daemon.
//
// This package follows the Interface Segregation Principle (ISP) by defining
// small, focused interfaces that can be composed as needed. Consumers should
// depend only on the interfaces they actually use. Joint limit enforcement
// lives here, on the actuation side, never inside the kinematics solver.
package arm

import "github.com/devanshvpurohit/robotic-arm-3d/pkg/kinematics"

// JointController provides joint angle control.
// Use this minimal interface when only movement is needed (e.g., tracking).
type JointController interface {
	SetJoints(j kinematics.Joints) error
}

// StatusController provides actuator status queries.
type StatusController interface {
	Status() (string, error)
}

// Controller is the composite interface for full arm control.
type Controller interface {
	JointController
	StatusController
}

// Ensure HTTPDriver implements Controller
var _ Controller = (*HTTPDriver)(nil)
