// Solve - one-shot inverse kinematics from the command line.
//
// Reads the arm geometry from the environment (ARM_BASE_HEIGHT etc.), solves
// for the given target and prints the joint angles, then runs the result
// back through forward kinematics as a consistency check.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/devanshvpurohit/robotic-arm-3d/internal/config"
	"github.com/devanshvpurohit/robotic-arm-3d/pkg/kinematics"
)

func main() {
	x := flag.Float64("x", 0, "target X in world units")
	y := flag.Float64("y", kinematics.DefaultBaseHeight, "target Y, measured from the ground")
	z := flag.Float64("z", 15, "target Z in world units")
	flag.Parse()

	geo, err := config.Geometry()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid arm geometry: %v\n", err)
		os.Exit(1)
	}
	solver := kinematics.NewSolverFor(geo)

	target := kinematics.Target{X: *x, Y: *y, Z: *z}
	res := solver.Solve(target)

	fmt.Printf("geometry: base=%.3g lower=%.3g upper=%.3g (reach %.3g..%.3g)\n",
		geo.BaseHeight, geo.LowerArmLength, geo.UpperArmLength, geo.MinReach, geo.MaxReach)
	fmt.Printf("target:   (%.4f, %.4f, %.4f)  reachable=%v\n",
		target.X, target.Y, target.Z, solver.Reachable(target))
	fmt.Println()
	fmt.Printf("base:     %9.4f rad  %8.2f deg\n", res.Joints.Base, deg(res.Joints.Base))
	fmt.Printf("shoulder: %9.4f rad  %8.2f deg\n", res.Joints.Shoulder, deg(res.Joints.Shoulder))
	fmt.Printf("elbow:    %9.4f rad  %8.2f deg\n", res.Joints.Elbow, deg(res.Joints.Elbow))
	fmt.Println()
	fmt.Printf("reach distance: %.4f  at limit: %v\n", res.ReachDistance, res.AtLimit)

	check := solver.Forward(res.Joints)
	fmt.Printf("forward check:  (%.4f, %.4f, %.4f)\n", check.X, check.Y, check.Z)
}

func deg(rad float64) float64 {
	return rad * 180 / math.Pi
}
