package kinematics

import (
	"math"
	"testing"
)

const floatTolerance = 1e-9

func floatEquals(a, b float64) bool {
	return math.Abs(a-b) < floatTolerance
}

func newTestSolver(t *testing.T) *Solver {
	t.Helper()
	s, err := NewSolver(Config{})
	if err != nil {
		t.Fatalf("NewSolver: %v", err)
	}
	return s
}

func TestNewGeometry_Defaults(t *testing.T) {
	g, err := NewGeometry(Config{})
	if err != nil {
		t.Fatalf("NewGeometry: %v", err)
	}

	if !floatEquals(g.BaseHeight, 4) || !floatEquals(g.LowerArmLength, 12) || !floatEquals(g.UpperArmLength, 10) {
		t.Errorf("defaults: got %+v, want 4/12/10", g)
	}
	if !floatEquals(g.MaxReach, 22) {
		t.Errorf("MaxReach: got %v, want 22", g.MaxReach)
	}
	if !floatEquals(g.MinReach, 2) {
		t.Errorf("MinReach: got %v, want 2", g.MinReach)
	}
}

func TestNewGeometry_PartialConfig(t *testing.T) {
	g, err := NewGeometry(Config{LowerArmLength: 8})
	if err != nil {
		t.Fatalf("NewGeometry: %v", err)
	}
	if !floatEquals(g.LowerArmLength, 8) {
		t.Errorf("LowerArmLength: got %v, want 8", g.LowerArmLength)
	}
	if !floatEquals(g.BaseHeight, DefaultBaseHeight) {
		t.Errorf("BaseHeight: got %v, want default %v", g.BaseHeight, DefaultBaseHeight)
	}
	if !floatEquals(g.MaxReach, 18) {
		t.Errorf("MaxReach: got %v, want 18", g.MaxReach)
	}
}

func TestNewGeometry_RejectsNegativeLengths(t *testing.T) {
	cases := []Config{
		{BaseHeight: -1},
		{LowerArmLength: -5},
		{UpperArmLength: -0.001},
	}
	for _, cfg := range cases {
		if _, err := NewGeometry(cfg); err == nil {
			t.Errorf("NewGeometry(%+v): expected error, got nil", cfg)
		}
	}
}

func TestSolve_StraightAhead(t *testing.T) {
	s := newTestSolver(t)
	res := s.Solve(Target{X: 0, Y: 4, Z: 20})

	if !floatEquals(res.Joints.Base, 0) {
		t.Errorf("base: got %v, want 0", res.Joints.Base)
	}
	if res.AtLimit {
		t.Error("AtLimit: got true for an interior target")
	}
	if !floatEquals(res.ReachDistance, 20) {
		t.Errorf("ReachDistance: got %v, want 20", res.ReachDistance)
	}

	// Law of cosines for the 12/10/20 triangle.
	wantElbow := math.Pi - math.Acos((20.0*20-12*12-10*10)/(-2*12*10))
	if !floatEquals(res.Joints.Elbow, wantElbow) {
		t.Errorf("elbow: got %v, want %v", res.Joints.Elbow, wantElbow)
	}
	wantShoulder := math.Pi/2 - math.Acos((12.0*12+20*20-10*10)/(2*12*20))
	if !floatEquals(res.Joints.Shoulder, wantShoulder) {
		t.Errorf("shoulder: got %v, want %v", res.Joints.Shoulder, wantShoulder)
	}
}

func TestSolve_FullExtension(t *testing.T) {
	s := newTestSolver(t)
	res := s.Solve(Target{X: 0, Y: 4, Z: 22})

	if !res.AtLimit {
		t.Error("AtLimit: got false at maximum reach")
	}
	if !floatEquals(res.ReachDistance, 22*0.999) {
		t.Errorf("ReachDistance: got %v, want %v", res.ReachDistance, 22*0.999)
	}
	if res.Joints.Elbow > 0.1 {
		t.Errorf("elbow: got %v, want ~0 (arm straight)", res.Joints.Elbow)
	}
}

func TestSolve_FullFold(t *testing.T) {
	s := newTestSolver(t)
	res := s.Solve(Target{X: 0, Y: 6, Z: 0})

	// Degenerate azimuth: atan2(0, 0) faces the reference direction.
	if !floatEquals(res.Joints.Base, 0) {
		t.Errorf("base: got %v, want 0", res.Joints.Base)
	}
	if res.AtLimit {
		t.Error("AtLimit: got true for an under-reach target")
	}
	if math.Abs(res.Joints.Elbow-math.Pi) > 0.05 {
		t.Errorf("elbow: got %v, want ~π (arm folded)", res.Joints.Elbow)
	}
}

func TestSolve_NeverNaN(t *testing.T) {
	s := newTestSolver(t)
	targets := []Target{
		{0, 0, 0},
		{0, 4, 0},
		{1e6, -1e6, 1e6},
		{-0.001, 0.001, -0.001},
		{0, -50, 0},
	}
	for _, tgt := range targets {
		res := s.Solve(tgt)
		for _, v := range []float64{res.Joints.Base, res.Joints.Shoulder, res.Joints.Elbow, res.ReachDistance} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Errorf("Solve(%+v): non-finite output %+v", tgt, res)
			}
		}
	}
}

func TestSolve_ForwardRoundTrip(t *testing.T) {
	s := newTestSolver(t)

	azimuths := []float64{-2.4, -1.2, 0, 0.7, 1.9, 3.0}
	elevations := []float64{-1.2, -0.5, 0, 0.4, 1.0, math.Pi / 2}
	// Clamp-free band: inside the safety margins at both shells.
	distances := []float64{2.5, 5, 11, 17.3, 21.9}

	for _, az := range azimuths {
		for _, el := range elevations {
			for _, d := range distances {
				horizontal := d * math.Cos(el)
				vertical := d * math.Sin(el)
				want := Target{
					X: horizontal * math.Sin(az),
					Y: vertical + 4,
					Z: horizontal * math.Cos(az),
				}

				got := s.Forward(s.Solve(want).Joints)

				if math.Abs(got.X-want.X) > 1e-6 ||
					math.Abs(got.Y-want.Y) > 1e-6 ||
					math.Abs(got.Z-want.Z) > 1e-6 {
					t.Errorf("round trip az=%v el=%v d=%v: got %+v, want %+v", az, el, d, got, want)
				}
			}
		}
	}
}

func TestForward_StraightArm(t *testing.T) {
	s := newTestSolver(t)

	// Shoulder horizontal, elbow straight: tip at full reach ahead.
	got := s.Forward(Joints{Base: 0, Shoulder: math.Pi / 2, Elbow: 0})

	if !floatEquals(got.X, 0) {
		t.Errorf("X: got %v, want 0", got.X)
	}
	if !floatEquals(got.Y, 4) {
		t.Errorf("Y: got %v, want 4", got.Y)
	}
	if math.Abs(got.Z-22) > floatTolerance {
		t.Errorf("Z: got %v, want 22", got.Z)
	}
}

func TestReachable_Shell(t *testing.T) {
	s := newTestSolver(t)

	cases := []struct {
		name string
		tgt  Target
		want bool
	}{
		{"inside", Target{0, 4, 10}, true},
		{"inner boundary", Target{0, 4, 2}, true},
		{"outer boundary", Target{0, 4, 22}, true},
		{"under reach", Target{0, 4, 1.5}, false},
		{"over reach", Target{0, 4, 22.5}, false},
		// The origin sits 4 below the shoulder pivot, inside the shell.
		{"origin", Target{0, 0, 0}, true},
		{"straight up inside", Target{0, 6, 0}, true},
		{"off axis outside", Target{20, 4, 20}, false},
	}

	for _, tc := range cases {
		if got := s.Reachable(tc.tgt); got != tc.want {
			t.Errorf("%s: Reachable(%+v) = %v, want %v", tc.name, tc.tgt, got, tc.want)
		}
	}
}

func TestSolve_AtLimitMatchesUnclampedRequest(t *testing.T) {
	s := newTestSolver(t)

	// Just inside the outer margin: clamped distance equals the request,
	// no flag.
	in := s.Solve(Target{0, 4, 21.9})
	if in.AtLimit {
		t.Error("AtLimit: got true just inside the margin")
	}

	// Between MaxReach*(1-ε) and MaxReach: still flagged even though the
	// request is physically reachable, since the solve had to clamp.
	edge := s.Solve(Target{0, 4, 21.99})
	if !edge.AtLimit {
		t.Error("AtLimit: got false inside the clamped edge band")
	}
}
