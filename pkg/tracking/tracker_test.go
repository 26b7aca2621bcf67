package tracking

import (
	"math"
	"testing"
	"time"

	"github.com/devanshvpurohit/robotic-arm-3d/pkg/kinematics"
)

const floatTolerance = 1e-9

func floatEquals(a, b float64) bool {
	return math.Abs(a-b) < floatTolerance
}

func TestConfigs_SmoothingInValidRange(t *testing.T) {
	configs := []struct {
		name string
		cfg  Config
	}{
		{"Default", DefaultConfig()},
		{"Slow", SlowConfig()},
		{"Aggressive", AggressiveConfig()},
	}

	for _, tc := range configs {
		if tc.cfg.Smoothing <= 0 || tc.cfg.Smoothing > 1 {
			t.Errorf("%s: Smoothing=%v out of range (0, 1]", tc.name, tc.cfg.Smoothing)
		}
		if tc.cfg.UpdateInterval <= 0 {
			t.Errorf("%s: UpdateInterval=%v must be positive", tc.name, tc.cfg.UpdateInterval)
		}
	}
}

func TestTracker_NoGoalNoUpdates(t *testing.T) {
	tr := NewTracker(DefaultConfig(), nil)

	if _, ok := tr.step(); ok {
		t.Error("step before any goal should publish nothing")
	}
}

func TestTracker_FirstGoalInitializesCurrent(t *testing.T) {
	tr := NewTracker(DefaultConfig(), nil)

	tr.SetGoal(kinematics.Target{X: 3, Y: 5, Z: 7})
	cur := tr.Current()

	if !floatEquals(cur.X, 3) || !floatEquals(cur.Y, 5) || !floatEquals(cur.Z, 7) {
		t.Errorf("current after first goal: got %+v, want the goal itself", cur)
	}
}

func TestTracker_StepLerpsTowardGoal(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Smoothing = 0.25
	tr := NewTracker(cfg, nil)

	tr.SetGoal(kinematics.Target{X: 0, Y: 4, Z: 10})
	tr.SetGoal(kinematics.Target{X: 8, Y: 4, Z: 10})

	got, ok := tr.step()
	if !ok {
		t.Fatal("step published nothing")
	}
	if !floatEquals(got.X, 2) { // 25% of the 8-unit gap
		t.Errorf("X after one step: got %v, want 2", got.X)
	}
	if !floatEquals(got.Y, 4) || !floatEquals(got.Z, 10) {
		t.Errorf("Y/Z should be unchanged: got %+v", got)
	}
}

func TestTracker_Converges(t *testing.T) {
	cfg := DefaultConfig()
	tr := NewTracker(cfg, nil)

	tr.SetGoal(kinematics.Target{X: 0, Y: 4, Z: 0})
	goal := kinematics.Target{X: 5, Y: 9, Z: -3}
	tr.SetGoal(goal)

	for i := 0; i < 200; i++ {
		tr.step()
	}
	cur := tr.Current()

	// SnapDistance guarantees exact convergence, not just asymptotic.
	if !floatEquals(cur.X, goal.X) || !floatEquals(cur.Y, goal.Y) || !floatEquals(cur.Z, goal.Z) {
		t.Errorf("after 200 steps: got %+v, want %+v", cur, goal)
	}
}

func TestTracker_IdleGoesQuiet(t *testing.T) {
	cfg := DefaultConfig()
	cfg.IdleTimeout = 10 * time.Millisecond
	tr := NewTracker(cfg, nil)

	// First goal converges immediately, but publishing continues while
	// the goal is fresh.
	tr.SetGoal(kinematics.Target{X: 1, Y: 4, Z: 2})
	if _, ok := tr.step(); !ok {
		t.Fatal("step with a fresh goal should publish")
	}

	// Converged and past the timeout: nothing to publish.
	time.Sleep(25 * time.Millisecond)
	if _, ok := tr.step(); ok {
		t.Error("step should go quiet once converged and the goal is stale")
	}

	// A new goal wakes the tracker back up.
	tr.SetGoal(kinematics.Target{X: 2, Y: 4, Z: 2})
	if _, ok := tr.step(); !ok {
		t.Error("step should resume publishing after a new goal")
	}
}

func TestTracker_IdleTimeoutDoesNotCutConvergence(t *testing.T) {
	cfg := DefaultConfig()
	cfg.IdleTimeout = time.Nanosecond
	cfg.Smoothing = 0.25
	tr := NewTracker(cfg, nil)

	tr.SetGoal(kinematics.Target{X: 0, Y: 4, Z: 0})
	tr.SetGoal(kinematics.Target{X: 8, Y: 4, Z: 0})
	time.Sleep(time.Millisecond) // goal already stale by the timeout

	// Still mid-motion, so steps keep publishing until converged.
	got, ok := tr.step()
	if !ok {
		t.Fatal("step should publish while not yet converged")
	}
	if !floatEquals(got.X, 2) {
		t.Errorf("X after one step: got %v, want 2", got.X)
	}
}

func TestTracker_SnapInsideThreshold(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SnapDistance = 0.5
	tr := NewTracker(cfg, nil)

	tr.SetGoal(kinematics.Target{X: 0, Y: 0, Z: 0})
	tr.SetGoal(kinematics.Target{X: 0.3, Y: 0, Z: 0})

	got, _ := tr.step()
	if !floatEquals(got.X, 0.3) {
		t.Errorf("snap: got %v, want exactly 0.3", got.X)
	}
}
