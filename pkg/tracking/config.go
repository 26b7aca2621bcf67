// Package tracking smooths a stream of raw end-effector targets into the
// per-tick positions fed to the kinematics solver.
//
// Raw targets (from hand tracking, a dashboard, or a trajectory client) are
// noisy and arrive at arbitrary rates. The Tracker owns one mutable current
// position and lerps it toward the latest goal at a fixed rate, so the
// solver and actuator always see a continuous motion. The kinematics core
// itself stays stateless; all smoothing state lives here.
package tracking

import "time"

// Config holds the tunable parameters for target smoothing
type Config struct {
	// Timing
	UpdateInterval time.Duration // How often to step the smoothed target

	// Smoothing
	Smoothing    float64 // Lerp factor per tick (0-1, higher = more new data)
	SnapDistance float64 // Snap to the goal when closer than this

	// Idle
	IdleTimeout time.Duration // Stop publishing once converged and no new goal for this long (0 = never)

	// Logging
	LogThreshold float64 // Only log steps larger than this distance
}

// DefaultConfig returns the recommended configuration for responsive motion
func DefaultConfig() Config {
	return Config{
		UpdateInterval: 33 * time.Millisecond, // ~30 steps per second
		Smoothing:      0.25,                  // 25% of the remaining distance per tick
		SnapDistance:   0.01,
		IdleTimeout:    2 * time.Second,
		LogThreshold:   0.5,
	}
}

// SlowConfig returns a configuration for slower, smoother motion
func SlowConfig() Config {
	cfg := DefaultConfig()
	cfg.Smoothing = 0.1
	return cfg
}

// AggressiveConfig returns a configuration for very fast motion
func AggressiveConfig() Config {
	cfg := DefaultConfig()
	cfg.UpdateInterval = 20 * time.Millisecond
	cfg.Smoothing = 0.5
	return cfg
}
