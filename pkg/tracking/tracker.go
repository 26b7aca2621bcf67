package tracking

import (
	"math"
	"sync"
	"time"

	"github.com/devanshvpurohit/robotic-arm-3d/internal/log"
	"github.com/devanshvpurohit/robotic-arm-3d/pkg/kinematics"
)

// UpdateFunc receives each smoothed target. It runs on the tracker's
// goroutine, so it should hand off quickly (a solve plus a channel send or
// rate-driver update is fine).
type UpdateFunc func(kinematics.Target)

// Tracker lerps a mutable current position toward the most recent goal at a
// fixed tick rate. Goals may be set from any goroutine.
type Tracker struct {
	cfg      Config
	onUpdate UpdateFunc

	mu        sync.RWMutex
	goal      kinematics.Target
	current   kinematics.Target
	hasGoal   bool
	goalSetAt time.Time

	stop chan struct{}

	// Diagnostics
	stepCount uint64
}

// NewTracker creates a tracker that reports smoothed targets to onUpdate.
func NewTracker(cfg Config, onUpdate UpdateFunc) *Tracker {
	return &Tracker{
		cfg:      cfg,
		onUpdate: onUpdate,
		stop:     make(chan struct{}),
	}
}

// SetGoal replaces the goal the current position is drifting toward.
// The first goal also initializes the current position so the arm does not
// sweep in from the origin.
func (tr *Tracker) SetGoal(t kinematics.Target) {
	tr.mu.Lock()
	if !tr.hasGoal {
		tr.current = t
		tr.hasGoal = true
	}
	tr.goal = t
	tr.goalSetAt = time.Now()
	tr.mu.Unlock()
}

// Current returns the latest smoothed position.
func (tr *Tracker) Current() kinematics.Target {
	tr.mu.RLock()
	defer tr.mu.RUnlock()
	return tr.current
}

// Run starts the smoothing loop. Blocks until Stop is called.
func (tr *Tracker) Run() {
	ticker := time.NewTicker(tr.cfg.UpdateInterval)
	defer ticker.Stop()

	log.Info("tracker started", "interval", tr.cfg.UpdateInterval, "smoothing", tr.cfg.Smoothing)

	for {
		select {
		case <-tr.stop:
			log.Info("tracker stopped", "steps", tr.stepCount)
			return
		case <-ticker.C:
			if target, ok := tr.step(); ok {
				tr.onUpdate(target)
			}
		}
	}
}

// Stop terminates the smoothing loop.
func (tr *Tracker) Stop() {
	close(tr.stop)
}

// step advances the current position one tick toward the goal and reports
// whether there is a position to publish.
func (tr *Tracker) step() (kinematics.Target, bool) {
	tr.mu.Lock()
	defer tr.mu.Unlock()

	if !tr.hasGoal {
		return kinematics.Target{}, false
	}

	// Once converged with a stale goal there is nothing new to solve;
	// go quiet until the next SetGoal instead of republishing every tick.
	if tr.cfg.IdleTimeout > 0 && tr.current == tr.goal &&
		time.Since(tr.goalSetAt) > tr.cfg.IdleTimeout {
		return kinematics.Target{}, false
	}

	dx := tr.goal.X - tr.current.X
	dy := tr.goal.Y - tr.current.Y
	dz := tr.goal.Z - tr.current.Z
	dist := math.Sqrt(dx*dx + dy*dy + dz*dz)

	if dist <= tr.cfg.SnapDistance {
		tr.current = tr.goal
	} else {
		tr.current.X += dx * tr.cfg.Smoothing
		tr.current.Y += dy * tr.cfg.Smoothing
		tr.current.Z += dz * tr.cfg.Smoothing
		if dist*tr.cfg.Smoothing > tr.cfg.LogThreshold {
			log.Debug("tracker step", "distance", dist, "goal", tr.goal)
		}
	}

	tr.stepCount++
	return tr.current, true
}
