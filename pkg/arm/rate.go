package arm

import (
	"math"
	"sync"
	"time"

	"github.com/devanshvpurohit/robotic-arm-3d/internal/log"
	"github.com/devanshvpurohit/robotic-arm-3d/pkg/kinematics"
)

// Dead-zone threshold (radians). Skip sending if no joint has moved at least
// this far since the last command - reduces network traffic when idle.
const DeadZoneRad = 0.005 // ~0.3 degrees

// RateDriver funnels all joint targets through a fixed-rate control loop so
// the actuator daemon sees at most one command per tick, whatever rate the
// solver runs at.
type RateDriver struct {
	arm JointController

	mu     sync.RWMutex
	target kinematics.Joints
	dirty  bool

	rate time.Duration
	stop chan struct{}

	// Dead-zone filtering
	lastSent     kinematics.Joints
	skippedTicks uint64

	// Diagnostics
	tickCount     uint64
	errorCount    uint64
	lastErrorTime time.Time
}

// NewRateDriver creates a rate-limited driver running at the given rate.
// Typical rate is 33ms (30Hz) for smooth motion.
func NewRateDriver(arm JointController, rate time.Duration) *RateDriver {
	return &RateDriver{
		arm:  arm,
		rate: rate,
		stop: make(chan struct{}),
	}
}

// SetTarget sets the joint target to be sent on the next tick.
// Safe to call from any goroutine.
func (d *RateDriver) SetTarget(j kinematics.Joints) {
	d.mu.Lock()
	d.target = j
	d.dirty = true
	d.mu.Unlock()
}

// Run starts the control loop. Blocks until Stop is called.
func (d *RateDriver) Run() {
	ticker := time.NewTicker(d.rate)
	defer ticker.Stop()

	log.Info("arm rate driver started", "hz", 1.0/d.rate.Seconds())

	for {
		select {
		case <-d.stop:
			log.Info("arm rate driver stopped",
				"ticks", d.tickCount, "skipped", d.skippedTicks, "errors", d.errorCount)
			return
		case <-ticker.C:
			d.tick()
		}
	}
}

// Stop terminates the control loop.
func (d *RateDriver) Stop() {
	close(d.stop)
}

func (d *RateDriver) tick() {
	d.mu.Lock()
	if !d.dirty {
		d.mu.Unlock()
		return
	}
	target := d.target
	d.mu.Unlock()

	d.tickCount++

	if withinDeadZone(target, d.lastSent) {
		d.skippedTicks++
		return
	}

	if err := d.arm.SetJoints(target); err != nil {
		d.errorCount++
		// Avoid log spam while the actuator is unreachable.
		if time.Since(d.lastErrorTime) > 5*time.Second {
			log.Warn("set joints failed", "error", err, "total_errors", d.errorCount)
			d.lastErrorTime = time.Now()
		}
		return
	}

	d.lastSent = target
}

// Stats returns tick diagnostics for the status endpoint.
func (d *RateDriver) Stats() (ticks, skipped, errors uint64) {
	return d.tickCount, d.skippedTicks, d.errorCount
}

func withinDeadZone(a, b kinematics.Joints) bool {
	return math.Abs(a.Base-b.Base) < DeadZoneRad &&
		math.Abs(a.Shoulder-b.Shoulder) < DeadZoneRad &&
		math.Abs(a.Elbow-b.Elbow) < DeadZoneRad
}
