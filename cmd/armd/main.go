// Armd - the 3-DOF arm daemon.
//
// Receives end-effector targets over websocket, smooths them, solves inverse
// kinematics, broadcasts the joint angles to dashboards, and optionally
// forwards them to an actuation daemon.
package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/devanshvpurohit/robotic-arm-3d/internal/config"
	"github.com/devanshvpurohit/robotic-arm-3d/internal/log"
	"github.com/devanshvpurohit/robotic-arm-3d/pkg/arm"
	"github.com/devanshvpurohit/robotic-arm-3d/pkg/kinematics"
	"github.com/devanshvpurohit/robotic-arm-3d/pkg/protocol"
	"github.com/devanshvpurohit/robotic-arm-3d/pkg/tracking"
	"github.com/devanshvpurohit/robotic-arm-3d/pkg/web"
)

func main() {
	log.Init(config.LogLevel())

	geo, err := config.Geometry()
	if err != nil {
		log.Error("invalid arm geometry", "error", err)
		os.Exit(1)
	}
	solver := kinematics.NewSolverFor(geo)
	log.Info("arm geometry",
		"base_height", geo.BaseHeight,
		"lower", geo.LowerArmLength,
		"upper", geo.UpperArmLength,
		"max_reach", geo.MaxReach,
		"min_reach", geo.MinReach)

	server := web.NewServer(config.WebPort(), solver)

	// Optional hardware path
	var driver *arm.RateDriver
	if url := config.ActuatorURL(); url != "" {
		httpDriver := arm.NewHTTPDriver(url)
		driver = arm.NewRateDriver(httpDriver, 33*time.Millisecond)
		go driver.Run()
		server.ActuatorStatus = httpDriver.Status
		log.Info("actuator configured", "url", url)
	}

	// Each smoothed target gets one solve; the result fans out to the
	// dashboard stream and, when configured, the hardware.
	tracker := tracking.NewTracker(tracking.DefaultConfig(), func(t kinematics.Target) {
		res := solver.Solve(t)
		if driver != nil {
			driver.SetTarget(res.Joints)
		}
		if msg, err := protocol.NewJointsMessage(res, solver.Reachable(t)); err == nil {
			server.BroadcastJoints(msg)
		}
	})
	go tracker.Run()
	server.OnTarget = tracker.SetGoal

	// Periodic state snapshots for dashboards
	stateTicker := time.NewTicker(time.Second)
	defer stateTicker.Stop()
	go func() {
		for range stateTicker.C {
			msg, err := protocol.NewStateMessage(geo, tracker.Current(), "", server.ClientCount())
			if err != nil {
				continue
			}
			server.BroadcastState(msg)
		}
	}()

	server.StartAsync()

	// Handle Ctrl+C gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Info("shutting down")
	tracker.Stop()
	if driver != nil {
		driver.Stop()
	}
	if err := server.Shutdown(); err != nil {
		log.Warn("web server shutdown", "error", err)
	}
}
