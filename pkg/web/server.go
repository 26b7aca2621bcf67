// Package web exposes the arm daemon over HTTP and websockets: a one-shot
// solve API for tools, a target stream for hand-tracking clients, and
// broadcast streams for dashboards.
package web

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/websocket/v2"

	"github.com/devanshvpurohit/robotic-arm-3d/internal/log"
	"github.com/devanshvpurohit/robotic-arm-3d/pkg/hub"
	"github.com/devanshvpurohit/robotic-arm-3d/pkg/kinematics"
)

// Server is the daemon's HTTP and websocket surface.
type Server struct {
	app    *fiber.App
	port   string
	solver *kinematics.Solver

	// Hubs for websocket broadcast
	jointsHub *hub.Hub
	stateHub  *hub.Hub

	// OnTarget receives every target arriving on /ws/target.
	// The daemon wires this to the tracker.
	OnTarget func(kinematics.Target)

	// ActuatorStatus reports the actuation daemon state for /api/status.
	// Nil when running without hardware.
	ActuatorStatus func() (string, error)
}

// NewServer creates a web server bound to one solver instance.
func NewServer(port string, solver *kinematics.Solver) *Server {
	s := &Server{
		port:      port,
		solver:    solver,
		jointsHub: hub.New("joints"),
		stateHub:  hub.New("state"),
	}

	app := fiber.New(fiber.Config{
		AppName:               "Arm Daemon",
		DisableStartupMessage: true,
	})

	// CORS for local development
	app.Use(cors.New())

	// Static dashboard
	app.Static("/", "./web")

	// API routes
	api := app.Group("/api")
	api.Get("/geometry", s.handleGeometry)
	api.Get("/status", s.handleStatus)
	api.Post("/solve", s.handleSolve)
	api.Post("/reachable", s.handleReachable)

	// WebSocket upgrade middleware
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})

	// WebSocket routes
	app.Get("/ws/target", websocket.New(s.handleTargetWS))
	app.Get("/ws/joints", websocket.New(s.handleJointsWS))
	app.Get("/ws/state", websocket.New(s.handleStateWS))

	s.app = app
	return s
}

// Start starts the web server. Blocks.
func (s *Server) Start() error {
	log.Info("web server listening", "port", s.port)

	go s.jointsHub.Run()
	go s.stateHub.Run()

	return s.app.Listen(":" + s.port)
}

// StartAsync starts the web server in a goroutine.
func (s *Server) StartAsync() {
	go func() {
		if err := s.Start(); err != nil {
			log.Error("web server failed", "error", err)
		}
	}()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// BroadcastJoints publishes one solve outcome to /ws/joints subscribers.
func (s *Server) BroadcastJoints(msg interface{}) {
	if err := s.jointsHub.BroadcastJSON(msg); err != nil {
		log.Warn("joints broadcast failed", "error", err)
	}
}

// BroadcastState publishes a daemon state snapshot to /ws/state subscribers.
func (s *Server) BroadcastState(msg interface{}) {
	if err := s.stateHub.BroadcastJSON(msg); err != nil {
		log.Warn("state broadcast failed", "error", err)
	}
}

// ClientCount returns the number of connected broadcast subscribers.
func (s *Server) ClientCount() int {
	return s.jointsHub.ClientCount() + s.stateHub.ClientCount()
}
