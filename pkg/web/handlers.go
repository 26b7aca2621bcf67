package web

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	"github.com/devanshvpurohit/robotic-arm-3d/internal/log"
	"github.com/devanshvpurohit/robotic-arm-3d/pkg/hub"
	"github.com/devanshvpurohit/robotic-arm-3d/pkg/kinematics"
	"github.com/devanshvpurohit/robotic-arm-3d/pkg/protocol"
)

// handleGeometry returns the immutable arm geometry
func (s *Server) handleGeometry(c *fiber.Ctx) error {
	return c.JSON(s.solver.Geometry())
}

// handleStatus returns a daemon snapshot
func (s *Server) handleStatus(c *fiber.Ctx) error {
	status := "none"
	if s.ActuatorStatus != nil {
		st, err := s.ActuatorStatus()
		if err != nil {
			status = "unreachable"
		} else {
			status = st
		}
	}

	return c.JSON(fiber.Map{
		"geometry": s.solver.Geometry(),
		"actuator": status,
		"clients":  s.ClientCount(),
	})
}

// handleSolve runs one inverse solve and returns joints plus diagnostics
func (s *Server) handleSolve(c *fiber.Ctx) error {
	var target kinematics.Target
	if err := c.BodyParser(&target); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "expected {x, y, z}",
		})
	}

	res := s.solver.Solve(target)
	return c.JSON(protocol.JointsData{
		Joints:        res.Joints,
		ReachDistance: res.ReachDistance,
		AtLimit:       res.AtLimit,
		Reachable:     s.solver.Reachable(target),
	})
}

// handleReachable runs the workspace shell test without solving
func (s *Server) handleReachable(c *fiber.Ctx) error {
	var target kinematics.Target
	if err := c.BodyParser(&target); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "expected {x, y, z}",
		})
	}

	return c.JSON(fiber.Map{
		"reachable": s.solver.Reachable(target),
	})
}

// handleTargetWS consumes a stream of protocol messages from one target
// source. Targets are forwarded to the daemon; pings are answered in place.
func (s *Server) handleTargetWS(conn *websocket.Conn) {
	defer conn.Close()

	log.Info("target source connected", "remote", conn.RemoteAddr())

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			log.Info("target source disconnected", "remote", conn.RemoteAddr())
			return
		}

		msg, err := protocol.ParseMessage(raw)
		if err != nil {
			log.Warn("bad target message", "error", err)
			continue
		}

		switch msg.Type {
		case protocol.TypeTarget:
			data, err := msg.GetTargetData()
			if err != nil {
				log.Warn("bad target payload", "error", err)
				continue
			}
			if s.OnTarget != nil {
				s.OnTarget(data.Target)
			}

		case protocol.TypePing:
			pong, err := protocol.NewPongMessage(msg, time.Now().UnixMilli())
			if err != nil {
				continue
			}
			if raw, err := pong.Bytes(); err == nil {
				conn.WriteMessage(websocket.TextMessage, raw)
			}

		default:
			log.Debug("ignoring message", "type", msg.Type)
		}
	}
}

// handleJointsWS subscribes a client to solved joint broadcasts
func (s *Server) handleJointsWS(conn *websocket.Conn) {
	client := hub.NewClient(s.jointsHub, conn)
	client.Run()
}

// handleStateWS subscribes a client to daemon state broadcasts
func (s *Server) handleStateWS(conn *websocket.Conn) {
	client := hub.NewClient(s.stateHub, conn)
	client.Run()
}
