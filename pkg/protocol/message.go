// Package protocol defines the WebSocket message types exchanged between
// target sources (browser hand tracking, trajectory clients) and the arm
// daemon.
package protocol

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/devanshvpurohit/robotic-arm-3d/pkg/kinematics"
)

// MessageType identifies the type of WebSocket message
type MessageType string

const (
	// Client → Daemon messages
	TypeTarget MessageType = "target" // Desired end-effector position

	// Daemon → Client messages
	TypeJoints MessageType = "joints" // Solved joint angles + diagnostics
	TypeState  MessageType = "state"  // Daemon state snapshot

	// Bidirectional
	TypePing MessageType = "ping" // Health check
	TypePong MessageType = "pong" // Health check response
)

// Message is the base wrapper for all WebSocket messages
type Message struct {
	Type      MessageType     `json:"type"`
	ID        string          `json:"id,omitempty"` // UUID for request/response pairing
	Timestamp int64           `json:"ts,omitempty"` // Unix milliseconds
	Data      json.RawMessage `json:"data,omitempty"`
}

// NewMessage creates a new message with a fresh ID and the current timestamp
func NewMessage(msgType MessageType, data interface{}) (*Message, error) {
	var rawData json.RawMessage
	if data != nil {
		var err error
		rawData, err = json.Marshal(data)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal message data: %w", err)
		}
	}

	return &Message{
		Type:      msgType,
		ID:        uuid.NewString(),
		Timestamp: time.Now().UnixMilli(),
		Data:      rawData,
	}, nil
}

// ParseData unmarshals the message data into the provided struct
func (m *Message) ParseData(v interface{}) error {
	if m.Data == nil {
		return nil
	}
	return json.Unmarshal(m.Data, v)
}

// Bytes returns the JSON-encoded message
func (m *Message) Bytes() ([]byte, error) {
	return json.Marshal(m)
}

// ParseMessage parses a JSON message from bytes
func ParseMessage(data []byte) (*Message, error) {
	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, fmt.Errorf("failed to parse message: %w", err)
	}
	return &msg, nil
}

// =============================================================================
// Message payloads
// =============================================================================

// TargetData carries a desired end-effector position, already expressed in
// the engine's world frame. Mapping from a sensor's native coordinate space
// is the sender's responsibility.
type TargetData struct {
	Target kinematics.Target `json:"target"`
}

// JointsData carries one solve outcome.
type JointsData struct {
	Joints        kinematics.Joints `json:"joints"`
	ReachDistance float64           `json:"reach_distance"`
	AtLimit       bool              `json:"at_limit"`
	Reachable     bool              `json:"reachable"`
}

// StateData is a snapshot of the daemon for dashboards.
type StateData struct {
	Geometry      kinematics.Geometry `json:"geometry"`
	Current       kinematics.Target   `json:"current"`
	ActuatorState string              `json:"actuator_state,omitempty"`
	Clients       int                 `json:"clients"`
}

// PingData carries a health check request.
type PingData struct {
	Timestamp int64 `json:"timestamp"`
}

// PongData answers a ping.
type PongData struct {
	PingID    string `json:"ping_id"`
	PingTS    int64  `json:"ping_ts"`
	PongTS    int64  `json:"pong_ts"`
	LatencyMs int64  `json:"latency_ms"`
}
