package protocol

import "github.com/devanshvpurohit/robotic-arm-3d/pkg/kinematics"

// =============================================================================
// Helper functions for creating messages
// =============================================================================

// NewTargetMessage creates a target message
func NewTargetMessage(t kinematics.Target) (*Message, error) {
	return NewMessage(TypeTarget, TargetData{Target: t})
}

// NewJointsMessage creates a joints message from a solve result
func NewJointsMessage(res kinematics.Result, reachable bool) (*Message, error) {
	return NewMessage(TypeJoints, JointsData{
		Joints:        res.Joints,
		ReachDistance: res.ReachDistance,
		AtLimit:       res.AtLimit,
		Reachable:     reachable,
	})
}

// NewStateMessage creates a daemon state snapshot message
func NewStateMessage(g kinematics.Geometry, current kinematics.Target, actuatorState string, clients int) (*Message, error) {
	return NewMessage(TypeState, StateData{
		Geometry:      g,
		Current:       current,
		ActuatorState: actuatorState,
		Clients:       clients,
	})
}

// NewPongMessage creates a pong response for the given ping
func NewPongMessage(ping *Message, pongTS int64) (*Message, error) {
	return NewMessage(TypePong, PongData{
		PingID:    ping.ID,
		PingTS:    ping.Timestamp,
		PongTS:    pongTS,
		LatencyMs: pongTS - ping.Timestamp,
	})
}

// =============================================================================
// Helper functions for parsing messages
// =============================================================================

// GetTargetData extracts target data from a message
func (m *Message) GetTargetData() (*TargetData, error) {
	var data TargetData
	if err := m.ParseData(&data); err != nil {
		return nil, err
	}
	return &data, nil
}

// GetJointsData extracts joints data from a message
func (m *Message) GetJointsData() (*JointsData, error) {
	var data JointsData
	if err := m.ParseData(&data); err != nil {
		return nil, err
	}
	return &data, nil
}

// GetStateData extracts state data from a message
func (m *Message) GetStateData() (*StateData, error) {
	var data StateData
	if err := m.ParseData(&data); err != nil {
		return nil, err
	}
	return &data, nil
}
