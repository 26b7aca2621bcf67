package arm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/devanshvpurohit/robotic-arm-3d/internal/httpc"
	"github.com/devanshvpurohit/robotic-arm-3d/pkg/kinematics"
)

// httpClient has a short timeout so a stalled actuator daemon cannot block
// the control loop.
var httpClient = httpc.NewClient(2 * time.Second)

// HTTPDriver implements Controller against an arm daemon's HTTP API.
type HTTPDriver struct {
	BaseURL string
	Limits  Limits
}

// NewHTTPDriver creates an HTTP-based arm driver with default joint limits.
func NewHTTPDriver(baseURL string) *HTTPDriver {
	return &HTTPDriver{
		BaseURL: baseURL,
		Limits:  DefaultLimits(),
	}
}

// SetJoints sends one joint target to the daemon. Limits are applied before
// the command leaves the process.
func (d *HTTPDriver) SetJoints(j kinematics.Joints) error {
	safe := d.Limits.Apply(j)

	payload := map[string]interface{}{
		"target_joints": map[string]float64{
			"base":     safe.Base,
			"shoulder": safe.Shoulder,
			"elbow":    safe.Elbow,
		},
		"duration": 0.1,
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal joint target: %w", err)
	}

	resp, err := httpClient.Post(d.BaseURL+"/api/move/set_target", "application/json", bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("joint target request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("joint target rejected: %s", resp.Status)
	}
	return nil
}

// Status returns the actuator daemon state.
func (d *HTTPDriver) Status() (string, error) {
	resp, err := httpClient.Get(d.BaseURL + "/api/daemon/status")
	if err != nil {
		return "", fmt.Errorf("daemon status request failed: %w", err)
	}
	defer resp.Body.Close()

	var status struct {
		State string `json:"state"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return "", fmt.Errorf("failed to decode daemon status: %w", err)
	}

	return status.State, nil
}
