// Package config provides environment-based configuration for the arm
// daemon and commands.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/devanshvpurohit/robotic-arm-3d/pkg/kinematics"
)

// Defaults for the daemon.
const (
	DefaultWebPort  = "8090"
	DefaultLogLevel = "info"
)

// WebPort returns the dashboard/websocket port from ARM_PORT.
func WebPort() string {
	if p := os.Getenv("ARM_PORT"); p != "" {
		return p
	}
	return DefaultWebPort
}

// LogLevel returns the log level from ARM_LOG_LEVEL.
func LogLevel() string {
	if l := os.Getenv("ARM_LOG_LEVEL"); l != "" {
		return l
	}
	return DefaultLogLevel
}

// ActuatorURL returns the optional arm actuation daemon URL from
// ARM_ACTUATOR_URL. Empty means the daemon runs without hardware.
func ActuatorURL() string {
	return os.Getenv("ARM_ACTUATOR_URL")
}

// Geometry reads the arm dimensions from ARM_BASE_HEIGHT, ARM_LOWER_LENGTH
// and ARM_UPPER_LENGTH, leaving unset variables at the kinematics defaults.
// Malformed or negative values are a configuration error.
func Geometry() (kinematics.Geometry, error) {
	var cfg kinematics.Config
	var err error

	if cfg.BaseHeight, err = envLength("ARM_BASE_HEIGHT"); err != nil {
		return kinematics.Geometry{}, err
	}
	if cfg.LowerArmLength, err = envLength("ARM_LOWER_LENGTH"); err != nil {
		return kinematics.Geometry{}, err
	}
	if cfg.UpperArmLength, err = envLength("ARM_UPPER_LENGTH"); err != nil {
		return kinematics.Geometry{}, err
	}

	return kinematics.NewGeometry(cfg)
}

// envLength parses an optional float env var; 0 means unset.
func envLength(name string) (float64, error) {
	raw := os.Getenv(name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("config: %s=%q is not a number: %w", name, raw, err)
	}
	return v, nil
}
