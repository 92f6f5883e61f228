package pilotingitf

import (
	"fmt"
	"strings"
)

// ActivationState is the activation state of an activable piloting interface.
type ActivationState uint8

const (
	// Unavailable indicates the interface cannot be activated.
	Unavailable ActivationState = 0x00

	// Idle indicates the interface is available but not controlling the drone.
	Idle ActivationState = 0x01

	// Active indicates the interface is controlling the drone.
	Active ActivationState = 0x02
)

// String returns the activation state name.
func (s ActivationState) String() string {
	switch s {
	case Unavailable:
		return "UNAVAILABLE"
	case Idle:
		return "IDLE"
	case Active:
		return "ACTIVE"
	default:
		return "UNKNOWN"
	}
}

// ParseActivationState parses an activation state name (case-insensitive).
func ParseActivationState(s string) (ActivationState, error) {
	switch strings.ToLower(s) {
	case "unavailable":
		return Unavailable, nil
	case "idle":
		return Idle, nil
	case "active":
		return Active, nil
	default:
		return 0, fmt.Errorf("invalid activation state: %s", s)
	}
}
