package log

import "time"

// Event represents a drone connection event captured at any layer.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// ConnectionID identifies the connection session (UUID).
	ConnectionID string `cbor:"2,keyasint"`

	// Direction indicates command flow relative to the drone.
	Direction Direction `cbor:"3,keyasint"`

	// Layer where the event was captured.
	Layer Layer `cbor:"4,keyasint"`

	// Category classifies the event type.
	Category Category `cbor:"5,keyasint"`

	// DeviceID is the drone identifier.
	DeviceID string `cbor:"6,keyasint,omitempty"`

	// Type-specific payload (one of these will be set).
	Command     *CommandEvent     `cbor:"10,keyasint,omitempty"`
	StateChange *StateChangeEvent `cbor:"11,keyasint,omitempty"`
	Commit      *CommitEvent      `cbor:"12,keyasint,omitempty"`
	Error       *ErrorEventData   `cbor:"13,keyasint,omitempty"`
}

// Direction indicates the direction of command flow.
type Direction uint8

const (
	// DirectionIn indicates data received from the drone.
	DirectionIn Direction = 0
	// DirectionOut indicates a command sent to the drone.
	DirectionOut Direction = 1
	// DirectionLocal indicates an event that never left the host.
	DirectionLocal Direction = 2
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirectionIn:
		return "IN"
	case DirectionOut:
		return "OUT"
	case DirectionLocal:
		return "LOCAL"
	default:
		return "UNKNOWN"
	}
}

// Layer indicates which layer captured the event.
type Layer uint8

const (
	// LayerApplication is the application-facing API.
	LayerApplication Layer = 0
	// LayerComponent is the component store.
	LayerComponent Layer = 1
	// LayerBackend is the drone-facing backend.
	LayerBackend Layer = 2
)

// String returns the layer name.
func (l Layer) String() string {
	switch l {
	case LayerApplication:
		return "APPLICATION"
	case LayerComponent:
		return "COMPONENT"
	case LayerBackend:
		return "BACKEND"
	default:
		return "UNKNOWN"
	}
}

// Category classifies the event type.
type Category uint8

const (
	// CategoryCommand indicates a command request.
	CategoryCommand Category = 0
	// CategoryState indicates a state change.
	CategoryState Category = 1
	// CategoryCommit indicates a published batch of component changes.
	CategoryCommit Category = 2
	// CategoryError indicates an error event.
	CategoryError Category = 3
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryCommand:
		return "COMMAND"
	case CategoryState:
		return "STATE"
	case CategoryCommit:
		return "COMMIT"
	case CategoryError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// CommandEvent captures a command and whether it was accepted for dispatch.
type CommandEvent struct {
	// Component is the name of the target component.
	Component string `cbor:"1,keyasint"`

	// Command is the command name (e.g. "activate", "takeOff").
	Command string `cbor:"2,keyasint"`

	// Argument is the command argument, if any.
	Argument string `cbor:"3,keyasint,omitempty"`

	// Accepted reports whether the command was accepted for dispatch.
	Accepted bool `cbor:"4,keyasint"`
}

// StateChangeEvent captures connection and component state transitions.
type StateChangeEvent struct {
	// Entity being changed.
	Entity StateEntity `cbor:"1,keyasint"`

	// Component names the component (component entity only).
	Component string `cbor:"2,keyasint,omitempty"`

	// OldState is the previous state (may be empty).
	OldState string `cbor:"3,keyasint,omitempty"`

	// NewState is the new state.
	NewState string `cbor:"4,keyasint"`

	// Reason for the change (if available).
	Reason string `cbor:"5,keyasint,omitempty"`
}

// StateEntity indicates what entity changed state.
type StateEntity uint8

const (
	// StateEntityConnection indicates a link state change.
	StateEntityConnection StateEntity = 0
	// StateEntityComponent indicates a component activation state change.
	StateEntityComponent StateEntity = 1
)

// String returns the state entity name.
func (s StateEntity) String() string {
	switch s {
	case StateEntityConnection:
		return "CONNECTION"
	case StateEntityComponent:
		return "COMPONENT"
	default:
		return "UNKNOWN"
	}
}

// CommitEvent captures a published batch of component changes.
type CommitEvent struct {
	// Components lists the published components in notification order.
	Components []string `cbor:"1,keyasint"`
}

// ErrorEventData captures errors at any layer.
type ErrorEventData struct {
	// Layer where the error occurred.
	Layer Layer `cbor:"1,keyasint"`

	// Message is the error message.
	Message string `cbor:"2,keyasint"`

	// Code is the error code (if applicable).
	Code *int `cbor:"3,keyasint,omitempty"`

	// Context describes what operation was being performed.
	Context string `cbor:"4,keyasint,omitempty"`
}

// ComponentName returns the component an event refers to, or "" for events
// not tied to a single component.
func (e Event) ComponentName() string {
	switch {
	case e.Command != nil:
		return e.Command.Component
	case e.StateChange != nil:
		return e.StateChange.Component
	default:
		return ""
	}
}
