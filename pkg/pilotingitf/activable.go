package pilotingitf

import "github.com/skyward-sdk/skyward-go/pkg/component"

// Backend sends activation commands for an activable piloting interface.
// Every mode backend embeds it.
type Backend interface {
	// Deactivate asks the drone to disengage this interface.
	// It returns true if the command was accepted for dispatch; the state
	// change is confirmed later through SetActiveState.
	Deactivate() bool
}

// Activable is the application-facing surface of an activable interface.
type Activable interface {
	component.Component

	// State returns the current activation state.
	State() ActivationState

	// Deactivate requests deactivation. It returns false if the interface is
	// not active or the backend declined the request.
	Deactivate() bool
}

// Activation holds the activation state shared by all activable modes.
// The zero value is Unavailable.
type Activation struct {
	state ActivationState
}

// State returns the current activation state.
func (a *Activation) State() ActivationState {
	return a.state
}

// set assigns the state and reports whether it changed.
func (a *Activation) set(state ActivationState) bool {
	if a.state == state {
		return false
	}
	a.state = state
	return true
}

// ResetActivation returns the activation state to Unavailable.
// Mode resets call it before clearing their own fields.
func ResetActivation(a *Activation) {
	a.state = Unavailable
}

// ActivableCore is the component core of an activable piloting interface.
//
// It is not safe for concurrent use: SetActiveState, Reset and reads must
// happen on the device's owner goroutine. The backend is owned by the device
// connection and must outlive the interface.
type ActivableCore struct {
	component.Core
	Activation

	backend Backend
}

// NewActivableCore creates an interface core in the Unavailable state.
func NewActivableCore(desc component.Descriptor, store *component.Store, backend Backend) *ActivableCore {
	return &ActivableCore{
		Core:    component.NewCore(desc, store),
		backend: backend,
	}
}

// Deactivate forwards a deactivation request to the backend when the
// interface is active. It returns false without contacting the backend
// otherwise. The state is left unchanged either way.
func (c *ActivableCore) Deactivate() bool {
	if c.state == Active {
		return c.backend.Deactivate()
	}
	return false
}

// SetActiveState changes the activation state. A change marks the interface
// dirty; it is published on the next store commit. Setting the current state
// is a no-op. Returns the receiver to allow call chaining.
func (c *ActivableCore) SetActiveState(state ActivationState) *ActivableCore {
	if c.set(state) {
		c.MarkChanged()
	}
	return c
}

// Reset returns the interface to Unavailable without marking it dirty.
func (c *ActivableCore) Reset() {
	ResetActivation(&c.Activation)
}

var _ Activable = (*ActivableCore)(nil)
