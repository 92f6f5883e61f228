package pilotingitf

import "github.com/skyward-sdk/skyward-go/pkg/component"

// ManualCopterBackend sends manual piloting commands to a copter.
type ManualCopterBackend interface {
	Backend

	// Activate asks the drone to give control to manual piloting.
	Activate() bool

	// TakeOff asks the drone to take off.
	TakeOff() bool

	// Land asks the drone to land.
	Land() bool
}

// ManualCopter is the manual piloting interface of a copter.
// It is usually the device's default interface: the one that takes control
// back whenever no other interface is active.
type ManualCopter struct {
	*ActivableCore

	backend    ManualCopterBackend
	canTakeOff bool
	canLand    bool
}

// NewManualCopter creates a manual piloting interface.
func NewManualCopter(store *component.Store, backend ManualCopterBackend) *ManualCopter {
	return &ManualCopter{
		ActivableCore: NewActivableCore(Descriptor(TypeManualCopter), store, backend),
		backend:       backend,
	}
}

// CanTakeOff reports whether the drone can take off.
func (m *ManualCopter) CanTakeOff() bool {
	return m.canTakeOff
}

// CanLand reports whether the drone can land.
func (m *ManualCopter) CanLand() bool {
	return m.canLand
}

// Activate requests activation. Only an idle interface can be activated.
func (m *ManualCopter) Activate() bool {
	if m.State() == Idle {
		return m.backend.Activate()
	}
	return false
}

// TakeOff requests a take-off. The interface must be active and the drone
// able to take off.
func (m *ManualCopter) TakeOff() bool {
	if m.State() == Active && m.canTakeOff {
		return m.backend.TakeOff()
	}
	return false
}

// Land requests a landing. The interface must be active and the drone able
// to land.
func (m *ManualCopter) Land() bool {
	if m.State() == Active && m.canLand {
		return m.backend.Land()
	}
	return false
}

// UpdateActiveState changes the activation state.
// Returns the receiver to allow call chaining.
func (m *ManualCopter) UpdateActiveState(state ActivationState) *ManualCopter {
	m.SetActiveState(state)
	return m
}

// UpdateCanTakeOff changes the take-off availability.
func (m *ManualCopter) UpdateCanTakeOff(canTakeOff bool) *ManualCopter {
	if m.canTakeOff != canTakeOff {
		m.canTakeOff = canTakeOff
		m.MarkChanged()
	}
	return m
}

// UpdateCanLand changes the landing availability.
func (m *ManualCopter) UpdateCanLand(canLand bool) *ManualCopter {
	if m.canLand != canLand {
		m.canLand = canLand
		m.MarkChanged()
	}
	return m
}

// Reset returns the interface to its disconnected state.
func (m *ManualCopter) Reset() {
	ResetActivation(&m.Activation)
	m.canTakeOff = false
	m.canLand = false
}

var _ Activable = (*ManualCopter)(nil)
