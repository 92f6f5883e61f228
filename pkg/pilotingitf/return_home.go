package pilotingitf

import "github.com/skyward-sdk/skyward-go/pkg/component"

// ReturnHomeReason tells why a return-to-home was started or stopped.
type ReturnHomeReason uint8

const (
	// ReasonNone indicates return-to-home is not running.
	ReasonNone ReturnHomeReason = 0x00

	// ReasonUserRequested indicates the application requested it.
	ReasonUserRequested ReturnHomeReason = 0x01

	// ReasonConnectionLost indicates the drone lost its controller link.
	ReasonConnectionLost ReturnHomeReason = 0x02

	// ReasonPowerLow indicates the battery is too low to continue.
	ReasonPowerLow ReturnHomeReason = 0x03

	// ReasonFinished indicates the drone reached home.
	ReasonFinished ReturnHomeReason = 0x04
)

// String returns the reason name.
func (r ReturnHomeReason) String() string {
	switch r {
	case ReasonNone:
		return "NONE"
	case ReasonUserRequested:
		return "USER_REQUESTED"
	case ReasonConnectionLost:
		return "CONNECTION_LOST"
	case ReasonPowerLow:
		return "POWER_LOW"
	case ReasonFinished:
		return "FINISHED"
	default:
		return "UNKNOWN"
	}
}

// ReturnHomeTarget is the location a return-to-home flies to.
type ReturnHomeTarget uint8

const (
	// TargetTakeOffPosition returns to where the drone took off.
	TargetTakeOffPosition ReturnHomeTarget = 0x00

	// TargetControllerPosition returns to the controller's position.
	TargetControllerPosition ReturnHomeTarget = 0x01
)

// String returns the target name.
func (t ReturnHomeTarget) String() string {
	switch t {
	case TargetTakeOffPosition:
		return "TAKE_OFF_POSITION"
	case TargetControllerPosition:
		return "CONTROLLER_POSITION"
	default:
		return "UNKNOWN"
	}
}

// ReturnHomeBackend sends return-to-home commands.
type ReturnHomeBackend interface {
	Backend

	// Activate asks the drone to start returning home.
	Activate() bool

	// SetTarget asks the drone to use the given home target.
	SetTarget(target ReturnHomeTarget) bool
}

// ReturnHome is the return-to-home piloting interface.
type ReturnHome struct {
	*ActivableCore

	backend ReturnHomeBackend
	reason  ReturnHomeReason
	target  ReturnHomeTarget
}

// NewReturnHome creates a return-to-home interface.
func NewReturnHome(store *component.Store, backend ReturnHomeBackend) *ReturnHome {
	return &ReturnHome{
		ActivableCore: NewActivableCore(Descriptor(TypeReturnHome), store, backend),
		backend:       backend,
	}
}

// Reason returns why return-to-home is running, or ReasonNone.
func (r *ReturnHome) Reason() ReturnHomeReason {
	return r.reason
}

// Target returns the configured home target.
func (r *ReturnHome) Target() ReturnHomeTarget {
	return r.target
}

// Activate requests a return-to-home. Only an idle interface can be activated.
func (r *ReturnHome) Activate() bool {
	if r.State() == Idle {
		return r.backend.Activate()
	}
	return false
}

// SetTarget requests a new home target. Requests for the current target are
// not sent.
func (r *ReturnHome) SetTarget(target ReturnHomeTarget) bool {
	if r.target == target {
		return false
	}
	return r.backend.SetTarget(target)
}

// UpdateActiveState changes the activation state.
func (r *ReturnHome) UpdateActiveState(state ActivationState) *ReturnHome {
	r.SetActiveState(state)
	return r
}

// UpdateReason changes the return-to-home reason.
func (r *ReturnHome) UpdateReason(reason ReturnHomeReason) *ReturnHome {
	if r.reason != reason {
		r.reason = reason
		r.MarkChanged()
	}
	return r
}

// UpdateTarget changes the home target.
func (r *ReturnHome) UpdateTarget(target ReturnHomeTarget) *ReturnHome {
	if r.target != target {
		r.target = target
		r.MarkChanged()
	}
	return r
}

// Reset returns the interface to its disconnected state.
func (r *ReturnHome) Reset() {
	ResetActivation(&r.Activation)
	r.reason = ReasonNone
	r.target = TargetTakeOffPosition
}

var _ Activable = (*ReturnHome)(nil)
