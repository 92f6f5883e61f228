package pilotingitf

import "github.com/skyward-sdk/skyward-go/pkg/component"

// GenericBackend sends commands for interfaces with no mode-specific state.
type GenericBackend interface {
	Backend

	// Activate asks the drone to give control to this interface.
	Activate() bool
}

// Generic is an activable interface with no state beyond activation, used
// for modes such as follow-me or flight plan execution until they grow their
// own settings.
type Generic struct {
	*ActivableCore

	backend GenericBackend
}

// NewGeneric creates an interface of the given type.
func NewGeneric(t component.Type, store *component.Store, backend GenericBackend) *Generic {
	return &Generic{
		ActivableCore: NewActivableCore(Descriptor(t), store, backend),
		backend:       backend,
	}
}

// Activate requests activation. Only an idle interface can be activated.
func (g *Generic) Activate() bool {
	if g.State() == Idle {
		return g.backend.Activate()
	}
	return false
}

var _ Activable = (*Generic)(nil)
