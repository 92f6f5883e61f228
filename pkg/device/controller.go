package device

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/skyward-sdk/skyward-go/pkg/component"
	pdlog "github.com/skyward-sdk/skyward-go/pkg/log"
	"github.com/skyward-sdk/skyward-go/pkg/pilotingitf"
)

// Controller errors.
var (
	ErrDefaultAlreadySet   = errors.New("default interface already set")
	ErrInterfaceRegistered = errors.New("interface already registered")
	ErrNotPilotingItf      = errors.New("not a piloting interface type")
)

// Activator is the device-facing side of an activable piloting interface:
// its current state and the raw commands that change it on the drone.
type Activator interface {
	// Type returns the piloting interface type.
	Type() component.Type

	// State returns the interface's activation state.
	State() pilotingitf.ActivationState

	// SendActivate sends the activation command. It returns true if the
	// command was accepted for dispatch.
	SendActivate() bool

	// SendDeactivate sends the deactivation command. It returns true if the
	// command was accepted for dispatch.
	SendDeactivate() bool
}

// ControllerConfig holds activation controller configuration.
type ControllerConfig struct {
	// Logger receives operational log output. Defaults to slog.Default().
	Logger *slog.Logger

	// Events receives error events. Defaults to NoopLogger.
	Events pdlog.Logger
}

// ActivationController keeps at most one piloting interface of a drone
// active. It must be used from the drone's executor goroutine.
type ActivationController struct {
	mu sync.Mutex

	logger *slog.Logger
	events pdlog.Logger

	interfaces map[component.Type]Activator
	defaultItf component.Type
	hasDefault bool

	current    component.Type
	hasCurrent bool
	pending    component.Type
	hasPending bool
}

// NewActivationController creates a controller with no registered
// interfaces.
func NewActivationController(config ControllerConfig) *ActivationController {
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	events := config.Events
	if events == nil {
		events = pdlog.NoopLogger{}
	}
	return &ActivationController{
		logger:     logger,
		events:     events,
		interfaces: make(map[component.Type]Activator),
	}
}

// Register adds an interface. A drone has at most one default interface.
func (c *ActivationController) Register(itf Activator, isDefault bool) error {
	t := itf.Type()
	if !pilotingitf.IsPilotingItf(t) {
		return fmt.Errorf("%w: %s", ErrNotPilotingItf, t)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.interfaces[t]; exists {
		return fmt.Errorf("%w: %s", ErrInterfaceRegistered, t)
	}
	if isDefault {
		if c.hasDefault {
			return fmt.Errorf("%w: %s", ErrDefaultAlreadySet, c.defaultItf)
		}
		c.defaultItf = t
		c.hasDefault = true
	}
	c.interfaces[t] = itf
	return nil
}

// Default returns the default interface, if any.
func (c *ActivationController) Default() (component.Type, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.defaultItf, c.hasDefault
}

// Current returns the active interface, if any.
func (c *ActivationController) Current() (component.Type, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current, c.hasCurrent
}

// Pending returns the interface waiting for the current one to deactivate.
func (c *ActivationController) Pending() (component.Type, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pending, c.hasPending
}

// RequestActivation is called by a mode backend when the application asks
// to activate interface t. If another interface is active it is deactivated
// first and t is activated once that is confirmed. It returns whether the
// command sent to the drone was accepted.
func (c *ActivationController) RequestActivation(t component.Type) bool {
	c.mu.Lock()
	itf, exists := c.interfaces[t]
	if !exists || itf.State() != pilotingitf.Idle {
		c.mu.Unlock()
		return false
	}

	if c.hasCurrent && c.current != t {
		current := c.interfaces[c.current]
		prev, hadPrev := c.pending, c.hasPending
		c.pending, c.hasPending = t, true
		c.mu.Unlock()

		c.logger.Debug("deactivating current interface first",
			"current", current.Type().String(), "requested", t.String())
		if current.SendDeactivate() {
			return true
		}

		// A refused request must not activate t later.
		c.mu.Lock()
		if c.hasPending && c.pending == t {
			c.pending, c.hasPending = prev, hadPrev
		}
		c.mu.Unlock()
		return false
	}
	c.hasPending = false
	c.mu.Unlock()

	return itf.SendActivate()
}

// OnStateChanged is called by a mode backend after it updated the
// interface's activation state.
func (c *ActivationController) OnStateChanged(t component.Type, state pilotingitf.ActivationState) {
	if state == pilotingitf.Active {
		c.onActive(t)
		return
	}

	c.mu.Lock()
	if c.hasPending && c.pending == t && state == pilotingitf.Unavailable {
		c.hasPending = false
	}
	if !c.hasCurrent || c.current != t {
		c.mu.Unlock()
		return
	}
	c.hasCurrent = false

	var next Activator
	switch {
	case c.hasPending:
		next = c.interfaces[c.pending]
		c.hasPending = false
	case c.hasDefault && c.defaultItf != t:
		next = c.interfaces[c.defaultItf]
	}
	c.mu.Unlock()

	if next == nil || next.State() != pilotingitf.Idle {
		return
	}
	c.logger.Debug("activating next interface", "previous", t.String(), "next", next.Type().String())
	next.SendActivate()
}

func (c *ActivationController) onActive(t component.Type) {
	c.mu.Lock()
	if c.hasPending && c.pending == t {
		c.hasPending = false
	}
	if c.hasCurrent && c.current == t {
		c.mu.Unlock()
		return
	}
	var previous Activator
	if c.hasCurrent {
		previous = c.interfaces[c.current]
	}
	c.current, c.hasCurrent = t, true
	c.mu.Unlock()

	if previous == nil {
		return
	}

	msg := fmt.Sprintf("%s became active while %s was active", t, previous.Type())
	c.logger.Error("multiple active piloting interfaces", "active", t.String(), "previous", previous.Type().String())
	c.events.Log(pdlog.Event{
		Direction: pdlog.DirectionLocal,
		Layer:     pdlog.LayerBackend,
		Category:  pdlog.CategoryError,
		Error: &pdlog.ErrorEventData{
			Layer:   pdlog.LayerBackend,
			Message: msg,
			Context: "activation",
		},
	})
	if previous.State() == pilotingitf.Active {
		previous.SendDeactivate()
	}
}

// Reset forgets the current and pending interfaces. Called when the link
// goes down.
func (c *ActivationController) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.hasCurrent = false
	c.hasPending = false
}
