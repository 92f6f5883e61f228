package device

import (
	"sync"

	"github.com/skyward-sdk/skyward-go/pkg/component"
	pdlog "github.com/skyward-sdk/skyward-go/pkg/log"
	"github.com/skyward-sdk/skyward-go/pkg/pilotingitf"
)

// fakeMode is a generic piloting interface whose backend records the
// commands it is asked to send.
type fakeMode struct {
	itf  *pilotingitf.Generic
	ctrl *ActivationController

	accept      bool
	activates   int
	deactivates int
}

func newFakeMode(t component.Type, store *component.Store, ctrl *ActivationController) *fakeMode {
	m := &fakeMode{ctrl: ctrl, accept: true}
	m.itf = pilotingitf.NewGeneric(t, store, m)
	return m
}

func (m *fakeMode) Type() component.Type               { return m.itf.Descriptor().Type }
func (m *fakeMode) State() pilotingitf.ActivationState { return m.itf.State() }

func (m *fakeMode) SendActivate() bool {
	m.activates++
	return m.accept
}

func (m *fakeMode) SendDeactivate() bool {
	m.deactivates++
	return m.accept
}

func (m *fakeMode) Activate() bool   { return m.ctrl.RequestActivation(m.Type()) }
func (m *fakeMode) Deactivate() bool { return m.SendDeactivate() }

// confirm applies a state reported by the drone.
func (m *fakeMode) confirm(state pilotingitf.ActivationState) {
	m.itf.SetActiveState(state)
	m.ctrl.OnStateChanged(m.Type(), state)
}

// eventCapture collects drone events.
type eventCapture struct {
	mu     sync.Mutex
	events []pdlog.Event
}

func (c *eventCapture) Log(event pdlog.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, event)
}

func (c *eventCapture) byCategory(cat pdlog.Category) []pdlog.Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []pdlog.Event
	for _, e := range c.events {
		if e.Category == cat {
			out = append(out, e)
		}
	}
	return out
}
