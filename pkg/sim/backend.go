package sim

import (
	"github.com/skyward-sdk/skyward-go/pkg/ack"
	"github.com/skyward-sdk/skyward-go/pkg/component"
	"github.com/skyward-sdk/skyward-go/pkg/device"
	pdlog "github.com/skyward-sdk/skyward-go/pkg/log"
	"github.com/skyward-sdk/skyward-go/pkg/pilotingitf"
)

// modeBackend is the simulator side of one piloting interface.
type modeBackend interface {
	device.Activator

	// apply executes a confirmed command. Runs on the executor.
	apply(cmd Command)

	// linkUp reports the interface's initial state after connecting.
	linkUp()

	// setState reports an activation state from the drone.
	setState(state pilotingitf.ActivationState)
}

// backend holds what every mode backend shares: the activation commands and
// the state reporting path.
type backend struct {
	typ     component.Type
	drone   *device.Drone
	pilot   *Autopilot
	tracker *ack.Tracker
	core    *pilotingitf.ActivableCore
}

func newBackend(t component.Type, drone *device.Drone, pilot *Autopilot, tracker *ack.Tracker) backend {
	return backend{typ: t, drone: drone, pilot: pilot, tracker: tracker}
}

// Type implements device.Activator.
func (b *backend) Type() component.Type {
	return b.typ
}

// State implements device.Activator.
func (b *backend) State() pilotingitf.ActivationState {
	return b.core.State()
}

// Activate routes an application activation request through the drone's
// activation controller.
func (b *backend) Activate() bool {
	return b.drone.Controller().RequestActivation(b.typ)
}

// Deactivate implements pilotingitf.Backend.
func (b *backend) Deactivate() bool {
	return b.SendDeactivate()
}

// SendActivate implements device.Activator.
func (b *backend) SendActivate() bool {
	return b.send(Command{Itf: b.typ, Kind: CmdActivate})
}

// SendDeactivate implements device.Activator.
func (b *backend) SendDeactivate() bool {
	return b.send(Command{Itf: b.typ, Kind: CmdDeactivate})
}

// send hands a command to the autopilot. A command is refused while the link
// is down or while the same command is still waiting for confirmation.
func (b *backend) send(cmd Command) bool {
	accepted := b.dispatch(cmd)
	b.drone.Events().Log(pdlog.Event{
		Direction: pdlog.DirectionOut,
		Layer:     pdlog.LayerBackend,
		Category:  pdlog.CategoryCommand,
		Command: &pdlog.CommandEvent{
			Component: b.typ.String(),
			Command:   cmd.Kind.String(),
			Argument:  cmd.argument(),
			Accepted:  accepted,
		},
	})
	return accepted
}

func (b *backend) dispatch(cmd Command) bool {
	if !b.drone.IsConnected() {
		return false
	}
	cmd.Session = b.drone.SessionID()
	key := cmd.key()
	if err := b.tracker.Start(key, func() { b.timedOut(cmd) }); err != nil {
		return false
	}
	if !b.pilot.Send(cmd) {
		b.tracker.Ack(key)
		return false
	}
	return true
}

func (b *backend) timedOut(cmd Command) {
	b.drone.Logger().Warn("command not confirmed", "component", b.typ.String(), "command", cmd.Kind.String())
	b.drone.Events().Log(pdlog.Event{
		Direction: pdlog.DirectionLocal,
		Layer:     pdlog.LayerBackend,
		Category:  pdlog.CategoryError,
		Error: &pdlog.ErrorEventData{
			Layer:   pdlog.LayerBackend,
			Message: "command not confirmed in time",
			Context: cmd.key(),
		},
	})
}

// confirm clears the command from the tracker.
func (b *backend) confirm(cmd Command) {
	if !b.tracker.Ack(cmd.key()) {
		b.drone.Logger().Debug("late or unsolicited confirmation", "command", cmd.key())
	}
}

// setState reports an activation state from the drone: the interface is
// updated, the change logged and the activation controller told.
func (b *backend) setState(state pilotingitf.ActivationState) {
	old := b.core.State()
	if old == state {
		return
	}
	b.core.SetActiveState(state)

	b.drone.Events().Log(pdlog.Event{
		Direction: pdlog.DirectionIn,
		Layer:     pdlog.LayerBackend,
		Category:  pdlog.CategoryState,
		StateChange: &pdlog.StateChangeEvent{
			Entity:    pdlog.StateEntityComponent,
			Component: b.typ.String(),
			OldState:  old.String(),
			NewState:  state.String(),
		},
	})
	b.drone.Controller().OnStateChanged(b.typ, state)
}

// applyActivation handles the commands every mode understands.
func (b *backend) applyActivation(cmd Command) bool {
	switch cmd.Kind {
	case CmdActivate:
		b.confirm(cmd)
		b.setState(pilotingitf.Active)
	case CmdDeactivate:
		b.confirm(cmd)
		b.setState(pilotingitf.Idle)
	default:
		return false
	}
	return true
}
