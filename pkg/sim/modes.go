package sim

import (
	"github.com/skyward-sdk/skyward-go/pkg/ack"
	"github.com/skyward-sdk/skyward-go/pkg/component"
	"github.com/skyward-sdk/skyward-go/pkg/device"
	"github.com/skyward-sdk/skyward-go/pkg/pilotingitf"
)

// ManualCopterBackend simulates manual piloting of a copter.
type ManualCopterBackend struct {
	backend
	itf *pilotingitf.ManualCopter
}

func newManualCopterBackend(drone *device.Drone, pilot *Autopilot, tracker *ack.Tracker) *ManualCopterBackend {
	b := &ManualCopterBackend{backend: newBackend(pilotingitf.TypeManualCopter, drone, pilot, tracker)}
	b.itf = pilotingitf.NewManualCopter(drone.Store(), b)
	b.core = b.itf.ActivableCore
	return b
}

// Interface returns the piloting interface driven by this backend.
func (b *ManualCopterBackend) Interface() *pilotingitf.ManualCopter {
	return b.itf
}

// TakeOff implements pilotingitf.ManualCopterBackend.
func (b *ManualCopterBackend) TakeOff() bool {
	return b.send(Command{Itf: b.typ, Kind: CmdTakeOff})
}

// Land implements pilotingitf.ManualCopterBackend.
func (b *ManualCopterBackend) Land() bool {
	return b.send(Command{Itf: b.typ, Kind: CmdLand})
}

func (b *ManualCopterBackend) apply(cmd Command) {
	if b.applyActivation(cmd) {
		return
	}
	switch cmd.Kind {
	case CmdTakeOff:
		b.confirm(cmd)
		b.pilot.setFlying(true)
	case CmdLand:
		b.confirm(cmd)
		b.pilot.setFlying(false)
	}
}

// flightChanged updates take-off and landing availability.
func (b *ManualCopterBackend) flightChanged(flying bool) {
	b.itf.UpdateCanTakeOff(!flying).UpdateCanLand(flying)
}

func (b *ManualCopterBackend) linkUp() {
	b.setState(pilotingitf.Idle)
	b.flightChanged(false)
}

// ReturnHomeBackend simulates return-to-home.
type ReturnHomeBackend struct {
	backend
	itf *pilotingitf.ReturnHome
}

func newReturnHomeBackend(drone *device.Drone, pilot *Autopilot, tracker *ack.Tracker) *ReturnHomeBackend {
	b := &ReturnHomeBackend{backend: newBackend(pilotingitf.TypeReturnHome, drone, pilot, tracker)}
	b.itf = pilotingitf.NewReturnHome(drone.Store(), b)
	b.core = b.itf.ActivableCore
	return b
}

// Interface returns the piloting interface driven by this backend.
func (b *ReturnHomeBackend) Interface() *pilotingitf.ReturnHome {
	return b.itf
}

// SetTarget implements pilotingitf.ReturnHomeBackend.
func (b *ReturnHomeBackend) SetTarget(target pilotingitf.ReturnHomeTarget) bool {
	return b.send(Command{Itf: b.typ, Kind: CmdSetTarget, Target: target})
}

func (b *ReturnHomeBackend) apply(cmd Command) {
	switch cmd.Kind {
	case CmdActivate:
		b.itf.UpdateReason(pilotingitf.ReasonUserRequested)
	case CmdDeactivate:
		b.itf.UpdateReason(pilotingitf.ReasonNone)
	case CmdSetTarget:
		b.confirm(cmd)
		b.itf.UpdateTarget(cmd.Target)
		return
	}
	b.applyActivation(cmd)
}

func (b *ReturnHomeBackend) linkUp() {
	b.setState(pilotingitf.Idle)
}

// GenericBackend simulates an interface with no mode-specific commands.
type GenericBackend struct {
	backend
	itf *pilotingitf.Generic
}

func newGenericBackend(t component.Type, drone *device.Drone, pilot *Autopilot, tracker *ack.Tracker) *GenericBackend {
	b := &GenericBackend{backend: newBackend(t, drone, pilot, tracker)}
	b.itf = pilotingitf.NewGeneric(t, drone.Store(), b)
	b.core = b.itf.ActivableCore
	return b
}

// Interface returns the piloting interface driven by this backend.
func (b *GenericBackend) Interface() *pilotingitf.Generic {
	return b.itf
}

func (b *GenericBackend) apply(cmd Command) {
	b.applyActivation(cmd)
}

func (b *GenericBackend) linkUp() {
	b.setState(pilotingitf.Idle)
}

var (
	_ pilotingitf.ManualCopterBackend = (*ManualCopterBackend)(nil)
	_ pilotingitf.ReturnHomeBackend   = (*ReturnHomeBackend)(nil)
	_ pilotingitf.GenericBackend      = (*GenericBackend)(nil)
	_ modeBackend                     = (*ManualCopterBackend)(nil)
	_ modeBackend                     = (*ReturnHomeBackend)(nil)
	_ modeBackend                     = (*GenericBackend)(nil)
)
