package sim

import (
	"context"
	"time"

	"github.com/skyward-sdk/skyward-go/pkg/ack"
	"github.com/skyward-sdk/skyward-go/pkg/component"
	"github.com/skyward-sdk/skyward-go/pkg/device"
	"github.com/skyward-sdk/skyward-go/pkg/pilotingitf"
)

// DefaultCommandQueue is the autopilot command queue capacity.
const DefaultCommandQueue = 32

// AutopilotConfig holds autopilot configuration.
type AutopilotConfig struct {
	// AckLatency delays the confirmation of every command.
	AckLatency time.Duration

	// QueueSize is the command queue capacity.
	QueueSize int
}

// Autopilot is the simulated drone. Commands are confirmed in the order
// they were sent.
type Autopilot struct {
	drone    *device.Drone
	tracker  *ack.Tracker
	latency  time.Duration
	commands chan Command

	// Executor-owned.
	backends   map[component.Type]modeBackend
	order      []modeBackend
	defaultItf component.Type
	hasDefault bool
	flying     bool
}

// NewAutopilot creates an autopilot for the drone. Commands sent through
// the drone's backends are tracked by tracker.
func NewAutopilot(drone *device.Drone, tracker *ack.Tracker, config AutopilotConfig) *Autopilot {
	size := config.QueueSize
	if size <= 0 {
		size = DefaultCommandQueue
	}
	return &Autopilot{
		drone:    drone,
		tracker:  tracker,
		latency:  config.AckLatency,
		commands: make(chan Command, size),
		backends: make(map[component.Type]modeBackend),
	}
}

func (a *Autopilot) attach(b modeBackend, isDefault bool) {
	a.backends[b.Type()] = b
	a.order = append(a.order, b)
	if isDefault {
		a.defaultItf, a.hasDefault = b.Type(), true
	}
}

// Send queues a command. It returns false if the queue is full.
func (a *Autopilot) Send(cmd Command) bool {
	select {
	case a.commands <- cmd:
		return true
	default:
		return false
	}
}

// Run confirms queued commands until ctx is cancelled.
func (a *Autopilot) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case cmd := <-a.commands:
			if err := a.wait(ctx); err != nil {
				return err
			}
			if !a.drone.Executor().Post(func() { a.apply(cmd) }) {
				a.drone.Logger().Warn("confirmation dropped", "command", cmd.key())
			}
		}
	}
}

func (a *Autopilot) wait(ctx context.Context) error {
	if a.latency <= 0 {
		return nil
	}
	timer := time.NewTimer(a.latency)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Connect brings the link up from outside the executor.
func (a *Autopilot) Connect() bool {
	return a.drone.Executor().Post(a.LinkUp)
}

// Disconnect takes the link down from outside the executor.
func (a *Autopilot) Disconnect() bool {
	return a.drone.Executor().Post(a.LinkDown)
}

// LinkUp connects the drone and reports the initial interface states: every
// interface idle and the default one active. Runs on the executor.
func (a *Autopilot) LinkUp() {
	if a.drone.IsConnected() {
		return
	}
	a.drone.Connected()
	a.flying = false
	for _, b := range a.order {
		b.linkUp()
	}
	if a.hasDefault {
		a.backends[a.defaultItf].setState(pilotingitf.Active)
	}
	a.drone.Store().Commit()
}

// LinkDown disconnects the drone. Unconfirmed commands are forgotten. Runs
// on the executor.
func (a *Autopilot) LinkDown() {
	if !a.drone.IsConnected() {
		return
	}
	a.drain()
	a.tracker.Clear()
	a.drone.Disconnected()
	a.flying = false
}

// Flying reports whether the simulated drone is airborne. Executor-owned.
func (a *Autopilot) Flying() bool {
	return a.flying
}

func (a *Autopilot) drain() {
	for {
		select {
		case <-a.commands:
		default:
			return
		}
	}
}

func (a *Autopilot) setFlying(flying bool) {
	if a.flying == flying {
		return
	}
	a.flying = flying
	a.drone.Logger().Info("flight state changed", "flying", flying)
	for _, b := range a.order {
		if m, ok := b.(*ManualCopterBackend); ok {
			m.flightChanged(flying)
		}
	}
}

// apply executes a confirmed command and publishes the resulting changes.
func (a *Autopilot) apply(cmd Command) {
	if !a.drone.IsConnected() {
		a.drone.Logger().Debug("confirmation after disconnect ignored", "command", cmd.key())
		return
	}
	if cmd.Session != a.drone.SessionID() {
		a.drone.Logger().Debug("confirmation from previous session ignored", "command", cmd.key())
		return
	}
	b, ok := a.backends[cmd.Itf]
	if !ok {
		return
	}
	b.apply(cmd)
	a.drone.Store().Commit()
}
