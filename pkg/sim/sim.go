package sim

import (
	"context"
	"errors"
	"fmt"

	"github.com/skyward-sdk/skyward-go/pkg/ack"
	"github.com/skyward-sdk/skyward-go/pkg/component"
	"github.com/skyward-sdk/skyward-go/pkg/device"
	"github.com/skyward-sdk/skyward-go/pkg/pilotingitf"
	"github.com/skyward-sdk/skyward-go/pkg/profile"
)

// ErrNotActivable is returned for interfaces that cannot be activated from
// the application.
var ErrNotActivable = errors.New("interface cannot be activated")

// Sim is a simulated drone built from a profile.
type Sim struct {
	drone     *device.Drone
	autopilot *Autopilot
	tracker   *ack.Tracker
	profile   profile.Profile

	manual     *ManualCopterBackend
	returnHome *ReturnHomeBackend
}

// Build creates the interfaces listed in the profile, their backends and
// the autopilot, and registers them with the drone.
func Build(drone *device.Drone, p *profile.Profile) (*Sim, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	types, _ := p.Types()
	defaultItf, hasDefault := p.DefaultType()

	tracker, err := ack.NewTracker(p.CommandTimeout)
	if err != nil {
		return nil, fmt.Errorf("command tracker: %w", err)
	}

	s := &Sim{
		drone:     drone,
		autopilot: NewAutopilot(drone, tracker, AutopilotConfig{AckLatency: p.AckLatency}),
		tracker:   tracker,
		profile:   *p,
	}

	for _, t := range types {
		var (
			b   modeBackend
			itf pilotingitf.Activable
		)
		switch t {
		case pilotingitf.TypeManualCopter:
			s.manual = newManualCopterBackend(drone, s.autopilot, tracker)
			b, itf = s.manual, s.manual.itf
		case pilotingitf.TypeReturnHome:
			s.returnHome = newReturnHomeBackend(drone, s.autopilot, tracker)
			b, itf = s.returnHome, s.returnHome.itf
		default:
			g := newGenericBackend(t, drone, s.autopilot, tracker)
			b, itf = g, g.itf
		}

		isDefault := hasDefault && t == defaultItf
		if err := drone.AddInterface(itf, b, isDefault); err != nil {
			return nil, fmt.Errorf("add %s: %w", t, err)
		}
		s.autopilot.attach(b, isDefault)
	}
	return s, nil
}

// Drone returns the simulated drone.
func (s *Sim) Drone() *device.Drone {
	return s.drone
}

// Autopilot returns the simulated autopilot.
func (s *Sim) Autopilot() *Autopilot {
	return s.autopilot
}

// Tracker returns the command tracker shared by the backends.
func (s *Sim) Tracker() *ack.Tracker {
	return s.tracker
}

// Profile returns the profile the simulator was built from.
func (s *Sim) Profile() profile.Profile {
	return s.profile
}

// ManualCopter returns the manual piloting interface, if the profile has one.
func (s *Sim) ManualCopter() (*pilotingitf.ManualCopter, bool) {
	if s.manual == nil {
		return nil, false
	}
	return s.manual.itf, true
}

// ReturnHome returns the return-to-home interface, if the profile has one.
func (s *Sim) ReturnHome() (*pilotingitf.ReturnHome, bool) {
	if s.returnHome == nil {
		return nil, false
	}
	return s.returnHome.itf, true
}

// Activate asks for interface t to be activated. Must run on the executor.
func (s *Sim) Activate(t component.Type) (bool, error) {
	itf, ok := s.drone.Interface(t)
	if !ok {
		return false, fmt.Errorf("%w: %s", component.ErrComponentNotFound, t)
	}
	a, ok := itf.(interface{ Activate() bool })
	if !ok {
		return false, fmt.Errorf("%w: %s", ErrNotActivable, t)
	}
	return a.Activate(), nil
}

// Deactivate asks for interface t to be deactivated. Must run on the
// executor.
func (s *Sim) Deactivate(t component.Type) (bool, error) {
	itf, ok := s.drone.Interface(t)
	if !ok {
		return false, fmt.Errorf("%w: %s", component.ErrComponentNotFound, t)
	}
	return itf.Deactivate(), nil
}

// Run runs the drone's executor and the autopilot until ctx is cancelled,
// connecting the link first if the profile says so.
func (s *Sim) Run(ctx context.Context) error {
	errc := make(chan error, 2)
	go func() { errc <- s.drone.Executor().Run(ctx) }()
	go func() { errc <- s.autopilot.Run(ctx) }()

	if s.profile.StartConnected {
		s.autopilot.Connect()
	}

	var firstErr error
	for i := 0; i < 2; i++ {
		if err := <-errc; err != nil && !errors.Is(err, context.Canceled) && firstErr == nil {
			firstErr = err
		}
	}
	s.tracker.Stop()
	return firstErr
}
