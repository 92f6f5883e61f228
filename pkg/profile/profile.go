// Package profile loads simulated drone profiles from YAML.
//
// A profile describes the piloting interfaces a drone exposes and how its
// simulated link behaves:
//
//	name: anafi-sim
//	interfaces: [manualCopter, returnHome, followMe, lookAt]
//	default: manualCopter
//	ackLatency: 150ms
//	commandTimeout: 3s
//	startConnected: true
package profile

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/skyward-sdk/skyward-go/pkg/component"
	"github.com/skyward-sdk/skyward-go/pkg/pilotingitf"
	"gopkg.in/yaml.v3"
)

// Defaults applied to fields missing from a profile.
const (
	DefaultName           = "skyward-sim"
	DefaultAckLatency     = 100 * time.Millisecond
	DefaultCommandTimeout = 3 * time.Second
)

// Validation errors.
var (
	ErrNoName             = errors.New("profile name is required")
	ErrNoInterfaces       = errors.New("profile must list at least one interface")
	ErrUnknownInterface   = errors.New("unknown piloting interface")
	ErrDuplicateInterface = errors.New("duplicate piloting interface")
	ErrDefaultNotListed   = errors.New("default interface is not listed")
	ErrInvalidLatency     = errors.New("ack latency must not be negative")
	ErrTimeoutTooShort    = errors.New("command timeout must exceed ack latency")
)

// Profile describes a simulated drone.
type Profile struct {
	// Name identifies the drone in logs and events.
	Name string `yaml:"name"`

	// Interfaces lists the piloting interfaces by name (see pilotingitf.ParseType).
	Interfaces []string `yaml:"interfaces"`

	// Default names the interface that takes control when no other is
	// active. Empty means no default.
	Default string `yaml:"default"`

	// AckLatency is how long the drone takes to confirm a command.
	AckLatency time.Duration `yaml:"ackLatency"`

	// CommandTimeout is how long a backend waits for a confirmation.
	CommandTimeout time.Duration `yaml:"commandTimeout"`

	// StartConnected brings the link up as soon as the simulator starts.
	StartConnected bool `yaml:"startConnected"`
}

// Default returns the built-in profile: a copter with manual piloting as
// the default interface and return-to-home.
func Default() Profile {
	return Profile{
		Name:           DefaultName,
		Interfaces:     []string{"manualCopter", "returnHome", "followMe", "flightPlan", "lookAt"},
		Default:        "manualCopter",
		AckLatency:     DefaultAckLatency,
		CommandTimeout: DefaultCommandTimeout,
		StartConnected: true,
	}
}

// LoadError describes a profile that could not be loaded.
type LoadError struct {
	File    string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	msg := e.Message
	if e.File != "" {
		msg = e.File + ": " + msg
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// Parse parses a profile from YAML bytes. Fields missing from the document
// keep their Default values.
func Parse(data []byte) (*Profile, error) {
	p := Default()
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, &LoadError{Message: "failed to parse YAML", Cause: err}
	}
	if err := p.Validate(); err != nil {
		return nil, &LoadError{Message: "invalid profile", Cause: err}
	}
	return &p, nil
}

// Load reads and parses a profile file.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{File: path, Message: "failed to read file", Cause: err}
	}

	p, err := Parse(data)
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			le.File = path
		}
		return nil, err
	}
	return p, nil
}

// Validate checks the profile for consistency.
func (p *Profile) Validate() error {
	if p.Name == "" {
		return ErrNoName
	}
	if _, err := p.Types(); err != nil {
		return err
	}
	if p.Default != "" {
		if _, ok := p.DefaultType(); !ok {
			return fmt.Errorf("%w: %s", ErrDefaultNotListed, p.Default)
		}
	}
	if p.AckLatency < 0 {
		return ErrInvalidLatency
	}
	if p.CommandTimeout <= p.AckLatency {
		return fmt.Errorf("%w: timeout %s, latency %s", ErrTimeoutTooShort, p.CommandTimeout, p.AckLatency)
	}
	return nil
}

// Types returns the listed interfaces as component types, in profile order.
func (p *Profile) Types() ([]component.Type, error) {
	if len(p.Interfaces) == 0 {
		return nil, ErrNoInterfaces
	}

	seen := make(map[component.Type]bool, len(p.Interfaces))
	types := make([]component.Type, 0, len(p.Interfaces))
	for _, name := range p.Interfaces {
		t, err := pilotingitf.ParseType(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrUnknownInterface, name)
		}
		if seen[t] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateInterface, name)
		}
		seen[t] = true
		types = append(types, t)
	}
	return types, nil
}

// DefaultType returns the default interface type if one is set and listed.
func (p *Profile) DefaultType() (component.Type, bool) {
	if p.Default == "" {
		return 0, false
	}
	t, err := pilotingitf.ParseType(p.Default)
	if err != nil {
		return 0, false
	}
	for _, name := range p.Interfaces {
		if listed, err := pilotingitf.ParseType(name); err == nil && listed == t {
			return t, true
		}
	}
	return 0, false
}
