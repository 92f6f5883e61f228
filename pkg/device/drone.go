package device

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/skyward-sdk/skyward-go/pkg/component"
	pdlog "github.com/skyward-sdk/skyward-go/pkg/log"
	"github.com/skyward-sdk/skyward-go/pkg/pilotingitf"
)

// Connection state names used in connection events.
const (
	ConnStateConnected    = "CONNECTED"
	ConnStateDisconnected = "DISCONNECTED"
)

// Config holds drone configuration.
type Config struct {
	// Name identifies the drone in logs and events.
	Name string

	// QueueSize is the executor queue capacity.
	QueueSize int

	// Logger receives operational log output. Defaults to slog.Default().
	Logger *slog.Logger

	// EventLogger receives drone events. Defaults to NoopLogger.
	EventLogger pdlog.Logger
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Name:      "drone",
		QueueSize: DefaultQueueSize,
	}
}

// Drone owns the components of one drone and everything they reference.
// Backends and components registered with a drone must not outlive it.
type Drone struct {
	name   string
	logger *slog.Logger
	sink   pdlog.Logger

	store      *component.Store
	executor   *Executor
	controller *ActivationController

	mu        sync.RWMutex
	sessionID string
	connected bool
}

// NewDrone creates a disconnected drone with no interfaces.
func NewDrone(config Config) *Drone {
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	sink := config.EventLogger
	if sink == nil {
		sink = pdlog.NoopLogger{}
	}

	d := &Drone{
		name:      config.Name,
		logger:    logger.With("drone", config.Name),
		sink:      sink,
		executor:  NewExecutor(config.QueueSize),
		sessionID: uuid.NewString(),
	}
	d.store = component.NewStoreWithConfig(component.StoreConfig{
		Name:   config.Name,
		Logger: d.logger,
	})
	d.controller = NewActivationController(ControllerConfig{
		Logger: d.logger,
		Events: d.Events(),
	})
	d.store.OnCommit(d.logCommit)
	return d
}

// Name returns the drone name.
func (d *Drone) Name() string {
	return d.name
}

// Store returns the component store.
func (d *Drone) Store() *component.Store {
	return d.store
}

// Executor returns the executor that owns the drone's components.
func (d *Drone) Executor() *Executor {
	return d.executor
}

// Controller returns the activation controller.
func (d *Drone) Controller() *ActivationController {
	return d.controller
}

// Logger returns the drone's operational logger.
func (d *Drone) Logger() *slog.Logger {
	return d.logger
}

// SessionID returns the ID of the current connection session. A new ID is
// generated on every connection.
func (d *Drone) SessionID() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.sessionID
}

// IsConnected reports whether the link to the drone is up.
func (d *Drone) IsConnected() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.connected
}

// Events returns a logger that stamps events with the time, session ID and
// drone name before forwarding them to the configured event logger.
func (d *Drone) Events() pdlog.Logger {
	return sessionLogger{drone: d}
}

// AddInterface registers a piloting interface and its device-facing side.
func (d *Drone) AddInterface(itf pilotingitf.Activable, activator Activator, isDefault bool) error {
	if err := d.store.Add(itf); err != nil {
		return err
	}
	if err := d.controller.Register(activator, isDefault); err != nil {
		_ = d.store.Remove(itf.Descriptor().Type)
		return err
	}
	return nil
}

// Interface returns the registered piloting interface of type t.
func (d *Drone) Interface(t component.Type) (pilotingitf.Activable, bool) {
	c, err := d.store.Get(t)
	if err != nil {
		return nil, false
	}
	itf, ok := c.(pilotingitf.Activable)
	return itf, ok
}

// Connected handles the link coming up. Components start from their reset
// state and a new session begins. Must run on the executor.
func (d *Drone) Connected() {
	d.mu.Lock()
	if d.connected {
		d.mu.Unlock()
		return
	}
	d.connected = true
	d.sessionID = uuid.NewString()
	session := d.sessionID
	d.mu.Unlock()

	d.resetComponents()
	d.logger.Info("drone connected", "session", session)
	d.logConnection(ConnStateDisconnected, ConnStateConnected)
}

// Disconnected handles the link going down. Every component returns to its
// reset state and observers are told. Must run on the executor.
func (d *Drone) Disconnected() {
	d.mu.Lock()
	if !d.connected {
		d.mu.Unlock()
		return
	}
	d.connected = false
	d.mu.Unlock()

	d.resetComponents()
	d.logger.Info("drone disconnected")
	d.logConnection(ConnStateConnected, ConnStateDisconnected)
}

func (d *Drone) resetComponents() {
	d.store.ResetAll()
	d.controller.Reset()
	d.store.Commit()
}

func (d *Drone) logConnection(oldState, newState string) {
	d.Events().Log(pdlog.Event{
		Direction: pdlog.DirectionIn,
		Layer:     pdlog.LayerBackend,
		Category:  pdlog.CategoryState,
		StateChange: &pdlog.StateChangeEvent{
			Entity:   pdlog.StateEntityConnection,
			OldState: oldState,
			NewState: newState,
		},
	})
}

func (d *Drone) logCommit(types []component.Type) {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = t.String()
	}
	d.Events().Log(pdlog.Event{
		Direction: pdlog.DirectionLocal,
		Layer:     pdlog.LayerComponent,
		Category:  pdlog.CategoryCommit,
		Commit:    &pdlog.CommitEvent{Components: names},
	})
}

// sessionLogger fills in the common event header.
type sessionLogger struct {
	drone *Drone
}

func (l sessionLogger) Log(event pdlog.Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	if event.ConnectionID == "" {
		event.ConnectionID = l.drone.SessionID()
	}
	if event.DeviceID == "" {
		event.DeviceID = l.drone.name
	}
	l.drone.sink.Log(event)
}
