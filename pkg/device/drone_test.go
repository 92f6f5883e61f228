package device

import (
	"testing"

	"github.com/google/uuid"
	"github.com/skyward-sdk/skyward-go/pkg/component"
	pdlog "github.com/skyward-sdk/skyward-go/pkg/log"
	"github.com/skyward-sdk/skyward-go/pkg/pilotingitf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDrone(t *testing.T) (*Drone, *eventCapture) {
	t.Helper()
	events := &eventCapture{}
	cfg := DefaultConfig()
	cfg.Name = "anafi-test"
	cfg.EventLogger = events
	return NewDrone(cfg), events
}

func TestNewDrone(t *testing.T) {
	d, _ := newTestDrone(t)

	assert.Equal(t, "anafi-test", d.Name())
	assert.NotNil(t, d.Store())
	assert.NotNil(t, d.Executor())
	assert.NotNil(t, d.Controller())
	assert.NotNil(t, d.Logger())
	assert.False(t, d.IsConnected())

	_, err := uuid.Parse(d.SessionID())
	assert.NoError(t, err, "session ID is a UUID")
}

func TestDroneAddInterface(t *testing.T) {
	d, _ := newTestDrone(t)
	manual := newFakeMode(pilotingitf.TypeManualCopter, d.Store(), d.Controller())

	require.NoError(t, d.AddInterface(manual.itf, manual, true))

	itf, ok := d.Interface(pilotingitf.TypeManualCopter)
	require.True(t, ok)
	assert.Same(t, manual.itf, itf)

	_, ok = d.Interface(pilotingitf.TypeGuided)
	assert.False(t, ok)

	t.Run("SecondDefaultLeavesStoreUnchanged", func(t *testing.T) {
		guided := newFakeMode(pilotingitf.TypeGuided, d.Store(), d.Controller())
		err := d.AddInterface(guided.itf, guided, true)
		assert.ErrorIs(t, err, ErrDefaultAlreadySet)
		_, ok := d.Interface(pilotingitf.TypeGuided)
		assert.False(t, ok)
	})

	t.Run("Duplicate", func(t *testing.T) {
		again := newFakeMode(pilotingitf.TypeManualCopter, d.Store(), d.Controller())
		assert.ErrorIs(t, d.AddInterface(again.itf, again, false), component.ErrDuplicateComponent)
	})
}

func TestDroneConnectionLifecycle(t *testing.T) {
	d, events := newTestDrone(t)
	manual := newFakeMode(pilotingitf.TypeManualCopter, d.Store(), d.Controller())
	lookAt := newFakeMode(pilotingitf.TypeLookAt, d.Store(), d.Controller())
	require.NoError(t, d.AddInterface(manual.itf, manual, true))
	require.NoError(t, d.AddInterface(lookAt.itf, lookAt, false))

	var notified []component.Type
	d.Store().SubscribeAll(component.ObserverFunc(func(c component.Component) {
		notified = append(notified, c.Descriptor().Type)
	}))

	firstSession := d.SessionID()
	d.Connected()
	require.True(t, d.IsConnected())
	assert.NotEqual(t, firstSession, d.SessionID(), "new session on connect")

	session := d.SessionID()
	d.Connected()
	assert.Equal(t, session, d.SessionID(), "repeated connect is ignored")

	manual.confirm(pilotingitf.Active)
	lookAt.confirm(pilotingitf.Idle)
	d.Store().Commit()
	notified = nil

	d.Disconnected()

	assert.False(t, d.IsConnected())
	assert.Equal(t, pilotingitf.Unavailable, manual.State())
	assert.Equal(t, pilotingitf.Unavailable, lookAt.State())
	assert.Equal(t, []component.Type{pilotingitf.TypeManualCopter, pilotingitf.TypeLookAt}, notified)
	_, ok := d.Controller().Current()
	assert.False(t, ok)
	assert.Equal(t, session, d.SessionID(), "session kept until next connect")

	conn := events.byCategory(pdlog.CategoryState)
	require.Len(t, conn, 2)
	assert.Equal(t, ConnStateConnected, conn[0].StateChange.NewState)
	assert.Equal(t, ConnStateDisconnected, conn[1].StateChange.NewState)
	assert.Equal(t, session, conn[1].ConnectionID)
	assert.Equal(t, "anafi-test", conn[1].DeviceID)
	assert.False(t, conn[1].Timestamp.IsZero())
}

func TestDroneLogsCommits(t *testing.T) {
	d, events := newTestDrone(t)
	manual := newFakeMode(pilotingitf.TypeManualCopter, d.Store(), d.Controller())
	require.NoError(t, d.AddInterface(manual.itf, manual, true))

	manual.itf.SetActiveState(pilotingitf.Idle)
	d.Store().Commit()
	d.Store().Commit()

	commits := events.byCategory(pdlog.CategoryCommit)
	require.Len(t, commits, 1, "empty commits are not logged")
	assert.Equal(t, []string{"manualCopter"}, commits[0].Commit.Components)
	assert.Equal(t, pdlog.LayerComponent, commits[0].Layer)
}

func TestSessionLoggerKeepsExplicitFields(t *testing.T) {
	d, events := newTestDrone(t)

	d.Events().Log(pdlog.Event{ConnectionID: "fixed", DeviceID: "other"})

	require.Len(t, events.events, 1)
	assert.Equal(t, "fixed", events.events[0].ConnectionID)
	assert.Equal(t, "other", events.events[0].DeviceID)
}
