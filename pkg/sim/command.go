package sim

import (
	"github.com/skyward-sdk/skyward-go/pkg/component"
	"github.com/skyward-sdk/skyward-go/pkg/pilotingitf"
)

// CommandKind identifies a command sent to the autopilot.
type CommandKind uint8

const (
	// CmdActivate engages a piloting interface.
	CmdActivate CommandKind = iota
	// CmdDeactivate disengages a piloting interface.
	CmdDeactivate
	// CmdTakeOff takes off in manual piloting.
	CmdTakeOff
	// CmdLand lands in manual piloting.
	CmdLand
	// CmdSetTarget changes the return-home target.
	CmdSetTarget
)

// String returns the command name used in events and tracker keys.
func (k CommandKind) String() string {
	switch k {
	case CmdActivate:
		return "activate"
	case CmdDeactivate:
		return "deactivate"
	case CmdTakeOff:
		return "takeOff"
	case CmdLand:
		return "land"
	case CmdSetTarget:
		return "setTarget"
	default:
		return "unknown"
	}
}

// Command is a request for the autopilot.
type Command struct {
	Itf    component.Type
	Kind   CommandKind
	Target pilotingitf.ReturnHomeTarget

	// Session is the connection session the command was sent in.
	// Confirmations from an earlier session are dropped.
	Session string
}

// key identifies the command in the ack tracker. Commands of the same kind
// for the same interface are not sent while one is pending.
func (c Command) key() string {
	return c.Itf.String() + "." + c.Kind.String()
}

// argument returns the command argument as logged, if any.
func (c Command) argument() string {
	if c.Kind == CmdSetTarget {
		return c.Target.String()
	}
	return ""
}
