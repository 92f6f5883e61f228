// Package pilotingitf implements activable piloting interfaces.
//
// A piloting interface is a control mode of a drone (manual flight,
// return-to-home, follow-me, ...). Activable interfaces share a small state
// machine:
//
//	UNAVAILABLE  the interface cannot be activated (disconnected, not ready)
//	IDLE         the interface can be activated
//	ACTIVE       the interface currently controls the drone
//
// At most one interface of a drone is ACTIVE at a time. The rule is enforced
// by the device's activation controller, not by the interfaces themselves.
//
// # Commands and Confirmation
//
// Application calls such as Deactivate only ask the Backend to send a command;
// they return whether the command was accepted for dispatch and never change
// the interface state. The backend later confirms the effect by calling
// SetActiveState (or a mode's Update* methods), which marks the interface
// dirty in its component store. Observers are notified on the store's next
// Commit, once per batch.
//
//	ok := itf.Deactivate()          // true: command sent, state still ACTIVE
//	...
//	itf.SetActiveState(pilotingitf.Idle)   // backend, on drone acknowledgement
//	store.Commit()                          // observers see IDLE
//
// # Extending
//
// Modes compose ActivableCore and keep their own fields next to it. A mode's
// Reset calls ResetActivation on the embedded Activation first, then clears
// its own fields.
package pilotingitf
