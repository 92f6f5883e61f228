// Package device ties the components of one drone connection together.
//
// A Drone is the arena that owns everything living for the duration of a
// connection: the component store, the piloting interfaces and their
// backends, the activation controller, and the executor goroutine on which
// all of them are touched.
//
// # Threading
//
// Components are not safe for concurrent use. Every read or write of a
// component, every backend state update and every store commit runs on the
// drone's Executor. Other goroutines hand work over with Executor.Post or
// Executor.Call:
//
//	err := drone.Executor().Call(ctx, func() {
//	    manual.Activate()
//	})
//
// # Single active interface
//
// At most one piloting interface of a drone is active at a time. The
// ActivationController arbitrates: activating an interface while another is
// active first deactivates the current one, and the drone falls back to its
// default interface (usually manual piloting) when nothing else is active.
package device
