// Package component implements the per-device component store.
//
// A device connection exposes its capabilities as components (piloting
// interfaces, instruments, peripherals), at most one per component Type.
// Components live in a Store owned by the connection; they are created when
// the connection is established and dropped with it.
//
// # Change Batching
//
// Components never notify observers directly. A backend that updates a
// component's fields calls MarkChanged (which marks the component dirty in its
// store) once per accepted change, and may update several fields or several
// components before the batch is published. Store.Commit then drains the dirty
// set and notifies each affected component's observers exactly once:
//
//	itf.SetActiveState(pilotingitf.Active)   // marks dirty
//	itf.UpdateCanLand(true)                   // marks dirty again
//	store.Commit()                            // one notification for itf
//
// Observers see only the values current at commit time. Components marked
// dirty after being removed from the store are dropped silently.
//
// # Threading
//
// The store itself is safe for concurrent use, but components are not: all
// component mutations and reads are expected on the device's single owner
// goroutine (see package device).
package component
