// Package sim simulates a drone for the piloting interfaces in pilotingitf.
//
// Backends turn application requests into commands for an in-process
// Autopilot. The autopilot confirms each command after the profile's ack
// latency by updating the interface state on the drone's executor and
// committing the store, the same path a real drone link takes when its
// state notifications arrive.
package sim
