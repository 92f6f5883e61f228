// Package ack tracks drone commands waiting for acknowledgement.
//
// A backend starts tracking a command when it sends it and acknowledges it
// when the drone reports the resulting state. Commands that are not
// acknowledged within the tracker's timeout are dropped and their timeout
// callback runs once, on the timer goroutine.
package ack
