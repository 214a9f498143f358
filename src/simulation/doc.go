// Package simulation implements the virtual-time scheduler that drives the
// blocksim network simulation.
//
// An Env multiplexes cooperative tasks over a single logical thread. A task
// suspends by sleeping for a span of virtual time or by parking on a
// resource (such as a network connection queue), and the Env resumes the
// task with the earliest pending wake-up next. No real time passes; delays
// are pure bookkeeping on the virtual clock.
//
// Determinism: wake-ups registered for the same virtual time are dispatched
// in registration order, so a simulation run with the same inputs always
// produces the same interleaving.
package simulation
