// Package driver implements the time-step loop of spec.md §4.7: for
// t = 0..T_max, apply every edit scheduled at t in input order,
// restore arc-consistency, then run search and report the outcome.
//
// The shape is bfs's walker/loop pattern applied one level up: instead
// of draining a queue of graph vertices, Run drains a sequence of time
// steps, applying edits and invoking the propagator and searcher at
// each one. The "no edits at t ⇒ no propagation, no search" rule and
// the RetractInactive/ReAdd skip-with-warning policies of spec.md §7
// are both enforced here, not in propagate — propagate reports the
// error, driver decides whether it is fatal.
//
// Like flow's FlowOptions.Verbose, driver logs with the stdlib log
// package rather than a structured logger (the teacher imports none).
package driver
