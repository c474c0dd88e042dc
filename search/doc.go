// Package search implements the chronological backtracking search that
// runs after each time step's propagation settles (spec.md §4.6): a
// depth-first walk over variables in index order, accepting the first
// complete assignment consistent with every active constraint.
//
// The shape is lifted from bfs's walker: a small struct holding
// traversal state plus a loop that drains an explicit frontier, rather
// than a recursive function. Here the frontier is a LIFO stack of
// choice points (one per assigned variable) instead of bfs's FIFO
// queue of vertices — depth-first instead of breadth-first, but the
// same "encapsulate mutable state in a walker, drain it in a loop"
// idiom.
//
// Search keeps bfs's functional-options pattern (Option/Options/
// DefaultOptions) for instrumentation hooks (OnAssign, OnBacktrack), but
// drops bfs's WithContext: spec.md §5 rules out cancellation and
// timeouts at the core level ("no operation suspends; no timeouts or
// cancellations at the core level"), so there is no cancellation knob to
// expose. Search is read-only with respect to the domain store: it
// queries engine.Problem but never calls Remove/Restore/Blame/Clear.
package search
