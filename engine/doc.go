// Package engine owns the mutable state of a dynamic constraint satisfaction
// problem: the per-variable origin and live domains, the directed relation
// tables that make up the active constraint network, and the justification
// map that records why each removed value is gone.
//
// Variables are identified by the integers 1..N. Domain values are opaque
// string tokens, interned once per variable at construction time (see
// NewProblem) so that every later domain operation works against small
// integer indices instead of repeated string comparisons.
//
// engine has no locking of its own: the system this package belongs to is
// single-threaded by step boundaries (one driver goroutine owns the problem
// between edits), so a *Problem is not safe for concurrent use the way
// core.Graph in the teacher library is. Wrapping every method in a
// sync.RWMutex would imply a concurrency guarantee this package never
// needs to provide.
//
// types.go, api.go, methods_domain.go, methods_constraints.go,
// methods_justification.go and view.go split the package the way
// core/types.go, core/api.go and core/methods_*.go split the teacher's
// Graph: types and sentinel errors in types.go, the constructor and N in
// api.go, one file per concern for the domain, constraint and
// justification methods, and point-in-time snapshots in view.go.
package engine
