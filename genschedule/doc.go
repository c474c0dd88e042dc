// Package genschedule generates synthetic patient-scheduling instances,
// the worked example spec.md §1 names as out of scope for the core
// engine. It produces a parse.Instance: patients as variables, each
// domain a set of (room, timeslot) tokens, and pairwise non-overlap
// constraints ("two patients cannot occupy the same room at the same
// timeslot") scheduled for addition across time steps, with a fraction
// optionally retracted later to model cancellations.
//
// Grounded on builder's functional-option variant-generator shape
// (builder/config.go, builder/options.go, builder/impl_random_sparse.go):
// a package-local config struct, a closed set of With* options resolved
// by newConfig, and a single stochastic constructor that validates
// parameters before doing any work and returns only sentinel errors.
package genschedule
