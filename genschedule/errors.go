package genschedule

import "errors"

// Sentinel errors for Generate's parameter validation, following
// builder's convention of never stringifying parameters into the
// sentinel itself (context is attached with %w at the call site).
var (
	// ErrTooFewPatients indicates Patients was below the minimum of 1.
	ErrTooFewPatients = errors.New("genschedule: too few patients")

	// ErrTooFewRooms indicates Rooms was below the minimum of 1.
	ErrTooFewRooms = errors.New("genschedule: too few rooms")

	// ErrTooFewSlots indicates Slots was below the minimum of 1.
	ErrTooFewSlots = errors.New("genschedule: too few timeslots")

	// ErrInvalidProbability indicates a probability parameter (retract
	// fraction) was outside [0,1].
	ErrInvalidProbability = errors.New("genschedule: probability not in [0,1]")

	// ErrNeedRandSource indicates a stochastic choice was requested
	// (RetractFraction > 0) without an RNG configured.
	ErrNeedRandSource = errors.New("genschedule: rng required")
)
