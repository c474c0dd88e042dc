package parse

// Edit is one scheduled operation on the constraint network: either
// add ('a'), installing Pairs as the allowed (v,w) tokens of R(I,J), or
// retract ('r'), for which Pairs is always empty.
type Edit struct {
	Op    rune
	I, J  int
	Pairs [][2]string
}

// Instance is the complete data contract parse hands to engine/driver:
// the variable count, each variable's origin domain in input order, and
// the edits scheduled per time step. MaxT is the highest time step seen
// across constraint lines (spec.md §6); it is 0 if no constraint lines
// were present, in which case the driver's loop performs no steps.
type Instance struct {
	N      int
	Origin map[int][]string
	Edits  map[int][]Edit
	MaxT   int
}
