// File: methods_justification.go
// Role: Justification map — blame/clear/query for removed values
//       (spec.md §4.3).
// Invariant (I3): J(i,a) = ⊥ ⇔ a ∈ D(i). engine does not enforce this on
// its own; Blame/Clear are always called by propagate in lockstep with
// Remove/Restore.
package engine

// Blame records that variable k's arc caused value a of variable i to be
// removed. It is a no-op if i or a is unknown.
func (p *Problem) Blame(i int, a string, k int) {
	idx, ok := p.valueIndex(i, a)
	if !ok {
		return
	}
	p.justified[i][idx] = k
}

// Clear resets J(i,a) to ⊥. It is a no-op if i or a is unknown.
func (p *Problem) Clear(i int, a string) {
	idx, ok := p.valueIndex(i, a)
	if !ok {
		return
	}
	p.justified[i][idx] = blank
}

// Blamer returns the current blamer for (i,a). ok is false if a is
// present (J(i,a) = ⊥) or unknown.
func (p *Problem) Blamer(i int, a string) (int, bool) {
	idx, ok := p.valueIndex(i, a)
	if !ok {
		return 0, false
	}
	k := p.justified[i][idx]
	if k == blank {
		return 0, false
	}
	return k, true
}
