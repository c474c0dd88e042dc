// File: view.go
// Role: Non-mutating snapshots of engine state, used by callers (property
//       tests, the driver's report step) that need a point-in-time read
//       without holding onto the live Problem.
package engine

// Snapshot is an immutable, point-in-time copy of every variable's live
// domain and justification map. It does not capture the constraint
// table: spec.md's property P3 (retraction round-trip) only compares
// domains and justifications.
type Snapshot struct {
	Domains        map[int][]string
	Justifications map[int]map[string]int
}

// Snapshot captures the current live domains and justifications of every
// variable.
//
// Complexity: O(sum of domain sizes).
func (p *Problem) Snapshot() Snapshot {
	s := Snapshot{
		Domains:        make(map[int][]string, p.n),
		Justifications: make(map[int]map[string]int, p.n),
	}
	for i := 1; i <= p.n; i++ {
		s.Domains[i] = p.Live(i)
		just := make(map[string]int, len(p.originTokens[i]))
		for _, tok := range p.originTokens[i] {
			if k, ok := p.Blamer(i, tok); ok {
				just[tok] = k
			}
		}
		s.Justifications[i] = just
	}
	return s
}

// Equal reports whether two snapshots describe the same live domains
// (ignoring present(i) order) and the same justifications.
func (s Snapshot) Equal(other Snapshot) bool {
	if len(s.Domains) != len(other.Domains) {
		return false
	}
	for i, vals := range s.Domains {
		ov, ok := other.Domains[i]
		if !ok || !sameSet(vals, ov) {
			return false
		}
	}
	for i, just := range s.Justifications {
		oj, ok := other.Justifications[i]
		if !ok || len(just) != len(oj) {
			return false
		}
		for tok, k := range just {
			if oj[tok] != k {
				return false
			}
		}
	}
	return true
}

// DebugCheckInvariants runs engine's internal consistency assertions
// (I2: D(i) ⊆ D0(i); I3: J(i,a) = ⊥ ⇔ a ∈ D(i)), per spec.md §7. It
// panics on violation when the module is built with the
// debugAssertions tag and is a harmless no-op in every other build, so
// callers can call it unconditionally at safe checkpoints — after a
// propagator's fixed point settles, never mid-pairing between
// Remove/Restore and the matching Blame/Clear.
func (p *Problem) DebugCheckInvariants() {
	p.checkInvariants()
}

// sameSet reports whether a and b contain the same tokens, ignoring
// order and duplicates.
func sameSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	seen := make(map[string]bool, len(a))
	for _, tok := range a {
		seen[tok] = true
	}
	for _, tok := range b {
		if !seen[tok] {
			return false
		}
		delete(seen, tok)
	}
	return len(seen) == 0
}
