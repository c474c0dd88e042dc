//go:build debugAssertions

// File: invariants_debug.go
// Role: Debug-only internal-consistency assertions (spec.md §7:
//       "Internal consistency-check failures... are bugs and should
//       panic in development builds"). Compiled only when the module is
//       built or tested with the debugAssertions tag
//       (go test -tags debugAssertions ./...); see invariants_release.go
//       for the no-op counterpart every other build uses.
package engine

import "fmt"

// checkInvariants panics if I2 (D(i) ⊆ D0(i)) or I3 (J(i,a) = ⊥ ⇔
// a ∈ D(i)) is violated for any variable. I2 holds structurally by
// construction — present(i)/absent(i) only ever hold indices resolved
// through valueIndex against originTokens[i] — so the check below
// re-derives it directly from the slices rather than trusting that
// invariant blindly. I3 is the one callers can actually break by
// calling Remove/Restore without the matching Blame/Clear (or vice
// versa); this is exactly the pairing DESIGN.md documents as
// propagate's responsibility.
func (p *Problem) checkInvariants() {
	for i := 1; i <= p.n; i++ {
		for idx := range p.originTokens[i] {
			inPresent := indexOfInt(p.present[i], idx) >= 0
			inAbsent := indexOfInt(p.absent[i], idx) >= 0
			if inPresent == inAbsent {
				panic(fmt.Sprintf(
					"engine: I2 violated for variable %d value %q: present=%v absent=%v",
					i, p.originTokens[i][idx], inPresent, inAbsent))
			}

			blamed := p.justified[i][idx] != blank
			if inPresent == blamed {
				panic(fmt.Sprintf(
					"engine: I3 violated for variable %d value %q: present=%v blamed=%v",
					i, p.originTokens[i][idx], inPresent, blamed))
			}
		}
	}
}
