// File: methods_domain.go
// Role: Domain store — origin/live domain queries and present/absent
//       ordering (spec.md §4.1).
// Determinism:
//   - present(i) starts in domain-line order; removals preserve the
//     relative order of the remaining values, restorations append at the
//     end — exactly the ordering discipline the reference dyCSPAgent uses.
package engine

// valueIndex resolves a token to its position in variable i's origin
// domain. ok is false if i is out of range or tok is not one of i's
// origin values.
func (p *Problem) valueIndex(i int, tok string) (int, bool) {
	if i < 1 || i > p.n {
		return 0, false
	}
	idx, ok := p.tokenIndex[i][tok]
	return idx, ok
}

// Origin returns variable i's origin domain D0(i), in input order.
func (p *Problem) Origin(i int) []string {
	if i < 1 || i > p.n {
		return nil
	}
	return append([]string(nil), p.originTokens[i]...)
}

// Live returns variable i's current live domain D(i), in present(i)
// order.
func (p *Problem) Live(i int) []string {
	if i < 1 || i > p.n {
		return nil
	}
	out := make([]string, 0, len(p.present[i]))
	for _, idx := range p.present[i] {
		out = append(out, p.originTokens[i][idx])
	}
	return out
}

// Absent returns variable i's currently removed values, in removal
// order.
func (p *Problem) Absent(i int) []string {
	if i < 1 || i > p.n {
		return nil
	}
	out := make([]string, 0, len(p.absent[i]))
	for _, idx := range p.absent[i] {
		out = append(out, p.originTokens[i][idx])
	}
	return out
}

// Contains reports whether a ∈ D(i).
func (p *Problem) Contains(i int, a string) bool {
	idx, ok := p.valueIndex(i, a)
	if !ok {
		return false
	}
	return indexOfInt(p.present[i], idx) >= 0
}

// Remove deletes a from D(i), moving it from present(i) to the end of
// absent(i). It reports whether a was actually removed (false if a was
// already absent or unknown).
//
// Remove does not touch the justification map; callers (propagate) are
// responsible for pairing Remove with Blame to preserve I3.
func (p *Problem) Remove(i int, a string) bool {
	idx, ok := p.valueIndex(i, a)
	if !ok {
		return false
	}
	pos := indexOfInt(p.present[i], idx)
	if pos < 0 {
		return false
	}
	p.present[i] = append(p.present[i][:pos], p.present[i][pos+1:]...)
	p.absent[i] = append(p.absent[i], idx)
	return true
}

// Restore re-inserts a into D(i), appending it to the end of present(i)
// and removing it from absent(i). It reports whether a was actually
// restored (false if a was already present or unknown).
//
// Restore does not touch the justification map; callers (propagate) are
// responsible for pairing Restore with Clear to preserve I3.
func (p *Problem) Restore(i int, a string) bool {
	idx, ok := p.valueIndex(i, a)
	if !ok {
		return false
	}
	pos := indexOfInt(p.absent[i], idx)
	if pos < 0 {
		return false
	}
	p.absent[i] = append(p.absent[i][:pos], p.absent[i][pos+1:]...)
	p.present[i] = append(p.present[i], idx)
	return true
}

// First returns the first value of present(i) order, if any.
func (p *Problem) First(i int) (string, bool) {
	if i < 1 || i > p.n || len(p.present[i]) == 0 {
		return "", false
	}
	return p.originTokens[i][p.present[i][0]], true
}

// Last returns the last value of present(i) order, if any.
func (p *Problem) Last(i int) (string, bool) {
	if i < 1 || i > p.n || len(p.present[i]) == 0 {
		return "", false
	}
	return p.originTokens[i][p.present[i][len(p.present[i])-1]], true
}

// NextAfter returns the value immediately following a in present(i)
// order. ok is false if a is the last present value, not present, or
// unknown.
func (p *Problem) NextAfter(i int, a string) (string, bool) {
	idx, ok := p.valueIndex(i, a)
	if !ok {
		return "", false
	}
	pos := indexOfInt(p.present[i], idx)
	if pos < 0 || pos+1 >= len(p.present[i]) {
		return "", false
	}
	return p.originTokens[i][p.present[i][pos+1]], true
}

// indexOfInt returns the position of v in s, or -1.
func indexOfInt(s []int, v int) int {
	for k, x := range s {
		if x == v {
			return k
		}
	}
	return -1
}
