// File: methods_constraints.go
// Role: Constraint table — activation, deactivation, membership and
//       compatibility queries (spec.md §4.2).
package engine

import (
	"sort"

	"github.com/katalvlaran/dycsp/relation"
)

// Activate installs R(i,j) (and its transpose R(j,i)) as the active
// relation for the unordered pair {i,j}.
//
// pairs lists the allowed ordered tokens (a,b) ∈ R(i,j); both a and b
// must be origin-domain values of i and j respectively (unknown tokens
// are silently ignored by the underlying Table, matching relation.Set's
// contract).
//
// Returns ErrUnknownVariable if i or j is out of range, ErrSelfConstraint
// if i == j, or ErrConstraintAlreadyActive if {i,j} is already active —
// the driver's ReAdd policy (spec.md §7) is to skip on this error, not to
// treat it as fatal.
func (p *Problem) Activate(i, j int, pairs [][2]string) error {
	if i < 1 || i > p.n || j < 1 || j > p.n {
		return ErrUnknownVariable
	}
	if i == j {
		return ErrSelfConstraint
	}
	if p.IsActive(i, j) {
		return ErrConstraintAlreadyActive
	}

	tbl, err := relation.NewTable(p.originTokens[i], p.originTokens[j])
	if err != nil {
		return err
	}
	for _, pair := range pairs {
		tbl.Set(pair[0], pair[1])
	}

	p.rel[[2]int{i, j}] = tbl
	p.rel[[2]int{j, i}] = tbl.Transpose()
	p.neighbors[i][j] = true
	p.neighbors[j][i] = true

	return nil
}

// Deactivate removes both directed entries for {i,j}.
//
// Returns ErrConstraintNotActive if {i,j} is not currently active — the
// driver's RetractInactive policy (spec.md §7) is to skip with a warning,
// not to treat it as fatal.
func (p *Problem) Deactivate(i, j int) error {
	if !p.IsActive(i, j) {
		return ErrConstraintNotActive
	}
	delete(p.rel, [2]int{i, j})
	delete(p.rel, [2]int{j, i})
	delete(p.neighbors[i], j)
	delete(p.neighbors[j], i)
	return nil
}

// IsActive reports whether {i,j} currently has an active relation.
func (p *Problem) IsActive(i, j int) bool {
	if i < 1 || i > p.n || j < 1 || j > p.n {
		return false
	}
	_, ok := p.rel[[2]int{i, j}]
	return ok
}

// Check reports whether (a,b) ∈ R(i,j) for the active arc i->j. It
// returns false (never panics) if {i,j} is not active.
func (p *Problem) Check(i, j int, a, b string) bool {
	tbl, ok := p.rel[[2]int{i, j}]
	if !ok {
		return false
	}
	return tbl.Has(a, b)
}

// ActiveNeighbors returns the variables j such that (i,j) is currently
// active, in ascending order.
func (p *Problem) ActiveNeighbors(i int) []int {
	if i < 1 || i > p.n {
		return nil
	}
	out := make([]int, 0, len(p.neighbors[i]))
	for j := range p.neighbors[i] {
		out = append(out, j)
	}
	sort.Ints(out)
	return out
}
