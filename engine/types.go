package engine

import (
	"errors"

	"github.com/katalvlaran/dycsp/relation"
)

// blank is the justification sentinel ⊥: variable IDs start at 1, so 0
// never collides with a real blamer.
const blank = 0

// Sentinel errors for engine operations.
var (
	// ErrBadVariableCount is returned when NewProblem is asked to build a
	// problem with zero or fewer variables.
	ErrBadVariableCount = errors.New("engine: variable count must be > 0")

	// ErrUnknownVariable indicates an operation referenced a variable ID
	// outside 1..N.
	ErrUnknownVariable = errors.New("engine: unknown variable")

	// ErrDuplicateVariable indicates origin domains were supplied twice for
	// the same variable.
	ErrDuplicateVariable = errors.New("engine: duplicate domain for variable")

	// ErrMissingDomain indicates a variable in 1..N has no origin domain.
	ErrMissingDomain = errors.New("engine: variable has no origin domain")

	// ErrBadDomainValue indicates a value outside a variable's origin
	// domain was used where a domain value was expected.
	ErrBadDomainValue = errors.New("engine: value not in origin domain")

	// ErrSelfConstraint indicates an attempt to relate a variable to
	// itself; the spec only knows binary constraints between distinct
	// variables.
	ErrSelfConstraint = errors.New("engine: constraint endpoints must differ")

	// ErrConstraintAlreadyActive indicates Activate was called for a pair
	// that is already active. Driver policy (spec.md §7, ReAdd): skip.
	ErrConstraintAlreadyActive = errors.New("engine: constraint already active")

	// ErrConstraintNotActive indicates Deactivate was asked about a pair
	// that is not currently active (Check reports false instead of an
	// error). Driver policy (spec.md §7, RetractInactive): skip with a
	// warning.
	ErrConstraintNotActive = errors.New("engine: constraint not active")
)

// Problem owns every piece of state the propagators, search, and driver
// share: origin and live domains, the active relation tables, and the
// justification map. Variables are indexed 1..N; value i (row/column
// position within a variable's origin domain) is an implementation detail
// hidden behind the string-based API.
type Problem struct {
	n int

	// originTokens[i][k] is the k-th token of variable i's origin domain,
	// in input order. Index 0 is unused (variables are 1-based).
	originTokens [][]string

	// tokenIndex[i][tok] is the position of tok within originTokens[i].
	tokenIndex []map[string]int

	// present[i] holds the value indices currently in D(i), in a stable
	// enumeration order: input order, with removed values deleted in
	// place and restored values appended at the end (mirrors the
	// reference dyCSPAgent's present/absent bookkeeping).
	present [][]int

	// absent[i] holds the value indices currently removed from D(i), in
	// removal order.
	absent [][]int

	// justified[i][k] is the blamer variable ID for value k of variable i,
	// or blank (⊥) if the value is currently present.
	justified [][]int

	// rel[[2]int{i, j}] is the directed relation table R(i,j) for the
	// active arc i->j. Both directions are stored whenever {i,j} is
	// active.
	rel map[[2]int]*relation.Table

	// neighbors[i] is the set of j such that (i,j) is currently active.
	neighbors []map[int]bool
}
