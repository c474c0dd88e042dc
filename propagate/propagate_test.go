package propagate_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dycsp/engine"
	"github.com/katalvlaran/dycsp/propagate"
)

// newAlgos returns one fresh Propagator per algorithm under test, each
// wrapping its own *engine.Problem built from origin. Running every
// scenario against both lets a single table exercise DnAC-4 and DnAC-6
// identically — they must agree on every resulting domain.
func newAlgos(t *testing.T, origin map[int][]string) map[string]propagate.Propagator {
	t.Helper()

	algos := make(map[string]propagate.Propagator, 2)
	for name, ctor := range map[string]func(*engine.Problem) propagate.Propagator{
		"DnAC4": func(p *engine.Problem) propagate.Propagator { return propagate.NewDnAC4(p) },
		"DnAC6": func(p *engine.Problem) propagate.Propagator { return propagate.NewDnAC6(p) },
	} {
		p, err := engine.NewProblem(len(origin), origin)
		require.NoError(t, err)
		algos[name] = ctor(p)
	}
	return algos
}

func problemOf(t *testing.T, algo propagate.Propagator) *engine.Problem {
	t.Helper()
	switch a := algo.(type) {
	case *propagate.DnAC4:
		return a.Problem()
	case *propagate.DnAC6:
		return a.Problem()
	default:
		t.Fatalf("unknown propagator type %T", algo)
		return nil
	}
}

// TestOnAddFullyCompatibleKeepsEveryValue: when every cross-product pair
// is allowed, activating the arc must not remove anything.
func TestOnAddFullyCompatibleKeepsEveryValue(t *testing.T) {
	for name, algo := range newAlgos(t, map[int][]string{
		1: {"a1", "a2"},
		2: {"b1", "b2"},
	}) {
		t.Run(name, func(t *testing.T) {
			pairs := [][2]string{{"a1", "b1"}, {"a1", "b2"}, {"a2", "b1"}, {"a2", "b2"}}
			require.NoError(t, algo.OnAdd(1, 2, pairs))

			p := problemOf(t, algo)
			require.ElementsMatch(t, []string{"a1", "a2"}, p.Live(1))
			require.ElementsMatch(t, []string{"b1", "b2"}, p.Live(2))
		})
	}
}

// TestOnAddRemovesUnsupportedValues: a value with no compatible partner
// across the new arc must be removed and blamed on the other endpoint.
func TestOnAddRemovesUnsupportedValues(t *testing.T) {
	for name, algo := range newAlgos(t, map[int][]string{
		1: {"a1", "a2"},
		2: {"b1", "b2"},
	}) {
		t.Run(name, func(t *testing.T) {
			// a2 has no support: (a2,b1) and (a2,b2) are both disallowed.
			pairs := [][2]string{{"a1", "b1"}, {"a1", "b2"}}
			require.NoError(t, algo.OnAdd(1, 2, pairs))

			p := problemOf(t, algo)
			require.Equal(t, []string{"a1"}, p.Live(1))
			require.False(t, p.Contains(1, "a2"))
			blamer, ok := p.Blamer(1, "a2")
			require.True(t, ok)
			require.Equal(t, 2, blamer)

			require.ElementsMatch(t, []string{"b1", "b2"}, p.Live(2))
		})
	}
}

// TestOnAddCascadesAcrossChain: removing a value from variable 2 must
// propagate onward to variable 3 when 3's only support depended on it.
func TestOnAddCascadesAcrossChain(t *testing.T) {
	for name, algo := range newAlgos(t, map[int][]string{
		1: {"a1", "a2"},
		2: {"b1", "b2"},
		3: {"c1", "c2"},
	}) {
		t.Run(name, func(t *testing.T) {
			// Arc (2,3): c1 is only compatible with b2, c2 only with b1.
			require.NoError(t, algo.OnAdd(2, 3, [][2]string{{"b1", "c2"}, {"b2", "c1"}}))
			p := problemOf(t, algo)
			require.ElementsMatch(t, []string{"b1", "b2"}, p.Live(2))
			require.ElementsMatch(t, []string{"c1", "c2"}, p.Live(3))

			// Arc (1,2): only (a1,b1) is allowed, so b2 has no support
			// across (1,2) and is driven out, which must cascade and
			// remove c1 while c2 keeps its support b1.
			require.NoError(t, algo.OnAdd(1, 2, [][2]string{{"a1", "b1"}}))

			require.Equal(t, []string{"b1"}, p.Live(2))
			require.False(t, p.Contains(2, "b2"))
			require.Equal(t, []string{"c2"}, p.Live(3))
			require.False(t, p.Contains(3, "c1"))
		})
	}
}

// TestOnRetractRestoresValuesItJustified: retracting the arc that
// justified a removal must bring the value back, when no other active
// neighbor re-excludes it.
func TestOnRetractRestoresValuesItJustified(t *testing.T) {
	for name, algo := range newAlgos(t, map[int][]string{
		1: {"a1", "a2"},
		2: {"b1", "b2"},
	}) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, algo.OnAdd(1, 2, [][2]string{{"a1", "b1"}, {"a1", "b2"}}))
			p := problemOf(t, algo)
			require.False(t, p.Contains(1, "a2"))

			require.NoError(t, algo.OnRetract(1, 2))
			require.True(t, p.Contains(1, "a2"))
			_, blamed := p.Blamer(1, "a2")
			require.False(t, blamed)
			require.False(t, p.IsActive(1, 2))
		})
	}
}

// TestOnRetractReexcludesViaOtherNeighbor: a value restored by retracting
// one arc must be removed again immediately if a different still-active
// neighbor offers it no support.
func TestOnRetractReexcludesViaOtherNeighbor(t *testing.T) {
	for name, algo := range newAlgos(t, map[int][]string{
		1: {"a1", "a2"},
		2: {"b1", "b2"},
		3: {"c1"},
	}) {
		t.Run(name, func(t *testing.T) {
			// (1,3): a2 has no support against c1.
			require.NoError(t, algo.OnAdd(1, 3, [][2]string{{"a1", "c1"}}))
			// (1,2): fully compatible, does not re-justify a2.
			require.NoError(t, algo.OnAdd(1, 2, [][2]string{{"a1", "b1"}, {"a1", "b2"}, {"a2", "b1"}, {"a2", "b2"}}))

			p := problemOf(t, algo)
			require.False(t, p.Contains(1, "a2"))
			blamer, _ := p.Blamer(1, "a2")
			require.Equal(t, 3, blamer)

			// Retracting (1,2) (which never blamed a2) must not resurrect a2.
			require.NoError(t, algo.OnRetract(1, 2))
			require.False(t, p.Contains(1, "a2"))
		})
	}
}

// TestOnRetractInactiveArcErrors covers spec.md §7's RetractInactive
// policy surface: the propagator reports ErrNotActive rather than
// panicking or silently succeeding.
func TestOnRetractInactiveArcErrors(t *testing.T) {
	for name, algo := range newAlgos(t, map[int][]string{
		1: {"a1"},
		2: {"b1"},
	}) {
		t.Run(name, func(t *testing.T) {
			err := algo.OnRetract(1, 2)
			require.ErrorIs(t, err, propagate.ErrNotActive)
		})
	}
}

// TestOnAddRejectsSelfConstraintAndDuplicates checks that propagate
// surfaces engine's constraint errors unchanged rather than masking them.
func TestOnAddRejectsSelfConstraintAndDuplicates(t *testing.T) {
	for name, algo := range newAlgos(t, map[int][]string{
		1: {"a1"},
		2: {"b1"},
	}) {
		t.Run(name, func(t *testing.T) {
			require.ErrorIs(t, algo.OnAdd(1, 1, [][2]string{{"a1", "a1"}}), engine.ErrSelfConstraint)

			require.NoError(t, algo.OnAdd(1, 2, [][2]string{{"a1", "b1"}}))
			err := algo.OnAdd(1, 2, [][2]string{{"a1", "b1"}})
			require.ErrorIs(t, err, engine.ErrConstraintAlreadyActive)
		})
	}
}
