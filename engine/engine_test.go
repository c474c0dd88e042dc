package engine_test

import (
	"testing"

	"github.com/katalvlaran/dycsp/engine"
	"github.com/stretchr/testify/require"
)

func newTestProblem(t *testing.T) *engine.Problem {
	t.Helper()
	p, err := engine.NewProblem(2, map[int][]string{
		1: {"a", "b"},
		2: {"a", "b"},
	})
	require.NoError(t, err)
	return p
}

func TestNewProblem_MissingDomain(t *testing.T) {
	_, err := engine.NewProblem(2, map[int][]string{1: {"a"}})
	require.ErrorIs(t, err, engine.ErrMissingDomain)
}

func TestNewProblem_UnknownVariable(t *testing.T) {
	_, err := engine.NewProblem(1, map[int][]string{2: {"a"}})
	require.ErrorIs(t, err, engine.ErrUnknownVariable)
}

func TestNewProblem_BadCount(t *testing.T) {
	_, err := engine.NewProblem(0, nil)
	require.ErrorIs(t, err, engine.ErrBadVariableCount)
}

func TestLiveOriginContains(t *testing.T) {
	p := newTestProblem(t)
	require.ElementsMatch(t, []string{"a", "b"}, p.Live(1))
	require.ElementsMatch(t, []string{"a", "b"}, p.Origin(1))
	require.True(t, p.Contains(1, "a"))
	require.False(t, p.Contains(1, "z"))
}

func TestRemoveRestorePairedWithJustification(t *testing.T) {
	p := newTestProblem(t)

	require.True(t, p.Remove(1, "b"))
	require.False(t, p.Contains(1, "b"))
	p.Blame(1, "b", 2)
	k, ok := p.Blamer(1, "b")
	require.True(t, ok)
	require.Equal(t, 2, k)

	// Removing again is a no-op.
	require.False(t, p.Remove(1, "b"))

	require.True(t, p.Restore(1, "b"))
	p.Clear(1, "b")
	require.True(t, p.Contains(1, "b"))
	_, ok = p.Blamer(1, "b")
	require.False(t, ok)
}

func TestPresentOrderingNextFirstLast(t *testing.T) {
	p, err := engine.NewProblem(1, map[int][]string{1: {"a", "b", "c"}})
	require.NoError(t, err)

	first, ok := p.First(1)
	require.True(t, ok)
	require.Equal(t, "a", first)

	last, ok := p.Last(1)
	require.True(t, ok)
	require.Equal(t, "c", last)

	nxt, ok := p.NextAfter(1, "a")
	require.True(t, ok)
	require.Equal(t, "b", nxt)

	_, ok = p.NextAfter(1, "c")
	require.False(t, ok)

	// Removing "b" closes the gap in present(1) order.
	p.Remove(1, "b")
	p.Blame(1, "b", 1)
	nxt, ok = p.NextAfter(1, "a")
	require.True(t, ok)
	require.Equal(t, "c", nxt)

	// Restoring appends at the end of present(1).
	p.Restore(1, "b")
	p.Clear(1, "b")
	last, ok = p.Last(1)
	require.True(t, ok)
	require.Equal(t, "b", last)
}

func TestActivateDeactivateSymmetry(t *testing.T) {
	p := newTestProblem(t)

	err := p.Activate(1, 2, [][2]string{{"a", "b"}})
	require.NoError(t, err)
	require.True(t, p.IsActive(1, 2))
	require.True(t, p.IsActive(2, 1))
	require.True(t, p.Check(1, 2, "a", "b"))
	require.True(t, p.Check(2, 1, "b", "a"))
	require.False(t, p.Check(1, 2, "a", "a"))
	require.ElementsMatch(t, []int{2}, p.ActiveNeighbors(1))

	err = p.Activate(1, 2, nil)
	require.ErrorIs(t, err, engine.ErrConstraintAlreadyActive)

	require.NoError(t, p.Deactivate(1, 2))
	require.False(t, p.IsActive(1, 2))
	require.False(t, p.IsActive(2, 1))
	require.Empty(t, p.ActiveNeighbors(1))

	err = p.Deactivate(1, 2)
	require.ErrorIs(t, err, engine.ErrConstraintNotActive)
}

func TestActivateRejectsSelfAndUnknown(t *testing.T) {
	p := newTestProblem(t)
	require.ErrorIs(t, p.Activate(1, 1, nil), engine.ErrSelfConstraint)
	require.ErrorIs(t, p.Activate(1, 99, nil), engine.ErrUnknownVariable)
}

func TestSnapshotRoundTrip(t *testing.T) {
	p := newTestProblem(t)
	before := p.Snapshot()

	require.NoError(t, p.Activate(1, 2, [][2]string{{"a", "a"}}))
	require.NoError(t, p.Deactivate(1, 2))

	// No propagation ran in this test (engine alone doesn't propagate),
	// so domains/justifications are untouched by activate+deactivate.
	after := p.Snapshot()
	require.True(t, before.Equal(after))
}
