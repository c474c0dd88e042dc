package parse_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dycsp/parse"
)

func TestParseDomainsAndEdits(t *testing.T) {
	input := `2
1 a b
2 a b
c 0 a 1 2 a a b b
c 1 r 1 2
`
	inst, err := parse.Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, 2, inst.N)
	require.Equal(t, 1, inst.MaxT)
	require.Equal(t, []string{"a", "b"}, inst.Origin[1])
	require.Equal(t, []string{"a", "b"}, inst.Origin[2])

	require.Len(t, inst.Edits[0], 1)
	add := inst.Edits[0][0]
	require.Equal(t, 'a', add.Op)
	require.Equal(t, 1, add.I)
	require.Equal(t, 2, add.J)
	require.Equal(t, [][2]string{{"a", "a"}, {"b", "b"}}, add.Pairs)

	require.Len(t, inst.Edits[1], 1)
	retract := inst.Edits[1][0]
	require.Equal(t, 'r', retract.Op)
	require.Empty(t, retract.Pairs)
}

func TestParseRejectsBadVariableCount(t *testing.T) {
	_, err := parse.Parse(strings.NewReader("not-a-number\n"))
	require.ErrorIs(t, err, parse.ErrInputParse)
}

func TestParseRejectsUnknownOp(t *testing.T) {
	input := "1\n1 a\nc 0 x 1 1\n"
	_, err := parse.Parse(strings.NewReader(input))
	require.ErrorIs(t, err, parse.ErrInputParse)
}

func TestParseRejectsOddPairTokens(t *testing.T) {
	input := "2\n1 a b\n2 a b\nc 0 a 1 2 a a b\n"
	_, err := parse.Parse(strings.NewReader(input))
	require.ErrorIs(t, err, parse.ErrInputParse)
}

func TestParseRejectsRetractWithPairTokens(t *testing.T) {
	input := "2\n1 a b\n2 a b\nc 0 r 1 2 a a\n"
	_, err := parse.Parse(strings.NewReader(input))
	require.ErrorIs(t, err, parse.ErrInputParse)
}

func TestParseRejectsOutOfRangeVariable(t *testing.T) {
	input := "1\n1 a\nc 0 a 1 5 a a\n"
	_, err := parse.Parse(strings.NewReader(input))
	require.ErrorIs(t, err, parse.ErrUnknownVariable)
}

func TestParseRejectsVariableWithNoDomainLine(t *testing.T) {
	input := "2\n1 a b\nc 0 a 1 2 a a\n"
	_, err := parse.Parse(strings.NewReader(input))
	require.ErrorIs(t, err, parse.ErrUnknownVariable)
}

func TestParseNoConstraintLinesYieldsZeroMaxT(t *testing.T) {
	input := "1\n1 only\n"
	inst, err := parse.Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, 0, inst.MaxT)
	require.Empty(t, inst.Edits)
}
