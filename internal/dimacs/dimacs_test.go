package dimacs

import (
	"strings"
	"testing"

	"github.com/ailrk/theorem-prover/clauses"
	"github.com/ailrk/theorem-prover/sat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead_SpecFixture(t *testing.T) {
	// spec.md §8 DIMACS scenario: header p cnf 3 2, body "1 -2 0" and
	// "2 3 0", yields [{p1, not p2}, {p2, p3}], satisfiable.
	src := "c a comment\np cnf 3 2\n1 -2 0\n2 3 0\n"
	cs, err := Read(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, cs, 2)
	assert.Equal(t, []clauses.Literal{
		{Positive: true, Symbol: "1"},
		{Positive: false, Symbol: "2"},
	}, cs[0].Literals())
	assert.Equal(t, []clauses.Literal{
		{Positive: true, Symbol: "2"},
		{Positive: true, Symbol: "3"},
	}, cs[1].Literals())
	assert.True(t, sat.IsSatisfiable(cs))
}

func TestRead_StopsAtPercentTerminator(t *testing.T) {
	src := "p cnf 1 2\n1 0\n%\n2 0\n"
	cs, err := Read(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, cs, 1)
}

func TestRead_BlankLineTerminatesLikePercent(t *testing.T) {
	// spec.md §6: "% or blank (terminator)" -- a blank line ends clause
	// reading exactly like '%', so the clause after it is never read.
	src := "p cnf 1 1\n\n1 0\n\n"
	cs, err := Read(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, cs, 0)
}

func TestRead_RejectsMalformedHeader(t *testing.T) {
	src := "p wat\n1 0\n"
	_, err := Read(strings.NewReader(src))
	assert.Error(t, err)
}
