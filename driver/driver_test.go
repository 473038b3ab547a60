package driver

import (
	"testing"

	"github.com/ailrk/theorem-prover/formula"
	"github.com/ailrk/theorem-prover/term"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func px(name, v string) formula.Node {
	return formula.Predicate{Name: name, Args: []term.Term{term.NewVariable(v)}}
}

func TestIsValid_LawOfExcludedMiddle(t *testing.T) {
	// P(x) or not P(x)
	f := formula.Wrap[formula.Raw](formula.Disjunction{
		Left:  px("P", "x"),
		Right: formula.Negation{Of: px("P", "x")},
	})
	valid, err := IsValid(f)
	require.NoError(t, err)
	assert.True(t, valid)
}

func TestIsValid_ContingentFormulaIsNotValid(t *testing.T) {
	// P(x) alone is not valid: its negation, not P(x), is satisfiable.
	f := formula.Wrap[formula.Raw](px("P", "x"))
	valid, err := IsValid(f)
	require.NoError(t, err)
	assert.False(t, valid)
}

func TestIsValid_UniversallyQuantifiedTautologyIsValid(t *testing.T) {
	// forall x. (P(x) => P(x))
	f := formula.Wrap[formula.Raw](formula.Universal{
		Var:  "x",
		Body: formula.Implication{Left: px("P", "x"), Right: px("P", "x")},
	})
	valid, err := IsValid(f)
	require.NoError(t, err)
	assert.True(t, valid)
}

func TestPipeline_GroundPredicateProducesSingleUnitClause(t *testing.T) {
	f := formula.Wrap[formula.Raw](px("P", "x"))
	cs, err := Pipeline(f)
	require.NoError(t, err)
	require.Len(t, cs, 1)
	assert.Equal(t, 1, cs[0].Len())
}
