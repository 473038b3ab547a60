package pnf

import (
	"testing"

	"github.com/ailrk/theorem-prover/formula"
	"github.com/ailrk/theorem-prover/term"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func predX(name, v string) formula.Node {
	return formula.Predicate{Name: name, Args: []term.Term{term.NewVariable(v)}}
}

func TestToPNF_PullsSingleUniversalToFront(t *testing.T) {
	nnf := formula.Wrap[formula.NNF](formula.Universal{Var: "x", Body: predX("P", "x")})
	got := ToPNF(nnf)
	want := formula.Universal{Var: "x", Body: predX("P", "x")}
	assert.True(t, formula.Equal(got.Node, want), "got %s", got.Node)
}

func TestToPNF_MergesPrefixesAcrossConjunction(t *testing.T) {
	// (forall x. P(x)) and (exists y. Q(y)) -> forall x. exists y. (P(x) and Q(y))
	nnf := formula.Wrap[formula.NNF](formula.Conjunction{
		Left:  formula.Universal{Var: "x", Body: predX("P", "x")},
		Right: formula.Existential{Var: "y", Body: predX("Q", "y")},
	})
	got := ToPNF(nnf)

	outer, ok := got.Node.(formula.Universal)
	require.True(t, ok, "expected outer forall, got %T", got.Node)
	assert.Equal(t, "x", outer.Var)
	inner, ok := outer.Body.(formula.Existential)
	require.True(t, ok, "expected exists under forall, got %T", outer.Body)
	assert.Equal(t, "y", inner.Var)
	want := formula.Conjunction{Left: predX("P", "x"), Right: predX("Q", "y")}
	assert.True(t, formula.Equal(inner.Body, want), "got %s", inner.Body)
}

func TestToPNF_RenamesApartSharedVariableName(t *testing.T) {
	// (forall x. P(x)) and (forall x. Q(x)): both sides pick "x" from the
	// original formula, so the merge must rename one side's binder apart.
	nnf := formula.Wrap[formula.NNF](formula.Conjunction{
		Left:  formula.Universal{Var: "x", Body: predX("P", "x")},
		Right: formula.Universal{Var: "x", Body: predX("Q", "x")},
	})
	got := ToPNF(nnf)

	outer, ok := got.Node.(formula.Universal)
	require.True(t, ok, "expected outer forall, got %T", got.Node)
	inner, ok := outer.Body.(formula.Universal)
	require.True(t, ok, "expected forall under forall, got %T", outer.Body)
	assert.NotEqual(t, outer.Var, inner.Var, "binder names must be renamed apart")

	conj, ok := inner.Body.(formula.Conjunction)
	require.True(t, ok)
	leftPred, ok := conj.Left.(formula.Predicate)
	require.True(t, ok)
	rightPred, ok := conj.Right.(formula.Predicate)
	require.True(t, ok)
	assert.Equal(t, outer.Var, leftPred.Args[0].String())
	assert.Equal(t, inner.Var, rightPred.Args[0].String())
}
