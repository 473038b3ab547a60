package nnf

import (
	"testing"

	"github.com/ailrk/theorem-prover/formula"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pred(name string) formula.Node { return formula.Predicate{Name: name} }

func TestToNNF_EliminatesImplication(t *testing.T) {
	raw := formula.Wrap[formula.Raw](formula.Implication{Left: pred("P"), Right: pred("Q")})
	got := ToNNF(raw)
	want := formula.Disjunction{Left: formula.Negation{Of: pred("P")}, Right: pred("Q")}
	assert.True(t, formula.Equal(got.Node, want), "got %s", got.Node)
}

func TestToNNF_EliminatesBiconditional(t *testing.T) {
	raw := formula.Wrap[formula.Raw](formula.Biconditional{Left: pred("P"), Right: pred("Q")})
	got := ToNNF(raw)
	want := formula.Disjunction{
		Left:  formula.Conjunction{Left: pred("P"), Right: pred("Q")},
		Right: formula.Conjunction{Left: formula.Negation{Of: pred("P")}, Right: formula.Negation{Of: pred("Q")}},
	}
	assert.True(t, formula.Equal(got.Node, want), "got %s", got.Node)
}

func TestToNNF_PushesNegationThroughConjunction(t *testing.T) {
	raw := formula.Wrap[formula.Raw](formula.Negation{Of: formula.Conjunction{Left: pred("P"), Right: pred("Q")}})
	got := ToNNF(raw)
	want := formula.Disjunction{Left: formula.Negation{Of: pred("P")}, Right: formula.Negation{Of: pred("Q")}}
	assert.True(t, formula.Equal(got.Node, want), "got %s", got.Node)
}

func TestToNNF_PushesNegationThroughQuantifiers(t *testing.T) {
	raw := formula.Wrap[formula.Raw](formula.Negation{Of: formula.Universal{Var: "x", Body: pred("P")}})
	got := ToNNF(raw)
	want := formula.Existential{Var: "x", Body: formula.Negation{Of: pred("P")}}
	assert.True(t, formula.Equal(got.Node, want), "got %s", got.Node)
}

func TestToNNF_CollapsesDoubleNegation(t *testing.T) {
	raw := formula.Wrap[formula.Raw](formula.Negation{Of: formula.Negation{Of: pred("P")}})
	got := ToNNF(raw)
	assert.True(t, formula.Equal(got.Node, pred("P")), "got %s", got.Node)
}

func TestToNNF_NestedArrowUnderNegationReachesFixpoint(t *testing.T) {
	// not (P => Q) should fully normalize to (P and (not Q)), which
	// requires eliminateArrows then at least one pushNegations pass.
	raw := formula.Wrap[formula.Raw](formula.Negation{
		Of: formula.Implication{Left: pred("P"), Right: pred("Q")},
	})
	got := ToNNF(raw)
	want := formula.Conjunction{Left: pred("P"), Right: formula.Negation{Of: pred("Q")}}
	require.True(t, formula.Equal(got.Node, want), "got %s", got.Node)
}
