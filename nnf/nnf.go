// Package nnf implements the NNF transform (spec.md §4.C, component C):
// eliminate implication/biconditional, then push negations to the leaves
// to a fixpoint.
package nnf

import "github.com/ailrk/theorem-prover/formula"

// ToNNF converts a Raw formula to negation normal form: no implication or
// biconditional remains, and every negation sits directly in front of a
// predicate.
func ToNNF(f formula.Formula[formula.Raw]) formula.Formula[formula.NNF] {
	n := eliminateArrows(f.Node)
	for {
		next, changed := pushNegations(n)
		n = next
		if !changed {
			break
		}
	}
	return formula.Wrap[formula.NNF](n)
}

// eliminateArrows rewrites A => B to (not A) or B, and A <=> B to
// (A and B) or ((not A) and (not B)), bottom-up. Both branches of the
// biconditional rewrite are built from the same eliminated sub-formula
// values, so the two branches share them; this package never modifies
// a formula.Node after building it.
func eliminateArrows(n formula.Node) formula.Node {
	switch v := n.(type) {
	case formula.Implication:
		return formula.Disjunction{
			Left:  formula.Negation{Of: eliminateArrows(v.Left)},
			Right: eliminateArrows(v.Right),
		}
	case formula.Biconditional:
		l := eliminateArrows(v.Left)
		r := eliminateArrows(v.Right)
		return formula.Disjunction{
			Left:  formula.Conjunction{Left: l, Right: r},
			Right: formula.Conjunction{Left: formula.Negation{Of: l}, Right: formula.Negation{Of: r}},
		}
	case formula.Negation:
		return formula.Negation{Of: eliminateArrows(v.Of)}
	case formula.Conjunction:
		return formula.Conjunction{Left: eliminateArrows(v.Left), Right: eliminateArrows(v.Right)}
	case formula.Disjunction:
		return formula.Disjunction{Left: eliminateArrows(v.Left), Right: eliminateArrows(v.Right)}
	case formula.Universal:
		return formula.Universal{Var: v.Var, Body: eliminateArrows(v.Body)}
	case formula.Existential:
		return formula.Existential{Var: v.Var, Body: eliminateArrows(v.Body)}
	default:
		return n
	}
}

// pushNegations applies De Morgan's laws and quantifier-negation once
// over the whole tree, reporting whether it rewrote anything. ToNNF
// repeats this to a fixpoint because a rewrite at one node can expose a
// double negation created by an enclosing rewrite on the same pass.
func pushNegations(n formula.Node) (formula.Node, bool) {
	switch v := n.(type) {
	case formula.Negation:
		switch inner := v.Of.(type) {
		case formula.Conjunction:
			l, _ := pushNegations(inner.Left)
			r, _ := pushNegations(inner.Right)
			return formula.Disjunction{Left: formula.Negation{Of: l}, Right: formula.Negation{Of: r}}, true
		case formula.Disjunction:
			l, _ := pushNegations(inner.Left)
			r, _ := pushNegations(inner.Right)
			return formula.Conjunction{Left: formula.Negation{Of: l}, Right: formula.Negation{Of: r}}, true
		case formula.Universal:
			b, _ := pushNegations(inner.Body)
			return formula.Existential{Var: inner.Var, Body: formula.Negation{Of: b}}, true
		case formula.Existential:
			b, _ := pushNegations(inner.Body)
			return formula.Universal{Var: inner.Var, Body: formula.Negation{Of: b}}, true
		case formula.Negation:
			b, _ := pushNegations(inner.Of)
			return b, true
		default:
			b, changed := pushNegations(v.Of)
			return formula.Negation{Of: b}, changed
		}
	case formula.Conjunction:
		l, c1 := pushNegations(v.Left)
		r, c2 := pushNegations(v.Right)
		return formula.Conjunction{Left: l, Right: r}, c1 || c2
	case formula.Disjunction:
		l, c1 := pushNegations(v.Left)
		r, c2 := pushNegations(v.Right)
		return formula.Disjunction{Left: l, Right: r}, c1 || c2
	case formula.Implication:
		l, c1 := pushNegations(v.Left)
		r, c2 := pushNegations(v.Right)
		return formula.Implication{Left: l, Right: r}, c1 || c2
	case formula.Biconditional:
		l, c1 := pushNegations(v.Left)
		r, c2 := pushNegations(v.Right)
		return formula.Biconditional{Left: l, Right: r}, c1 || c2
	case formula.Universal:
		b, c := pushNegations(v.Body)
		return formula.Universal{Var: v.Var, Body: b}, c
	case formula.Existential:
		b, c := pushNegations(v.Body)
		return formula.Existential{Var: v.Var, Body: b}, c
	default:
		return n, false
	}
}
