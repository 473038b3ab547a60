// Package cnf implements CNF conversion (spec.md §4.G, component G):
// distribute disjunction over conjunction until no disjunction has a
// conjunction beneath it. The matrix entering this stage is
// already negation-normal (no implication, no biconditional, negation
// only in front of a predicate — package nnf established that before
// package pnf and package skolem touched the formula), so this stage's
// only job is the OR/AND distribution itself.
package cnf

import "github.com/ailrk/theorem-prover/formula"

// ToCNF distributes every disjunction in f over the conjunctions beneath
// it, producing a conjunction of disjunctions of literals.
func ToCNF(f formula.Formula[formula.Grounded]) formula.Formula[formula.CNF] {
	return formula.Wrap[formula.CNF](toCNF(f.Node))
}

func toCNF(n formula.Node) formula.Node {
	switch v := n.(type) {
	case formula.Conjunction:
		return formula.Conjunction{Left: toCNF(v.Left), Right: toCNF(v.Right)}
	case formula.Disjunction:
		return distribute(toCNF(v.Left), toCNF(v.Right))
	default:
		return n
	}
}

// distribute applies (A and B) or C == (A or C) and (B or C), and its
// mirror image, until neither side of the disjunction is itself a
// conjunction.
func distribute(l, r formula.Node) formula.Node {
	if lc, ok := l.(formula.Conjunction); ok {
		return formula.Conjunction{
			Left:  distribute(lc.Left, r),
			Right: distribute(lc.Right, r),
		}
	}
	if rc, ok := r.(formula.Conjunction); ok {
		return formula.Conjunction{
			Left:  distribute(l, rc.Left),
			Right: distribute(l, rc.Right),
		}
	}
	return formula.Disjunction{Left: l, Right: r}
}
