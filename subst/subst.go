// Package subst implements capture-avoiding substitution and
// alpha-renaming (spec.md §4.B, component B). Substitute operates on the
// stage-erased formula.Node since it is reused across several stages
// (PNF's capture-avoidance renaming, Skolemisation's existential
// replacement); callers that need a stage-tagged result re-wrap with
// formula.Wrap at the package boundary.
package subst

import (
	"github.com/ailrk/theorem-prover/formula"
	"github.com/ailrk/theorem-prover/internal/fresh"
	"github.com/ailrk/theorem-prover/term"
)

// Substitute replaces every free occurrence of the variable named from
// with the term to, throughout n, avoiding variable capture.
func Substitute(n formula.Node, from string, to term.Term) formula.Node {
	switch v := n.(type) {
	case formula.Predicate:
		args := make([]term.Term, len(v.Args))
		for i, a := range v.Args {
			args[i] = term.Substitute(a, from, to)
		}
		return formula.Predicate{Name: v.Name, Args: args}
	case formula.Negation:
		return formula.Negation{Of: Substitute(v.Of, from, to)}
	case formula.Conjunction:
		return formula.Conjunction{Left: Substitute(v.Left, from, to), Right: Substitute(v.Right, from, to)}
	case formula.Disjunction:
		return formula.Disjunction{Left: Substitute(v.Left, from, to), Right: Substitute(v.Right, from, to)}
	case formula.Implication:
		return formula.Implication{Left: Substitute(v.Left, from, to), Right: Substitute(v.Right, from, to)}
	case formula.Biconditional:
		return formula.Biconditional{Left: Substitute(v.Left, from, to), Right: Substitute(v.Right, from, to)}
	case formula.Universal:
		return substQuant(v.Var, v.Body, from, to, func(name string, body formula.Node) formula.Node {
			return formula.Universal{Var: name, Body: body}
		})
	case formula.Existential:
		return substQuant(v.Var, v.Body, from, to, func(name string, body formula.Node) formula.Node {
			return formula.Existential{Var: name, Body: body}
		})
	default:
		return n
	}
}

// substQuant implements the quantifier case of spec.md §4.B: if y==x,
// the quantifier shadows x and nothing happens below it; if y is free in
// to, the quantifier is alpha-renamed first to avoid capturing a free
// variable of to; otherwise substitution simply recurses into the body.
func substQuant(y string, body formula.Node, x string, to term.Term, rebuild func(string, formula.Node) formula.Node) formula.Node {
	if y == x {
		return rebuild(y, body)
	}
	toFree := term.FreeVars(to)
	if toFree.Contains(y) {
		taken := formula.FreeVars(body)
		taken.Add(x)
		for name := range toFree {
			taken.Add(name)
		}
		freshVar := fresh.Name(y, taken)
		renamedBody := Substitute(body, y, term.NewVariable(freshVar))
		return rebuild(freshVar, Substitute(renamedBody, x, to))
	}
	return rebuild(y, Substitute(body, x, to))
}

// AlphaRename renames the bound variable of a quantifier node to a fresh
// name not free in its body, leaving every other node unchanged. Package
// pnf does not call it; pnf renames a binder with fresh.Name and
// Substitute directly.
func AlphaRename(n formula.Node) formula.Node {
	switch v := n.(type) {
	case formula.Universal:
		freshVar := fresh.Name(v.Var, formula.FreeVars(v.Body))
		return formula.Universal{Var: freshVar, Body: Substitute(v.Body, v.Var, term.NewVariable(freshVar))}
	case formula.Existential:
		freshVar := fresh.Name(v.Var, formula.FreeVars(v.Body))
		return formula.Existential{Var: freshVar, Body: Substitute(v.Body, v.Var, term.NewVariable(freshVar))}
	default:
		return n
	}
}
