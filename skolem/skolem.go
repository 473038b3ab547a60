// Package skolem implements Skolemisation (spec.md §4.E, component E):
// replace each existential variable with a fresh function of the
// universal variables enclosing it (a fresh constant if none enclose
// it), walking the PNF prefix outside-in. The result is equisatisfiable
// with its input, not equivalent — this is the one pipeline stage that
// does not preserve truth value, only satisfiability.
package skolem

import (
	"github.com/ailrk/theorem-prover/formula"
	"github.com/ailrk/theorem-prover/internal/fresh"
	"github.com/ailrk/theorem-prover/subst"
	"github.com/ailrk/theorem-prover/term"
)

// Skolemize strips every existential quantifier out of f, replacing each
// bound variable with a Skolem term, and leaves the universal prefix in
// place.
func Skolemize(f formula.Formula[formula.PNF]) formula.Formula[formula.Skolemized] {
	used := collectFunctionNames(f.Node)
	node, _ := skolemize(f.Node, nil, used)
	return formula.Wrap[formula.Skolemized](node)
}

// skolemize walks the quantifier prefix outside-in, accumulating the
// universal variables seen so far in uvars. used names every function
// and constant symbol already present in the formula, plus every Skolem
// name minted so far, so two Skolem terms (and a Skolem term and a
// pre-existing symbol) never collide.
func skolemize(n formula.Node, uvars []string, used term.Set) (formula.Node, term.Set) {
	switch v := n.(type) {
	case formula.Universal:
		body, used2 := skolemize(v.Body, append(uvars, v.Var), used)
		return formula.Universal{Var: v.Var, Body: body}, used2
	case formula.Existential:
		name := fresh.Name("sk", used)
		used = used.Add(name)
		var skTerm term.Term
		if len(uvars) == 0 {
			skTerm = term.NewConst(name)
		} else {
			args := make([]term.Term, len(uvars))
			for i, uv := range uvars {
				args[i] = term.NewVariable(uv)
			}
			skTerm = term.NewFunction(name, args)
		}
		replaced := subst.Substitute(v.Body, v.Var, skTerm)
		return skolemize(replaced, uvars, used)
	default:
		// PNF guarantees every quantifier sits in the prefix, so reaching
		// any other node means the prefix has been fully consumed and
		// what remains is the quantifier-free matrix.
		return n, used
	}
}

// collectFunctionNames gathers every predicate, function, constant, and
// variable name occurring anywhere in n, so a minted Skolem name can
// never collide with any symbol already in the formula — per spec.md
// §4.E, "Skolem names must not collide with any predicate, function, or
// variable name already in the formula." Collapsing all four kinds into
// one namespace is required because clauses.Symbol flattens a bare
// variable and a same-named 0-ary function identically: if a Skolem
// constant reused a name already in scope as a variable, the two would
// collide onto one propositional symbol after clause extraction even
// though they denote structurally distinct atoms.
func collectFunctionNames(n formula.Node) term.Set {
	out := term.NewSet()
	var walkNode func(formula.Node)
	walkNode = func(n formula.Node) {
		switch v := n.(type) {
		case formula.Predicate:
			out.Add(v.Name)
			for _, a := range v.Args {
				walkTerm(a, out)
			}
		case formula.Negation:
			walkNode(v.Of)
		case formula.Conjunction:
			walkNode(v.Left)
			walkNode(v.Right)
		case formula.Disjunction:
			walkNode(v.Left)
			walkNode(v.Right)
		case formula.Implication:
			walkNode(v.Left)
			walkNode(v.Right)
		case formula.Biconditional:
			walkNode(v.Left)
			walkNode(v.Right)
		case formula.Universal:
			out.Add(v.Var)
			walkNode(v.Body)
		case formula.Existential:
			out.Add(v.Var)
			walkNode(v.Body)
		}
	}
	walkNode(n)
	return out
}

func walkTerm(t term.Term, out term.Set) {
	switch v := t.(type) {
	case term.Function:
		out.Add(v.Name)
		for _, a := range v.Args {
			walkTerm(a, out)
		}
	case term.Variable:
		out.Add(v.Name)
	}
}
