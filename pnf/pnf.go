// Package pnf implements the PNF transform (spec.md §4.D, component D):
// pull every quantifier to the front of the formula, preserving relative
// order, renaming apart wherever two quantifiers would otherwise share a
// name or a quantifier would otherwise capture a free variable from the
// sibling branch it is merged with.
package pnf

import (
	"github.com/ailrk/theorem-prover/formula"
	"github.com/ailrk/theorem-prover/internal/fresh"
	"github.com/ailrk/theorem-prover/subst"
	"github.com/ailrk/theorem-prover/term"
)

// quant is one entry of an extracted quantifier prefix, in outside-in
// order.
type quant struct {
	universal bool
	v         string
}

// ToPNF pulls every quantifier in f to the front.
func ToPNF(f formula.Formula[formula.NNF]) formula.Formula[formula.PNF] {
	prefix, body := toPNF(f.Node, formula.FreeVars(f.Node))
	result := body
	for i := len(prefix) - 1; i >= 0; i-- {
		q := prefix[i]
		if q.universal {
			result = formula.Universal{Var: q.v, Body: result}
		} else {
			result = formula.Existential{Var: q.v, Body: result}
		}
	}
	return formula.Wrap[formula.PNF](result)
}

// toPNF strips every quantifier out of n and returns it as an outside-in
// prefix plus the quantifier-free body left behind. avoid names every
// variable already spoken for in the enclosing context (the whole
// formula's free variables, plus every prefix entry already chosen by an
// ancestor or an earlier sibling) — any quantifier that would reuse one
// of these names is alpha-renamed (a fresh.Name choice applied with
// subst.Substitute) before being added to the prefix.
func toPNF(n formula.Node, avoid term.Set) ([]quant, formula.Node) {
	switch v := n.(type) {
	case formula.Conjunction:
		return combine(v.Left, v.Right, avoid, func(l, r formula.Node) formula.Node {
			return formula.Conjunction{Left: l, Right: r}
		})
	case formula.Disjunction:
		return combine(v.Left, v.Right, avoid, func(l, r formula.Node) formula.Node {
			return formula.Disjunction{Left: l, Right: r}
		})
	case formula.Universal:
		return extract(true, v.Var, v.Body, avoid)
	case formula.Existential:
		return extract(false, v.Var, v.Body, avoid)
	default:
		// In NNF, Negation only ever wraps a Predicate, and Predicate is
		// already quantifier-free; both fall through here unchanged.
		return nil, n
	}
}

// extract pulls the outermost quantifier (universal, name v, over body)
// into the prefix, renaming it first if v collides with avoid, then
// recurses into the (possibly renamed) body with v added to avoid.
func extract(universal bool, v string, body formula.Node, avoid term.Set) ([]quant, formula.Node) {
	name := v
	if avoid.Contains(name) {
		name = fresh.Name(name, avoid)
		body = subst.Substitute(body, v, term.NewVariable(name))
	}
	innerAvoid := avoid.Clone()
	innerAvoid.Add(name)
	prefix, b := toPNF(body, innerAvoid)
	return append([]quant{{universal: universal, v: name}}, prefix...), b
}

// combine extracts the quantifier prefixes of both sides of a binary
// connective and concatenates them left-then-right. The right side is
// converted with the left side's chosen prefix names added to avoid, so
// a name reused by both branches (e.g. "forall x. P(x) and forall x.
// Q(x)") is renamed apart on the right rather than merged into one
// binder.
func combine(left, right formula.Node, avoid term.Set, join func(l, r formula.Node) formula.Node) ([]quant, formula.Node) {
	lp, lb := toPNF(left, avoid)
	rightAvoid := avoid.Clone()
	for _, q := range lp {
		rightAvoid.Add(q.v)
	}
	rp, rb := toPNF(right, rightAvoid)
	merged := make([]quant, 0, len(lp)+len(rp))
	merged = append(merged, lp...)
	merged = append(merged, rp...)
	return merged, join(lb, rb)
}
