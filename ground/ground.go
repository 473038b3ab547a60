// Package ground implements the grounding transform (spec.md §4.F,
// component F): a Skolemized formula's quantifier prefix is universal
// only (every existential was eliminated by package skolem), so
// grounding simply drops that prefix, leaving the quantifier-free
// matrix with its variables now read as implicitly, universally bound.
package ground

import "github.com/ailrk/theorem-prover/formula"

// Ground strips the universal prefix from f, returning its matrix.
func Ground(f formula.Formula[formula.Skolemized]) formula.Formula[formula.Grounded] {
	return formula.Wrap[formula.Grounded](strip(f.Node))
}

func strip(n formula.Node) formula.Node {
	if u, ok := n.(formula.Universal); ok {
		return strip(u.Body)
	}
	return n
}
