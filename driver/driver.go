// Package driver exposes the whole-pipeline surface described in
// spec.md §6: run a Raw formula through every stage in order (NNF, PNF,
// Skolemize, Ground, CNF, clause extraction), then decide satisfiability
// or validity over the result.
package driver

import (
	"github.com/ailrk/theorem-prover/clauses"
	"github.com/ailrk/theorem-prover/cnf"
	"github.com/ailrk/theorem-prover/formula"
	"github.com/ailrk/theorem-prover/ground"
	"github.com/ailrk/theorem-prover/nnf"
	"github.com/ailrk/theorem-prover/pnf"
	"github.com/ailrk/theorem-prover/sat"
	"github.com/ailrk/theorem-prover/skolem"
)

// Pipeline runs f through every normal-form stage and extracts its
// clauses, in the fixed order spec.md §4 defines: NNF, PNF, Skolemize,
// Ground, CNF, clause extraction.
func Pipeline(f formula.Formula[formula.Raw]) (clauses.Clauses, error) {
	n := nnf.ToNNF(f)
	p := pnf.ToPNF(n)
	s := skolem.Skolemize(p)
	g := ground.Ground(s)
	c := cnf.ToCNF(g)
	return clauses.ClausesOf(c)
}

// IsSatisfiable runs cs through the Davis-Putnam procedure.
func IsSatisfiable(cs clauses.Clauses) bool { return sat.IsSatisfiable(cs) }

// IsValid reports whether f is valid: true iff the clauses of ¬f's
// pipeline are unsatisfiable (spec.md §6 "Validity via refutation").
func IsValid(f formula.Formula[formula.Raw]) (bool, error) {
	negated := formula.Wrap[formula.Raw](formula.Negation{Of: f.Node})
	cs, err := Pipeline(negated)
	if err != nil {
		return false, err
	}
	return !IsSatisfiable(cs), nil
}
