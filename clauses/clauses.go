// Package clauses implements clause extraction (spec.md §4.H, component
// H): flatten a CNF formula's conjunction-of-disjunctions-of-literals
// shape into the Clauses representation package sat operates on, and
// the canonical literal-symbol scheme that collapses a grounded atom
// into a single propositional name.
package clauses

import (
	"strings"

	"github.com/ailrk/theorem-prover/formula"
	"github.com/ailrk/theorem-prover/internal/ferr"
	"github.com/ailrk/theorem-prover/term"
)

// Literal is a propositional symbol together with its polarity.
type Literal struct {
	Positive bool
	Symbol   string
}

// Negate returns the complement of l.
func (l Literal) Negate() Literal { return Literal{Positive: !l.Positive, Symbol: l.Symbol} }

func (l Literal) String() string {
	if l.Positive {
		return l.Symbol
	}
	return "not " + l.Symbol
}

// Clause is an insertion-ordered, duplicate-free disjunction of
// literals. Go's native map iteration order is randomized, which would
// violate the deterministic-order requirement the DP loop depends on
// (spec.md §4.I "Determinism"), so membership is a side index next to an
// ordered slice rather than a bare map.
type Clause struct {
	lits []Literal
	seen map[Literal]struct{}
}

// NewClause returns an empty clause.
func NewClause() Clause {
	return Clause{seen: make(map[Literal]struct{})}
}

// Add inserts lit if not already present, preserving first-seen order.
func (c *Clause) Add(lit Literal) {
	if c.seen == nil {
		c.seen = make(map[Literal]struct{})
	}
	if _, ok := c.seen[lit]; ok {
		return
	}
	c.seen[lit] = struct{}{}
	c.lits = append(c.lits, lit)
}

// Literals returns the clause's literals in insertion order. The caller
// must not mutate the returned slice.
func (c Clause) Literals() []Literal { return c.lits }

// Len reports the number of distinct literals in c.
func (c Clause) Len() int { return len(c.lits) }

// IsEmpty reports whether c has no literals (the unsatisfiable clause).
func (c Clause) IsEmpty() bool { return len(c.lits) == 0 }

// Remove returns a copy of c with lit removed, if present.
func (c Clause) Remove(lit Literal) Clause {
	out := NewClause()
	for _, l := range c.lits {
		if l != lit {
			out.Add(l)
		}
	}
	return out
}

// Contains reports whether lit is a member of c.
func (c Clause) Contains(lit Literal) bool {
	_, ok := c.seen[lit]
	return ok
}

func (c Clause) String() string {
	parts := make([]string, len(c.lits))
	for i, l := range c.lits {
		parts[i] = l.String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// Clauses is an ordered collection of clauses, as extracted from a CNF
// formula or parsed from a DIMACS file.
type Clauses []Clause

// ClausesOf flattens f's conjunction-of-disjunctions-of-literals shape
// into a Clauses value. It returns a structural-violation error (package
// ferr) if any node is not a valid literal, conjunction, or disjunction
// — which can only happen if a caller feeds it a formula that skipped an
// earlier pipeline stage.
func ClausesOf(f formula.Formula[formula.CNF]) (Clauses, error) {
	var out Clauses
	var collector ferr.Collector
	for _, clauseRoot := range conjuncts(f.Node) {
		clause, err := clauseOf(clauseRoot)
		if err != nil {
			collector.Add(err)
			continue
		}
		out = append(out, clause)
	}
	if err := collector.ErrorOrNil(); err != nil {
		return nil, err
	}
	return out, nil
}

// conjuncts flattens the top-level right-nested Conjunction tree of n
// into its leaves, each of which is one clause's disjunction tree (or a
// single literal, for a unit clause).
func conjuncts(n formula.Node) []formula.Node {
	if c, ok := n.(formula.Conjunction); ok {
		return append(conjuncts(c.Left), conjuncts(c.Right)...)
	}
	return []formula.Node{n}
}

// clauseOf flattens the disjunction tree rooted at n into a Clause.
func clauseOf(n formula.Node) (Clause, error) {
	clause := NewClause()
	var collector ferr.Collector
	for _, leaf := range disjuncts(n) {
		lit, err := literalOf(leaf)
		if err != nil {
			collector.Add(err)
			continue
		}
		clause.Add(lit)
	}
	if err := collector.ErrorOrNil(); err != nil {
		return Clause{}, err
	}
	return clause, nil
}

func disjuncts(n formula.Node) []formula.Node {
	if d, ok := n.(formula.Disjunction); ok {
		return append(disjuncts(d.Left), disjuncts(d.Right)...)
	}
	return []formula.Node{n}
}

func literalOf(n formula.Node) (Literal, error) {
	switch v := n.(type) {
	case formula.Predicate:
		return Literal{Positive: true, Symbol: Symbol(v.Name, v.Args)}, nil
	case formula.Negation:
		pred, ok := v.Of.(formula.Predicate)
		if !ok {
			return Literal{}, ferr.Structuralf("clauses", "negation of non-atomic node %T in clause position", v.Of)
		}
		return Literal{Positive: false, Symbol: Symbol(pred.Name, pred.Args)}, nil
	default:
		return Literal{}, ferr.Structuralf("clauses", "expected a literal in clause position, got %T", n)
	}
}

// Symbol computes the canonical propositional name for the grounded
// atom name(args...), per spec.md §4.H: a variable argument contributes
// its own name, and a function argument contributes its name
// concatenated — with no separator — with the recursively-flattened
// form of its own arguments. For example, P(f(a, b), c) flattens to
// "P_fab_c".
func Symbol(name string, args []term.Term) string {
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, name)
	for _, a := range args {
		parts = append(parts, argSymbol(a))
	}
	return strings.Join(parts, "_")
}

func argSymbol(t term.Term) string {
	switch v := t.(type) {
	case term.Variable:
		return v.Name
	case term.Function:
		s := v.Name
		for _, a := range v.Args {
			s += argSymbol(a)
		}
		return s
	default:
		return ""
	}
}
