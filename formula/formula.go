// Package formula implements the recursive formula model (spec.md §3,
// component A) and the stage-tagging discipline (spec.md §3
// "Stage tagging"): every Formula value is parameterised by a phantom
// stage type so that, for example, a Formula[NNF] cannot be fed to a
// transform that expects a Formula[PNF] without an explicit (and
// type-checked) re-stage. The stage parameter changes nothing about the
// runtime representation — it exists purely so the Go compiler enforces
// spec.md's "misuse is a compile-time ... error, not silent" requirement.
package formula

import (
	"strings"

	"github.com/ailrk/theorem-prover/term"
)

// Stage markers. These carry no data; they exist only to instantiate the
// Formula generic parameter and are never constructed.
type (
	Raw        struct{}
	NNF        struct{}
	PNF        struct{}
	Skolemized struct{}
	Grounded   struct{}
	CNF        struct{}
)

// Node is the untagged recursive formula representation described in
// spec.md §3: a predicate, one of five connectives, or one of two
// quantifiers. All transformations operate on Node; Formula[S] only adds
// the phantom stage tag at the package boundary.
type Node interface {
	isNode()
	String() string
}

// Predicate is name(args...). Zero args makes it a propositional atom.
type Predicate struct {
	Name string
	Args []term.Term
}

func (Predicate) isNode() {}

func (p Predicate) String() string {
	if len(p.Args) == 0 {
		return p.Name
	}
	parts := make([]string, len(p.Args))
	for i, a := range p.Args {
		parts[i] = a.String()
	}
	return p.Name + "(" + strings.Join(parts, ", ") + ")"
}

// Negation is ¬Of.
type Negation struct{ Of Node }

func (Negation) isNode()          {}
func (n Negation) String() string { return "not " + paren(n.Of) }

// Conjunction is Left ∧ Right.
type Conjunction struct{ Left, Right Node }

func (Conjunction) isNode()          {}
func (c Conjunction) String() string { return paren(c.Left) + " and " + paren(c.Right) }

// Disjunction is Left ∨ Right.
type Disjunction struct{ Left, Right Node }

func (Disjunction) isNode()          {}
func (d Disjunction) String() string { return paren(d.Left) + " or " + paren(d.Right) }

// Implication is Left → Right.
type Implication struct{ Left, Right Node }

func (Implication) isNode()          {}
func (i Implication) String() string { return paren(i.Left) + " => " + paren(i.Right) }

// Biconditional is Left ↔ Right.
type Biconditional struct{ Left, Right Node }

func (Biconditional) isNode()          {}
func (b Biconditional) String() string { return paren(b.Left) + " <=> " + paren(b.Right) }

// Universal is ∀Var. Body.
type Universal struct {
	Var  string
	Body Node
}

func (Universal) isNode()          {}
func (u Universal) String() string { return "forall " + u.Var + ". " + u.Body.String() }

// Existential is ∃Var. Body.
type Existential struct {
	Var  string
	Body Node
}

func (Existential) isNode()          {}
func (e Existential) String() string { return "exists " + e.Var + ". " + e.Body.String() }

func paren(n Node) string {
	switch n.(type) {
	case Predicate:
		return n.String()
	default:
		return "(" + n.String() + ")"
	}
}

// Formula pairs a Node with a phantom stage tag S. Construct one with
// Wrap; every pipeline stage (packages nnf, pnf, skolem, ground, cnf)
// consumes a Formula of its required input stage and returns one tagged
// with its output stage.
type Formula[S any] struct {
	Node Node
}

// Wrap tags n with stage S. Callers outside the pipeline stage packages
// should only call this at the point a Raw formula first enters the core
// (i.e. from a parser) — every other stage transition is produced by the
// corresponding transform package.
func Wrap[S any](n Node) Formula[S] { return Formula[S]{Node: n} }

// FreeVars returns the free variables of n (spec.md §3 "Free variables").
func FreeVars(n Node) term.Set {
	out := term.NewSet()
	collectFreeVars(n, out)
	return out
}

func collectFreeVars(n Node, out term.Set) {
	switch v := n.(type) {
	case Predicate:
		for _, a := range v.Args {
			for name := range term.FreeVars(a) {
				out.Add(name)
			}
		}
	case Negation:
		collectFreeVars(v.Of, out)
	case Conjunction:
		collectFreeVars(v.Left, out)
		collectFreeVars(v.Right, out)
	case Disjunction:
		collectFreeVars(v.Left, out)
		collectFreeVars(v.Right, out)
	case Implication:
		collectFreeVars(v.Left, out)
		collectFreeVars(v.Right, out)
	case Biconditional:
		collectFreeVars(v.Left, out)
		collectFreeVars(v.Right, out)
	case Universal:
		inner := FreeVars(v.Body)
		delete(inner, v.Var)
		for name := range inner {
			out.Add(name)
		}
	case Existential:
		inner := FreeVars(v.Body)
		delete(inner, v.Var)
		for name := range inner {
			out.Add(name)
		}
	}
}

// Equal reports whether a and b are structurally identical formula
// trees.
func Equal(a, b Node) bool {
	switch av := a.(type) {
	case Predicate:
		bv, ok := b.(Predicate)
		if !ok || av.Name != bv.Name || len(av.Args) != len(bv.Args) {
			return false
		}
		for i := range av.Args {
			if !term.Equal(av.Args[i], bv.Args[i]) {
				return false
			}
		}
		return true
	case Negation:
		bv, ok := b.(Negation)
		return ok && Equal(av.Of, bv.Of)
	case Conjunction:
		bv, ok := b.(Conjunction)
		return ok && Equal(av.Left, bv.Left) && Equal(av.Right, bv.Right)
	case Disjunction:
		bv, ok := b.(Disjunction)
		return ok && Equal(av.Left, bv.Left) && Equal(av.Right, bv.Right)
	case Implication:
		bv, ok := b.(Implication)
		return ok && Equal(av.Left, bv.Left) && Equal(av.Right, bv.Right)
	case Biconditional:
		bv, ok := b.(Biconditional)
		return ok && Equal(av.Left, bv.Left) && Equal(av.Right, bv.Right)
	case Universal:
		bv, ok := b.(Universal)
		return ok && av.Var == bv.Var && Equal(av.Body, bv.Body)
	case Existential:
		bv, ok := b.(Existential)
		return ok && av.Var == bv.Var && Equal(av.Body, bv.Body)
	default:
		return false
	}
}
