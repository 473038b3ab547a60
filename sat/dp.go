// Package sat implements the Davis-Putnam propositional satisfiability
// procedure (spec.md §4.I, component I): unit propagation, pure-literal
// elimination, and resolution, applied in that priority order and
// restarted from the top of the loop every time one of them makes
// progress, until either the empty clause appears (unsatisfiable), the
// clause set empties out (satisfiable), or no rule applies to a
// non-empty, empty-clause-free set (also satisfiable — nothing left
// forces a contradiction).
package sat

import (
	"sort"

	"github.com/ailrk/theorem-prover/clauses"
)

// unitPropagate scans cur in order for the first unit clause (exactly
// one literal) and, if found, assigns that literal: every clause it
// satisfies is dropped, and its negation is struck from every surviving
// clause.
func unitPropagate(cur clauses.Clauses) (clauses.Clauses, bool) {
	for _, c := range cur {
		if c.Len() == 1 {
			return simplify(cur, c.Literals()[0]), true
		}
	}
	return cur, false
}

func simplify(cur clauses.Clauses, lit clauses.Literal) clauses.Clauses {
	out := make(clauses.Clauses, 0, len(cur))
	neg := lit.Negate()
	for _, c := range cur {
		if c.Contains(lit) {
			continue
		}
		if c.Contains(neg) {
			out = append(out, c.Remove(neg))
		} else {
			out = append(out, c)
		}
	}
	return out
}

// findPureLiteral scans every clause for a symbol that only ever
// appears with one polarity across the whole set, and returns that
// literal. Symbols are examined in sorted-name order so the choice is
// deterministic when more than one symbol qualifies.
func findPureLiteral(cur clauses.Clauses) (clauses.Literal, bool) {
	positive := make(map[string]bool)
	negative := make(map[string]bool)
	for _, c := range cur {
		for _, l := range c.Literals() {
			if l.Positive {
				positive[l.Symbol] = true
			} else {
				negative[l.Symbol] = true
			}
		}
	}
	symbols := make([]string, 0, len(positive)+len(negative))
	seen := make(map[string]bool)
	for s := range positive {
		if !seen[s] {
			seen[s] = true
			symbols = append(symbols, s)
		}
	}
	for s := range negative {
		if !seen[s] {
			seen[s] = true
			symbols = append(symbols, s)
		}
	}
	sort.Strings(symbols)
	for _, s := range symbols {
		switch {
		case positive[s] && !negative[s]:
			return clauses.Literal{Positive: true, Symbol: s}, true
		case negative[s] && !positive[s]:
			return clauses.Literal{Positive: false, Symbol: s}, true
		}
	}
	return clauses.Literal{}, false
}

func eliminatePure(cur clauses.Clauses, lit clauses.Literal) clauses.Clauses {
	out := make(clauses.Clauses, 0, len(cur))
	for _, c := range cur {
		if !c.Contains(lit) {
			out = append(out, c)
		}
	}
	return out
}

// chooseSymbol picks the resolution variable: the symbol occurring in
// the fewest clauses, ties broken by name, so a run over the same
// clause set always resolves in the same order. A symbol only
// qualifies if resolving on it would actually eliminate something: it
// must appear alone (without its own negation in the same clause) in
// at least one clause of each polarity. A symbol whose every
// occurrence is paired with its own negation inside a single
// tautological clause — e.g. the clauses of "P(x) or not P(x)" — has
// no resolution partner and is skipped, so resolveOn is never asked to
// resolve a symbol it cannot make progress on.
func chooseSymbol(cur clauses.Clauses) (string, bool) {
	counts := make(map[string]int)
	posOnly := make(map[string]bool)
	negOnly := make(map[string]bool)
	for _, c := range cur {
		hasPos := make(map[string]bool)
		hasNeg := make(map[string]bool)
		for _, l := range c.Literals() {
			counts[l.Symbol]++
			if l.Positive {
				hasPos[l.Symbol] = true
			} else {
				hasNeg[l.Symbol] = true
			}
		}
		for s := range hasPos {
			if !hasNeg[s] {
				posOnly[s] = true
			}
		}
		for s := range hasNeg {
			if !hasPos[s] {
				negOnly[s] = true
			}
		}
	}
	symbols := make([]string, 0, len(counts))
	for s := range counts {
		if posOnly[s] && negOnly[s] {
			symbols = append(symbols, s)
		}
	}
	if len(symbols) == 0 {
		return "", false
	}
	sort.Slice(symbols, func(i, j int) bool {
		if counts[symbols[i]] != counts[symbols[j]] {
			return counts[symbols[i]] < counts[symbols[j]]
		}
		return symbols[i] < symbols[j]
	})
	return symbols[0], true
}

// resolveOn resolves every clause containing +sym against every clause
// containing -sym, drops those resolved clauses (the complementary pair
// they came from cannot contribute anything further once resolved), and
// appends the resolvents. A resolvent that holds some symbol with both
// polarities is a tautology and is not appended. A clause containing
// both +sym and -sym is tautological — always true regardless of sym's
// assignment — and is left untouched in the surviving set rather than
// resolved.
func resolveOn(cur clauses.Clauses, sym string) clauses.Clauses {
	pos := clauses.Literal{Positive: true, Symbol: sym}
	neg := clauses.Literal{Positive: false, Symbol: sym}

	var posClauses, negClauses, rest clauses.Clauses
	for _, c := range cur {
		hasPos := c.Contains(pos)
		hasNeg := c.Contains(neg)
		switch {
		case hasPos && hasNeg:
			rest = append(rest, c)
		case hasPos:
			posClauses = append(posClauses, c)
		case hasNeg:
			negClauses = append(negClauses, c)
		default:
			rest = append(rest, c)
		}
	}

	out := make(clauses.Clauses, 0, len(rest)+len(posClauses)*len(negClauses))
	out = append(out, rest...)
	for _, p := range posClauses {
		for _, n := range negClauses {
			merged := clauses.NewClause()
			for _, l := range p.Literals() {
				if l != pos {
					merged.Add(l)
				}
			}
			for _, l := range n.Literals() {
				if l != neg {
					merged.Add(l)
				}
			}
			if stripTautologyPairs(merged).Len() != merged.Len() {
				// Tautological resolvent: always true, adds nothing.
				continue
			}
			out = append(out, merged)
		}
	}
	return out
}

// stripTautologyPairs drops every literal of a clause whose symbol
// appears with both polarities. This removes only the canceling pair
// for each such symbol, not the whole clause — a clause left with zero
// literals after stripping is returned as the empty clause. resolveOn
// uses it to detect a tautological resolvent: stripping shortens such a
// clause.
func stripTautologyPairs(c clauses.Clause) clauses.Clause {
	positive := make(map[string]bool)
	negative := make(map[string]bool)
	for _, l := range c.Literals() {
		if l.Positive {
			positive[l.Symbol] = true
		} else {
			negative[l.Symbol] = true
		}
	}
	out := clauses.NewClause()
	for _, l := range c.Literals() {
		if positive[l.Symbol] && negative[l.Symbol] {
			continue
		}
		out.Add(l)
	}
	return out
}

// IsSatisfiable runs the Davis-Putnam procedure over cs and reports
// whether it is satisfiable.
func IsSatisfiable(cs clauses.Clauses) bool {
	cur := cs
	for {
		for _, c := range cur {
			if c.IsEmpty() {
				return false
			}
		}
		if len(cur) == 0 {
			return true
		}
		if next, ok := unitPropagate(cur); ok {
			cur = next
			continue
		}
		if lit, ok := findPureLiteral(cur); ok {
			cur = eliminatePure(cur, lit)
			continue
		}
		if sym, ok := chooseSymbol(cur); ok {
			cur = resolveOn(cur, sym)
			continue
		}
		// No rule made progress on a non-empty, empty-clause-free set:
		// nothing left can force a contradiction.
		return true
	}
}
