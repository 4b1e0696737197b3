package lr

import (
	"github.com/npillmayer/lrkit"
	"github.com/npillmayer/lrkit/lr/iteratable"
	"golang.org/x/tools/container/intsets"
)

// === Static Grammar Analysis ===============================================

// Refer to "Crafting A Compiler" by Charles N. Fisher & Richard J. LeBlanc, Jr.
// Section 4.5 and 4.5.3

// analyse computes FIRST and FOLLOW sets for all non-terminals reachable from
// the start symbol. Both are computed as fixed points over the reachable
// non-terminals, visited in dependency order. Left recursion and mutually
// recursive non-terminals therefore need no special treatment.
func (g *Grammar) analyse() {
	order := g.reachable()
	for _, N := range order {
		g.first[N] = iteratable.NewSet()
		g.follow[N] = iteratable.NewSet()
	}
	for _, N := range g.nonterminals.Strings() {
		if _, ok := g.first[N]; !ok {
			g.diagnostics.report(UnreachableSymbol, N, -1,
				"non-terminal %q not reachable from start symbol %q", N, g.start)
		}
	}
	g.computeFirstSets(order)
	g.computeFollowSets(order)
	for _, N := range order {
		tracer().Debugf("FIRST(%s) = %v, FOLLOW(%s) = %v", N, g.first[N], N, g.follow[N])
	}
}

// reachable returns all non-terminals reachable from the start symbol, in
// dependency order: a non-terminal appears after the non-terminals its rules
// depend upon, except for dependencies within a cycle.
func (g *Grammar) reachable() []string {
	var visited intsets.Sparse // serials of rules already traversed
	order := make([]string, 0, g.nonterminals.Size())
	seen := make(map[string]bool)
	var traverse func(N string)
	traverse = func(N string) {
		seen[N] = true
		for _, inx := range g.byHead[N] {
			if !visited.Insert(inx) {
				continue
			}
			for _, sym := range g.rules[inx].rhs {
				if g.IsNonTerminal(sym) && !seen[sym] {
					traverse(sym)
				}
			}
		}
		order = append(order, N)
	}
	traverse(g.start)
	tracer().Debugf("%d of %d rules reachable from %s", visited.Len(), len(g.rules), g.start)
	return order
}

func (g *Grammar) computeFirstSets(order []string) {
	for changed := true; changed; {
		changed = false
		for _, N := range order {
			F := g.first[N]
			size := F.Size()
			for _, inx := range g.byHead[N] {
				F.Union(g.FirstOfSequence(g.rules[inx].rhs))
			}
			if F.Size() != size {
				changed = true
			}
		}
	}
}

func (g *Grammar) computeFollowSets(order []string) {
	g.follow[g.start].Add(lrkit.EOF)
	for changed := true; changed; {
		changed = false
		for _, A := range order {
			for _, inx := range g.byHead[A] {
				rhs := g.rules[inx].rhs
				for i, X := range rhs {
					if !g.IsNonTerminal(X) {
						continue
					}
					F := g.follow[X]
					size := F.Size()
					beta := g.FirstOfSequence(rhs[i+1:])
					if beta.Contains(lrkit.Epsilon) {
						F.Union(beta.Remove(lrkit.Epsilon))
						F.Union(g.follow[A])
					} else {
						F.Union(beta)
					}
					if F.Size() != size {
						changed = true
					}
				}
			}
		}
	}
}

// First returns FIRST(sym). For a terminal, this is {sym}. For a non-terminal
// not reachable from the start symbol (or an unknown symbol), nil is returned.
//
// The set returned is owned by the grammar and must not be modified.
func (g *Grammar) First(sym string) *iteratable.Set {
	if g.IsTerminal(sym) {
		return iteratable.FromStrings(sym)
	}
	return g.first[sym]
}

// Follow returns FOLLOW(sym) for a non-terminal. For terminals,
// unreachable non-terminals and unknown symbols, nil is returned.
//
// The set returned is owned by the grammar and must not be modified.
func (g *Grammar) Follow(sym string) *iteratable.Set {
	return g.follow[sym]
}

// FirstOfSequence returns FIRST of a sequence of symbols: FIRST of the
// symbols from left to right (without ε), up to and including the first
// symbol which cannot derive ε. If all symbols may derive ε (including the
// case of an empty sequence), ε is part of the result.
//
// The set returned is a fresh copy.
func (g *Grammar) FirstOfSequence(syms []string) *iteratable.Set {
	F := iteratable.NewSet()
	for _, sym := range syms {
		if sym == lrkit.Epsilon {
			continue
		}
		if g.IsTerminal(sym) {
			F.Add(sym)
			return F
		}
		fsym := g.first[sym]
		if fsym == nil { // unreachable or unknown symbol
			return F
		}
		for _, t := range fsym.Values() {
			if t != lrkit.Epsilon {
				F.Add(t)
			}
		}
		if !fsym.Contains(lrkit.Epsilon) {
			return F
		}
	}
	F.Add(lrkit.Epsilon)
	return F
}

// IsNullable is a predicate: may sym derive the empty word?
func (g *Grammar) IsNullable(sym string) bool {
	return g.first[sym].Contains(lrkit.Epsilon)
}
