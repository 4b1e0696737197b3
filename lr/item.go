package lr

import (
	"bytes"
	"fmt"

	"github.com/cnf/structhash"
	"github.com/npillmayer/lrkit/lr/iteratable"
	"golang.org/x/exp/slices"
)

// Item is a type for LR(1) items: a rule, a position (the "dot") within its
// RHS, and a set of lookahead terminals which may legally follow the
// completed rule. Items are immutable, advancing the dot creates a new item.
//
// Items compare structurally by head, body, dot position and the set of
// lookahead terminals, see Key().
type Item struct {
	rule *Rule
	dot  int
	la   *iteratable.Set
	key  string
}

// itemSignature is the structural identity of an item. It is serialized by
// structhash to derive keys and hashes.
type itemSignature struct {
	Head      string
	Body      []string
	Dot       int
	Lookahead []string
}

// NewItem creates an item for rule r with the dot at position dot. The
// lookahead set is copied.
func NewItem(r *Rule, dot int, lookahead *iteratable.Set) Item {
	if dot < 0 || dot > r.Len() {
		panic(fmt.Sprintf("item dot position %d out of range for rule %v", dot, r))
	}
	la := lookahead.Copy()
	sorted := la.Strings()
	slices.Sort(sorted)
	sig := itemSignature{
		Head:      r.LHS,
		Body:      r.rhs,
		Dot:       dot,
		Lookahead: sorted,
	}
	return Item{
		rule: r,
		dot:  dot,
		la:   la,
		key:  string(structhash.Dump(sig, 1)),
	}
}

// StartItem returns the initial item for a grammar: the first rule with the dot
// at position 0 and FOLLOW(start) as lookahead.
func StartItem(g *Grammar) Item {
	return NewItem(g.rules[0], 0, g.Follow(g.start))
}

// Rule returns the rule of an item.
func (i Item) Rule() *Rule {
	return i.rule
}

// Dot returns the dot position.
func (i Item) Dot() int {
	return i.dot
}

// Lookahead returns the lookahead terminals of an item.
func (i Item) Lookahead() []string {
	return i.la.Strings()
}

// Key returns a string which identifies an item structurally.
func (i Item) Key() string {
	return i.key
}

// Hash returns a digest of the structural identity of an item.
func (i Item) Hash() string {
	return fmt.Sprintf("%x", structhash.Md5(i.key, 1))
}

// Equals compares two items structurally.
func (i Item) Equals(other Item) bool {
	return i.key == other.key
}

// PeekSymbol returns the symbol after the dot, or "" if the item is complete.
func (i Item) PeekSymbol() string {
	if i.dot < len(i.rule.rhs) {
		return i.rule.rhs[i.dot]
	}
	return ""
}

// IsComplete is a predicate: is the dot behind the last symbol of the RHS?
func (i Item) IsComplete() bool {
	return i.dot == len(i.rule.rhs)
}

// Prefix returns the symbols of the RHS before the dot.
func (i Item) Prefix() []string {
	return i.rule.rhs[:i.dot]
}

// Advance returns a new item with the dot moved one symbol to the right.
// It panics for complete items.
func (i Item) Advance() Item {
	return NewItem(i.rule, i.dot+1, i.la)
}

func (i Item) String() string {
	var b bytes.Buffer
	b.WriteString("[")
	b.WriteString(i.rule.LHS)
	b.WriteString(" ➞")
	for n, sym := range i.rule.rhs {
		if n == i.dot {
			b.WriteString(" •")
		}
		b.WriteString(" ")
		b.WriteString(sym)
	}
	if i.IsComplete() {
		b.WriteString(" •")
	}
	b.WriteString(", ")
	b.WriteString(i.la.String())
	b.WriteString("]")
	return b.String()
}
