package lr

import (
	"bytes"
	"fmt"

	"github.com/cnf/structhash"
	"github.com/npillmayer/lrkit/lr/iteratable"
	"golang.org/x/exp/slices"
)

// === Closure and Goto-Set Operations =======================================

// Refer to "Crafting A Compiler" by Charles N. Fisher & Richard J. LeBlanc, Jr.
// Section 6.2.1 LR(0) Parsing and 6.4 LR(1) Parsing

// State is a closed set of LR(1) items. States are identified by content:
// two states are equal if they contain the same items, regardless of the order
// in which the items have been discovered.
type State struct {
	g      *Grammar
	items  []Item
	keys   *iteratable.Set // item keys, in order of discovery
	sorted []string        // item keys, sorted
	hash   string
}

// newState creates a state from a kernel of items and closes it.
func newState(g *Grammar, kernel ...Item) *State {
	s := &State{g: g, keys: iteratable.NewSet()}
	for _, i := range kernel {
		s.add(i)
	}
	s.closure()
	s.sorted = s.keys.Strings()
	slices.Sort(s.sorted)
	s.hash = fmt.Sprintf("%x", structhash.Md5(s.sorted, 1))
	return s
}

func (s *State) add(i Item) bool {
	if s.keys.Contains(i.Key()) {
		return false
	}
	s.keys.Add(i.Key())
	s.items = append(s.items, i)
	return true
}

// closure adds an item [N ➞ • β, FOLLOW(N)] for every rule of N, for every
// item of s with a non-terminal N after the dot. Items added are inspected
// as well, until no new items appear.
func (s *State) closure() {
	for k := 0; k < len(s.items); k++ { // s.items grows during iteration
		N := s.items[k].PeekSymbol()
		if N == "" || !s.g.IsNonTerminal(N) {
			continue
		}
		la := s.g.Follow(N)
		if la == nil {
			continue
		}
		for _, r := range s.g.RulesByHead(N) {
			if s.add(NewItem(r, 0, la)) {
				tracer().Debugf("closure: %v", s.items[len(s.items)-1])
			}
		}
	}
}

// Closure returns the closure of a set of items.
func Closure(g *Grammar, items ...Item) *State {
	return newState(g, items...)
}

// Goto returns the state reached from s by symbol A: the closure of all items
// of s with A after the dot, with the dot advanced over A. If no item of s
// has A after the dot, nil is returned.
func (s *State) Goto(A string) *State {
	if A == "" {
		return nil
	}
	var kernel []Item
	for _, i := range s.items {
		if i.PeekSymbol() == A {
			kernel = append(kernel, i.Advance())
		}
	}
	if len(kernel) == 0 {
		return nil
	}
	return newState(s.g, kernel...)
}

// Items returns the items of s in order of discovery.
func (s *State) Items() []Item {
	return append([]Item(nil), s.items...)
}

// Size returns the number of items in s.
func (s *State) Size() int {
	return len(s.items)
}

// Contains is a predicate: is item i part of s?
func (s *State) Contains(i Item) bool {
	return s.keys.Contains(i.Key())
}

// Hash returns a digest over the items of s, independent of item order.
func (s *State) Hash() string {
	return s.hash
}

// Equals compares two states by content.
func (s *State) Equals(other *State) bool {
	if s == nil || other == nil {
		return s == other
	}
	if s.hash != other.hash {
		return false
	}
	return slices.Equal(s.sorted, other.sorted)
}

func (s *State) String() string {
	var b bytes.Buffer
	b.WriteString("{")
	for n, i := range s.items {
		if n > 0 {
			b.WriteString(" ")
		}
		b.WriteString(i.String())
	}
	b.WriteString("}")
	return b.String()
}

// Dump is a debugging helper, listing the items of s to the tracer.
func (s *State) Dump() {
	for _, i := range s.items {
		tracer().Debugf("    %v", i)
	}
}
