package lr

import (
	"fmt"
	"io"
	"strings"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
)

// === CFSM Construction =====================================================

// CFSMState is a state within the CFSM for a grammar.
type CFSMState struct {
	ID     int    // serial ID of this state, in order of discovery
	*State        // closed set of items
	Accept bool   // does this state contain a completed rule for the start symbol?
}

// CFSM edge between 2 states, directed and labeled with a symbol
type cfsmEdge struct {
	from  *CFSMState
	to    *CFSMState
	label string
}

func (s *CFSMState) String() string {
	return fmt.Sprintf("(state %d | [%d])", s.ID, s.Size())
}

func (s *CFSMState) containsCompletedStartRule() bool {
	for _, i := range s.items {
		if i.IsComplete() && i.rule.LHS == s.g.start {
			return true
		}
	}
	return false
}

// We need this for the set of states. It sorts states by serial ID.
func stateComparator(s1, s2 interface{}) int {
	c1 := s1.(*CFSMState)
	c2 := s2.(*CFSMState)
	return utils.IntComparator(c1.ID, c2.ID)
}

// CFSM is the characteristic finite state machine for a LR grammar, i.e. the
// LR(1) state diagram. It is constructed together with the parse table and
// kept for inspection and debugging.
type CFSM struct {
	g      *Grammar
	states *treeset.Set            // all the states, ordered by ID
	byHash map[string][]*CFSMState // states bucketed by content hash
	edges  *arraylist.List         // all the edges between states
	S0     *CFSMState              // start state
}

// create an empty (initial) CFSM automata.
func emptyCFSM(g *Grammar) *CFSM {
	return &CFSM{
		g:      g,
		states: treeset.NewWith(stateComparator),
		byHash: make(map[string][]*CFSMState),
		edges:  arraylist.New(),
	}
}

// addState adds a state to the CFSM, if no state with equal content is
// present. It returns the CFSM state for s and a flag indicating whether it
// has been newly created.
func (c *CFSM) addState(s *State) (*CFSMState, bool) {
	if cs := c.findState(s); cs != nil {
		return cs, false
	}
	cs := &CFSMState{ID: c.states.Size(), State: s}
	cs.Accept = cs.containsCompletedStartRule()
	c.states.Add(cs)
	c.byHash[s.Hash()] = append(c.byHash[s.Hash()], cs)
	return cs, true
}

func (c *CFSM) findState(s *State) *CFSMState {
	for _, cs := range c.byHash[s.Hash()] {
		if cs.State.Equals(s) {
			return cs
		}
	}
	return nil
}

func (c *CFSM) addEdge(from, to *CFSMState, sym string) {
	c.edges.Add(&cfsmEdge{from: from, to: to, label: sym})
}

// Size returns the number of states.
func (c *CFSM) Size() int {
	return c.states.Size()
}

// State returns the state with the given ID, or nil.
func (c *CFSM) State(id int) *CFSMState {
	if id < 0 || id >= c.states.Size() {
		return nil
	}
	return c.states.Values()[id].(*CFSMState)
}

// EachState calls f for every state, in order of IDs.
func (c *CFSM) EachState(f func(*CFSMState)) {
	it := c.states.Iterator()
	for it.Next() {
		f(it.Value().(*CFSMState))
	}
}

// EachEdge calls f for every transition, in order of construction.
func (c *CFSM) EachEdge(f func(from, to *CFSMState, sym string)) {
	it := c.edges.Iterator()
	for it.Next() {
		e := it.Value().(*cfsmEdge)
		f(e.from, e.to, e.label)
	}
}

// Dump is a debugging helper, tracing all states and their items.
func (c *CFSM) Dump() {
	c.EachState(func(s *CFSMState) {
		tracer().Debugf("--- state %03d -----------", s.ID)
		s.State.Dump()
	})
	tracer().Debugf("-------------------------")
}

// WriteGraphViz exports a CFSM to the Graphviz Dot format.
func (c *CFSM) WriteGraphViz(w io.Writer) error {
	var b strings.Builder
	b.WriteString(`digraph {
graph [splines=true, fontname=Helvetica, fontsize=10];
node [shape=Mrecord, style=filled, fontname=Helvetica, fontsize=10];
edge [fontname=Helvetica, fontsize=10];

`)
	c.EachState(func(s *CFSMState) {
		b.WriteString(fmt.Sprintf("s%03d [fillcolor=%s label=\"{%03d | %s}\"]\n",
			s.ID, nodecolor(s), s.ID, forGraphviz(s.State)))
	})
	c.EachEdge(func(from, to *CFSMState, sym string) {
		b.WriteString(fmt.Sprintf("s%03d -> s%03d [label=\"%s\"]\n", from.ID, to.ID, escapeDot(sym)))
	})
	b.WriteString("}\n")
	_, err := io.WriteString(w, b.String())
	return err
}

func nodecolor(state *CFSMState) string {
	if state.Accept {
		return "lightgray"
	}
	return "white"
}

func forGraphviz(s *State) string {
	lines := make([]string, len(s.items))
	for n, i := range s.items {
		lines[n] = escapeDot(i.String())
	}
	return strings.Join(lines, "\\l") + "\\l"
}

var dotEscaper = strings.NewReplacer(
	`\`, `\\`, `"`, `\"`, `{`, `\{`, `}`, `\}`, `|`, `\|`, `<`, `\<`, `>`, `\>`,
)

func escapeDot(s string) string {
	return dotEscaper.Replace(s)
}
