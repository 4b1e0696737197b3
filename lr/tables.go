package lr

import (
	"bytes"
	"fmt"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/npillmayer/lrkit"
	"github.com/npillmayer/lrkit/lr/sparse"
)

// === Parse Table ===========================================================

// ActionKind is the kind of an entry in the ACTION table.
type ActionKind int8

// Kinds of parser actions. The zero value denotes the absence of an action.
const (
	Error ActionKind = iota
	Shift
	Reduce
	Accept
)

func (k ActionKind) String() string {
	switch k {
	case Shift:
		return "shift"
	case Reduce:
		return "reduce"
	case Accept:
		return "accept"
	}
	return "error"
}

// Action is an entry of the ACTION table.
type Action struct {
	Kind  ActionKind
	State int    // target state for shift actions
	Head  string // LHS of the rule to reduce
	Len   int    // length of the RHS of the rule to reduce
	Rule  int    // serial number of the rule to reduce
}

func (a Action) String() string {
	switch a.Kind {
	case Shift:
		return fmt.Sprintf("s%d", a.State)
	case Reduce:
		return fmt.Sprintf("r %s/%d", a.Head, a.Len)
	case Accept:
		return "acc"
	}
	return ""
}

// Actions are stored as int32 values within a sparse matrix:
//
//     shift n   ⇒  n ≥ 0
//     accept    ⇒  -1
//     reduce r  ⇒  -(r+2)   for rule serial r
const acceptValue = -1

func (pt *ParseTable) encode(a Action) int32 {
	switch a.Kind {
	case Shift:
		return int32(a.State)
	case Accept:
		return acceptValue
	case Reduce:
		return int32(-(a.Rule + 2))
	}
	return pt.actionT.NullValue()
}

func (pt *ParseTable) decode(v int32) Action {
	switch {
	case v == pt.actionT.NullValue():
		return Action{Kind: Error}
	case v >= 0:
		return Action{Kind: Shift, State: int(v)}
	case v == acceptValue:
		return Action{Kind: Accept}
	}
	r := pt.g.Rule(int(-v) - 2)
	return Action{Kind: Reduce, Head: r.LHS, Len: r.Len(), Rule: r.Serial}
}

// ParseTable holds the GOTO table and the ACTION table for a grammar, together
// with the CFSM they have been derived from. A ParseTable is read-only after
// construction and may be shared between goroutines.
type ParseTable struct {
	g            *Grammar
	cfsm         *CFSM
	gotoT        *sparse.IntMatrix // states × symbols
	actionT      *sparse.IntMatrix // states × terminals
	columns      map[string]int    // column of a symbol in GOTO
	tcolumns     map[string]int    // column of a terminal in ACTION
	terminals    []string
	diagnostics  diagnostics
	HasConflicts bool // has any ACTION entry been overwritten?
}

// Option configures table construction.
type Option func(*tableGenerator)

// StrictConflicts makes BuildParseTable fail with ErrConflict if the grammar
// leads to conflicting ACTION entries. By default, conflicts are resolved by
// letting the last entry win, and are reported as diagnostics.
func StrictConflicts(strict bool) Option {
	return func(gen *tableGenerator) {
		gen.strict = strict
	}
}

type tableGenerator struct {
	g      *Grammar
	pt     *ParseTable
	strict bool
}

// BuildParseTable constructs the CFSM for grammar g and derives the GOTO table
// and the ACTION table from it.
//
// Problems found during construction are reported as diagnostics, see
// ParseTable.Diagnostics. An error is returned only for a nil grammar or, with
// option StrictConflicts, for grammars which are not LR(1).
func BuildParseTable(g *Grammar, opts ...Option) (*ParseTable, error) {
	if g == nil {
		return nil, fmt.Errorf("%w: cannot build parse table without a grammar", ErrGrammar)
	}
	gen := &tableGenerator{g: g}
	for _, opt := range opts {
		opt(gen)
	}
	gen.pt = &ParseTable{
		g:         g,
		columns:   make(map[string]int),
		tcolumns:  make(map[string]int),
		terminals: g.Terminals(),
	}
	for j, A := range g.Symbols() {
		gen.pt.columns[A] = j
	}
	for j, t := range gen.pt.terminals {
		gen.pt.tcolumns[t] = j
	}
	gen.pt.cfsm = gen.buildCFSM()
	gen.buildGotoTable()
	gen.buildActionTable()
	tracer().Infof("parse table for %s: %d states, %d goto entries, %d action entries",
		g.Name, gen.pt.cfsm.Size(), gen.pt.gotoT.ValueCount(), gen.pt.actionT.ValueCount())
	if gen.strict && gen.pt.HasConflicts {
		conflicts := gen.pt.diagnostics.ofKind(ActionConflict)
		return nil, fmt.Errorf("%w: %d conflict(s), first is %s", ErrConflict, len(conflicts), conflicts[0])
	}
	return gen.pt, nil
}

// Construct the characteristic finite state machine CFSM for a grammar.
// States are explored breadth-first, in order of IDs.
func (gen *tableGenerator) buildCFSM() *CFSM {
	tracer().Debugf("=== build CFSM ==================================================")
	g := gen.g
	cfsm := emptyCFSM(g)
	item := StartItem(g)
	tracer().Debugf("start item = %v", item)
	cfsm.S0, _ = cfsm.addState(newState(g, item))
	symbols := g.Symbols()
	S := treeset.NewWith(stateComparator)
	S.Add(cfsm.S0)
	for S.Size() > 0 {
		s := S.Values()[0].(*CFSMState)
		S.Remove(s)
		for _, A := range symbols {
			next := s.Goto(A)
			if next == nil {
				continue
			}
			snew, isNew := cfsm.addState(next)
			if isNew {
				tracer().Debugf("new state %d from %d on %s", snew.ID, s.ID, A)
				S.Add(snew)
			}
			cfsm.addEdge(s, snew, A)
		}
	}
	return cfsm
}

// buildGotoTable builds the GOTO table from the CFSM edges.
func (gen *tableGenerator) buildGotoTable() {
	pt := gen.pt
	pt.gotoT = sparse.NewIntMatrix(pt.cfsm.Size(), len(pt.columns), sparse.DefaultNullValue)
	pt.cfsm.EachEdge(func(from, to *CFSMState, sym string) {
		pt.gotoT.Set(from.ID, pt.columns[sym], int32(to.ID))
	})
}

// For building an ACTION table we iterate over all the states of the CFSM.
// An inner loop iterates over all the items within a CFSM-state:
//
// - a completed item for the start symbol produces an accept-entry for "$"
//
// - any other completed item produces a reduce-entry for each of its lookaheads
//
// - an item with a terminal after the dot produces a shift-entry for the GOTO
// target of that terminal
//
// Items with a non-terminal after the dot are covered by the GOTO table.
func (gen *tableGenerator) buildActionTable() {
	pt := gen.pt
	pt.actionT = sparse.NewIntMatrix(pt.cfsm.Size(), len(pt.terminals), sparse.DefaultNullValue)
	pt.cfsm.EachState(func(s *CFSMState) {
		for _, i := range s.items {
			switch A := i.PeekSymbol(); {
			case i.IsComplete() && i.rule.LHS == gen.g.start:
				gen.setAction(s.ID, lrkit.EOF, Action{Kind: Accept}, i)
			case i.IsComplete():
				a := Action{Kind: Reduce, Head: i.rule.LHS, Len: i.rule.Len(), Rule: i.rule.Serial}
				la := i.Lookahead()
				if len(la) == 0 {
					pt.diagnostics.report(IncompleteAction, i.rule.LHS, s.ID,
						"item %v has no lookahead", i)
				}
				for _, t := range la {
					gen.setAction(s.ID, t, a, i)
				}
			case gen.g.IsNonTerminal(A):
				if _, ok := pt.Goto(s.ID, A); !ok {
					pt.diagnostics.report(IncompleteAction, A, s.ID,
						"item %v has no transition on %s", i, A)
				}
			default:
				if target, ok := pt.Goto(s.ID, A); ok {
					gen.setAction(s.ID, A, Action{Kind: Shift, State: target}, i)
				} else {
					pt.diagnostics.report(IncompleteAction, A, s.ID,
						"item %v has no transition on %s", i, A)
				}
			}
		}
	})
}

func (gen *tableGenerator) setAction(state int, terminal string, a Action, i Item) {
	pt := gen.pt
	col, ok := pt.tcolumns[terminal]
	if !ok {
		pt.diagnostics.report(IncompleteAction, terminal, state,
			"item %v: %q is not a terminal", i, terminal)
		return
	}
	old := pt.actionT.Set(state, col, pt.encode(a))
	if old != pt.actionT.NullValue() && old != pt.encode(a) {
		pt.HasConflicts = true
		pt.diagnostics.report(ActionConflict, terminal, state,
			"on %s: %v replaced by %v from item %v", terminal, pt.decode(old), a, i)
	}
}

// --- Table access ----------------------------------------------------------

// Grammar returns the grammar this table has been built for.
func (pt *ParseTable) Grammar() *Grammar {
	return pt.g
}

// CFSM returns the characteristic finite state machine the tables have been
// derived from.
func (pt *ParseTable) CFSM() *CFSM {
	return pt.cfsm
}

// Size returns the number of states.
func (pt *ParseTable) Size() int {
	return pt.cfsm.Size()
}

// States returns all states, in order of IDs. State 0 is the start state.
func (pt *ParseTable) States() []*State {
	states := make([]*State, 0, pt.cfsm.Size())
	pt.cfsm.EachState(func(s *CFSMState) {
		states = append(states, s.State)
	})
	return states
}

// State returns the state with ID id, or nil.
func (pt *ParseTable) State(id int) *State {
	if cs := pt.cfsm.State(id); cs != nil {
		return cs.State
	}
	return nil
}

// StateID returns the ID of a state with the same content as s, or -1.
func (pt *ParseTable) StateID(s *State) int {
	if s == nil {
		return -1
	}
	if cs := pt.cfsm.findState(s); cs != nil {
		return cs.ID
	}
	return -1
}

// Goto returns the state reached from state on symbol sym. If there is
// no such transition, false is returned.
func (pt *ParseTable) Goto(state int, sym string) (int, bool) {
	col, ok := pt.columns[sym]
	if !ok || state < 0 || state >= pt.gotoT.M() {
		return -1, false
	}
	v := pt.gotoT.Value(state, col)
	if v == pt.gotoT.NullValue() {
		return -1, false
	}
	return int(v), true
}

// Action returns the parser action for a state and a lookahead terminal.
// Unknown states and symbols result in an action of kind Error.
func (pt *ParseTable) Action(state int, terminal string) Action {
	col, ok := pt.tcolumns[terminal]
	if !ok || state < 0 || state >= pt.actionT.M() {
		return Action{Kind: Error}
	}
	return pt.decode(pt.actionT.Value(state, col))
}

// ActionEntry is a non-error entry in a row of the ACTION table.
type ActionEntry struct {
	Terminal string
	Action   Action
}

// Actions returns all non-error actions for a state, in order of terminals.
func (pt *ParseTable) Actions(state int) []ActionEntry {
	var row []ActionEntry
	if state < 0 || state >= pt.actionT.M() {
		return row
	}
	pt.actionT.Row(state, func(j int, v int32) {
		row = append(row, ActionEntry{Terminal: pt.terminals[j], Action: pt.decode(v)})
	})
	return row
}

// Expected returns the terminals for which a state has a non-error action.
func (pt *ParseTable) Expected(state int) []string {
	var expected []string
	for _, e := range pt.Actions(state) {
		expected = append(expected, e.Terminal)
	}
	return expected
}

// Diagnostics returns the diagnostics reported for the grammar and during
// table construction.
func (pt *ParseTable) Diagnostics() []Diagnostic {
	ds := pt.g.Diagnostics()
	return append(ds, pt.diagnostics...)
}

// Dump is a debugging helper, tracing the states and tables.
func (pt *ParseTable) Dump() {
	pt.cfsm.Dump()
	for id := 0; id < pt.Size(); id++ {
		tracer().Debugf("%s", pt.rowString(id))
	}
}

func (pt *ParseTable) rowString(state int) string {
	var b bytes.Buffer
	b.WriteString(fmt.Sprintf("%3d:", state))
	for _, e := range pt.Actions(state) {
		b.WriteString(fmt.Sprintf(" %s=%v", e.Terminal, e.Action))
	}
	b.WriteString(" |")
	pt.gotoT.Row(state, func(j int, v int32) {
		sym := pt.g.symbols[j]
		if pt.g.IsNonTerminal(sym) {
			b.WriteString(fmt.Sprintf(" %s=%d", sym, v))
		}
	})
	return b.String()
}
