package lr

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/npillmayer/lrkit"
	"github.com/npillmayer/lrkit/lr/iteratable"
)

// --- Rules -----------------------------------------------------------------

// Rule is a type for rules of a grammar. Rules cannot be changed after
// construction; their identity is structural (LHS plus RHS).
type Rule struct {
	Serial int    // order number of this rule within a grammar
	LHS    string // head of the rule
	rhs    []string
}

// NewRule creates a rule LHS ➞ RHS. An empty RHS denotes an epsilon-production.
// Occurences of ε within the RHS are dropped.
func NewRule(lhs string, rhs ...string) *Rule {
	return &Rule{LHS: lhs, rhs: withoutEpsilon(rhs)}
}

func withoutEpsilon(syms []string) []string {
	r := make([]string, 0, len(syms))
	for _, sym := range syms {
		if sym != lrkit.Epsilon {
			r = append(r, sym)
		}
	}
	return r
}

// RHS returns the right-hand side of a rule. Clients must not modify it.
func (r *Rule) RHS() []string {
	return r.rhs
}

// Len returns the number of symbols of the RHS.
func (r *Rule) Len() int {
	return len(r.rhs)
}

// IsEpsilon is a predicate: does this rule derive the empty word directly?
func (r *Rule) IsEpsilon() bool {
	return len(r.rhs) == 0
}

// Equals compares two rules structurally.
func (r *Rule) Equals(other *Rule) bool {
	if r.LHS != other.LHS || len(r.rhs) != len(other.rhs) {
		return false
	}
	for i, sym := range r.rhs {
		if other.rhs[i] != sym {
			return false
		}
	}
	return true
}

func (r *Rule) String() string {
	if r.IsEpsilon() {
		return fmt.Sprintf("%s ➞ %s", r.LHS, lrkit.Epsilon)
	}
	return fmt.Sprintf("%s ➞ %s", r.LHS, strings.Join(r.rhs, " "))
}

// --- Grammar ---------------------------------------------------------------

// Grammar is a type for a context-free grammar. It is built once from a list
// of rules, analysed during construction and read-only thereafter. A Grammar
// may therefore be shared between goroutines.
type Grammar struct {
	Name         string
	rules        []*Rule
	byHead       map[string][]int // rule indices by LHS
	byBody       map[string][]int // rule indices by RHS symbol
	terminals    *iteratable.Set
	nonterminals *iteratable.Set
	symbols      []string // terminals, then non-terminals
	start        string
	first        map[string]*iteratable.Set
	follow       map[string]*iteratable.Set
	diagnostics  diagnostics
}

// NewGrammar creates a grammar from a list of rules. The head of the first rule
// is the start symbol. The grammar takes ownership of the rules.
//
// FIRST and FOLLOW sets are computed during construction.
// An error is returned if the rule list is empty or uses the reserved symbols
// "$" and "ε" in an illegal way. Unreachable non-terminals and duplicate rules
// result in diagnostics only.
func NewGrammar(name string, rules []*Rule) (*Grammar, error) {
	if len(rules) == 0 {
		return nil, fmt.Errorf("%w: grammar %q has no rules", ErrGrammar, name)
	}
	g := &Grammar{
		Name:         name,
		byHead:       make(map[string][]int),
		byBody:       make(map[string][]int),
		terminals:    iteratable.FromStrings(lrkit.EOF, lrkit.Epsilon),
		nonterminals: iteratable.NewSet(),
		first:        make(map[string]*iteratable.Set),
		follow:       make(map[string]*iteratable.Set),
	}
	for _, r := range rules {
		if err := g.addRule(r); err != nil {
			return nil, err
		}
	}
	g.start = g.rules[0].LHS
	g.classifySymbols()
	g.checkStart()
	g.analyse()
	return g, nil
}

func (g *Grammar) addRule(r *Rule) error {
	if r == nil || r.LHS == "" {
		return fmt.Errorf("%w: rule #%d has no head", ErrGrammar, len(g.rules))
	}
	if lrkit.IsReserved(r.LHS) {
		return fmt.Errorf("%w: reserved symbol %q used as head of rule %v", ErrGrammar, r.LHS, r)
	}
	r.rhs = withoutEpsilon(r.rhs)
	for _, sym := range r.rhs {
		if sym == lrkit.EOF {
			return fmt.Errorf("%w: end-of-input marker used in rule %v", ErrGrammar, r)
		}
		if sym == "" {
			return fmt.Errorf("%w: empty symbol in rule %v", ErrGrammar, r)
		}
	}
	for _, inx := range g.byHead[r.LHS] {
		if g.rules[inx].Equals(r) {
			r.Serial = inx
			g.diagnostics.report(DuplicateRule, r.LHS, -1, "rule %v declared more than once", r)
			return nil
		}
	}
	r.Serial = len(g.rules)
	g.rules = append(g.rules, r)
	g.byHead[r.LHS] = append(g.byHead[r.LHS], r.Serial)
	for _, sym := range r.rhs {
		inxs := g.byBody[sym]
		if len(inxs) == 0 || inxs[len(inxs)-1] != r.Serial {
			g.byBody[sym] = append(inxs, r.Serial)
		}
	}
	return nil
}

// A symbol is a non-terminal if and only if it occurs as the head of a rule.
// Every other symbol is a terminal.
func (g *Grammar) classifySymbols() {
	for _, r := range g.rules {
		g.nonterminals.Add(r.LHS)
	}
	for _, r := range g.rules {
		for _, sym := range r.rhs {
			if !g.nonterminals.Contains(sym) {
				g.terminals.Add(sym)
			}
		}
	}
	g.symbols = append(g.terminals.Strings(), g.nonterminals.Strings()...)
}

// Grammars are not augmented with an extra start rule. Parsing starts with the
// first rule only, and completing any rule of the start symbol accepts. Both
// are surprising if the start symbol is used by more than one rule.
func (g *Grammar) checkStart() {
	if n := len(g.byHead[g.start]); n > 1 {
		g.diagnostics.report(StartSymbolReused, g.start, -1,
			"start symbol %q heads %d rules, parsing starts with rule %v only", g.start, n, g.rules[0])
	}
	for _, inx := range g.byBody[g.start] {
		g.diagnostics.report(StartSymbolReused, g.start, -1,
			"start symbol %q occurs in rule %v, completing it accepts", g.start, g.rules[inx])
	}
}

// Start returns the start symbol of the grammar.
func (g *Grammar) Start() string {
	return g.start
}

// Size returns the number of rules.
func (g *Grammar) Size() int {
	return len(g.rules)
}

// Rule returns the rule with serial number i, or nil.
func (g *Grammar) Rule(i int) *Rule {
	if i < 0 || i >= len(g.rules) {
		return nil
	}
	return g.rules[i]
}

// Rules returns all rules, in order of declaration.
func (g *Grammar) Rules() []*Rule {
	return append([]*Rule(nil), g.rules...)
}

// RulesByHead returns all rules with LHS sym, in order of declaration.
func (g *Grammar) RulesByHead(sym string) []*Rule {
	return g.collect(g.byHead[sym])
}

// RulesByBodySymbol returns all rules which contain sym in their RHS.
func (g *Grammar) RulesByBodySymbol(sym string) []*Rule {
	return g.collect(g.byBody[sym])
}

func (g *Grammar) collect(inxs []int) []*Rule {
	r := make([]*Rule, len(inxs))
	for i, inx := range inxs {
		r[i] = g.rules[inx]
	}
	return r
}

// Terminals returns the terminals of the grammar, including the reserved
// symbols "$" and "ε", in order of first occurence.
func (g *Grammar) Terminals() []string {
	return append([]string(nil), g.symbols[:g.terminals.Size()]...)
}

// NonTerminals returns the non-terminals of the grammar in order of first
// occurence. The start symbol is always first.
func (g *Grammar) NonTerminals() []string {
	return append([]string(nil), g.symbols[g.terminals.Size():]...)
}

// Symbols returns all symbols of the grammar, terminals first.
func (g *Grammar) Symbols() []string {
	return append([]string(nil), g.symbols...)
}

// IsTerminal is a predicate: is sym a terminal of g?
func (g *Grammar) IsTerminal(sym string) bool {
	return g.terminals.Contains(sym)
}

// IsNonTerminal is a predicate: is sym a non-terminal of g?
func (g *Grammar) IsNonTerminal(sym string) bool {
	return g.nonterminals.Contains(sym)
}

// Diagnostics returns the diagnostics reported during grammar analysis.
func (g *Grammar) Diagnostics() []Diagnostic {
	return append([]Diagnostic(nil), g.diagnostics...)
}

// Dump is a debugging helper, listing all rules to the tracer.
func (g *Grammar) Dump() {
	tracer().Debugf("--- %s --------------------------------------------", g.Name)
	for _, r := range g.rules {
		tracer().Debugf("%3d: %v", r.Serial, r)
	}
	tracer().Debugf("-------------------------------------------------")
}

func (g *Grammar) String() string {
	var b bytes.Buffer
	for _, r := range g.rules {
		b.WriteString(r.String())
		b.WriteString("\n")
	}
	return b.String()
}

// --- Grammar Builder -------------------------------------------------------

// GrammarBuilder is a helper for building a grammar rule by rule:
//
//    b := NewGrammarBuilder("G")
//    b.LHS("A").N("B").T("c").End()   // A ➞ B c
//    b.LHS("B").Epsilon()             // B ➞ ε
//    g, err := b.Grammar()
//
// The classification of symbols is determined by the rules; T and N merely
// document intent. Grammar() will fail for symbols added with T which are
// the head of a rule.
type GrammarBuilder struct {
	name      string
	rules     []*Rule
	terminals map[string]bool
}

// RuleBuilder builds up a single rule.
type RuleBuilder struct {
	gb   *GrammarBuilder
	rule *Rule
}

// NewGrammarBuilder returns a new builder for a grammar named name.
func NewGrammarBuilder(name string) *GrammarBuilder {
	return &GrammarBuilder{
		name:      name,
		terminals: make(map[string]bool),
	}
}

// LHS starts a new rule with head sym.
func (gb *GrammarBuilder) LHS(sym string) *RuleBuilder {
	return &RuleBuilder{
		gb:   gb,
		rule: &Rule{LHS: sym},
	}
}

// N appends a non-terminal to the RHS.
func (rb *RuleBuilder) N(sym string) *RuleBuilder {
	rb.rule.rhs = append(rb.rule.rhs, sym)
	return rb
}

// T appends a terminal to the RHS.
func (rb *RuleBuilder) T(sym string) *RuleBuilder {
	rb.gb.terminals[sym] = true
	rb.rule.rhs = append(rb.rule.rhs, sym)
	return rb
}

// End closes the rule and adds it to the grammar.
func (rb *RuleBuilder) End() *Rule {
	rb.gb.rules = append(rb.gb.rules, rb.rule)
	return rb.rule
}

// Epsilon closes the rule with an empty RHS and adds it to the grammar.
func (rb *RuleBuilder) Epsilon() *Rule {
	rb.rule.rhs = rb.rule.rhs[:0]
	return rb.End()
}

// Grammar creates the grammar from the rules added so far.
func (gb *GrammarBuilder) Grammar() (*Grammar, error) {
	for _, r := range gb.rules {
		if gb.terminals[r.LHS] {
			return nil, fmt.Errorf("%w: terminal %q used as head of rule %v", ErrGrammar, r.LHS, r)
		}
	}
	return NewGrammar(gb.name, gb.rules)
}
