/*
Package lr implements prerequisites for LR(1) parsing: a grammar model with
static analysis, and the construction of LR(1) parser tables.

Building a Grammar

Grammars are specified using a grammar builder object. Clients add
rules, consisting of non-terminal symbols and terminals. Symbols are plain
strings. Grammars may contain epsilon-productions, added with Epsilon().

Example:

    b := lr.NewGrammarBuilder("G")
    b.LHS("S").N("E").End()                 // S  ➞  E
    b.LHS("E").N("E").T("+").N("T").End()   // E  ➞  E + T
    b.LHS("E").N("T").End()                 // E  ➞  T
    b.LHS("T").T("id").End()                // T  ➞  id
    g, err := b.Grammar()

The head of the first rule is the start symbol. A symbol is a non-terminal
if and only if it is the head of some rule. The reserved symbols "$" (end of
input) and "ε" (empty word) are always part of the terminals.

Static Grammar Analysis

Grammars are analysed upon construction: FIRST and FOLLOW sets are computed
for every non-terminal reachable from the start symbol. Non-terminals not
reachable from the start symbol are reported as diagnostics.

    g.First("E")    // = {id}
    g.Follow("E")   // = {+ $}

Parser Construction

Using grammar analysis as input, a bottom-up parser can be constructed.
First a characteristic finite state machine (CFSM) is built from the
grammar. Its states are closed sets of LR(1) items, identified by their
content regardless of the order in which items have been discovered.
The CFSM will then be transformed into a GOTO table and an ACTION table.
The CFSM will not be thrown away, but is made available to the client.  This is intended
for debugging purposes. It can be exported to Graphviz's Dot-format.

Example:

    table, err := lr.BuildParseTable(g)   // construct LR(1) parser tables
    if table.HasConflicts { … }           // inspect table.Diagnostics()

Conflicting table entries are resolved by letting the last entry win. Every
such overwrite is recorded as a diagnostic. Clients who prefer to fail on
conflicts may use option StrictConflicts.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package lr

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lrkit.lr'.
func tracer() tracing.Trace {
	return tracing.Select("lrkit.lr")
}
