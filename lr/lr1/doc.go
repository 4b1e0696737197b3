/*
Package lr1 provides a table-driven LR(1) parser. Clients have to use the tools
of package lr to prepare the necessary parse tables. The parser utilizes these
tables to run a shift-reduce stack machine over a sequence of input tokens,
producing a parse tree.

Usage

Clients construct a grammar, usually by using a grammar builder:

	b := lr.NewGrammarBuilder("Expressions")
	b.LHS("S").N("E").End()                  // S ➞ E
	b.LHS("E").N("E").T("+").N("T").End()    // E ➞ E + T
	b.LHS("E").N("T").End()                  // E ➞ T
	b.LHS("T").T("id").End()                 // T ➞ id
	g, err := b.Grammar()

This grammar is subjected to table generation:

	table, err := lr.BuildParseTable(g)
	if table.HasConflicts { ... }  // grammar is not LR(1)

Finally parse some input:

	p := lr1.NewParser(table)
	tree, err := p.Parse([]string{"id", "+", "id"})
	fmt.Println(tree)              // S(E(E(T(id)), +, T(id)))

Input may as well be read from a scanner.Tokenizer, see ParseTokens.

A parser holds no state of its own. Clients may use a single parser
from more than one goroutine.

There is no error recovery: the first token for which the table holds no
action ends the parse with a *ParseError.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package lr1

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lrkit.lr'.
func tracer() tracing.Trace {
	return tracing.Select("lrkit.lr")
}
