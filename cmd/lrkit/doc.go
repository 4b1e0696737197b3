/*
Command lrkit is a command line front end for the LR(1) toolkit. It reads a
grammar description (see package lr/syntax), generates the LR(1) tables for it
and parses input with them.

	lrkit table expr.grammar --dot expr.dot
	lrkit parse expr.grammar 'id + id'
	lrkit repl expr.grammar -p num='[0-9]+'

Sub-command `table` prints FIRST and FOLLOW sets, the ACTION and GOTO tables
and any diagnostics. Sub-command `parse` prints the parse tree for an input.
Sub-command `repl` starts an interactive session, where every line entered
is parsed with the grammar's tables.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lrkit.cli'
func tracer() tracing.Trace {
	return tracing.Select("lrkit.cli")
}
