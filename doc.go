/*
Package lrkit is a toolbox for deterministic bottom-up parsing.

LRKit builds canonical LR(1) parsers from a context-free grammar at runtime,
without a code generation step. Package structure is as follows:

■ lr: Package lr holds the grammar model (FIRST and FOLLOW sets) and the
construction of the LR(1) automaton together with its GOTO and ACTION tables.

■ lr/lr1: Package lr1 implements the table driven stack machine, producing
concrete parse trees.

■ lr/scanner: Package scanner defines the tokenizer interface the parser
relies on, together with default tokenizers.

■ lr/syntax: Package syntax reads grammar descriptions from text.

■ cmd/lrkit: A command line tool to inspect the tables of a grammar and to
parse input with them.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package lrkit
