/*
Package syntax reads grammar descriptions in a simple line-oriented format:

	# expressions
	S -> E
	E -> E + T | T
	  | ( E )             # continues rules for E
	T -> id
	A -> ε                # empty body, same as "A ->"

Every rule starts on a new line with its head, followed by an arrow ("->",
"→" or "➞") and the symbols of one or more alternative bodies, separated by
"|". A line starting with "|" adds alternatives for the head of the
previous rule. Symbols are separated by white space. Symbols which would
otherwise have special meaning may be quoted with single or double quotes,
e.g. '|' or "#". Comments start with "#" and extend to the end of the line.

The head of the first rule is the start symbol. A symbol is a non-terminal if
and only if it is the head of some rule.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package syntax
