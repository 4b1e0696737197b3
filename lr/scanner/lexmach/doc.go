/*
Package lexmach provides an adapter to use the lexmachine scanner generator with
the parsers of package lr.

For more information on lexmachine, see e.g.
https://hackthology.com/how-to-tokenize-complex-strings-with-lexmachine.html

The simplest way to get a scanner is to derive it from a grammar. Every terminal
of the grammar will match its own name, unless a regular expression is given for
it:

	LM, err := lexmach.NewTerminalScanner(g, lexmach.Pattern("num", `[0-9]+`))
	if err != nil {
		// do error handling
	}

Clients who need more control over lexmachine may register patterns themselves.
Tokens carry the terminal symbol they have been registered for.

	init := func(lm *lexmach.LMAdapter) {
		lm.Skip(`( |\t|\n|\r)+`)              // ignore white space
		lm.Add(`[a-z]+`, "id")                // produce tokens for terminal "id"
	}
	LM, err := lexmach.NewLMAdapter(init, []string{"(", ")"}, []string{"nil"})

A scanner is instantiated for each concrete input sequence.
The scanner implements the scanner.Tokenizer interface.

	scan, err := LM.Scanner("input string to tokenize")
	if err != nil {
		// do error handling
	}

On the parser side tokens are read until EOF.

	for … { // feed token into parser
		token := scan.NextToken()
		if token.Symbol() != lrkit.EOF {
			…
		}
	}

________________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package lexmach
