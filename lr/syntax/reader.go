package syntax

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/npillmayer/lrkit"
	"github.com/npillmayer/lrkit/lr"
	"github.com/npillmayer/lrkit/lr/scanner"
	"github.com/npillmayer/lrkit/lr/scanner/lexmach"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lrkit.lr'.
func tracer() tracing.Trace {
	return tracing.Select("lrkit.lr")
}

// Terminals of the grammar description language.
const (
	tNewline = "nl"
	tArrow   = "->"
	tBar     = "|"
	tSymbol  = "sym"
	tQuoted  = "quoted"
)

var (
	descrLexer    *lexmach.LMAdapter
	descrLexerErr error
	descrOnce     sync.Once
)

func lexer() (*lexmach.LMAdapter, error) {
	descrOnce.Do(func() {
		init := func(lm *lexmach.LMAdapter) {
			lm.Skip(`#[^\n]*`)
			lm.Skip(`( |\t|\r)+`)
			lm.Add(`\n`, tNewline)
			lm.Add(`\-\>`, tArrow)
			lm.Add(`→`, tArrow)
			lm.Add(`➞`, tArrow)
			lm.Add(`\|`, tBar)
			lm.Add(`'[^'\n]*'`, tQuoted)
			lm.Add(`"[^"\n]*"`, tQuoted)
			lm.Add(`[^ \t\r\n|#'"]+`, tSymbol)
		}
		descrLexer, descrLexerErr = lexmach.NewLMAdapter(init, nil, nil)
	})
	return descrLexer, descrLexerErr
}

// Parse reads a grammar description and creates a grammar from it.
// Errors in the description are reported with their line number and wrap
// lr.ErrGrammar.
func Parse(name string, r io.Reader) (*lr.Grammar, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("cannot read grammar %s: %w", name, err)
	}
	rules, err := ReadRules(string(src))
	if err != nil {
		return nil, fmt.Errorf("grammar %s: %w", name, err)
	}
	return lr.NewGrammar(name, rules)
}

// ParseString is a convenience function, reading a grammar description from
// a string.
func ParseString(name string, src string) (*lr.Grammar, error) {
	return Parse(name, strings.NewReader(src))
}

// ReadRules reads the rules of a grammar description, in order of appearance.
func ReadRules(src string) ([]*lr.Rule, error) {
	lm, err := lexer()
	if err != nil {
		return nil, err
	}
	sc, err := lm.Scanner(src)
	if err != nil {
		return nil, err
	}
	var scanErr error
	sc.SetErrorHandler(func(e error) {
		if scanErr == nil {
			scanErr = e
		}
	})
	tokens := scanner.Tokens(sc)
	if scanErr != nil {
		return nil, fmt.Errorf("%w: %v", lr.ErrGrammar, scanErr)
	}
	var rules []*lr.Rule
	var head string
	lineno := 1
	for len(tokens) > 0 {
		var line []lrkit.Token
		line, tokens = splitLine(tokens)
		var bodies [][]string
		if head, bodies, err = readLine(line, head); err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", lr.ErrGrammar, lineno, err)
		}
		for _, body := range bodies {
			r := lr.NewRule(head, body...)
			tracer().Debugf("%3d: %v", lineno, r)
			rules = append(rules, r)
		}
		lineno++
	}
	return rules, nil
}

// splitLine returns the tokens up to the first newline, and the tokens after it.
func splitLine(tokens []lrkit.Token) ([]lrkit.Token, []lrkit.Token) {
	for i, tok := range tokens {
		if tok.Symbol() == tNewline {
			return tokens[:i], tokens[i+1:]
		}
	}
	return tokens, nil
}

// readLine reads the alternatives of a single line. prev is the head of the
// previous rule, used for continuation lines. readLine returns the head of the
// line's rules.
func readLine(line []lrkit.Token, prev string) (string, [][]string, error) {
	if len(line) == 0 {
		return prev, nil, nil
	}
	var head string
	switch first := line[0]; first.Symbol() {
	case tBar:
		if prev == "" {
			return prev, nil, fmt.Errorf("alternative without preceding rule")
		}
		head = prev
		line = line[1:]
	case tSymbol, tQuoted:
		if len(line) < 2 || line[1].Symbol() != tArrow {
			return prev, nil, fmt.Errorf("expected -> after %q", first.Lexeme())
		}
		head = symbol(first)
		line = line[2:]
	default:
		return prev, nil, fmt.Errorf("unexpected %q at start of line", first.Lexeme())
	}
	var bodies [][]string
	body := []string{}
	for _, tok := range line {
		switch tok.Symbol() {
		case tBar:
			bodies = append(bodies, body)
			body = []string{}
		case tArrow:
			return prev, nil, fmt.Errorf("unexpected %q in body of %s", tok.Lexeme(), head)
		default:
			body = append(body, symbol(tok))
		}
	}
	bodies = append(bodies, body)
	return head, bodies, nil
}

// symbol returns the grammar symbol for a token, unquoting quoted symbols.
func symbol(tok lrkit.Token) string {
	if tok.Symbol() == tQuoted {
		lexeme := tok.Lexeme()
		return lexeme[1 : len(lexeme)-1]
	}
	return tok.Lexeme()
}
