package lexmach

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/npillmayer/lrkit"
	"github.com/npillmayer/lrkit/lr"
	"github.com/npillmayer/lrkit/lr/scanner"
	"github.com/npillmayer/schuko/tracing"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// lexmachine adapter

// tracer traces with key 'lrkit.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("lrkit.scanner")
}

// LMAdapter is a lexmachine adapter to use lexmachine as a scanner.
type LMAdapter struct {
	Lexer   *lexmachine.Lexer
	symbols []string // terminal symbol by lexmachine token type
}

// NewLMAdapter creates a new lexmachine adapter. It receives a list of
// literals ('[', ';', …) and a list of keywords ("if", "for", …). Each of them
// produces tokens with the literal or keyword as terminal symbol. Additional
// patterns may be registered by init, which is called before literals and
// keywords are added.
//
// NewLMAdapter will return an error if compiling the DFA failed.
func NewLMAdapter(init func(*LMAdapter), literals []string, keywords []string) (*LMAdapter, error) {
	adapter := &LMAdapter{}
	adapter.Lexer = lexmachine.NewLexer()
	if init != nil {
		init(adapter)
	}
	for _, lit := range literals {
		adapter.Lexer.Add([]byte(Literal(lit)), adapter.MakeToken(lit))
	}
	for _, name := range keywords {
		adapter.Lexer.Add([]byte(name), adapter.MakeToken(name))
	}
	if err := adapter.Lexer.Compile(); err != nil {
		tracer().Errorf("Error compiling DFA: %v", err)
		return nil, err
	}
	return adapter, nil
}

// Add registers a regular expression for a terminal symbol.
func (lm *LMAdapter) Add(pattern string, symbol string) {
	lm.Lexer.Add([]byte(pattern), lm.MakeToken(symbol))
}

// Skip registers a regular expression for input to ignore, e.g. white space.
func (lm *LMAdapter) Skip(pattern string) {
	lm.Lexer.Add([]byte(pattern), Skip)
}

// Literal converts a string into a lexmachine pattern matching exactly this
// string.
func Literal(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r < unicode.MaxASCII && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			b.WriteRune('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// NewTerminalScanner creates an adapter for the terminals of a grammar. Every
// terminal matches its name literally, except for terminals with a pattern
// given by option Pattern. White space is skipped. If a lexeme matches more
// than one terminal, the longest match wins. For matches of equal length,
// literal terminals win over patterns.
func NewTerminalScanner(g *lr.Grammar, opts ...Option) (*LMAdapter, error) {
	if g == nil {
		return nil, fmt.Errorf("terminal scanner needs a grammar")
	}
	o := options{
		patterns: make(map[string]string),
		blanks:   `( |\t|\n|\r)+`,
	}
	for _, opt := range opts {
		opt(&o)
	}
	init := func(lm *LMAdapter) {
		lm.Skip(o.blanks)
		for _, t := range g.Terminals() {
			if _, ok := o.patterns[t]; !ok && !lrkit.IsReserved(t) {
				lm.Add(Literal(t), t)
			}
		}
		for _, t := range g.Terminals() {
			if p, ok := o.patterns[t]; ok {
				lm.Add(p, t)
			}
		}
		tracer().Debugf("terminal scanner for %s: symbols %v", g.Name, lm.symbols)
	}
	return NewLMAdapter(init, nil, nil)
}

// Option configures a terminal scanner.
type Option func(*options)

type options struct {
	patterns map[string]string
	blanks   string
}

// Pattern sets a regular expression for a terminal, e.g.
//
//     Pattern("num", `[0-9]+`)
//
func Pattern(terminal string, regex string) Option {
	return func(o *options) {
		o.patterns[terminal] = regex
	}
}

// Blanks sets the regular expression for input to skip.
func Blanks(regex string) Option {
	return func(o *options) {
		o.blanks = regex
	}
}

// Scanner creates a scanner for a given input. The scanner will implement the
// Tokenizer interface.
func (lm *LMAdapter) Scanner(input string) (*LMScanner, error) {
	s, err := lm.Lexer.Scanner([]byte(input))
	if err != nil {
		return &LMScanner{}, err
	}
	return &LMScanner{scanner: s, adapter: lm, length: len(input), Error: logError}, nil
}

// LMScanner is a scanner type for lexmachine scanners, implementing the
// Tokenizer interface.
type LMScanner struct {
	scanner *lexmachine.Scanner
	adapter *LMAdapter
	length  int
	Error   func(error)
}

var _ scanner.Tokenizer = (*LMScanner)(nil)

// SetErrorHandler sets an error handler for the scanner.
func (lms *LMScanner) SetErrorHandler(h func(error)) {
	if h == nil {
		lms.Error = logError
		return
	}
	lms.Error = h
}

// Default error reporting function for lexmachine-based scanners
func logError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// NextToken is part of the Tokenizer interface.
//
// Input which cannot be matched is reported to the error handler and skipped.
func (lms *LMScanner) NextToken() lrkit.Token {
	tok, err, eof := lms.scanner.Next()
	for err != nil {
		lms.Error(err)
		ui, is := err.(*machines.UnconsumedInput)
		if !is {
			return scanner.EOFToken(uint64(lms.length))
		}
		lms.scanner.TC = ui.FailTC
		tok, err, eof = lms.scanner.Next()
	}
	if eof {
		return scanner.EOFToken(uint64(lms.length))
	}
	tracer().Debugf("tok is %T | %v", tok, tok)
	token := tok.(*lexmachine.Token)
	return scanner.MakeDefaultToken(
		lms.adapter.symbols[token.Type],
		string(token.Lexeme),
		lrkit.Span{uint64(token.TC), uint64(token.TC + len(token.Lexeme))},
	)
}

// ---------------------------------------------------------------------------

// Skip is a pre-defined action which ignores the scanned match.
func Skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// MakeToken returns an action which wraps a scanned match into a token for
// a terminal symbol.
func (lm *LMAdapter) MakeToken(symbol string) lexmachine.Action {
	id := len(lm.symbols)
	lm.symbols = append(lm.symbols, symbol)
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}
