/*
Package scanner defines an interface for scanners to be used with parsers of package lr.

Tokens carry the grammar symbol they represent, i.e. the name of a terminal, plus
the lexeme and its position. Scanners signal the end of input with a token for
the end-of-input symbol "$".

Two default scanner implementations are provided: (1) a character tokenizer,
producing one token per (non-blank) character, and (2) a thin wrapper over the
Go std lib 'text/scanner'. An adapter for lexmachine lives in sub-package `lexmach`.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package scanner

import (
	"fmt"
	"io"
	"strings"
	"text/scanner"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/lrkit"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lrkit.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("lrkit.scanner")
}

// Tokenizer is a scanner interface.
type Tokenizer interface {
	NextToken() lrkit.Token
	SetErrorHandler(func(error))
}

// Default error reporting function for scanners
func logError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// --- Default tokens --------------------------------------------------------

// DefaultToken is a very unsophisticated token type, used as default for the
// tokenizers of this package as well as the LexMachine scanner.
type DefaultToken struct {
	symbol string
	lexeme string
	span   lrkit.Span
}

var _ lrkit.Token = DefaultToken{}

// MakeDefaultToken creates a token for a terminal symbol.
func MakeDefaultToken(symbol string, lexeme string, span lrkit.Span) DefaultToken {
	return DefaultToken{
		symbol: symbol,
		lexeme: lexeme,
		span:   span,
	}
}

// EOFToken returns a token for the end of input at position pos.
func EOFToken(pos uint64) DefaultToken {
	return MakeDefaultToken(lrkit.EOF, "", lrkit.Span{pos, pos})
}

// Symbol returns the terminal symbol of the token.
func (t DefaultToken) Symbol() string {
	return t.symbol
}

// Lexeme returns the input text of the token.
func (t DefaultToken) Lexeme() string {
	return t.lexeme
}

// Span returns the position of the token within the input.
func (t DefaultToken) Span() lrkit.Span {
	return t.span
}

func (t DefaultToken) String() string {
	if t.symbol == t.lexeme {
		return fmt.Sprintf("%q%v", t.symbol, t.span)
	}
	return fmt.Sprintf("%s:%q%v", t.symbol, t.lexeme, t.span)
}

// --- Character tokenizer ---------------------------------------------------

// CharTokenizer produces one token per character of its input. The symbol of
// each token is the character itself. By default, white space is skipped.
// Characters "$" and "ε" are reported to the error handler and skipped, as
// they would be taken for the reserved symbols.
type CharTokenizer struct {
	input      string
	pos        int // byte offset
	skipBlanks bool
	Error      func(error) // error handler
}

var _ Tokenizer = (*CharTokenizer)(nil)

// NewCharTokenizer creates a character tokenizer for a given input.
func NewCharTokenizer(input string, opts ...Option) *CharTokenizer {
	o := options{skipBlanks: true}
	for _, opt := range opts {
		opt(&o)
	}
	return &CharTokenizer{
		input:      input,
		skipBlanks: o.skipBlanks,
		Error:      logError,
	}
}

// SetErrorHandler sets an error handler for the scanner.
func (t *CharTokenizer) SetErrorHandler(h func(error)) {
	if h == nil {
		t.Error = logError
		return
	}
	t.Error = h
}

// NextToken is part of the Tokenizer interface.
func (t *CharTokenizer) NextToken() lrkit.Token {
	for t.pos < len(t.input) {
		r, w := utf8.DecodeRuneInString(t.input[t.pos:])
		start := t.pos
		t.pos += w
		if r == utf8.RuneError && w == 1 {
			t.Error(fmt.Errorf("illegal UTF-8 encoding at position %d", start))
			continue
		}
		if t.skipBlanks && unicode.IsSpace(r) {
			continue
		}
		ch := t.input[start:t.pos]
		if lrkit.IsReserved(ch) {
			t.Error(fmt.Errorf("reserved symbol %q at position %d", ch, start))
			continue
		}
		return MakeDefaultToken(ch, ch, lrkit.Span{uint64(start), uint64(t.pos)})
	}
	tracer().Debugf("CharTokenizer reached end of input")
	return EOFToken(uint64(len(t.input)))
}

// --- Go tokenizer ----------------------------------------------------------

// DefaultTokenizer is a default implementation, backed by scanner.Scanner.
// Create one with GoTokenizer.
//
// Tokens for operators and keywords have their lexeme as symbol. Identifiers,
// numbers, strings etc. are tokenized by category, and will be given a symbol
// by a category map (see option Categories). If no symbol for a category is
// known, the lexeme is used.
type DefaultTokenizer struct {
	scanner.Scanner
	lastToken    rune            // last token this scanner has produced
	Error        func(error)     // error handler
	unifyStrings bool            // convert single chars to strings
	categories   map[rune]string // symbols for token categories
}

var _ Tokenizer = (*DefaultTokenizer)(nil)

// GoTokenizer creates a scanner/tokenizer accepting tokens similar to the Go language.
func GoTokenizer(sourceID string, input io.Reader, opts ...Option) *DefaultTokenizer {
	o := options{skipComments: true}
	for _, opt := range opts {
		opt(&o)
	}
	t := &DefaultTokenizer{
		Error:        logError,
		unifyStrings: o.unifyStrings,
		categories:   o.categories,
	}
	t.Init(input)
	t.Filename = sourceID
	if !o.skipComments {
		t.Mode &^= scanner.SkipComments
	}
	t.Scanner.Error = func(s *scanner.Scanner, msg string) {
		t.Error(fmt.Errorf("%s: %s", s.Position, msg))
	}
	return t
}

// SetErrorHandler sets an error handler for the scanner.
func (t *DefaultTokenizer) SetErrorHandler(h func(error)) {
	if h == nil {
		t.Error = logError
		return
	}
	t.Error = h
}

// NextToken is part of the Tokenizer interface.
//
// Lexemes which would be taken for a reserved symbol are reported to the
// error handler and skipped.
func (t *DefaultTokenizer) NextToken() lrkit.Token {
	for {
		t.lastToken = t.Scan()
		if t.lastToken == scanner.EOF {
			tracer().Debugf("DefaultTokenizer reached end of input")
			return EOFToken(uint64(t.Pos().Offset))
		}
		if t.unifyStrings &&
			(t.lastToken == scanner.RawString || t.lastToken == scanner.Char) {
			t.lastToken = scanner.String
		}
		lexeme := t.TokenText()
		symbol := lexeme
		if sym, ok := t.categories[t.lastToken]; ok && t.lastToken < 0 {
			symbol = sym
		}
		if lrkit.IsReserved(symbol) {
			t.Error(fmt.Errorf("%s: reserved symbol %q", t.Position, symbol))
			continue
		}
		return MakeDefaultToken(symbol, lexeme,
			lrkit.Span{uint64(t.Position.Offset), uint64(t.Pos().Offset)})
	}
}

// --- Scanner options -------------------------------------------------------

// Option configures a tokenizer. Options not applicable to a tokenizer are
// ignored.
type Option func(*options)

type options struct {
	skipComments bool
	skipBlanks   bool
	unifyStrings bool
	categories   map[rune]string
}

// SkipComments sets or clears mode-flag SkipComments of the Go tokenizer.
// The default is to skip comments.
func SkipComments(b bool) Option {
	return func(o *options) {
		o.skipComments = b
	}
}

// SkipBlanks sets or clears skipping of white space for the character
// tokenizer. The default is to skip white space.
func SkipBlanks(b bool) Option {
	return func(o *options) {
		o.skipBlanks = b
	}
}

// UnifyStrings sets or clears option UnifyStrings:
// treat raw strings and single chars as strings.
func UnifyStrings(b bool) Option {
	return func(o *options) {
		o.unifyStrings = b
	}
}

// Categories sets the terminal symbols for token categories of the Go
// tokenizer, e.g.
//
//     Categories(map[rune]string{ scanner.Ident: "id", scanner.Int: "num" })
//
func Categories(m map[rune]string) Option {
	return func(o *options) {
		o.categories = m
	}
}

// Token categories are replicated here for practical reasons.
const (
	Ident     = scanner.Ident
	Int       = scanner.Int
	Float     = scanner.Float
	Char      = scanner.Char
	String    = scanner.String
	RawString = scanner.RawString
	Comment   = scanner.Comment
)

// --- Helpers ---------------------------------------------------------------

// Tokens reads all tokens from a tokenizer, up to and excluding end of input.
func Tokens(t Tokenizer) []lrkit.Token {
	var tokens []lrkit.Token
	for {
		tok := t.NextToken()
		if tok.Symbol() == lrkit.EOF {
			return tokens
		}
		tokens = append(tokens, tok)
	}
}

// Symbols returns the terminal symbols of a list of tokens, e.g. for logging.
func Symbols(tokens []lrkit.Token) string {
	syms := make([]string, len(tokens))
	for i, tok := range tokens {
		syms[i] = tok.Symbol()
	}
	return strings.Join(syms, " ")
}
