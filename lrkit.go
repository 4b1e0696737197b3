package lrkit

import "fmt"

// --- Reserved symbols -------------------------------------------------------

// EOF is the reserved end-of-input marker. A parser implicitly appends it to
// every token sequence.
const EOF = "$"

// Epsilon is the reserved marker for the empty word. It is a terminal, but never
// occurs in a rule body: a rule with an empty body derives ε.
const Epsilon = "ε"

// IsReserved is a predicate: is sym one of the reserved markers?
func IsReserved(sym string) bool {
	return sym == EOF || sym == Epsilon
}

// --- A general purpose interface for tokens --------------------------------

// Tokens represent input tokens. They are usually produced by a scanner and
// reflect terminals of a grammar.
//
// An example would be a token for an identifier:
//
//    Symbol  = "id"        // terminal of the grammar this token matches
//    Lexeme  = "foo"       // lexeme how it appeared in the input stream
//    Span    = 67…70       // occured from position 67 in the input stream
//
// For tokenizers operating on single characters, symbol and lexeme are identical.
type Token interface {
	Symbol() string
	Lexeme() string
	Span() Span
}

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a length of input token run. For every
// terminal and non-terminal, a parse tree will track which input positions
// this symbol covers. A span denotes a start position and the position just
// behind the end.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

// IsNull is true for spans covering no input, e.g. for epsilon-reductions.
func (s Span) IsNull() bool {
	return s[0] == s[1]
}

// Extend returns the smallest span covering s and other. Null spans do not
// contribute.
func (s Span) Extend(other Span) Span {
	if other.IsNull() {
		return s
	}
	if s.IsNull() {
		return other
	}
	if other[0] < s[0] {
		s[0] = other[0]
	}
	if other[1] > s[1] {
		s[1] = other[1]
	}
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
