package lr1

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/lrkit"
)

var (
	// ErrSyntax is the error wrapped by every ParseError.
	ErrSyntax = errors.New("syntax error")
	// ErrTable signals a parse table inconsistent with its grammar.
	ErrTable = errors.New("inconsistent parse table")
)

// ParseError is returned for input not accepted by a parser.
type ParseError struct {
	State    int         // state on top of the parse stack
	Token    lrkit.Token // offending token, with symbol "$" for end of input
	Position int         // index of the token in the input sequence
	Expected []string    // terminals which would have been valid
	Reserved bool        // token is a reserved symbol within the input
}

func (e *ParseError) Error() string {
	what := fmt.Sprintf("unexpected %q", e.Token.Symbol())
	if e.Reserved {
		what = fmt.Sprintf("reserved symbol %q in input", e.Token.Symbol())
	} else if e.Token.Symbol() == lrkit.EOF {
		what = "unexpected end of input"
	}
	return fmt.Sprintf("%s: %s at token #%d %v (state %d), expected one of {%s}",
		ErrSyntax, what, e.Position, e.Token.Span(), e.State, strings.Join(e.Expected, " "))
}

// Unwrap makes ParseError match ErrSyntax with errors.Is.
func (e *ParseError) Unwrap() error {
	return ErrSyntax
}
