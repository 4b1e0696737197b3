package lr1

import (
	"fmt"

	"github.com/npillmayer/lrkit"
	"github.com/npillmayer/lrkit/lr"
	"github.com/npillmayer/lrkit/lr/scanner"
)

// Parser is an LR(1)-parser type. Create and initialize one with lr1.NewParser(...)
type Parser struct {
	table *lr.ParseTable
}

// NewParser creates an LR(1) parser for a parse table.
func NewParser(table *lr.ParseTable) *Parser {
	return &Parser{table: table}
}

// Table returns the parse table of the parser.
func (p *Parser) Table() *lr.ParseTable {
	return p.table
}

// We store pairs of parse tree nodes and state IDs on the parse stack.
type stackitem struct {
	node  *ParseNode // nil for the bottom of the stack
	state int        // ID of a CFSM state
}

// Parse parses a sequence of terminal symbols. The end of input is implicit,
// clients must not append "$". Input symbols "$" and "ε" are rejected with a
// syntax error at their position.
//
// If the input has been accepted, the parse tree is returned. Otherwise the
// returned error is a *ParseError.
func (p *Parser) Parse(input []string) (*ParseNode, error) {
	pos := 0
	next := func() (lrkit.Token, bool) {
		if pos >= len(input) {
			return scanner.EOFToken(uint64(len(input))), true
		}
		sym := input[pos]
		pos++
		tok := scanner.MakeDefaultToken(sym, sym, lrkit.Span{uint64(pos - 1), uint64(pos)})
		return tok, !lrkit.IsReserved(sym)
	}
	return p.parse(next)
}

// ParseTokens parses input provided by a tokenizer, up to the first token
// for the end of input. Tokens for "ε" are rejected with a syntax error.
func (p *Parser) ParseTokens(scan scanner.Tokenizer) (*ParseNode, error) {
	next := func() (lrkit.Token, bool) {
		tok := scan.NextToken()
		return tok, tok.Symbol() != lrkit.Epsilon
	}
	return p.parse(next)
}

// parse runs the shift-reduce loop. The bottom of the stack is a sentinel for
// state 0. next delivers the input tokens and flags tokens which must not
// occur in the input at all.
func (p *Parser) parse(next func() (lrkit.Token, bool)) (*ParseNode, error) {
	tracer().Debugf("~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~")
	if p.table == nil {
		return nil, fmt.Errorf("%w: parser has no parse table", ErrTable)
	}
	stack := make([]stackitem, 1, 64)
	stack[0] = stackitem{state: 0}
	token, legal := next()
	position := 0
	reductions := 0 // since last shift
	for {
		tos := stack[len(stack)-1]
		action := lr.Action{Kind: lr.Error}
		if legal {
			action = p.table.Action(tos.state, token.Symbol())
		}
		tracer().Debugf("action(%d,%s) = %v", tos.state, token.Symbol(), action)
		switch action.Kind {
		case lr.Shift:
			leaf := &ParseNode{Symbol: token.Symbol(), Token: token, Span: token.Span()}
			stack = append(stack, stackitem{node: leaf, state: action.State})
			token, legal = next()
			position++
			reductions = 0
		case lr.Reduce:
			if len(stack)-1 < action.Len {
				return nil, fmt.Errorf("%w: cannot reduce %s/%d with stack depth %d",
					ErrTable, action.Head, action.Len, len(stack)-1)
			}
			if reductions++; reductions > p.reductionLimit(len(stack)) {
				return nil, fmt.Errorf("%w: no progress in state %d on %q",
					ErrTable, tos.state, token.Symbol())
			}
			handle := stack[len(stack)-action.Len:]
			node := &ParseNode{Symbol: action.Head, Children: nodes(handle)}
			node.Span = coverage(node.Children, token)
			stack = stack[:len(stack)-action.Len]
			state, ok := p.table.Goto(stack[len(stack)-1].state, action.Head)
			if !ok {
				return nil, fmt.Errorf("%w: no transition on %s from state %d",
					ErrTable, action.Head, stack[len(stack)-1].state)
			}
			tracer().Debugf("reduced %s/%d, next state = %d", action.Head, action.Len, state)
			stack = append(stack, stackitem{node: node, state: state})
		case lr.Accept:
			start := p.table.Grammar().Start()
			root := &ParseNode{Symbol: start, Children: nodes(stack[1:])}
			root.Span = coverage(root.Children, token)
			tracer().Infof("accepted input of %d tokens", position)
			return root, nil
		default:
			err := &ParseError{
				State:    tos.state,
				Token:    token,
				Position: position,
				Expected: p.table.Expected(tos.state),
				Reserved: !legal,
			}
			tracer().Infof("%v", err)
			return nil, err
		}
	}
}

// reductionLimit bounds the number of reductions between two shifts. A valid
// table never exceeds it.
func (p *Parser) reductionLimit(depth int) int {
	return (depth + 1) * p.table.Size() * (p.table.Grammar().Size() + 1)
}

func nodes(items []stackitem) []*ParseNode {
	children := make([]*ParseNode, len(items))
	for i, it := range items {
		children[i] = it.node
	}
	return children
}

// coverage is the span of a list of nodes. An empty list covers the position
// just before the lookahead token.
func coverage(children []*ParseNode, lookahead lrkit.Token) lrkit.Span {
	var span lrkit.Span
	for _, ch := range children {
		span = span.Extend(ch.Span)
	}
	if span.IsNull() {
		pos := lookahead.Span().From()
		return lrkit.Span{pos, pos}
	}
	return span
}
