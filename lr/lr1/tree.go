package lr1

import (
	"bytes"

	"github.com/npillmayer/lrkit"
)

// ParseNode is a node of a parse tree. Leaves represent input tokens, inner
// nodes represent reduced rules. A node for an ε-rule has no children.
type ParseNode struct {
	Symbol   string       // terminal or non-terminal
	Token    lrkit.Token  // input token, for leaves only
	Span     lrkit.Span   // input positions covered by this node
	Children []*ParseNode // in left-to-right order
}

// IsLeaf is a predicate: does this node represent an input token?
func (node *ParseNode) IsLeaf() bool {
	return node.Token != nil
}

// Leaves returns the symbols of all leaves of the tree rooted at node, from
// left to right. For a tree produced by a parser, this is the input sequence.
func (node *ParseNode) Leaves() []string {
	var leaves []string
	node.Walk(func(n *ParseNode, _ int) bool {
		if n.IsLeaf() {
			leaves = append(leaves, n.Symbol)
		}
		return true
	})
	return leaves
}

// Walk visits the nodes of the tree rooted at node in depth-first pre-order,
// calling f with each node and its depth. If f returns false, the children of
// the node are skipped.
func (node *ParseNode) Walk(f func(node *ParseNode, level int) bool) {
	node.walk(f, 0)
}

func (node *ParseNode) walk(f func(*ParseNode, int) bool, level int) {
	if node == nil || !f(node, level) {
		return
	}
	for _, ch := range node.Children {
		ch.walk(f, level+1)
	}
}

// String returns a term-like representation of the tree, e.g.
//
//     S(E(E(T(id)), +, T(id)))
//
// Nodes for ε-rules are written as "A(ε)".
func (node *ParseNode) String() string {
	var b bytes.Buffer
	node.format(&b)
	return b.String()
}

func (node *ParseNode) format(b *bytes.Buffer) {
	if node == nil {
		b.WriteString("<nil>")
		return
	}
	b.WriteString(node.Symbol)
	if node.IsLeaf() {
		return
	}
	b.WriteString("(")
	if len(node.Children) == 0 {
		b.WriteString(lrkit.Epsilon)
	}
	for i, ch := range node.Children {
		if i > 0 {
			b.WriteString(", ")
		}
		ch.format(b)
	}
	b.WriteString(")")
}
