package lr1

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/npillmayer/lrkit"
	"github.com/npillmayer/lrkit/lr"
	"github.com/npillmayer/lrkit/lr/scanner"
	"github.com/npillmayer/lrkit/lr/scanner/lexmach"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// S ➞ E,  E ➞ E + T | T,  T ➞ id
func exprParser(t *testing.T) *Parser {
	b := lr.NewGrammarBuilder("G")
	b.LHS("S").N("E").End()
	b.LHS("E").N("E").T("+").N("T").End()
	b.LHS("E").N("T").End()
	b.LHS("T").T("id").End()
	return parserFor(t, b)
}

func parserFor(t *testing.T, b *lr.GrammarBuilder) *Parser {
	g, err := b.Grammar()
	if err != nil {
		t.Fatalf("cannot create grammar: %v", err)
	}
	table, err := lr.BuildParseTable(g)
	if err != nil {
		t.Fatalf("cannot create parse table: %v", err)
	}
	if table.HasConflicts {
		t.Fatalf("grammar %s has conflicts: %v", g.Name, table.Diagnostics())
	}
	return NewParser(table)
}

func TestParseExpression(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrkit.lr")
	defer teardown()
	//
	p := exprParser(t)
	tree, err := p.Parse([]string{"id", "+", "id"})
	if err != nil {
		t.Fatal(err)
	}
	if tree.String() != "S(E(E(T(id)), +, T(id)))" {
		t.Errorf("unexpected parse tree %v", tree)
	}
	if tree.Span.From() != 0 || tree.Span.To() != 3 {
		t.Errorf("expected tree to span (0…3), spans %v", tree.Span)
	}
	if tree.IsLeaf() || !tree.Children[0].Children[1].IsLeaf() {
		t.Errorf("expected + to be a leaf and the root not to be")
	}
}

func TestParseErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrkit.lr")
	defer teardown()
	//
	p := exprParser(t)
	tree, err := p.Parse([]string{"id", "+"})
	if tree != nil || !errors.Is(err, ErrSyntax) {
		t.Fatalf("expected syntax error for truncated input, got %v / %v", tree, err)
	}
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected a *ParseError, got %T", err)
	}
	if perr.Token.Symbol() != lrkit.EOF || perr.Position != 2 {
		t.Errorf("expected error at end of input, got %v", perr)
	}
	if len(perr.Expected) != 1 || perr.Expected[0] != "id" {
		t.Errorf("expected id to be expected, is %v", perr.Expected)
	}
	tree, err = p.Parse([]string{"+", "id"})
	if tree != nil || !errors.As(err, &perr) {
		t.Fatalf("expected syntax error for leading +, got %v / %v", tree, err)
	}
	if perr.Position != 0 || perr.State != 0 || perr.Token.Symbol() != "+" {
		t.Errorf("expected error at first token in state 0, got %v", perr)
	}
	if _, err = p.Parse(nil); !errors.Is(err, ErrSyntax) {
		t.Errorf("expected empty input to be rejected, got %v", err)
	}
	if _, err = NewParser(nil).Parse([]string{"id"}); !errors.Is(err, ErrTable) {
		t.Errorf("expected ErrTable for parser without table, got %v", err)
	}
}

func TestReservedInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrkit.lr")
	defer teardown()
	//
	p := exprParser(t)
	inputs := [][]string{
		{"id", "$", "+", "+"},
		{"id", "ε", "+", "id"},
	}
	for _, input := range inputs {
		tree, err := p.Parse(input)
		var perr *ParseError
		if tree != nil || !errors.As(err, &perr) {
			t.Errorf("%v: expected syntax error, got %v / %v", input, tree, err)
			continue
		}
		if perr.Position != 1 || perr.Token.Symbol() != input[1] || !perr.Reserved {
			t.Errorf("%v: expected error for reserved symbol at position 1, got %v", input, perr)
		}
	}
	b := lr.NewGrammarBuilder("Sums")
	b.LHS("S").N("E").End()
	b.LHS("E").N("E").T("+").N("T").End()
	b.LHS("E").N("T").End()
	b.LHS("T").T("x").End()
	var scanErr error
	tokenizer := scanner.NewCharTokenizer("x$+++x x")
	tokenizer.SetErrorHandler(func(e error) { scanErr = e })
	tree, err := parserFor(t, b).ParseTokens(tokenizer)
	if tree != nil || !errors.Is(err, ErrSyntax) {
		t.Errorf("expected syntax error after x, got %v / %v", tree, err)
	}
	if scanErr == nil {
		t.Errorf("expected $ to be reported by the tokenizer")
	}
}

func TestRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrkit.lr")
	defer teardown()
	//
	p := exprParser(t)
	inputs := []string{
		"id",
		"id + id",
		"id + id + id + id",
	}
	for _, input := range inputs {
		tokens := strings.Fields(input)
		tree, err := p.Parse(tokens)
		if err != nil {
			t.Errorf("%q: %v", input, err)
			continue
		}
		if leaves := strings.Join(tree.Leaves(), " "); leaves != input {
			t.Errorf("expected leaves %q, got %q", input, leaves)
		}
	}
}

func TestParseEpsilon(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrkit.lr")
	defer teardown()
	//
	b := lr.NewGrammarBuilder("Signed Variables")
	b.LHS("Var").N("Sign").T("a").End() // Var  ➞ Sign a
	b.LHS("Sign").T("+").End()          // Sign ➞ +
	b.LHS("Sign").T("-").End()          // Sign ➞ -
	b.LHS("Sign").Epsilon()             // Sign ➞ ε
	p := parserFor(t, b)
	tree, err := p.Parse([]string{"a"})
	if err != nil {
		t.Fatal(err)
	}
	if tree.String() != "Var(Sign(ε), a)" {
		t.Errorf("unexpected parse tree %v", tree)
	}
	if sign := tree.Children[0]; sign.IsLeaf() || !sign.Span.IsNull() {
		t.Errorf("expected ε-node with empty span, got %v", sign.Span)
	}
	tree, err = p.Parse([]string{"-", "a"})
	if err != nil {
		t.Fatal(err)
	}
	if tree.String() != "Var(Sign(-), a)" {
		t.Errorf("unexpected parse tree %v", tree)
	}
}

func TestParseTokens(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrkit.lr")
	defer teardown()
	//
	b := lr.NewGrammarBuilder("Sums")
	b.LHS("S").N("E").End()
	b.LHS("E").N("E").T("+").N("T").End()
	b.LHS("E").N("T").End()
	b.LHS("T").T("x").End()
	p := parserFor(t, b)
	tree, err := p.ParseTokens(scanner.NewCharTokenizer("x + x+x"))
	if err != nil {
		t.Fatal(err)
	}
	if strings.Join(tree.Leaves(), "") != "x+x+x" {
		t.Errorf("unexpected leaves %v", tree.Leaves())
	}
	if tree.Span.To() != 7 {
		t.Errorf("expected tree to span the input, spans %v", tree.Span)
	}
	LM, err := lexmach.NewTerminalScanner(p.Table().Grammar())
	if err != nil {
		t.Fatal(err)
	}
	sc, _ := LM.Scanner("x + x")
	if _, err = p.ParseTokens(sc); err != nil {
		t.Errorf("expected input to be accepted, got %v", err)
	}
}

func TestWalk(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrkit.lr")
	defer teardown()
	//
	p := exprParser(t)
	tree, _ := p.Parse([]string{"id", "+", "id"})
	var b strings.Builder
	tree.Walk(func(n *ParseNode, level int) bool {
		b.WriteString(strings.Repeat(".", level))
		b.WriteString(n.Symbol)
		b.WriteString(" ")
		return n.Symbol != "T"
	})
	if b.String() != "S .E ..E ...T ..+ ..T " {
		t.Errorf("unexpected walk %q", b.String())
	}
}

func TestConcurrentParses(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrkit.lr")
	defer teardown()
	//
	p := exprParser(t)
	var wg sync.WaitGroup
	results := make([]string, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tokens := []string{"id"}
			for k := 0; k < i; k++ {
				tokens = append(tokens, "+", "id")
			}
			tree, err := p.Parse(tokens)
			if err != nil {
				results[i] = err.Error()
				return
			}
			results[i] = strings.Join(tree.Leaves(), " ")
		}(i)
	}
	wg.Wait()
	for i, r := range results {
		want := "id" + strings.Repeat(" + id", i)
		if r != want {
			t.Errorf("parse #%d: expected %q, got %q", i, want, r)
		}
	}
}
