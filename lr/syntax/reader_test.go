package syntax

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/lrkit/lr"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

const exprGrammar = `
# expressions
S -> E
E -> E + T | T
  | ( E )          # parenthesized
T -> id
`

func TestReadGrammar(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrkit.lr")
	defer teardown()
	//
	g, err := ParseString("Expr", exprGrammar)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		"S ➞ E",
		"E ➞ E + T",
		"E ➞ T",
		"E ➞ ( E )",
		"T ➞ id",
	}
	if g.Size() != len(want) {
		t.Fatalf("expected %d rules, got %d:\n%v", len(want), g.Size(), g)
	}
	for i, r := range g.Rules() {
		if r.String() != want[i] {
			t.Errorf("rule %d: expected %q, got %q", i, want[i], r)
		}
	}
	if g.Start() != "S" || !g.IsTerminal("(") || !g.IsNonTerminal("T") {
		t.Errorf("unexpected classification of symbols: %v / %v", g.Terminals(), g.NonTerminals())
	}
}

func TestReadEpsilonAndQuotes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrkit.lr")
	defer teardown()
	//
	src := "L → L '|' A | A\nA ➞ a\n  | ε\n  |\nB -> \"#\" |"
	rules, err := ReadRules(src)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		"L ➞ L | A",
		"L ➞ A",
		"A ➞ a",
		"A ➞ ε",
		"A ➞ ε",
		"B ➞ #",
		"B ➞ ε",
	}
	if len(rules) != len(want) {
		t.Fatalf("expected %d rules, got %v", len(want), rules)
	}
	for i, r := range rules {
		if r.String() != want[i] {
			t.Errorf("rule %d: expected %q, got %q", i, want[i], r)
		}
	}
}

func TestReadErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrkit.lr")
	defer teardown()
	//
	inputs := []string{
		"| a",
		"S a b",
		"S -> a -> b",
		"-> a",
		"",
		"S -> ''",
	}
	for _, input := range inputs {
		_, err := Parse("bad", strings.NewReader(input))
		if !errors.Is(err, lr.ErrGrammar) {
			t.Errorf("%q: expected ErrGrammar, got %v", input, err)
		}
	}
	_, err := ParseString("bad", "S -> a\nT b\n")
	if err == nil || !strings.Contains(err.Error(), "line 2") {
		t.Errorf("expected error for line 2, got %v", err)
	}
}
