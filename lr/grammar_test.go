package lr

import (
	"errors"
	"testing"

	"github.com/npillmayer/lrkit"
	"github.com/npillmayer/lrkit/lr/iteratable"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// S ➞ E,  E ➞ E + T | T,  T ➞ id
func exprGrammar(t *testing.T) *Grammar {
	b := NewGrammarBuilder("G")
	b.LHS("S").N("E").End()
	b.LHS("E").N("E").T("+").N("T").End()
	b.LHS("E").N("T").End()
	b.LHS("T").T("id").End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatalf("cannot create grammar: %v", err)
	}
	return g
}

func TestGrammarSymbols(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrkit.lr")
	defer teardown()
	//
	g := exprGrammar(t)
	g.Dump()
	if g.Start() != "S" {
		t.Errorf("expected start symbol S, got %q", g.Start())
	}
	if g.Size() != 4 {
		t.Errorf("expected 4 rules, got %d", g.Size())
	}
	for _, sym := range g.Terminals() {
		if g.IsNonTerminal(sym) {
			t.Errorf("symbol %q is terminal and non-terminal", sym)
		}
	}
	want := []string{"$", "ε", "+", "id", "S", "E", "T"}
	got := g.Symbols()
	if len(got) != len(want) {
		t.Fatalf("expected symbols %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("expected symbols %v, got %v", want, got)
			break
		}
	}
	if n := len(g.RulesByBodySymbol("T")); n != 2 {
		t.Errorf("expected T to occur in 2 rules, occurs in %d", n)
	}
}

func TestFirstFollow(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrkit.lr")
	defer teardown()
	//
	g := exprGrammar(t)
	for _, N := range g.NonTerminals() {
		F := g.First(N)
		if !F.Equals(iteratable.FromStrings("id")) {
			t.Errorf("expected FIRST(%s) = {id}, got %v", N, F)
		}
	}
	if !g.Follow("S").Contains(lrkit.EOF) {
		t.Errorf("expected $ ∈ FOLLOW(S)")
	}
	for _, N := range []string{"E", "T"} {
		F := g.Follow(N)
		if !F.Equals(iteratable.FromStrings("$", "+")) {
			t.Errorf("expected FOLLOW(%s) = {$ +}, got %v", N, F)
		}
	}
	if F := g.First("+"); F.Size() != 1 || !F.Contains("+") {
		t.Errorf("expected FIRST(+) = {+}, got %v", F)
	}
	if g.Follow("id") != nil {
		t.Errorf("expected no FOLLOW set for terminal id")
	}
}

func TestFirstOnlyTerminals(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrkit.lr")
	defer teardown()
	//
	b := NewGrammarBuilder("Mutual")
	b.LHS("S").N("A").T("x").End()
	b.LHS("A").N("B").T("a").End()
	b.LHS("A").Epsilon()
	b.LHS("B").N("A").T("b").End()
	b.LHS("B").N("B").T("c").End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	for _, N := range g.NonTerminals() {
		for _, x := range g.First(N).Strings() {
			if g.IsNonTerminal(x) {
				t.Errorf("FIRST(%s) contains non-terminal %s", N, x)
			}
		}
	}
	if !g.IsNullable("A") {
		t.Errorf("expected A to be nullable")
	}
	if g.IsNullable("B") {
		t.Errorf("expected B not to be nullable")
	}
	if F := g.First("B"); !F.Equals(iteratable.FromStrings("b")) {
		t.Errorf("expected FIRST(B) = {b}, got %v", F)
	}
	if F := g.First("S"); !F.Equals(iteratable.FromStrings("b", "x")) {
		t.Errorf("expected FIRST(S) = {b x}, got %v", F)
	}
	if F := g.Follow("B"); !F.Equals(iteratable.FromStrings("a", "c")) {
		t.Errorf("expected FOLLOW(B) = {a c}, got %v", F)
	}
	if F := g.Follow("A"); !F.Equals(iteratable.FromStrings("x", "b")) {
		t.Errorf("expected FOLLOW(A) = {x b}, got %v", F)
	}
}

func TestEpsilonRule(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrkit.lr")
	defer teardown()
	//
	g, err := NewGrammar("Eps", []*Rule{
		NewRule("S", "A", "b"),
		NewRule("A", lrkit.Epsilon),
		NewRule("A", "a"),
	})
	if err != nil {
		t.Fatal(err)
	}
	if !g.Rule(1).IsEpsilon() {
		t.Errorf("expected rule %v to be an ε-rule", g.Rule(1))
	}
	if g.Rule(1).String() != "A ➞ ε" {
		t.Errorf("unexpected rule string %q", g.Rule(1))
	}
	if !g.First("A").Contains(lrkit.Epsilon) {
		t.Errorf("expected ε ∈ FIRST(A), got %v", g.First("A"))
	}
	if F := g.First("S"); !F.Equals(iteratable.FromStrings("a", "b")) {
		t.Errorf("expected FIRST(S) = {a b}, got %v", F)
	}
	if F := g.FirstOfSequence(nil); F.Size() != 1 || !F.Contains(lrkit.Epsilon) {
		t.Errorf("expected FIRST of empty sequence = {ε}, got %v", F)
	}
}

func TestEmptyBodyStart(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrkit.lr")
	defer teardown()
	//
	g, err := NewGrammar("Empty", []*Rule{NewRule("S")})
	if err != nil {
		t.Fatal(err)
	}
	if F := g.First("S"); F.Size() != 1 || !F.Contains(lrkit.Epsilon) {
		t.Errorf("expected FIRST(S) = {ε}, got %v", F)
	}
	if F := g.Follow("S"); F.Size() != 1 || !F.Contains(lrkit.EOF) {
		t.Errorf("expected FOLLOW(S) = {$}, got %v", F)
	}
}

func TestUnreachable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrkit.lr")
	defer teardown()
	//
	g, err := NewGrammar("Unreachable", []*Rule{
		NewRule("S", "a"),
		NewRule("U", "b"),
		NewRule("S", "a"),
	})
	if err != nil {
		t.Fatal(err)
	}
	if g.First("U") != nil || g.Follow("U") != nil {
		t.Errorf("expected no FIRST/FOLLOW for unreachable U")
	}
	ds := g.diagnostics.ofKind(UnreachableSymbol)
	if len(ds) != 1 || ds[0].Symbol != "U" {
		t.Errorf("expected unreachable-symbol diagnostic for U, have %v", g.Diagnostics())
	}
	if len(g.diagnostics.ofKind(DuplicateRule)) != 1 {
		t.Errorf("expected duplicate-rule diagnostic, have %v", g.Diagnostics())
	}
	if g.Size() != 2 {
		t.Errorf("expected duplicate rule to be dropped, have %d rules", g.Size())
	}
}

func TestStartSymbolReused(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrkit.lr")
	defer teardown()
	//
	g, err := NewGrammar("Nested", []*Rule{
		NewRule("S", "a", "S", "b"),
		NewRule("S", "c"),
	})
	if err != nil {
		t.Fatal(err)
	}
	if ds := g.diagnostics.ofKind(StartSymbolReused); len(ds) != 2 {
		t.Errorf("expected 2 start-symbol diagnostics, have %v", g.Diagnostics())
	}
	if ds := exprGrammar(t).diagnostics.ofKind(StartSymbolReused); len(ds) != 0 {
		t.Errorf("expected no start-symbol diagnostics for expression grammar, have %v", ds)
	}
}

func TestGrammarErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrkit.lr")
	defer teardown()
	//
	cases := []struct {
		name  string
		rules []*Rule
	}{
		{"no rules", nil},
		{"reserved head", []*Rule{NewRule(lrkit.EOF, "a")}},
		{"EOF in body", []*Rule{NewRule("S", "a", lrkit.EOF)}},
		{"empty head", []*Rule{NewRule("", "a")}},
	}
	for _, c := range cases {
		if _, err := NewGrammar(c.name, c.rules); !errors.Is(err, ErrGrammar) {
			t.Errorf("%s: expected ErrGrammar, got %v", c.name, err)
		}
	}
	b := NewGrammarBuilder("Bad")
	b.LHS("S").T("a").End()
	b.LHS("a").T("b").End()
	if _, err := b.Grammar(); !errors.Is(err, ErrGrammar) {
		t.Errorf("expected builder to reject terminal used as head, got %v", err)
	}
}
