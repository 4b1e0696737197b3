package scanner

import (
	"fmt"
	"strings"
	"testing"

	"github.com/npillmayer/lrkit"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

var inputStrings = []string{
	"1",
	"1+12",
	"Hello #World",
	`x="mystring" // commented `,
	"1,22,333",
}

var tokenCounts = []int{1, 3, 3, 3, 5}

func TestScan1(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrkit.scanner")
	defer teardown()
	//
	for i, input := range inputStrings {
		t.Logf("------+-----------------+--------")
		reader := strings.NewReader(input)
		name := fmt.Sprintf("input #%d", i)
		scanner := GoTokenizer(name, reader)
		token := scanner.NextToken()
		count := 0
		for token.Symbol() != lrkit.EOF {
			t.Logf(" %4s | %15s | @%5d", token.Symbol(), token.Lexeme(), token.Span().From())
			token = scanner.NextToken()
			count++
		}
		if count != tokenCounts[i] {
			t.Errorf("Expected token count for #%d to be %d, is %d", i, tokenCounts[i], count)
		}
	}
	t.Logf("------+-----------------+--------")
}

func TestCategories(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrkit.scanner")
	defer teardown()
	//
	scanner := GoTokenizer("categories", strings.NewReader("x + 12 * y"),
		Categories(map[rune]string{Ident: "id", Int: "num"}))
	tokens := Tokens(scanner)
	if syms := Symbols(tokens); syms != "id + num * id" {
		t.Errorf("expected symbols 'id + num * id', got '%s'", syms)
	}
	if tokens[2].Lexeme() != "12" {
		t.Errorf("expected lexeme 12, got %q", tokens[2].Lexeme())
	}
	if s := tokens[2].Span(); s.From() != 4 || s.To() != 6 {
		t.Errorf("expected span (4…6) for 12, got %v", s)
	}
}

func TestCharTokenizer(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrkit.scanner")
	defer teardown()
	//
	tokens := Tokens(NewCharTokenizer("a + b"))
	if syms := Symbols(tokens); syms != "a + b" {
		t.Errorf("expected symbols 'a + b', got '%s'", syms)
	}
	if s := tokens[2].Span(); s.From() != 4 || s.To() != 5 {
		t.Errorf("expected span (4…5) for b, got %v", s)
	}
	tokens = Tokens(NewCharTokenizer("a b", SkipBlanks(false)))
	if len(tokens) != 3 || tokens[1].Symbol() != " " {
		t.Errorf("expected blank to be a token, got %v", tokens)
	}
	tokens = Tokens(NewCharTokenizer("äö"))
	if len(tokens) != 2 || tokens[1].Symbol() != "ö" || tokens[1].Span().Len() != 2 {
		t.Errorf("expected 2 tokens for 2 umlauts, got %v", tokens)
	}
	eof := NewCharTokenizer("").NextToken()
	if eof.Symbol() != lrkit.EOF || !eof.Span().IsNull() {
		t.Errorf("expected EOF token for empty input, got %v", eof)
	}
}

func TestCharTokenizerErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrkit.scanner")
	defer teardown()
	//
	var errs []error
	scanner := NewCharTokenizer("a\xffb")
	scanner.SetErrorHandler(func(e error) { errs = append(errs, e) })
	tokens := Tokens(scanner)
	if len(tokens) != 2 || len(errs) != 1 {
		t.Errorf("expected 2 tokens and 1 error, got %v and %v", tokens, errs)
	}
}

func TestReservedCharacters(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrkit.scanner")
	defer teardown()
	//
	var errs []error
	scanner := NewCharTokenizer("x$+ε+x")
	scanner.SetErrorHandler(func(e error) { errs = append(errs, e) })
	tokens := Tokens(scanner)
	if syms := Symbols(tokens); syms != "x + + x" || len(errs) != 2 {
		t.Errorf("expected 'x + + x' and 2 errors, got '%s' and %v", syms, errs)
	}
	errs = nil
	gotok := GoTokenizer("reserved", strings.NewReader("a $ b"))
	gotok.SetErrorHandler(func(e error) { errs = append(errs, e) })
	tokens = Tokens(gotok)
	if syms := Symbols(tokens); syms != "a b" || len(errs) != 1 {
		t.Errorf("expected 'a b' and 1 error, got '%s' and %v", syms, errs)
	}
}
