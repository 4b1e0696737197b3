package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/lrkit/lr"
	"github.com/npillmayer/lrkit/lr/lr1"
	"github.com/npillmayer/lrkit/lr/scanner"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var parseFlags = struct {
	source     *string
	scanner    *string
	categories *map[string]string
	sexpr      *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:   "parse <grammar file path> [input]",
		Short: "Parse input and print the parse tree",
		Example: `  lrkit parse expr.grammar 'id + id'
  cat src | lrkit parse expr.grammar -p num='[0-9]+'
  lrkit parse expr.grammar --scanner go --category ident=id,int=num -s src`,
		Args: cobra.MinimumNArgs(1),
		RunE: runParse,
	}
	parseFlags.source = cmd.Flags().StringP("source", "s", "", "source file path (default: arguments or stdin)")
	parseFlags.scanner = cmd.Flags().String("scanner", "terminal", "scanner to use [terminal|char|go]")
	parseFlags.categories = cmd.Flags().StringToString("category", nil,
		"terminal for a token category of the go scanner, e.g. ident=id")
	parseFlags.sexpr = cmd.Flags().Bool("sexpr", false, "print the parse tree on a single line")
	rootCmd.AddCommand(cmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	table, err := loadTable(args[0])
	if err != nil {
		return err
	}
	input, err := readInput(args[1:])
	if err != nil {
		return err
	}
	tokenizer, err := newTokenizer(table.Grammar(), *parseFlags.scanner, input)
	if err != nil {
		return err
	}
	var scanErr error
	tokenizer.SetErrorHandler(func(e error) {
		pterm.Error.Println(e.Error())
		if scanErr == nil {
			scanErr = e
		}
	})
	tree, err := lr1.NewParser(table).ParseTokens(tokenizer)
	if err != nil {
		return err
	}
	if scanErr != nil {
		return fmt.Errorf("input has been accepted, but not all of it could be scanned: %w", scanErr)
	}
	if *parseFlags.sexpr {
		pterm.Println(tree.String())
		return nil
	}
	return printTree(tree)
}

func readInput(args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	src := os.Stdin
	if *parseFlags.source != "" {
		f, err := os.Open(*parseFlags.source)
		if err != nil {
			return "", fmt.Errorf("cannot open the source file %s: %w", *parseFlags.source, err)
		}
		defer f.Close()
		src = f
	}
	b, err := io.ReadAll(src)
	if err != nil {
		return "", fmt.Errorf("cannot read input: %w", err)
	}
	return string(b), nil
}

// newTokenizer creates a tokenizer of a given kind for an input string.
func newTokenizer(g *lr.Grammar, kind string, input string) (scanner.Tokenizer, error) {
	switch kind {
	case "terminal":
		lm, err := terminalScanner(g)
		if err != nil {
			return nil, err
		}
		return lm.Scanner(input)
	case "char":
		return scanner.NewCharTokenizer(input), nil
	case "go":
		cats, err := categories(*parseFlags.categories)
		if err != nil {
			return nil, err
		}
		return scanner.GoTokenizer(g.Name, strings.NewReader(input), scanner.Categories(cats)), nil
	}
	return nil, fmt.Errorf("unknown scanner %q", kind)
}

var categoryNames = map[string]rune{
	"ident":     scanner.Ident,
	"int":       scanner.Int,
	"float":     scanner.Float,
	"char":      scanner.Char,
	"string":    scanner.String,
	"rawstring": scanner.RawString,
}

// categories maps category names to token categories of the go scanner.
func categories(m map[string]string) (map[rune]string, error) {
	cats := make(map[rune]string, len(m))
	for name, terminal := range m {
		cat, ok := categoryNames[strings.ToLower(name)]
		if !ok {
			return nil, fmt.Errorf("unknown token category %q", name)
		}
		cats[cat] = terminal
	}
	return cats, nil
}
