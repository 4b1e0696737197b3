package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/npillmayer/lrkit/lr"
	"github.com/npillmayer/lrkit/lr/scanner/lexmach"
	"github.com/npillmayer/lrkit/lr/syntax"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var rootFlags = struct {
	trace    *string
	strict   *bool
	patterns *map[string]string
}{}

var rootCmd = &cobra.Command{
	Use:   "lrkit",
	Short: "Generate LR(1) parse tables from a grammar and parse input with them",
	Long: `lrkit provides three features:
- Prints FIRST/FOLLOW sets and the LR(1) tables of a grammar.
- Parses input with the tables of a grammar and prints the parse tree.
- Starts an interactive session to parse input line by line.`,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootFlags.trace = rootCmd.PersistentFlags().StringP("trace", "t", "Error", "trace level [Debug|Info|Error]")
	rootFlags.strict = rootCmd.PersistentFlags().Bool("strict", false, "reject grammars with LR(1) conflicts")
	rootFlags.patterns = rootCmd.PersistentFlags().StringToStringP("pattern", "p", nil,
		"regular expression for a terminal, e.g. num='[0-9]+'")
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		pterm.Error.Println(err.Error())
		return err
	}
	return nil
}

// setup initializes display and tracing, before any sub-command runs.
func setup(cmd *cobra.Command, args []string) error {
	initDisplay()
	tracing.SetTraceSelector(tracing.SelectorForAdapter(gologadapter.GetAdapter()))
	tracer().SetTraceLevel(tracing.TraceLevelFromString(*rootFlags.trace))
	tracer().Debugf("trace level is %s", tracer().GetTraceLevel())
	return nil
}

// loadGrammar reads a grammar description from a file.
func loadGrammar(path string) (*lr.Grammar, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open grammar file: %w", err)
	}
	defer f.Close()
	name := filepath.Base(path)
	return syntax.Parse(name, f)
}

// loadTable reads a grammar description and generates its parse table.
// Conflicts are reported as warnings, unless flag --strict is set.
func loadTable(path string) (*lr.ParseTable, error) {
	g, err := loadGrammar(path)
	if err != nil {
		return nil, err
	}
	tracer().Infof("grammar %s has %d rules", g.Name, g.Size())
	g.Dump()
	table, err := lr.BuildParseTable(g, lr.StrictConflicts(*rootFlags.strict))
	if err != nil {
		return nil, err
	}
	if table.HasConflicts {
		pterm.Warning.Printfln("grammar %s is not LR(1), conflicts have been resolved arbitrarily", g.Name)
	}
	table.Dump()
	return table, nil
}

// terminalScanner creates a lexmachine scanner for the terminals of a grammar,
// using the patterns given by flag --pattern.
func terminalScanner(g *lr.Grammar) (*lexmach.LMAdapter, error) {
	var opts []lexmach.Option
	for terminal, regex := range *rootFlags.patterns {
		if !g.IsTerminal(terminal) {
			return nil, fmt.Errorf("pattern given for %q, which is not a terminal of %s", terminal, g.Name)
		}
		opts = append(opts, lexmach.Pattern(terminal, regex))
	}
	return lexmach.NewTerminalScanner(g, opts...)
}
