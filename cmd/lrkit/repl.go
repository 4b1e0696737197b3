package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/lrkit/lr"
	"github.com/npillmayer/lrkit/lr/lr1"
	"github.com/npillmayer/lrkit/lr/scanner/lexmach"
	"github.com/npillmayer/schuko/tracing"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "repl <grammar file path>",
		Short: "Parse input interactively, line by line",
		Long: `repl reads lines of input and prints their parse tree. Lines starting
with a colon are commands:
  :first N    print FIRST(N)
  :follow N   print FOLLOW(N)
  :state n    print the items and actions of state n
  :trace L    set the trace level [Debug|Info|Error]
  :quit       end the session`,
		Args: cobra.ExactArgs(1),
		RunE: runREPL,
	}
	rootCmd.AddCommand(cmd)
}

func runREPL(cmd *cobra.Command, args []string) error {
	table, err := loadTable(args[0])
	if err != nil {
		return err
	}
	lm, err := terminalScanner(table.Grammar())
	if err != nil {
		return err
	}
	repl, err := readline.New("lrkit> ")
	if err != nil {
		return err
	}
	defer repl.Close()
	intp := &Intp{
		table:  table,
		parser: lr1.NewParser(table),
		lm:     lm,
		repl:   repl,
	}
	pterm.Info.Printfln("Parsing with grammar %s, quit with <ctrl>D", table.Grammar().Name)
	intp.REPL()
	return nil
}

// Intp is our interpreter object
type Intp struct {
	table  *lr.ParseTable
	parser *lr1.Parser
	lm     *lexmach.LMAdapter
	repl   *readline.Instance
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF or interrupt
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := intp.Eval(line)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	pterm.Println("Good bye!")
}

// Eval parses a line of input, or executes a command.
func (intp *Intp) Eval(line string) (bool, error) {
	if strings.HasPrefix(line, ":") {
		return intp.command(strings.Fields(line[1:]))
	}
	sc, err := intp.lm.Scanner(line)
	if err != nil {
		return false, err
	}
	var scanErr error
	sc.SetErrorHandler(func(e error) {
		if scanErr == nil {
			scanErr = e
		}
	})
	tree, err := intp.parser.ParseTokens(sc)
	if scanErr != nil {
		return false, scanErr
	}
	if err != nil {
		return false, err
	}
	pterm.Info.Println(tree.String())
	return false, printTree(tree)
}

func (intp *Intp) command(args []string) (bool, error) {
	if len(args) == 0 {
		return false, fmt.Errorf("missing command")
	}
	g := intp.table.Grammar()
	switch args[0] {
	case "quit", "q":
		return true, nil
	case "first", "follow":
		if len(args) != 2 || !g.IsNonTerminal(args[1]) {
			return false, fmt.Errorf("usage: :%s <non-terminal>", args[0])
		}
		set := g.First(args[1])
		if args[0] == "follow" {
			set = g.Follow(args[1])
		}
		if set == nil {
			return false, fmt.Errorf("%s is not reachable from %s", args[1], g.Start())
		}
		pterm.Info.Printfln("%s(%s) = %v", strings.ToUpper(args[0]), args[1], set)
	case "state":
		if len(args) != 2 {
			return false, fmt.Errorf("usage: :state <number>")
		}
		id, err := strconv.Atoi(args[1])
		if err != nil || intp.table.State(id) == nil {
			return false, fmt.Errorf("no state %q", args[1])
		}
		for _, item := range intp.table.State(id).Items() {
			pterm.Println("    " + item.String())
		}
		for _, e := range intp.table.Actions(id) {
			pterm.Info.Printfln("%s: %v", e.Terminal, e.Action)
		}
	case "trace":
		if len(args) != 2 {
			return false, fmt.Errorf("usage: :trace <level>")
		}
		tracer().SetTraceLevel(tracing.TraceLevelFromString(args[1]))
		pterm.Info.Printfln("trace level is %s", tracer().GetTraceLevel())
	default:
		return false, fmt.Errorf("unknown command :%s", args[0])
	}
	return false, nil
}
