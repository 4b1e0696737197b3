package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var tableFlags = struct {
	dot    *string
	states *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "table <grammar file path>",
		Short:   "Print the LR(1) tables of a grammar",
		Example: `  lrkit table expr.grammar --dot expr.dot`,
		Args:    cobra.ExactArgs(1),
		RunE:    runTable,
	}
	tableFlags.dot = cmd.Flags().String("dot", "", "write the LR(1) automaton in GraphViz format to a file")
	tableFlags.states = cmd.Flags().Bool("states", false, "print the items of every state")
	rootCmd.AddCommand(cmd)
}

func runTable(cmd *cobra.Command, args []string) error {
	table, err := loadTable(args[0])
	if err != nil {
		return err
	}
	g := table.Grammar()
	pterm.DefaultSection.Println("Grammar " + g.Name)
	pterm.Println(g.String())
	if err = printTable(analysisData(g)); err != nil {
		return err
	}
	if *tableFlags.states {
		pterm.DefaultSection.Println("States")
		for id, s := range table.States() {
			pterm.Info.Printfln("state %d", id)
			for _, item := range s.Items() {
				pterm.Println("    " + item.String())
			}
		}
	}
	pterm.DefaultSection.Println("ACTION")
	if err = printTable(actionData(table)); err != nil {
		return err
	}
	pterm.DefaultSection.Println("GOTO")
	if err = printTable(gotoData(table)); err != nil {
		return err
	}
	printDiagnostics(table.Diagnostics())
	if *tableFlags.dot != "" {
		if err = writeDot(*tableFlags.dot, table.CFSM().WriteGraphViz); err != nil {
			return err
		}
		pterm.Info.Printfln("automaton written to %s", *tableFlags.dot)
	}
	return nil
}

func writeDot(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create GraphViz file: %w", err)
	}
	if err = write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
