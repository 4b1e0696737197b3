package main

import (
	"fmt"
	"strconv"

	"github.com/npillmayer/lrkit"
	"github.com/npillmayer/lrkit/lr"
	"github.com/npillmayer/lrkit/lr/lr1"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
)

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// printTree renders a parse tree to the terminal.
func printTree(root *lr1.ParseNode) error {
	ll := leveledTree(root)
	tracer().Debugf("|ll| = %d", len(ll))
	return pterm.DefaultTree.WithRoot(putils.TreeFromLeveledList(ll)).Render()
}

// leveledTree flattens a parse tree into a leveled list, one item per node.
func leveledTree(root *lr1.ParseNode) pterm.LeveledList {
	ll := pterm.LeveledList{}
	if root == nil {
		return ll
	}
	root.Walk(func(n *lr1.ParseNode, level int) bool {
		ll = append(ll, pterm.LeveledListItem{Level: level, Text: nodeLabel(n)})
		return true
	})
	return ll
}

func nodeLabel(n *lr1.ParseNode) string {
	switch {
	case n.IsLeaf() && n.Token.Lexeme() != n.Symbol:
		return fmt.Sprintf("%s %q %v", n.Symbol, n.Token.Lexeme(), n.Span)
	case !n.IsLeaf() && len(n.Children) == 0:
		return fmt.Sprintf("%s ➞ %s", n.Symbol, lrkit.Epsilon)
	}
	return fmt.Sprintf("%s %v", n.Symbol, n.Span)
}

// printTable renders tabular data with a header row.
func printTable(data pterm.TableData) error {
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

// analysisData lists the nullability, FIRST and FOLLOW sets of the
// non-terminals of a grammar.
func analysisData(g *lr.Grammar) pterm.TableData {
	data := pterm.TableData{{"symbol", "nullable", "FIRST", "FOLLOW"}}
	for _, N := range g.NonTerminals() {
		first, follow := g.First(N), g.Follow(N)
		if first == nil {
			data = append(data, []string{N, "", "unreachable", ""})
			continue
		}
		data = append(data, []string{
			N,
			strconv.FormatBool(g.IsNullable(N)),
			first.String(),
			follow.String(),
		})
	}
	return data
}

// actionData lists the ACTION table, one row per state and one column per
// terminal. Error entries are left blank.
func actionData(pt *lr.ParseTable) pterm.TableData {
	var terminals []string
	for _, t := range pt.Grammar().Terminals() {
		if t != lrkit.Epsilon {
			terminals = append(terminals, t)
		}
	}
	data := pterm.TableData{append([]string{"state"}, terminals...)}
	for state := 0; state < pt.Size(); state++ {
		row := []string{strconv.Itoa(state)}
		for _, t := range terminals {
			row = append(row, pt.Action(state, t).String())
		}
		data = append(data, row)
	}
	return data
}

// gotoData lists the GOTO table for non-terminals, one row per state.
func gotoData(pt *lr.ParseTable) pterm.TableData {
	nonterms := pt.Grammar().NonTerminals()
	data := pterm.TableData{append([]string{"state"}, nonterms...)}
	for state := 0; state < pt.Size(); state++ {
		row := []string{strconv.Itoa(state)}
		for _, N := range nonterms {
			cell := ""
			if next, ok := pt.Goto(state, N); ok {
				cell = strconv.Itoa(next)
			}
			row = append(row, cell)
		}
		data = append(data, row)
	}
	return data
}

// printDiagnostics shows diagnostics as warnings.
func printDiagnostics(ds []lr.Diagnostic) {
	for _, d := range ds {
		pterm.Warning.Println(d.String())
	}
}
