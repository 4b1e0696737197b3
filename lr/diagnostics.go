package lr

import (
	"errors"
	"fmt"
)

// Errors returned by grammar and table construction.
var (
	// ErrGrammar is returned for grammars which cannot be analysed at all.
	ErrGrammar = errors.New("invalid grammar")
	// ErrConflict is returned in strict mode for tables with conflicting entries.
	ErrConflict = errors.New("grammar is not LR(1)")
)

// DiagnosticKind classifies diagnostics.
type DiagnosticKind int

// Kinds of diagnostics. None of them prevents construction of a grammar or
// of a parse table.
const (
	UnreachableSymbol DiagnosticKind = iota + 1 // non-terminal not reachable from start symbol
	DuplicateRule                               // rule has been declared more than once
	IncompleteAction                            // item in a state yields no action
	ActionConflict                              // ACTION entry has been overwritten
	StartSymbolReused                           // start symbol heads more than one rule or occurs in a body
)

func (k DiagnosticKind) String() string {
	switch k {
	case UnreachableSymbol:
		return "unreachable-symbol"
	case DuplicateRule:
		return "duplicate-rule"
	case IncompleteAction:
		return "incomplete-action"
	case ActionConflict:
		return "action-conflict"
	case StartSymbolReused:
		return "start-symbol-reused"
	}
	return fmt.Sprintf("diagnostic(%d)", int(k))
}

// Diagnostic is a side-channel report of a problem found during grammar
// analysis or table construction.
type Diagnostic struct {
	Kind    DiagnosticKind
	Symbol  string // symbol concerned, if any
	State   int    // state concerned, or -1
	Message string
}

func (d Diagnostic) String() string {
	if d.State >= 0 {
		return fmt.Sprintf("%s in state %d: %s", d.Kind, d.State, d.Message)
	}
	return fmt.Sprintf("%s: %s", d.Kind, d.Message)
}

// diagnostics collects diagnostics and traces them.
type diagnostics []Diagnostic

func (ds *diagnostics) report(kind DiagnosticKind, sym string, state int, format string, args ...interface{}) {
	d := Diagnostic{
		Kind:    kind,
		Symbol:  sym,
		State:   state,
		Message: fmt.Sprintf(format, args...),
	}
	if kind == UnreachableSymbol || kind == DuplicateRule || kind == StartSymbolReused {
		tracer().Infof("warning: %s", d)
	} else {
		tracer().Errorf("%s", d)
	}
	*ds = append(*ds, d)
}

// ofKind filters diagnostics by kind.
func (ds diagnostics) ofKind(kind DiagnosticKind) []Diagnostic {
	var r []Diagnostic
	for _, d := range ds {
		if d.Kind == kind {
			r = append(r, d)
		}
	}
	return r
}
