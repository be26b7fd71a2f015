// Package refa compiles the regex surface syntax through the lexer,
// parser, Thompson-NFA and subset-construction layers, and exposes the
// two resulting matchers behind a single façade.
package refa

import (
	"errors"
	"fmt"

	"github.com/gorefa/refa/ast"
	"github.com/gorefa/refa/dfa"
	"github.com/gorefa/refa/diag"
	"github.com/gorefa/refa/lexer"
	"github.com/gorefa/refa/nfa"
	"github.com/gorefa/refa/symbol"
)

// byteSymbol maps an input byte one-to-one onto the automaton
// alphabet. The lexer, parser and automata all agree on this mapping:
// symbol values below 0 are reserved (symbol.Epsilon), so every byte
// maps to its own non-negative symbol.
func byteSymbol(b byte) symbol.Symbol { return symbol.Symbol(b) }

// Program is a compiled pattern, holding both a Thompson NFA and its
// subset-constructed DFA so callers can pick the matcher that suits
// them: the DFA for throughput, the NFA when memory for a fully
// expanded DFA is undesirable.
type Program struct {
	source string
	nfa    *nfa.NFA
	dfa    *dfa.DFA
}

// Source returns the pattern text the program was compiled from.
func (p *Program) Source() string { return p.source }

// AcceptNFA reports whether input matches the pattern in full, using
// the dual-frontier online NFA simulator.
func (p *Program) AcceptNFA(input []byte) bool {
	sim := nfa.NewSimulator(p.nfa)
	return sim.AcceptBytes(input, byteSymbol)
}

// AcceptDFA reports whether input matches the pattern in full, using
// the linear-time DFA simulator.
func (p *Program) AcceptDFA(input []byte) bool {
	sim := dfa.NewSimulator(p.dfa)
	return sim.AcceptBytes(input, byteSymbol)
}

// NFA exposes the underlying automaton for callers that want their own
// nfa.Simulator (e.g. to step byte-by-byte against streaming input).
func (p *Program) NFA() *nfa.NFA { return p.nfa }

// DFA exposes the underlying automaton for callers that want their own
// dfa.Simulator.
func (p *Program) DFA() *dfa.DFA { return p.dfa }

// Compile lexes, parses and constructs both automata for pattern,
// reporting lexer and parser diagnostics through log. Passing a nil
// log discards diagnostics.
func Compile(pattern string, log *diag.Log) (*Program, error) {
	n, err := CompileToNFA(pattern, log)
	if err != nil {
		return nil, err
	}
	d, err := dfa.Construct(n)
	if err != nil {
		return nil, &CompileError{Pattern: pattern, Err: err}
	}
	return &Program{source: pattern, nfa: n, dfa: d}, nil
}

// CompileToNFA lexes and parses pattern and constructs only the NFA,
// skipping subset construction for callers who only need the online
// simulator.
func CompileToNFA(pattern string, log *diag.Log) (*nfa.NFA, error) {
	lx := lexer.New(pattern, lexer.DefaultConfig(), log)
	parser := ast.NewParser(lx)
	root, err := parser.Parse()
	if err != nil {
		// A terminal lexer status means the lexer already reported the
		// root cause; the parser error that follows it is not repeated.
		var pe *ast.ParseError
		if log != nil && !lx.Status().Terminal() && errors.As(err, &pe) {
			log.Report(diag.KindError, diag.Span{Begin: pe.Token.Span.Begin, End: pe.Token.Span.End}, pattern, pe.Msg)
		}
		return nil, &CompileError{Pattern: pattern, Err: err}
	}
	if lx.Status().Terminal() {
		return nil, &CompileError{Pattern: pattern, Err: fmt.Errorf("lexer status %s", lx.Status())}
	}

	builder := nfa.NewBuilder()
	component := root.Emit(builder)
	n, err := nfa.Construct(component)
	if err != nil {
		return nil, &CompileError{Pattern: pattern, Err: err}
	}
	return n, nil
}

// MustCompile is like Compile but panics on error, for use with
// pattern literals known at compile time to be valid.
func MustCompile(pattern string) *Program {
	p, err := Compile(pattern, nil)
	if err != nil {
		panic(err)
	}
	return p
}
