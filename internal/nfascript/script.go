package nfascript

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"nfadfa/internal/automaton"
)

// ErrSymbol is returned for a transition symbol that is not exactly one
// character long.
var ErrSymbol = errors.New("transition symbol must be a single character")

// Script is a parsed list of construction calls:
//
//	start q0;
//	state q1;
//	final q2;
//	q0 -e-> q1;
//	q1 -a-> q2;
//	q2 -'-'-> q2; // quoted symbols for punctuation
type Script struct {
	Statements []*Statement `parser:"@@*"`
}

type Statement struct {
	Pos lexer.Position

	Start *string     `parser:"  'start' @(Ident|Int) ';'"`
	State *string     `parser:"| 'state' @(Ident|Int) ';'"`
	Final *string     `parser:"| 'final' @(Ident|Int) ';'"`
	Trans *Transition `parser:"| @@ ';'"`
}

type Transition struct {
	From   string `parser:"@(Ident|Int)"`
	Symbol string `parser:"'-' @(Ident|Int|Char) '-' '>'"`
	To     string `parser:"@(Ident|Int)"`
}

func (t *Transition) symbol() (rune, error) {
	if utf8.RuneCountInString(t.Symbol) != 1 {
		return 0, fmt.Errorf("%q: %w", t.Symbol, ErrSymbol)
	}
	r, _ := utf8.DecodeRuneInString(t.Symbol)
	return r, nil
}

var parser = participle.MustBuild[Script](
	participle.Unquote("Char"),
	participle.UseLookahead(2),
)

// Parse reads a script. filename is only used in error positions.
func Parse(filename, src string) (*Script, error) {
	s, err := parser.ParseString(filename, src)
	if err != nil {
		return nil, err
	}
	for _, st := range s.Statements {
		if st.Trans == nil {
			continue
		}
		if _, err := st.Trans.symbol(); err != nil {
			return nil, fmt.Errorf("%s: %w", st.Pos, err)
		}
	}
	return s, nil
}

// Target is the construction protocol a script is replayed against.
// *automaton.NFA implements it.
type Target interface {
	AddStartState(name string)
	AddState(name string)
	AddFinalState(name string)
	AddTransition(from string, sym rune, to string) error
}

// Apply replays the statements in order and stops at the first failing one.
func (s *Script) Apply(t Target) error {
	for _, st := range s.Statements {
		switch {
		case st.Start != nil:
			t.AddStartState(*st.Start)
		case st.State != nil:
			t.AddState(*st.State)
		case st.Final != nil:
			t.AddFinalState(*st.Final)
		case st.Trans != nil:
			sym, err := st.Trans.symbol()
			if err != nil {
				return fmt.Errorf("%s: %w", st.Pos, err)
			}
			if err := t.AddTransition(st.Trans.From, sym, st.Trans.To); err != nil {
				return fmt.Errorf("%s: %w", st.Pos, err)
			}
		}
	}
	return nil
}

// Load parses src and builds a fresh NFA from it.
func Load(filename, src string, opts ...automaton.Option) (*automaton.NFA, error) {
	s, err := Parse(filename, src)
	if err != nil {
		return nil, err
	}
	nfa := automaton.New(opts...)
	if err := s.Apply(nfa); err != nil {
		return nil, err
	}
	return nfa, nil
}
