package subset

import (
	"fmt"
	"io"
	"log/slog"

	"nfadfa/internal/automaton"
)

// Worklist selects the order in which discovered subsets are expanded. The
// resulting automaton is the same either way; only the order of the calls on
// the Builder differs.
type Worklist int

const (
	Queue Worklist = iota
	Stack
)

type config struct {
	log      *slog.Logger
	worklist Worklist
}

type Option func(*config)

func WithLogger(logger *slog.Logger) Option {
	return func(c *config) { c.log = logger }
}

func WithWorklist(w Worklist) Option {
	return func(c *config) { c.worklist = w }
}

// Stats describes one conversion.
type Stats struct {
	Subsets     int // distinct DFA states emitted
	Transitions int // AddTransition calls emitted
}

// Convert runs the subset construction over nfa and emits the equivalent DFA
// into b. It fails only if the automaton is unusable: it recorded a
// configuration error or has no start state. In that case b is not called.
func Convert(nfa *automaton.NFA, b Builder, opts ...Option) (Stats, error) {
	cfg := config{log: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, o := range opts {
		o(&cfg)
	}

	var stats Stats
	if err := nfa.Err(); err != nil {
		return stats, fmt.Errorf("convert: %w", err)
	}
	start := nfa.StartState()
	if start == nil {
		return stats, fmt.Errorf("convert: %w", automaton.ErrNoStartState)
	}

	alphabet := nfa.Alphabet()
	visited := map[string]*StateSet{}

	s0 := Closure(nfa, start)
	visited[s0.Key()] = s0
	stats.Subsets++
	b.AddStartState(s0.ID())
	if s0.HasFinal() {
		b.AddFinalState(s0.ID())
	}
	cfg.log.Debug("start subset", "id", s0.ID(), "final", s0.HasFinal())

	work := []*StateSet{s0}
	for len(work) > 0 {
		var cur *StateSet
		if cfg.worklist == Stack {
			cur, work = work[len(work)-1], work[:len(work)-1]
		} else {
			cur, work = work[0], work[1:]
		}
		for _, sym := range alphabet {
			next := ClosureOf(nfa, Move(nfa, cur, sym))
			if seen, ok := visited[next.Key()]; ok {
				next = seen
			} else {
				visited[next.Key()] = next
				stats.Subsets++
				if next.HasFinal() {
					b.AddFinalState(next.ID())
				} else {
					b.AddState(next.ID())
				}
				work = append(work, next)
				cfg.log.Debug("new subset", "id", next.ID(), "final", next.HasFinal())
			}
			b.AddTransition(cur.ID(), sym, next.ID())
			stats.Transitions++
		}
	}

	cfg.log.Debug("conversion done",
		"nfa_states", len(nfa.States()),
		"dfa_states", stats.Subsets,
		"transitions", stats.Transitions,
	)
	return stats, nil
}
