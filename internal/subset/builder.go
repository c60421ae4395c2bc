package subset

import "log/slog"

// Builder is the construction protocol of the DFA that Convert emits into.
// ids are canonical subset identifiers (see StateSet.ID).
type Builder interface {
	AddStartState(id string)
	AddState(id string)
	AddFinalState(id string)
	AddTransition(from string, sym rune, to string)
}

type loggedBuilder struct {
	next Builder
	log  *slog.Logger
}

// Logged wraps b so that every construction call is logged at Debug level
// before being passed on.
func Logged(b Builder, logger *slog.Logger) Builder {
	return &loggedBuilder{next: b, log: logger}
}

func (l *loggedBuilder) AddStartState(id string) {
	l.log.Debug("dfa start state", "id", id)
	l.next.AddStartState(id)
}

func (l *loggedBuilder) AddState(id string) {
	l.log.Debug("dfa state", "id", id)
	l.next.AddState(id)
}

func (l *loggedBuilder) AddFinalState(id string) {
	l.log.Debug("dfa final state", "id", id)
	l.next.AddFinalState(id)
}

func (l *loggedBuilder) AddTransition(from string, sym rune, to string) {
	l.log.Debug("dfa transition", "from", from, "symbol", string(sym), "to", to)
	l.next.AddTransition(from, sym, to)
}
