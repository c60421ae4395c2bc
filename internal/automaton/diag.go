package automaton

import (
	"fmt"
	"log/slog"
)

type WarningKind int

const (
	DuplicateState WarningKind = iota
	StartReplaced
)

func (k WarningKind) String() string {
	switch k {
	case DuplicateState:
		return "duplicate-state"
	case StartReplaced:
		return "start-replaced"
	default:
		return fmt.Sprintf("WarningKind(%d)", int(k))
	}
}

// Warning is a non-fatal construction diagnostic.
type Warning struct {
	Kind WarningKind
	Op   string
	Name string
}

func (w Warning) String() string {
	switch w.Kind {
	case DuplicateState:
		return fmt.Sprintf("%s: a state with name %q already exists", w.Op, w.Name)
	case StartReplaced:
		return fmt.Sprintf("%s: start state %q replaced", w.Op, w.Name)
	}
	return fmt.Sprintf("%s: %s %q", w.Op, w.Kind, w.Name)
}

// WarningSink receives construction warnings as they happen.
type WarningSink interface {
	Warn(Warning)
}

// WarningFunc adapts a plain function to WarningSink.
type WarningFunc func(Warning)

func (f WarningFunc) Warn(w Warning) { f(w) }

// Diagnostics accumulates warnings in the order they were reported.
type Diagnostics struct {
	warnings []Warning
}

func (d *Diagnostics) Warn(w Warning) { d.warnings = append(d.warnings, w) }

// Warnings returns a copy of everything collected so far.
func (d *Diagnostics) Warnings() []Warning {
	out := make([]Warning, len(d.warnings))
	copy(out, d.warnings)
	return out
}

func (d *Diagnostics) Len() int { return len(d.warnings) }

// LogWarnings returns a sink that writes each warning to logger at Warn level.
func LogWarnings(logger *slog.Logger) WarningSink {
	return WarningFunc(func(w Warning) {
		logger.Warn(w.String(),
			slog.String("kind", w.Kind.String()),
			slog.String("op", w.Op),
			slog.String("state", w.Name),
		)
	})
}
