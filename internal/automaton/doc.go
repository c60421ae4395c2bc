// Package automaton holds the NFA data model: named states, their per-symbol
// transition tables and the builder calls used to assemble an automaton.
//
// Construction problems come in two kinds. Re-adding an existing state name
// is a warning: the first state is kept and the warning is collected in the
// NFA's Diagnostics (and forwarded to an optional WarningSink). A transition
// naming an unknown state is a *ConfigError; it is returned to the caller and
// remembered by NFA.Err so that a broken automaton is never converted.
package automaton
