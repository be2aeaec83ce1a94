// Package vim implements the modal key interpreter: a synchronous
// state machine that turns key events into cursor motion, selection
// and edit requests against a host-provided text surface.
//
// The interpreter tracks the editing mode, a pending operator, a
// repeat-count accumulator, a visual selection anchor and a single
// yank register. It resolves ambiguous multi-key sequences such as gg
// and dd without timers: a pending prefix is cancelled by the next key
// that does not complete it.
//
// The package owns no text. All buffer access goes through the Surface
// interface, and every surface operation is assumed synchronous and
// immediately observable.
package vim
