// Package audit implements the common audit state machine: the round
// lifecycle, the append-only transcript, risk accumulation, the
// stop/continue decision, and the round-size solver that inverts an
// engine's stopping-probability curve. It is engine-agnostic — it holds
// an engine.Engine by value and never type-switches on the underlying
// variant.
package audit
