// Package engine implements the audit engines — BRLA, Minerva, Athena,
// and BRAVO — that plug into the audit state machine. Each variant
// provides the three contract functions every engine shares: PValue,
// Kmin, and StoppingProb. The tag is switched on once, in New; the audit
// state machine then holds an Engine interface value and calls through
// it, rather than switching on a tag at every call site.
package engine
