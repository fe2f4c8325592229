// Command gothird runs a small, fixed-memory Forth: a self-hosting virtual
// machine whose entire dictionary, stacks and registers live in one flat
// array of cells, bootstrapped from a couple dozen primitives into a full
// colon-compiling, control-flow-capable language by running a short Forth
// program through its own outer interpreter.
//
// The image never grows past the core size it is given at construction --
// there is no paged or resizable memory model here, unlike larger hosted
// Forths. Everything above the registers and scratch buffer (the low 64
// cells) is dictionary, return stack and variable stack, each bounds-checked
// on every access.
//
// Location 2 is a standing convention, not a real dictionary entry: it is
// initialized to hold its own address's opcode, PUSH, so that a literal
// compiled inline as the bare cell value 2 dispatches correctly under the
// same two-step fetch used for every other threaded reference.
//
// See registers.go for the memory layout, dict.go for the compiler and name
// lookup, interp.go for the opcode dispatch loop, outer.go for the READ
// primitive that drives it, and bootstrap.go for the embedded program that
// seeds the rest of the language.
package main
