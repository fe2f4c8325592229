package main

import "fmt"

// logStep emits one trace line per opcode dispatch when a logf sink is
// configured (-trace), in the spirit of gothird's own per-step trace:
// program counter, enclosing word name, opcode name, the return-stack
// pointer, the variable-stack depth and the cached top, so a hung or misbehaving program can be diagnosed without a
// debugger.
func (vm *VM) logStep(pc uint, op Cell) {
	if vm.logf == nil {
		return
	}
	name := "?"
	if int(op) < len(opNames) && opNames[op] != "" {
		name = opNames[op]
	}
	word := vm.wordOf(pc)
	vm.logf("@%d %s %s r:%d s:%d t:%d", pc, word, name, vm.rstk(), vm.dataDepth(), vm.t)
}

// fmtStack renders the variable stack bottom-to-top for diagnostics, reusing
// the same traversal as PSTK.
func (vm *VM) fmtStack() string {
	depth := vm.dataDepth()
	s := ""
	for n := uint(0); n < depth; n++ {
		s += fmt.Sprintf("%d ", vm.dataAt(n))
	}
	return s
}
