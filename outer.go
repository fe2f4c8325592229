package main

import (
	"fmt"
	"io"

	"github.com/forthkit/gothird/internal/input"
)

// source adapts internal/input.Source (the queued-readers token scanner) to
// the one byte-at-a-time and one whole-token interface the VM's primitives
// need: COMMENT and KEY read a byte at a time, DEFINE/READ/FIND/TICK-adjacent
// COMPILE-class words want a whole token.
type source struct {
	in input.Source
}

func newSource() *source { return &source{} }

func (s *source) push(r io.Reader) { s.in.Push(r) }

func (s *source) readByte() (rune, error) { return s.in.ReadByte() }

func (s *source) scanWord() (string, bool) { return s.in.ScanWord() }

// opReadFn is the outer interpreter: §4.6's READ primitive. It is dispatched
// like any other primitive (via the self-invoking two-cell thread the
// bootstrap lays down), so it runs with vm.i already pointing at the next
// cell of that thread -- there is no "body" of its own to advance past.
func opReadFn(vm *VM, pc uint) {
	_ = pc

	// Step 1: undo the return-stack push that would otherwise accumulate
	// once per loop, since READ never gets EXITed back out of the way a
	// normal RUN-entered word does.
	vm.setRSTK(vm.rstk() - 1)

	// Step 2.
	tok, ok := vm.in.scanWord()
	if !ok {
		panic(haltSignal{})
	}

	// Step 3.
	if ref := vm.find(tok); ref != 0 {
		bodyPC := ref - 1 // find returns W+2; the code cell is W+1
		code := vm.load(bodyPC)
		if vm.state() == 0 && code&codeOpMask == opCompile {
			bodyPC++
		}
		vm.dispatchAt(bodyPC)
		return
	}

	// Step 4.
	if n, ok := parseNumber(tok); ok {
		if vm.state() == 1 {
			vm.comma(opPush)
			vm.comma(n)
		} else {
			vm.pushData(n)
		}
		return
	}

	// Step 5.
	vm.diagnostic(fmt.Sprintf("( error %q )", tok+" is not a word"))
}

func (vm *VM) diagnostic(line string) {
	if vm.diag == nil {
		return
	}
	fmt.Fprintln(vm.diag, line)
}
