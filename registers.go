package main

import (
	"fmt"

	"github.com/forthkit/gothird/internal/flushio"
)

// Cell is the VM's native integer width. Every address, stack slot and
// register is one Cell; arithmetic wraps modulo 2^32 the way the spec's
// "modular wraparound, no overflow trap" rule requires.
type Cell = uint32

// CellBytes is the width of Cell in bytes, stamped into the INFO register so
// a loaded core dump can be checked against the build that wrote it.
const CellBytes = 4

// Register indices: fixed low cells of the image with architectural meaning.
// Only these six plus the PUSH sentinel at regPush carry meaning outside of
// ordinary dictionary/stack use; the remaining low cells are unused padding.
const (
	regDIC   = 0  // next free dictionary cell
	regRSTK  = 1  // return stack pointer (next free slot)
	regPush  = 2  // self-encoding PUSH sentinel, see doc.go
	regSTATE = 8  // 0 = interpret, 1 = compile
	regHEX   = 9  // 0 = decimal .  output, nonzero = hex
	regPWD   = 10 // link cell of the most recently defined word
	regINFO  = 11 // cell width in bytes; regINFO+1 holds core size in cells
)

// registersSize is the width of the low register block, cells [0, 32).
const registersSize = 32

// scratchSize is the width of the scanner scratch buffer, cells [32, 64).
const scratchSize = 32

// dictionaryStart is the first cell available to the dictionary; also the
// sentinel threshold below which a PWD link chain walk terminates.
const dictionaryStart = registersSize + scratchSize

// pwdSentinel is PWD's value when the dictionary is empty: below
// dictionaryStart, so find's link walk terminates immediately.
const pwdSentinel = 1

const (
	// DefaultCoreSize is the cell count of a VM's image when no WithCoreSize
	// option is given.
	DefaultCoreSize = 1 << 16
	// DefaultStackSize is the cell depth of each of the return and variable
	// stacks when no WithStackSize option is given.
	DefaultStackSize = 1024
	// minStackSize is the smallest usable per-stack depth; below this the
	// return/variable stack regions can't hold a useful call depth.
	minStackSize = 16
)

// VM is a complete Forth machine: one fixed-size cell array serving as
// dictionary, return stack and variable stack at once, plus the handful of
// "hot" registers the spec keeps out of that array (S, T and the thread
// pointer I) because nothing ever addresses them by cell index.
type VM struct {
	mem       []Cell
	coreSize  uint
	stackSize uint

	s Cell // variable stack pointer (in-memory address, not a Cell value)
	t Cell // cached top of the variable stack
	i Cell // thread pointer: address of the next cell to fetch and dispatch

	invalid bool // set once a fatal error has escaped Run

	in      *source
	out     flushio.WriteFlusher
	tee     flushio.WriteFlusher
	diag    writer
	logf    func(string, ...interface{})
	blockIO blockStore
}

// writer is the minimal sink opFuncs write bytes to; satisfied by io.Writer
// so callers can pass os.Stdout, a bytes.Buffer, or anything else.
type writer interface {
	Write(p []byte) (int, error)
}

// flush drains any buffering NewWriteFlusher wrapped stdout/tee in, the way
// a CLI must before it exits or the trailing bytes of the run never land.
func (vm *VM) flush() error {
	if vm.tee != nil {
		if err := vm.tee.Flush(); err != nil {
			return err
		}
	}
	if vm.out != nil {
		return vm.out.Flush()
	}
	return nil
}

// returnBase, returnEnd, varBase, varEnd are the VM's two stack regions,
// stacked at the top of the image: [returnBase, returnEnd) is the return
// stack, [varBase, varEnd) the variable stack, varEnd == coreSize.
func (vm *VM) returnBase() uint { return vm.coreSize - 2*vm.stackSize }
func (vm *VM) returnEnd() uint  { return vm.coreSize - vm.stackSize }
func (vm *VM) varBase() uint    { return vm.coreSize - vm.stackSize }
func (vm *VM) varEnd() uint     { return vm.coreSize }

// init resets the image to its bootstrap-ready state: registers zeroed
// (save for the PUSH sentinel and cell-width info), dictionary empty, both
// stacks empty with RSTK and S at their bases.
func (vm *VM) init() {
	if vm.coreSize == 0 {
		vm.coreSize = DefaultCoreSize
	}
	if vm.stackSize == 0 {
		vm.stackSize = DefaultStackSize
	}
	if vm.stackSize < minStackSize {
		vm.stackSize = minStackSize
	}
	if min := uint(dictionaryStart) + 2*vm.stackSize + 1; vm.coreSize < min {
		vm.coreSize = min
	}

	vm.mem = make([]Cell, vm.coreSize)
	vm.mem[regDIC] = dictionaryStart
	vm.mem[regRSTK] = Cell(vm.returnBase())
	vm.mem[regPush] = opPush
	vm.mem[regSTATE] = 0
	vm.mem[regHEX] = 0
	vm.mem[regPWD] = pwdSentinel
	vm.mem[regINFO] = CellBytes
	vm.mem[regINFO+1] = Cell(vm.coreSize)

	vm.s = Cell(vm.varBase())
	vm.t = 0
	vm.i = 0
	vm.invalid = false
}

func (vm *VM) dic() uint       { return uint(vm.mem[regDIC]) }
func (vm *VM) setDIC(v uint)   { vm.mem[regDIC] = Cell(v) }
func (vm *VM) rstk() uint      { return uint(vm.mem[regRSTK]) }
func (vm *VM) setRSTK(v uint)  { vm.mem[regRSTK] = Cell(v) }
func (vm *VM) state() Cell     { return vm.mem[regSTATE] }
func (vm *VM) setState(v Cell) { vm.mem[regSTATE] = v }
func (vm *VM) hex() bool       { return vm.mem[regHEX] != 0 }
func (vm *VM) pwd() uint       { return uint(vm.mem[regPWD]) }
func (vm *VM) setPWD(v uint)   { vm.mem[regPWD] = Cell(v) }

// load reads one cell, panicking with a fatalError if addr falls outside the
// image; every memory access in the VM funnels through here or store so the
// "every reference is bounds-checked" invariant holds in one place.
func (vm *VM) load(addr uint) Cell {
	if addr >= vm.coreSize {
		panic(fatalf("load out of bounds: %d", addr))
	}
	return vm.mem[addr]
}

func (vm *VM) store(addr uint, v Cell) {
	if addr >= vm.coreSize {
		panic(fatalf("store out of bounds: %d", addr))
	}
	vm.mem[addr] = v
}

// pushData implements the spec's push algorithm: bump S, stash the old T at
// the new S, then install the new top. The cell at the new S therefore holds
// what used to be T, not the pushed value -- the classic "hot top, stale
// slot below" cache shape.
func (vm *VM) pushData(v Cell) {
	s := uint(vm.s) + 1
	if s >= vm.varEnd() {
		panic(fatalf("variable stack overflow"))
	}
	vm.store(s, vm.t)
	vm.s = Cell(s)
	vm.t = v
}

// popData is pushData run backwards: take T, pull the next value down from
// the stashed cell at S, and back S off by one.
func (vm *VM) popData() Cell {
	if uint(vm.s) <= vm.varBase() {
		panic(fatalf("variable stack underflow"))
	}
	v := vm.t
	vm.t = vm.load(uint(vm.s))
	vm.s--
	return v
}

// dataDepth reports how many elements are currently on the variable stack.
func (vm *VM) dataDepth() uint { return uint(vm.s) - vm.varBase() }

// dataAt returns the n-th element from the bottom (0-indexed) without
// disturbing the stack, for PSTK and diagnostics.
func (vm *VM) dataAt(n uint) Cell {
	depth := vm.dataDepth()
	if n+1 == depth {
		return vm.t
	}
	return vm.load(vm.varBase() + n + 2)
}

// pushr and popr are the return stack's equivalent of pushData/popData, but
// plain (no hot-cache cell): RSTK always addresses the next free slot.
func (vm *VM) pushr(addr Cell) {
	r := vm.rstk()
	if r >= vm.returnEnd() {
		panic(fatalf("return stack overflow"))
	}
	vm.store(r, addr)
	vm.setRSTK(r + 1)
}

func (vm *VM) popr() Cell {
	r := vm.rstk()
	if r <= vm.returnBase() {
		panic(fatalf("return stack underflow"))
	}
	r--
	v := vm.load(r)
	vm.setRSTK(r)
	return v
}

type fatalError struct{ msg string }

func (e *fatalError) Error() string { return e.msg }

func fatalf(format string, args ...interface{}) *fatalError {
	return &fatalError{msg: fmt.Sprintf(format, args...)}
}
