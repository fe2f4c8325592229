package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestVM() *VM {
	vm := &VM{}
	vm.init()
	return vm
}

func TestWriteBytesReadCStringRoundTrip(t *testing.T) {
	vm := newTestVM()
	start := vm.dic()
	n := vm.writeBytes(start, []byte("swap"))
	assert.Equal(t, "swap", vm.readCString(start, n))
}

func TestCompileNamedAndFind(t *testing.T) {
	vm := newTestVM()
	w := vm.compileNamed(opAdd, "myadd")
	require.NotZero(t, w)

	ref := vm.find("myadd")
	require.NotZero(t, ref)
	assert.Equal(t, w+2, ref)

	assert.Zero(t, vm.find("nope"))
}

func TestFindSkipsHiddenWord(t *testing.T) {
	vm := newTestVM()
	w := vm.compileNamed(opAdd, "hideme")
	codeAddr := w + 1
	vm.store(codeAddr, vm.load(codeAddr)|codeHiddenBit)

	assert.Zero(t, vm.find("hideme"))
}

func TestFindWalksToMostRecentDefinition(t *testing.T) {
	vm := newTestVM()
	vm.compileNamed(opAdd, "dup")        // shadowed
	w2 := vm.compileNamed(opSub, "dup") // shadowing

	ref := vm.find("dup")
	assert.Equal(t, w2+2, ref)
}

func TestCommaAdvancesDIC(t *testing.T) {
	vm := newTestVM()
	start := vm.dic()
	addr := vm.comma(42)
	assert.Equal(t, start, addr)
	assert.Equal(t, start+1, vm.dic())
	assert.Equal(t, Cell(42), vm.load(addr))
}
