package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forthkit/gothird/internal/block"
)

func TestBSaveBLoadRoundTrip(t *testing.T) {
	vm := newTestVM()
	vm.blockIO = blockStore{store: &block.Store{Dir: t.TempDir()}}

	data := bytes.Repeat([]byte{0x5a}, block.Size)
	vm.writeImageBytes(100, data)

	vm.pushData(100) // addr
	vm.pushData(7)   // id
	opBSaveFn(vm, 0)
	require.Equal(t, Cell(0), vm.popData(), "save status")

	vm.writeImageBytes(100, make([]byte, block.Size)) // clobber

	vm.pushData(100) // addr
	vm.pushData(7)   // id
	opBLoadFn(vm, 0)
	require.Equal(t, Cell(0), vm.popData(), "load status")

	assert.Equal(t, data, vm.readImageBytes(100, block.Size))
}

func TestBSaveFailsWithoutBlockDir(t *testing.T) {
	vm := newTestVM() // blockIO.store is nil

	vm.pushData(100)
	vm.pushData(1)
	opBSaveFn(vm, 0)
	assert.Equal(t, cellMinus1(), vm.popData())
}

func TestBSaveRejectsOutOfBoundsAddr(t *testing.T) {
	vm := newTestVM()
	vm.blockIO = blockStore{store: &block.Store{Dir: t.TempDir()}}

	vm.pushData(Cell(vm.coreSize)) // addr+blockSize always exceeds coreSize-blockSize
	vm.pushData(1)
	opBSaveFn(vm, 0)
	assert.Equal(t, cellMinus1(), vm.popData())
}
