package main

import "github.com/forthkit/gothird/internal/block"

// blockStore is the VM's handle onto block-structured file storage; nil
// means save/load always fail (status -1) rather than touching the
// filesystem, for embedders that never need it.
type blockStore struct {
	store *block.Store
}

// byteSize is the image's size in bytes, the unit save/load's addr is given
// in per §6. The save/load bound check does not use it; it compares against
// coreSize (see opBSaveFn).
func (vm *VM) byteSize() uint { return vm.coreSize * CellBytes }

// opBSaveFn implements `save ( addr id -- status )`. The bound check
// compares a byte offset against a cell-count-derived limit without scaling
// -- preserved verbatim per §9's open question, not corrected.
func opBSaveFn(vm *VM, pc uint) {
	_ = pc
	id := vm.popData()
	addr := vm.popData()
	if vm.blockIO.store == nil || uint(addr)+block.Size > vm.coreSize-block.Size {
		vm.pushData(cellMinus1())
		return
	}
	buf := vm.readImageBytes(uint(addr), block.Size)
	if err := vm.blockIO.store.Save(uint16(id), buf); err != nil {
		vm.pushData(cellMinus1())
		return
	}
	vm.pushData(0)
}

// opBLoadFn implements `load ( addr id -- status )`.
func opBLoadFn(vm *VM, pc uint) {
	_ = pc
	id := vm.popData()
	addr := vm.popData()
	if vm.blockIO.store == nil || uint(addr)+block.Size > vm.coreSize-block.Size {
		vm.pushData(cellMinus1())
		return
	}
	buf := make([]byte, block.Size)
	if err := vm.blockIO.store.Load(uint16(id), buf); err != nil {
		vm.pushData(cellMinus1())
		return
	}
	vm.writeImageBytes(uint(addr), buf)
	vm.pushData(0)
}

func cellMinus1() Cell { return ^Cell(0) }

// readImageBytes and writeImageBytes address the image at byte granularity,
// the same little-endian packing writeBytes/readCString use for names.
func (vm *VM) readImageBytes(addr uint, n int) []byte {
	buf := make([]byte, n)
	for i := 0; i < n; i++ {
		a := addr + uint(i)
		cell := vm.load(a / CellBytes)
		buf[i] = byte(cell >> (8 * (a % CellBytes)))
	}
	return buf
}

func (vm *VM) writeImageBytes(addr uint, data []byte) {
	for i, b := range data {
		a := addr + uint(i)
		cellAddr := a / CellBytes
		shift := 8 * (a % CellBytes)
		cell := vm.load(cellAddr)
		cell = (cell &^ (0xff << shift)) | Cell(b)<<shift
		vm.store(cellAddr, cell)
	}
}
