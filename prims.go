package main

import "fmt"

func opFetchFn(vm *VM, pc uint) {
	_ = pc
	addr := vm.t
	vm.t = vm.load(uint(addr))
}

func opStoreFn(vm *VM, pc uint) {
	_ = pc
	addr := vm.popData()
	v := vm.popData()
	vm.store(uint(addr), v)
}

func opSubFn(vm *VM, pc uint) { _ = pc; b := vm.popData(); vm.t -= b }
func opAddFn(vm *VM, pc uint) { _ = pc; b := vm.popData(); vm.t += b }
func opAndFn(vm *VM, pc uint) { _ = pc; b := vm.popData(); vm.t &= b }
func opOrFn(vm *VM, pc uint)  { _ = pc; b := vm.popData(); vm.t |= b }
func opXorFn(vm *VM, pc uint) { _ = pc; b := vm.popData(); vm.t ^= b }
func opInvertFn(vm *VM, pc uint) {
	_ = pc
	vm.t = ^vm.t
}
func opLshiftFn(vm *VM, pc uint) { _ = pc; n := vm.popData(); vm.t <<= n }
func opRshiftFn(vm *VM, pc uint) { _ = pc; n := vm.popData(); vm.t >>= n }
func opMulFn(vm *VM, pc uint)    { _ = pc; b := vm.popData(); vm.t *= b }
func opLessFn(vm *VM, pc uint) {
	_ = pc
	b := vm.popData()
	if vm.t < b {
		vm.t = 1
	} else {
		vm.t = 0
	}
}

func opEqualFn(vm *VM, pc uint) {
	_ = pc
	b := vm.popData()
	if vm.t == b {
		vm.t = 1
	} else {
		vm.t = 0
	}
}

func opSwapFn(vm *VM, pc uint) {
	_ = pc
	b := vm.popData()
	a := vm.popData()
	vm.pushData(b)
	vm.pushData(a)
}

func opDupFn(vm *VM, pc uint) {
	_ = pc
	v := vm.t
	vm.pushData(v)
}

func opDropFn(vm *VM, pc uint) { _ = pc; vm.popData() }

func opOverFn(vm *VM, pc uint) {
	_ = pc
	b := vm.popData()
	a := vm.t
	vm.pushData(b)
	vm.pushData(a)
}

func opCommaFn(vm *VM, pc uint) {
	_ = pc
	vm.comma(vm.popData())
}

func opEmitFn(vm *VM, pc uint) {
	_ = pc
	b := byte(vm.popData())
	vm.writeOut([]byte{b})
}

func opKeyFn(vm *VM, pc uint) {
	_ = pc
	r, err := vm.in.readByte()
	if err != nil {
		vm.pushData(0)
		return
	}
	vm.pushData(Cell(byte(r)))
}

func opPrintFn(vm *VM, pc uint) {
	_ = pc
	addr := uint(vm.popData())
	var buf []byte
	for {
		c := vm.load(addr / CellBytes)
		b := byte(c >> (8 * (addr % CellBytes)))
		if b == 0 {
			break
		}
		buf = append(buf, b)
		addr++
	}
	vm.writeOut(buf)
}

func opPNumFn(vm *VM, pc uint) {
	_ = pc
	v := vm.popData()
	if vm.hex() {
		vm.writeOut([]byte(fmt.Sprintf("%x", v)))
	} else {
		vm.writeOut([]byte(fmt.Sprintf("%d", v)))
	}
}

func opPStkFn(vm *VM, pc uint) {
	_ = pc
	depth := vm.dataDepth()
	for n := uint(0); n < depth; n++ {
		vm.writeOut([]byte(fmt.Sprintf("%d\t", vm.dataAt(n))))
	}
}

func opToRFn(vm *VM, pc uint) {
	_ = pc
	vm.pushr(vm.popData())
}

func opFromRFn(vm *VM, pc uint) {
	_ = pc
	vm.pushData(vm.popr())
}

func opFindFn(vm *VM, pc uint) {
	_ = pc
	name, ok := vm.in.scanWord()
	if !ok {
		panic(haltSignal{})
	}
	vm.pushData(Cell(vm.find(name)))
}

func (vm *VM) writeOut(b []byte) {
	if vm.tee != nil {
		vm.tee.Write(b)
	}
	if vm.out != nil {
		vm.out.Write(b)
	}
}
