package main

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
)

// dumpMagic and dumpVersion identify a core dump file, the way a
// machine-state snapshot format typically self-identifies before anything
// else is read.
const (
	dumpMagic   = "GTH3"
	dumpVersion = 1
)

// Dump writes a byte-exact core dump: a small header (cell width, core and
// stack size, the three hot registers not stored in the cell array) followed
// by the full cell array, little-endian. §3's round-trip property is this
// format's entire job.
func (vm *VM) Dump(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if _, err := io.WriteString(bw, dumpMagic); err != nil {
		return err
	}
	header := []uint32{
		dumpVersion,
		CellBytes,
		uint32(vm.coreSize),
		uint32(vm.stackSize),
		uint32(vm.s),
		vm.t,
		uint32(vm.i),
	}
	for _, v := range header {
		if err := binary.Write(bw, binary.LittleEndian, v); err != nil {
			return err
		}
	}
	for _, c := range vm.mem {
		if err := binary.Write(bw, binary.LittleEndian, c); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Load replaces the VM's entire state with a dump previously written by
// Dump, refusing one stamped with a different cell width (§9: "must refuse
// to load an image whose INFO disagrees with its own cell size").
func (vm *VM) Load(r io.Reader) error {
	magic := make([]byte, len(dumpMagic))
	if _, err := io.ReadFull(r, magic); err != nil {
		return err
	}
	if string(magic) != dumpMagic {
		return fmt.Errorf("gothird: not a core dump (bad magic %q)", magic)
	}

	var version, cellBytes, coreSize, stackSize, s, t, i uint32
	for _, dst := range []*uint32{&version, &cellBytes, &coreSize, &stackSize, &s, &t, &i} {
		if err := binary.Read(r, binary.LittleEndian, dst); err != nil {
			return err
		}
	}
	if version != dumpVersion {
		return fmt.Errorf("gothird: core dump version %d unsupported", version)
	}
	if cellBytes != CellBytes {
		return fmt.Errorf("gothird: core dump cell width %d bytes, this build uses %d", cellBytes, CellBytes)
	}

	mem := make([]Cell, coreSize)
	if err := binary.Read(r, binary.LittleEndian, mem); err != nil {
		return err
	}

	vm.coreSize = uint(coreSize)
	vm.stackSize = uint(stackSize)
	vm.mem = mem
	vm.s = Cell(s)
	vm.t = t
	vm.i = Cell(i)
	vm.invalid = false
	return nil
}
