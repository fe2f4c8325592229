package main

import (
	"context"
	"strings"
)

// bootstrapSource is fed to READ once the primitives below are wired in
// (§4.7 step 6). The first block is the exact startup text: it defines
// state, ;, [ and ], the control-flow words, and .( entirely in terms of
// the primitives installed by compileSpecialForms/compilePrimitives. The
// second block extends that vocabulary with a couple of stack shuffles, the
// > comparison scenario 3 exercises (bootstrap provides it via swap and <),
// an argument-free hex, and the dictionary lister promised alongside the
// rest of this text.
const bootstrapSource = `
\ FORTH startup program.
: state 8 ! exit : ; immediate ' exit , 0 state exit : hex 9 ! ; : pwd 10 ;
: h 0 ; : r 1 ; : here h @ ; : [ immediate 0 state ; : ] 1 state ;
: :noname immediate here 2 , ] ; : if immediate ' jz , here 0 , ;
: else immediate ' j , here 0 , swap dup here swap - swap ! ;
: then immediate dup here swap - swap ! ; : 2dup over over ;
: begin immediate here ; : until immediate ' jz , here - , ;
: 0= 0 = ; : 1+ 1 + ; : 1- 1 - ; : ')' 41 ; : tab 9 emit ; : cr 10 emit ;
: .( key drop begin key dup ')' = if drop exit then emit 0 until ;

\ Extra stack shuffles and the > comparison, built the same way - > isn't a
\ primitive, just swap-then-<.
: nip swap drop ; : 2drop drop drop ; : > swap < ;

\ hex takes no argument: it sets the HEX register to 1 so . prints in hex.
: hex 1 9 ! ;

\ words walks the PWD link chain and prints each non-hidden name, borrowing
\ a couple of unused low cells as scratch the way a flat image with no local
\ variables has to.
: dstart 64 ;
: _w! 13 ! ; : _w 13 @ ; : _l! 14 ! ; : _l 14 @ ; : cellsize 11 @ ;
: .name _w! _w 1 + @ dup 128 and if drop exit then
  8 rshift _l! _w _l - cellsize * print tab ;
: words pwd @ _w! begin
    _w dstart < if exit then
    _w .name _w @ _w! 0
  until ;
`

// bootstrap performs §4.7's seven steps against a freshly init'd image:
// lay down the self-invoking READ/RUN loop, seed the special forms and
// compile-class primitives, then run the source above to build the rest of
// the language before any user input is accepted.
func (vm *VM) bootstrap() error {
	vm.init() // step 1: registers, scratch, empty dictionary.

	// Step 2: "m[DIC++] = READ; m[DIC++] = RUN; I := DIC;
	// m[DIC++] = address_of_the_just_written_READ_cell; m[DIC++] = I - 1".
	readAt := vm.comma(opRead)
	runAt := vm.comma(opRun)
	vm.i = Cell(vm.dic())
	vm.comma(Cell(readAt))
	vm.comma(Cell(runAt))

	// Step 3: the three immediate-at-definition words, bare opcodes with no
	// body cell at all so they always execute regardless of STATE.
	for _, sf := range specialForms {
		vm.compileNamed(sf.op, sf.name)
	}

	// Step 4: the ordered COMPILE-class primitive list, each a one-cell
	// body holding its own opcode number.
	for _, p := range primitiveNames {
		vm.compileNamed(opCompile, p.name)
		vm.comma(p.op)
	}

	// Step 5: RSTK starts one cell past its base, not at it -- the
	// READ/RUN loop's first pass through READ (see opReadFn) decrements it
	// before any RUN has pushed a return address to cancel out.
	vm.setRSTK(vm.returnBase() + 1)

	// Step 6: run the embedded program against its own fresh source,
	// stashing whatever the caller already queued via WithInput so step 7
	// can restore it once this program is exhausted.
	userInput := vm.in
	boot := newSource()
	boot.push(strings.NewReader(bootstrapSource))
	vm.in = boot
	if err := vm.run(context.Background()); err != nil {
		return err
	}

	// Step 7: swap the input source to the user-supplied stream.
	if userInput != nil {
		vm.in = userInput
	} else {
		vm.in = newSource()
	}
	return nil
}
