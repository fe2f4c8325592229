package main

//go:generate go run scripts/gendoc.go

// Opcode numbering: PUSH is pinned at 2 by the spec's "conventional PUSH
// encoding" (doc.go); READ is pinned at 6 as the first name in §6's ordered
// primitive list. COMPILE, RUN, DEFINE, IMMEDIATE and COMMENT fill the
// remaining low slots the bootstrap needs before READ can run, in the order
// the bootstrap procedure (§4.7) installs them.
const (
	opCompile Cell = iota
	opRun
	opPush
	opDefine
	opImmediate
	opComment
	opRead
	opFetch
	opStore
	opSub
	opAdd
	opAnd
	opOr
	opXor
	opInvert
	opLshift
	opRshift
	opMul
	opLess
	opExit
	opEmit
	opKey
	opFromR
	opToR
	opJmp
	opJmpz
	opPNum
	opTick
	opComma
	opEqual
	opSwap
	opDup
	opDrop
	opOver
	opTail
	opBSave
	opBLoad
	opFind
	opPrint
	opPStk

	opMax
)

// primitiveNames lists, in order, the words §6 says are exposed directly
// ("read @ ! - + and or xor invert lshift rshift * < exit emit key r> >r j
// jz . ' , = swap dup drop over tail save load find print .s"). These are
// seeded as compile-class primitives (§4.7 step 4); DEFINE/IMMEDIATE/COMMENT
// are seeded separately, with raw (non-COMPILE-wrapped) opcodes, since they
// must run immediately regardless of STATE.
var primitiveNames = []struct {
	op   Cell
	name string
}{
	{opRead, "read"},
	{opFetch, "@"},
	{opStore, "!"},
	{opSub, "-"},
	{opAdd, "+"},
	{opAnd, "and"},
	{opOr, "or"},
	{opXor, "xor"},
	{opInvert, "invert"},
	{opLshift, "lshift"},
	{opRshift, "rshift"},
	{opMul, "*"},
	{opLess, "<"},
	{opExit, "exit"},
	{opEmit, "emit"},
	{opKey, "key"},
	{opFromR, "r>"},
	{opToR, ">r"},
	{opJmp, "j"},
	{opJmpz, "jz"},
	{opPNum, "."},
	{opTick, "'"},
	{opComma, ","},
	{opEqual, "="},
	{opSwap, "swap"},
	{opDup, "dup"},
	{opDrop, "drop"},
	{opOver, "over"},
	{opTail, "tail"},
	{opBSave, "save"},
	{opBLoad, "load"},
	{opFind, "find"},
	{opPrint, "print"},
	{opPStk, ".s"},
}

// specialForms lists the words seeded with a raw opcode in their code cell
// rather than the COMPILE wrapper, so they execute unconditionally even
// while STATE is 1 (§4.7 step 3).
var specialForms = []struct {
	op   Cell
	name string
}{
	{opDefine, ":"},
	{opImmediate, "immediate"},
	{opComment, "\\"},
}

// opNames names every opcode for trace output and diagnostics.
var opNames = [opMax]string{
	opCompile:   "COMPILE",
	opRun:       "RUN",
	opPush:      "PUSH",
	opDefine:    "DEFINE",
	opImmediate: "IMMEDIATE",
	opComment:   "COMMENT",
	opRead:      "READ",
	opFetch:     "FETCH",
	opStore:     "STORE",
	opSub:       "SUB",
	opAdd:       "ADD",
	opAnd:       "AND",
	opOr:        "OR",
	opXor:       "XOR",
	opInvert:    "INVERT",
	opLshift:    "LSHIFT",
	opRshift:    "RSHIFT",
	opMul:       "MUL",
	opLess:      "LESS",
	opExit:      "EXIT",
	opEmit:      "EMIT",
	opKey:       "KEY",
	opFromR:     "FROMR",
	opToR:       "TOR",
	opJmp:       "JMP",
	opJmpz:      "JMPZ",
	opPNum:      "PNUM",
	opTick:      "TICK",
	opComma:     "COMMA",
	opEqual:     "EQUAL",
	opSwap:      "SWAP",
	opDup:       "DUP",
	opDrop:      "DROP",
	opOver:      "OVER",
	opTail:      "TAIL",
	opBSave:     "BSAVE",
	opBLoad:     "BLOAD",
	opFind:      "FIND",
	opPrint:     "PRINT",
	opPStk:      "PSTK",
}
