package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/ioutil"

	"github.com/forthkit/gothird/internal/block"
	"github.com/forthkit/gothird/internal/flushio"
	"github.com/forthkit/gothird/internal/panicerr"
)

// New builds a VM, bootstraps it (§4.7), and returns it ready to accept a
// user input source. A bootstrap failure is exceedingly unlikely (it would
// mean the embedded program in bootstrap.go has a bug) so it panics rather than
// threading an error through every call site -- there is no recovering a
// VM whose own dictionary never finished compiling.
func New(opts ...VMOption) *VM {
	vm := &VM{}
	defaultOptions.apply(vm)
	VMOptions(opts...).apply(vm)
	if err := vm.bootstrap(); err != nil {
		panic("gothird: bootstrap failed: " + err.Error())
	}
	return vm
}

// Run drives the VM against whatever input source was configured until it
// halts cleanly (input exhausted) or a fatal error escapes. Once a VM goes
// invalid it stays that way; further Run calls return immediately without
// doing any work, matching §5's "subsequent run calls ... return an error
// immediately and do no work".
func (vm *VM) Run(ctx context.Context) error {
	if vm.invalid {
		return errors.New("gothird: VM is invalid after a prior fatal error")
	}
	err := panicerr.Recover("gothird", func() error {
		return vm.run(ctx)
	})
	if err != nil {
		vm.invalid = true
	}
	if ferr := vm.flush(); err == nil {
		err = ferr
	}
	return err
}

// VMOption configures a VM at construction, gothird-style: each option is
// its own small type implementing apply, combined left to right.
type VMOption interface{ apply(vm *VM) }

var defaultOptions = VMOptions(
	WithOutput(ioutil.Discard),
)

func VMOptions(opts ...VMOption) VMOption {
	var res options
	for _, opt := range opts {
		switch impl := opt.(type) {
		case nil, noption:
		case options:
			res = append(res, impl...)
		default:
			res = append(res, opt)
		}
	}
	switch len(res) {
	case 0:
		return noption{}
	case 1:
		return res[0]
	default:
		return res
	}
}

type noption struct{}

func (noption) apply(*VM) {}

type options []VMOption

func (opts options) apply(vm *VM) {
	for _, opt := range opts {
		if opt != nil {
			opt.apply(vm)
		}
	}
}

// WithInput queues r as the (first) user input stream, read after the
// embedded bootstrap program finishes.
func WithInput(r io.Reader) VMOption { return inputOption{r} }

// WithInputWriter queues an io.WriterTo as an input stream by streaming it
// through an io.Pipe on its own goroutine, so a generated program (built up
// in memory, say) can be fed in without first buffering it to a []byte.
func WithInputWriter(wto io.WriterTo) VMOption {
	r, w := io.Pipe()
	go func() {
		_, err := wto.WriteTo(w)
		w.CloseWithError(err)
	}()
	return inputOption{namedReader{r, nameOfWriterTo(wto)}}
}

// namedReader pairs a Reader with a Name, as shebangReader does, so the
// input source records a name for the stream. The unknown-word diagnostic
// (§4.6 step 5) does not include that name.
type namedReader struct {
	io.Reader
	name string
}

func (r namedReader) Name() string { return r.name }

func nameOfWriterTo(wto io.WriterTo) string {
	if nom, ok := wto.(interface{ Name() string }); ok {
		return nom.Name()
	}
	return fmt.Sprintf("<unnamed %T>", wto)
}

// WithOutput sets the stream EMIT/PRINT/PNUM/PSTK write to.
func WithOutput(w io.Writer) VMOption { return outputOption{w} }

// WithTee additionally mirrors output to w -- handy for a CLI's -trace mode
// to echo a transcript to a log file alongside stdout.
func WithTee(w io.Writer) VMOption { return teeOption{w} }

// WithDiag sets the stream unknown-word diagnostics (§4.6 step 5) are
// written to. Nil (the default) discards them.
func WithDiag(w io.Writer) VMOption { return diagOption{w} }

// WithLogf installs a per-opcode trace sink (see logging.go); nil disables
// tracing, the default.
func WithLogf(logf func(string, ...interface{})) VMOption { return logfOption(logf) }

// WithCoreSize overrides the cell count of the image; below the minimum
// needed for the register/scratch/stack regions it is silently raised to
// that minimum by init.
func WithCoreSize(n uint) VMOption { return coreSizeOption(n) }

// WithStackSize overrides the cell depth of each of the return and
// variable stacks.
func WithStackSize(n uint) VMOption { return stackSizeOption(n) }

// WithBlockDir wires save/load to block-structured files rooted at dir.
// Without this option, save/load always fail (status -1).
func WithBlockDir(dir string) VMOption { return blockDirOption(dir) }

type inputOption struct{ io.Reader }

func (o inputOption) apply(vm *VM) {
	if vm.in == nil {
		vm.in = newSource()
	}
	vm.in.push(o.Reader)
}

type outputOption struct{ io.Writer }

func (o outputOption) apply(vm *VM) { vm.out = flushio.NewWriteFlusher(o.Writer) }

type teeOption struct{ io.Writer }

func (o teeOption) apply(vm *VM) { vm.tee = flushio.NewWriteFlusher(o.Writer) }

type diagOption struct{ io.Writer }

func (o diagOption) apply(vm *VM) { vm.diag = o.Writer }

type logfOption func(string, ...interface{})

func (o logfOption) apply(vm *VM) { vm.logf = o }

type coreSizeOption uint

func (o coreSizeOption) apply(vm *VM) { vm.coreSize = uint(o) }

type stackSizeOption uint

func (o stackSizeOption) apply(vm *VM) { vm.stackSize = uint(o) }

type blockDirOption string

func (o blockDirOption) apply(vm *VM) { vm.blockIO = blockStore{store: &block.Store{Dir: string(o)}} }
