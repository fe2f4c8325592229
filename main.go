// Command forth runs the bootstrapped Forth VM against one or more input
// files, or stdin with none given.
package main

import (
	"context"
	"flag"
	"io"
	"os"

	"github.com/forthkit/gothird/internal/logio"
)

func main() { os.Exit(run(os.Args[1:])) }

func run(args []string) int {
	fs := flag.NewFlagSet("forth", flag.ContinueOnError)
	dump := fs.Bool("d", false, "core-dump the final image to forth.core")
	memLimit := fs.Uint("mem-limit", 0, "core size in cells (0 uses the default)")
	timeout := fs.Duration("timeout", 0, "wall-clock budget for the whole run (0 disables)")
	trace := fs.Bool("trace", false, "log a line per dispatched opcode to stderr")
	blockDir := fs.String("block-dir", ".", "directory save/load read and write %04x.blk files in")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	var log logio.Logger
	log.SetOutput(nopCloser{os.Stderr})

	opts := []VMOption{
		WithOutput(os.Stdout),
		WithDiag(&logio.Writer{Logf: log.Leveledf("")}),
		WithBlockDir(*blockDir),
	}
	if *memLimit > 0 {
		opts = append(opts, WithCoreSize(*memLimit))
	}
	if *trace {
		opts = append(opts, WithLogf(log.Leveledf("TRACE")))
	}

	for _, name := range fs.Args() {
		f, err := os.Open(name)
		if err != nil {
			log.Errorf("%v", err)
			return log.ExitCode()
		}
		defer f.Close()
		opts = append(opts, WithInput(newShebangReader(f)))
	}
	if fs.NArg() == 0 {
		opts = append(opts, WithInput(os.Stdin))
	}

	vm := New(opts...)

	ctx := context.Background()
	if *timeout != 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *timeout)
		defer cancel()
	}

	log.ErrorIf(vm.Run(ctx))

	if *dump {
		f, err := os.Create("forth.core")
		if err != nil {
			log.Errorf("%v", err)
		} else {
			log.ErrorIf(vm.Dump(f))
			log.ErrorIf(f.Close())
		}
	}

	return log.ExitCode()
}

// shebangReader wraps a file so a leading "#"-prefixed line is consumed
// silently before the VM ever sees it, the CLI's shebang support (§6).
type shebangReader struct {
	f       *os.File
	skipped bool
}

func newShebangReader(f *os.File) *shebangReader { return &shebangReader{f: f} }

func (r *shebangReader) Name() string { return r.f.Name() }

func (r *shebangReader) Read(p []byte) (int, error) {
	if !r.skipped {
		r.skipped = true
		if err := skipShebangLine(r.f); err != nil {
			return 0, err
		}
	}
	return r.f.Read(p)
}

func skipShebangLine(f *os.File) error {
	var buf [1]byte
	if n, err := f.Read(buf[:]); n == 0 || err != nil {
		return err
	}
	if buf[0] != '#' {
		_, err := f.Seek(-1, io.SeekCurrent)
		return err
	}
	for {
		n, err := f.Read(buf[:])
		if n > 0 && buf[0] == '\n' {
			return nil
		}
		if err != nil {
			return nil
		}
	}
}

// nopCloser adapts os.Stderr (which the process owns and must not close) to
// logio.Logger's io.WriteCloser sink requirement.
type nopCloser struct{ *os.File }

func (nopCloser) Close() error { return nil }
