// Command gendoc regenerates OPCODES.md from the opcode const block and
// opNames table in opcodes.go. Run via `go generate ./...`.
package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"regexp"
	"time"

	"golang.org/x/sync/errgroup"
)

var (
	in  io.ReadCloser  = mustOpen("opcodes.go")
	out io.WriteCloser = mustCreate("OPCODES.md")
)

func mustOpen(name string) io.ReadCloser {
	f, err := os.Open(name)
	if err != nil {
		log.Fatalf("failed to open %v: %v", name, err)
	}
	return f
}

func mustCreate(name string) io.WriteCloser {
	f, err := os.Create(name)
	if err != nil {
		log.Fatalf("failed to create %v: %v", name, err)
	}
	return f
}

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	eg, ctx := errgroup.WithContext(ctx)

	doc := make(chan []byte, 1)

	// One goroutine reads and renders the table; the other owns writing and
	// closing the files, so a context timeout cancels whichever is still
	// running without either side double-closing its handle.
	eg.Go(func() error {
		defer close(doc)
		b, err := render(in)
		if err != nil {
			return err
		}
		select {
		case doc <- b:
		case <-ctx.Done():
			return ctx.Err()
		}
		return nil
	})

	eg.Go(func() (rerr error) {
		defer func() {
			if cerr := in.Close(); rerr == nil {
				rerr = cerr
			}
			if cerr := out.Close(); rerr == nil {
				rerr = cerr
			}
		}()
		select {
		case b, ok := <-doc:
			if !ok {
				return nil
			}
			_, err := out.Write(b)
			return err
		case <-ctx.Done():
			return ctx.Err()
		}
	})

	if err := eg.Wait(); err != nil {
		log.Fatalln(err)
	}
}

var (
	constLine = regexp.MustCompile(`^\top(\w+)\s*(Cell\s*=\s*iota)?$`)
	nameEntry = regexp.MustCompile(`^\top(\w+):\s*"(\w+)",$`)
)

// render walks opcodes.go once to recover declaration order (the const
// block, iota-numbered) and the opNames table (the human-readable name per
// opcode), then emits a markdown table joining the two by opcode identifier.
func render(r io.Reader) ([]byte, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var order []string
	n := 0
	inConst := false
	for _, line := range bytes.Split(src, []byte("\n")) {
		s := string(line)
		switch {
		case s == "const (":
			inConst = true
		case inConst && s == ")":
			inConst = false
		case inConst:
			if m := constLine.FindStringSubmatch(s); m != nil {
				if m[1] == "Max" {
					inConst = false
					continue
				}
				order = append(order, m[1])
				n++
			}
		}
	}

	names := map[string]string{}
	for _, line := range bytes.Split(src, []byte("\n")) {
		if m := nameEntry.FindStringSubmatch(string(line)); m != nil {
			names[m[1]] = m[2]
		}
	}

	var buf bytes.Buffer
	buf.WriteString("# Opcode reference\n\n")
	buf.WriteString("Generated from opcodes.go; do not edit by hand.\n\n")
	buf.WriteString("| # | identifier | trace name |\n")
	buf.WriteString("|---|---|---|\n")
	for i, id := range order {
		fmt.Fprintf(&buf, "| %d | %s | %s |\n", i, id, names[id])
	}
	return buf.Bytes(), nil
}
