// Package input implements the VM's notion of an input source: a queue of
// one or more byte streams (an in-process buffer, an open file, stdin) read
// as a single logical stream of runes, plus the whitespace-delimited token
// scanner that the outer interpreter's READ primitive drives.
package input

import (
	"bytes"
	"fmt"
	"io"
	"unicode"

	"github.com/forthkit/gothird/internal/runeio"
)

// MaxToken is the longest token the scanner will return; longer tokens are
// silently truncated to this many bytes (§4.1).
const MaxToken = 31

// Location names a line in a named input stream, for diagnostics only.
type Location struct {
	Name string
	Line int
}

func (loc Location) String() string { return fmt.Sprintf("%v:%v", loc.Name, loc.Line) }

// Line combines a Location with the bytes scanned so far on it.
type Line struct {
	Location
	bytes.Buffer
}

func (ln Line) String() string { return fmt.Sprintf("%v %q", ln.Location, ln.Buffer.String()) }

// Source reads a sequential queue of io.Reader streams as one logical rune
// stream, tracking the current and last-completed line for diagnostics. Only
// one stream is active ("in the mode") at a time: a buffered string source
// or a file-like handle, per §3's "Input source" data model -- Source simply
// lets several of either be strung together.
type Source struct {
	rr    io.RuneReader
	Queue []io.Reader

	Last Line
	Scan Line
}

// Push appends a stream to the back of the queue.
func (in *Source) Push(r io.Reader) { in.Queue = append(in.Queue, r) }

// ReadByte reads one byte (as a rune, widened) from the current stream,
// advancing to the next queued stream on EOF. Crossing from one stream to the
// next yields a single 0 rune with a nil error, which ScanWord treats as a
// token boundary. Returns io.EOF only once the whole queue is exhausted.
func (in *Source) ReadByte() (rune, error) {
	if in.rr == nil && !in.nextStream() {
		return 0, io.EOF
	}

	r, _, err := in.rr.ReadRune()
	if r == '\n' {
		in.nextLine()
	} else if r != 0 {
		in.Scan.WriteRune(r)
	}

	if r != 0 {
		return r, nil
	}
	if err == io.EOF && in.nextStream() {
		err = nil
	}
	return 0, err
}

func (in *Source) nextLine() {
	in.Last.Reset()
	in.Last.Name = in.Scan.Name
	in.Last.Line = in.Scan.Line
	in.Last.Write(in.Scan.Bytes())
	in.Scan.Reset()
	in.Scan.Line++
}

func (in *Source) nextStream() bool {
	in.nextLine()
	if in.rr != nil {
		if cl, ok := in.rr.(io.Closer); ok {
			cl.Close()
		}
		in.rr = nil
	}
	if len(in.Queue) > 0 {
		r := in.Queue[0]
		in.Queue = in.Queue[1:]
		in.rr = runeio.NewReader(r)
		in.Scan.Name = nameOf(r)
		in.Scan.Line = 1
	}
	return in.rr != nil
}

func nameOf(obj interface{}) string {
	if nom, ok := obj.(interface{ Name() string }); ok {
		return nom.Name()
	}
	return fmt.Sprintf("<unnamed %T>", obj)
}

// ScanWord skips leading whitespace (including newlines), then reads bytes
// up to the next whitespace rune, stream boundary or EOF. At most MaxToken bytes are
// returned; any remaining bytes of an over-long token are discarded up to
// the next whitespace, matching §4.1's truncate-at-31 rule. Returns the
// token and true, or ("", false) if the stream was already at EOF.
func (in *Source) ScanWord() (string, bool) {
	var r rune
	var err error
	for {
		r, err = in.ReadByte()
		if err != nil {
			return "", false
		}
		if r != 0 && !unicode.IsSpace(r) {
			break
		}
	}

	var buf [MaxToken]byte
	n := 0
	for {
		if n < MaxToken {
			buf[n] = byte(r)
			n++
		}
		r, err = in.ReadByte()
		if err != nil || r == 0 || unicode.IsSpace(r) {
			break
		}
	}
	return string(buf[:n]), true
}
