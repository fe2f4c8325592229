package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runSource bootstraps a fresh VM, feeds it src, and returns whatever it
// wrote to stdout and to the diagnostic sink.
func runSource(t *testing.T, src string) (out, diag string, err error) {
	t.Helper()
	var outBuf, diagBuf bytes.Buffer
	vm := New(
		WithInput(strings.NewReader(src)),
		WithOutput(&outBuf),
		WithDiag(&diagBuf),
	)
	err = vm.Run(context.Background())
	return outBuf.String(), diagBuf.String(), err
}

func TestScenarios(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"add and print", "2 3 + .", "5"},
		{"colon word square", ": sq dup * ; 7 sq .", "49"},
		{"if else then true", "10 0 > if 42 . else 7 . then", "42"},
		{"if else then false via 0=", "10 0 < 0= if 42 . else 7 . then", "42"},
		{
			"recursive factorial",
			": fact dup 1 < if drop 1 exit then dup 1 - fact * ; 5 fact .",
			"120",
		},
		{
			"hex then decimal",
			": decimal 0 9 ! ; hex 255 . decimal",
			"ff",
		},
		{"print stack", "1 2 3 .s", "1\t2\t3\t"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			out, diag, err := runSource(t, c.src)
			require.NoError(t, err)
			assert.Empty(t, diag)
			assert.Equal(t, c.want, out)
		})
	}
}

func TestUnknownWordDiagnostic(t *testing.T) {
	out, diag, err := runSource(t, "foobar")
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Equal(t, "( error \"foobar is not a word\" )\n", diag)
}

func TestRunAfterFatalErrorStaysInvalid(t *testing.T) {
	// r> with nothing ever pushed underflows the return stack: RSTK sits
	// exactly at returnBase() once READ's own per-cycle decrement has run,
	// so popr's underflow check fires on the very first r>.
	vm := New(WithInput(strings.NewReader("r>")), WithOutput(&bytes.Buffer{}))

	err := vm.Run(context.Background())
	assert.Error(t, err)
	assert.True(t, vm.invalid)

	err = vm.Run(context.Background())
	assert.Error(t, err, "a second Run on an invalid VM must also fail")
}

func TestWordsDoesNotCrash(t *testing.T) {
	out, diag, err := runSource(t, "words")
	require.NoError(t, err)
	assert.Empty(t, diag)
	assert.NotEmpty(t, out)
}
