package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBootstrapDefinesCoreWords(t *testing.T) {
	vm := New(WithOutput(&bytes.Buffer{}))

	for _, name := range []string{
		"read", "+", "-", "dup", "swap", "drop", "exit", ":", "immediate", "\\",
		"state", "here", "if", "else", "then", "begin", "until", "words", ">", "nip",
	} {
		assert.NotZerof(t, vm.find(name), "expected %q to be defined after bootstrap", name)
	}
}

func TestBootstrapLeavesReturnStackAtBase(t *testing.T) {
	// bootstrap sets RSTK one above its base before running the embedded
	// program; the last READ, which finds that program exhausted, takes it
	// back down to the base before halting.
	vm := New(WithOutput(&bytes.Buffer{}))
	assert.Equal(t, vm.returnBase(), vm.rstk())
}
