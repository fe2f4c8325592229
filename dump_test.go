package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDumpLoadRoundTrip(t *testing.T) {
	vm := New(WithInput(strings.NewReader("1 2 3")), WithOutput(&bytes.Buffer{}))
	require.NoError(t, vm.Run(context.Background()))

	var buf bytes.Buffer
	require.NoError(t, vm.Dump(&buf))

	loaded := &VM{}
	require.NoError(t, loaded.Load(&buf))

	assert.Equal(t, vm.mem, loaded.mem)
	assert.Equal(t, vm.s, loaded.s)
	assert.Equal(t, vm.t, loaded.t)
	assert.Equal(t, vm.i, loaded.i)
	assert.Equal(t, vm.coreSize, loaded.coreSize)
	assert.Equal(t, vm.stackSize, loaded.stackSize)
}

func TestLoadRejectsBadMagic(t *testing.T) {
	loaded := &VM{}
	err := loaded.Load(strings.NewReader("not a dump at all"))
	assert.Error(t, err)
}

func TestLoadRejectsWrongCellWidth(t *testing.T) {
	vm := New(WithOutput(&bytes.Buffer{}))
	var buf bytes.Buffer
	require.NoError(t, vm.Dump(&buf))

	raw := buf.Bytes()
	// cellBytes is the second uint32 in the header, right after the magic
	// and version fields.
	offset := len(dumpMagic) + 4
	raw[offset] = raw[offset] + 1 // corrupt the stamped cell width

	loaded := &VM{}
	err := loaded.Load(bytes.NewReader(raw))
	assert.Error(t, err)
}
